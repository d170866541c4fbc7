// Package designation generates the human-readable codenames journalists
// use to refer to sources, like "wary nominee". The designation is the only
// name a journalist ever sees; it is unrelated to the source's filesystem
// identifier, so knowing one reveals nothing about the other.
//
// Names are drawn with crypto/rand from curated word lists and deduplicated
// within the process; an optional callback lets the caller reject candidates
// that already exist in storage.
package designation
