// Package throttle rate-limits failed login attempts per account.
//
// Unlike a generic request rate limiter, the throttle only counts failures:
// a successful authentication resets the counter immediately. Once an account
// accumulates the configured number of consecutive failures within the
// attempt period, further attempts are refused with a ThrottledError carrying
// the remaining cooldown, and the credential check is skipped entirely so a
// throttled attempt costs no key-derivation work.
//
// The throttle is evaluated before credentials on purpose. It must also be
// possible to disable it wholesale (development, tests) via configuration;
// when disabled every method is a no-op.
//
// State lives behind the Store interface. Account-backed stores keep the
// counter on the account row itself; MemoryStore and RedisStore are
// standalone backends for deployments that keep throttle state separate.
package throttle
