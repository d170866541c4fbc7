// Package logger builds the application's slog.Logger: JSON output at info
// level for production, text at debug level for development, plus attribute
// helpers for the identifiers that recur throughout the codebase (account
// ids, filesystem ids, pipeline steps).
//
// Free-text error messages from drivers and collaborators may echo secret
// material; call sites that handle secrets log the error's type instead.
// The Error helper here is for errors already known to be safe to print.
package logger
