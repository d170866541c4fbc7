// Package pg bootstraps the PostgreSQL layer: a pgx/v5 connection pool with
// retry on startup, goose schema migrations routed through slog, and a
// health check closure for readiness probes.
//
// Configuration comes from environment variables via caarlos0/env; see the
// Config field tags for names and defaults. The account and source
// repositories take the *pgxpool.Pool this package produces.
package pg
