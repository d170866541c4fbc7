// Package redis bootstraps the Redis connection used by the shared login
// throttle store, with startup retry and a health check closure for
// readiness probes. Configuration comes from environment variables via
// caarlos0/env.
package redis
