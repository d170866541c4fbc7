// Package config loads typed configuration structs from the process
// environment.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for optional .env files. Each configuration
// type is parsed at most once per process and served from a cache on
// subsequent calls, so packages can call Load independently without
// re-reading the environment.
//
// Usage:
//
//	type StoreConfig struct {
//		Dir string `env:"STORE_DIR" envDefault:"/var/lib/sealpost/store"`
//	}
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// Tests that mutate the environment should call ResetCache between cases
// or Reload to force a re-parse of a single type.
package config
