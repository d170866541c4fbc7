package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.Mutex
	cache   = make(map[string]any)

	defaultEnvOnce sync.Once
)

// Load parses the process environment into v based on its `env` field
// tags. The first call for a given struct type does the parsing; later
// calls for the same type return the cached copy, so concurrent packages
// can Load the same config without coordinating.
//
// A .env file in the working directory is loaded once per process before
// the first parse; a missing file is not an error.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := typeKey[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParseFailed, err)
	}
	cache[key] = *v

	return nil
}

// MustLoad is Load that panics on failure, for configuration the process
// cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("load configuration: %v", err))
	}
}

// Reload re-parses the environment for v's type, replacing any cached
// copy. Intended for tests that change the environment mid-process.
func Reload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	cacheMu.Lock()
	delete(cache, typeKey[T]())
	cacheMu.Unlock()

	return Load(v)
}

// LoadEnv loads the named .env files into the process environment.
// Existing variables are not overwritten.
func LoadEnv(paths ...string) error {
	return godotenv.Load(paths...)
}

// ResetCache drops every cached configuration, forcing the next Load of
// each type to re-parse the environment.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = make(map[string]any)
}

func typeKey[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}
