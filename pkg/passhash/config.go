package passhash

// Config holds Argon2id tuning knobs, populated from environment variables.
type Config struct {
	MemoryKiB   uint32 `env:"PASSHASH_MEMORY_KIB" envDefault:"65536"` // MemoryKiB is the Argon2id memory cost in KiB.
	Iterations  uint32 `env:"PASSHASH_ITERATIONS" envDefault:"1"`     // Iterations is the Argon2id time cost.
	Parallelism uint8  `env:"PASSHASH_PARALLELISM" envDefault:"4"`    // Parallelism is the Argon2id lane count.
	PoolSize    int    `env:"PASSHASH_POOL_SIZE" envDefault:"4"`      // PoolSize bounds concurrent KDF computations.
}
