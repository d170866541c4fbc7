package deletion

import (
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Config holds deletion settings loaded from environment variables.
type Config struct {
	// StoreDir is the directory holding one subdirectory of encrypted
	// submissions per source, named by filesystem identifier.
	StoreDir string `env:"DELETION_STORE_DIR" envDefault:"/var/lib/sealpost/store"`

	// MaxConcurrent bounds how many deletion pipelines run at once. Secure
	// file erasure is I/O heavy; running too many in parallel slows all of
	// them down.
	MaxConcurrent int `env:"DELETION_MAX_CONCURRENT" envDefault:"2"`
}
