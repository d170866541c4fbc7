package session

import (
	"time"

	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Config holds session settings loaded from environment variables.
type Config struct {
	// TTL is the fixed session lifetime. Sessions do not slide; an operator
	// re-authenticates when the TTL runs out.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"2h"`
}
