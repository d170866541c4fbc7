package throttle

import (
	"time"

	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Config holds throttle settings loaded from environment variables.
type Config struct {
	// Enabled turns the throttle off entirely when false. Intended for
	// development environments; production deployments keep it on.
	Enabled bool `env:"THROTTLE_ENABLED" envDefault:"true"`

	// MaxAttempts is the number of consecutive failures tolerated within
	// AttemptPeriod before the account enters cooldown.
	MaxAttempts int `env:"THROTTLE_MAX_ATTEMPTS" envDefault:"5"`

	// AttemptPeriod is both the failure-counting window and the cooldown
	// length once the limit is reached.
	AttemptPeriod time.Duration `env:"THROTTLE_ATTEMPT_PERIOD" envDefault:"60s"`
}
