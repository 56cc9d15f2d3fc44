package configs

import "time"

// Payment configures the simulated payment processor.
type Payment struct {
	// Delay is how long every payment takes before it succeeds.
	Delay time.Duration `env:"DELAY" envDefault:"2s"`
}
