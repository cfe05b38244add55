package configs

import "time"

// Redis configures the optional trending cache. When Enabled is false the
// application runs without Redis and trending is computed on every request.
type Redis struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Addr    string `env:"ADDRESS" envDefault:"localhost:6379"`
	DB      int    `env:"DB" envDefault:"0"`
	// TrendingTTL is how long one computed trending list stays valid.
	TrendingTTL time.Duration `env:"TRENDING_TTL" envDefault:"30s"`
}
