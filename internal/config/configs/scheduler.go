package configs

import "time"

// Scheduler configures the activation loop. The default matches the
// original one-minute cron cadence; any interval is safe because the tick
// is idempotent.
type Scheduler struct {
	Interval time.Duration `env:"INTERVAL" envDefault:"1m"`
}
