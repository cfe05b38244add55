package configs

import (
	"log/slog"
	"strings"
)

// Logger configures the structured logger: Level is the minimum level
// emitted ("debug", "info", "warn", "error") and Format the output
// encoding ("text" or "json"). Unknown values fall back to info/text.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// SlogLevel maps the configured level onto a slog.Level, defaulting to
// info for anything unrecognised.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat normalises the configured format; anything but "json" means
// "text".
func (c Logger) SlogFormat() string {
	if strings.ToLower(c.Format) == "json" {
		return "json"
	}
	return "text"
}
