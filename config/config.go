package config

import (
	"context"
	"strings"

	"github.com/aatuh/ulid-toolkit/envvar"
	"github.com/aatuh/ulid-toolkit/validation"
)

// Config holds the ulidd server configuration.
type Config struct {
	Addr           string  `env:"ULIDD_ADDR" validate:"required"`                         // ":8000"
	LogLevel       string  `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`       // "info"
	Env            string  `env:"ENV" validate:"oneof=development staging production"`    // "development"
	MaxCount       int     `env:"ULIDD_MAX_COUNT" validate:"min=1,max=100000"`            // IDs per request cap
	RateCapacity   float64 `env:"ULIDD_RATE_CAPACITY" validate:"gt=0"`                    // token bucket size
	RateRefill     float64 `env:"ULIDD_RATE_REFILL" validate:"gt=0"`                      // tokens per second
	RequestTimeout int64   `env:"ULIDD_REQUEST_TIMEOUT_MS" validate:"min=100,max=60000"`  // per-request deadline
	CORSOrigins    string  `env:"ULIDD_CORS_ORIGINS"`                                     // comma-separated, "*" default
}

// MustLoadFromEnv loads config or panics if values are missing or invalid.
func MustLoadFromEnv() Config {
	adapter := envvar.New()
	cfg := Config{
		Addr:           adapter.GetOr("ULIDD_ADDR", ":8000"),
		LogLevel:       adapter.GetOr("LOG_LEVEL", "info"),
		Env:            adapter.GetOr("ENV", "development"),
		MaxCount:       adapter.GetIntOr("ULIDD_MAX_COUNT", 1000),
		RateCapacity:   adapter.GetFloat64Or("ULIDD_RATE_CAPACITY", 30),
		RateRefill:     adapter.GetFloat64Or("ULIDD_RATE_REFILL", 15),
		RequestTimeout: adapter.GetInt64Or("ULIDD_REQUEST_TIMEOUT_MS", 5000),
		CORSOrigins:    adapter.GetOr("ULIDD_CORS_ORIGINS", "*"),
	}
	if err := validation.New().ValidateStruct(context.Background(), cfg); err != nil {
		panic("config: " + err.Error())
	}
	return cfg
}

// Origins splits the comma-separated CORS origin list.
func (c Config) Origins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
