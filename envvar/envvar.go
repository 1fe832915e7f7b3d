package envvar

import (
	"strconv"

	"github.com/aatuh/envvar"
)

// Adapter provides environment variable access using the envvar library.
type Adapter struct{}

// New creates a new envvar adapter.
func New() *Adapter {
	return &Adapter{}
}

// LoadEnvFiles loads environment variables from files.
// Tries .env then /env/.env by default.
func (a *Adapter) LoadEnvFiles(paths []string) error {
	envvar.MustLoadEnvVars(paths)
	return nil
}

// Get returns the raw value and presence indicator.
func (a *Adapter) Get(key string) (string, bool) {
	v := envvar.Get(key)
	return v, v != ""
}

// GetOr returns the value or default if not present.
func (a *Adapter) GetOr(key, def string) string {
	return envvar.GetOr(key, def)
}

// MustGet returns the value or panics if not present.
func (a *Adapter) MustGet(key string) string {
	return envvar.MustGet(key)
}

// GetBoolOr returns the value as boolean or default if not present.
func (a *Adapter) GetBoolOr(key string, def bool) bool {
	return envvar.GetBoolOr(key, def)
}

// MustGetBool returns the value as boolean or panics if not present.
func (a *Adapter) MustGetBool(key string) bool {
	return envvar.MustGetBool(key)
}

// GetIntOr returns the value as integer or default if not present.
func (a *Adapter) GetIntOr(key string, def int) int {
	v := envvar.Get(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}

// MustGetInt returns the value as integer or panics if not present.
func (a *Adapter) MustGetInt(key string) int {
	return envvar.MustGetInt(key)
}

// GetInt64Or returns the value as int64 or default if not present.
func (a *Adapter) GetInt64Or(key string, def int64) int64 {
	v := envvar.Get(key)
	if v == "" {
		return def
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}
	return def
}

// MustGetInt64 returns the value as int64 or panics if not present.
func (a *Adapter) MustGetInt64(key string) int64 {
	v := envvar.MustGet(key)
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		panic("environment variable " + key + " is not a valid int64: " + v)
	}
	return i
}

// GetFloat64Or returns the value as float64 or default if not present.
func (a *Adapter) GetFloat64Or(key string, def float64) float64 {
	v := envvar.Get(key)
	if v == "" {
		return def
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return def
}
