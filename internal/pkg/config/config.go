package config

import (
	"io"
	"time"
)

// Config defines the configuration lookups used by the service.
//
// Missing keys, or values that cannot be converted, yield the zero value of
// the requested type; callers apply their own defaults.
type Config interface {
	io.Closer

	// GetBool returns the value for key as a bool.
	GetBool(key string) bool
	// GetString returns the value for key as a string.
	GetString(key string) string
	// GetInt returns the value for key as an int.
	GetInt(key string) int
	// GetFloat64 returns the value for key as a float64.
	GetFloat64(key string) float64
	// GetSecond returns the value for key interpreted as a number of seconds.
	GetSecond(key string) time.Duration
	// GetArray returns the value for key split on commas. The value is stored
	// as <element1>,<element2>,...
	GetArray(key string) []string
}
