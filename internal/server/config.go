package server

import (
	"log"
	"strconv"
)

// Default sampling densities used when a tool call does not specify them.
const (
	DefaultAngularSteps = 64
	DefaultRadialSteps  = 32
)

// Config holds server settings read from the environment at startup.
type Config struct {
	// Debug enables per-request debug logging on stderr.
	Debug bool

	// AngularSteps is the default number of samples per ring for
	// profile_radial.
	AngularSteps int

	// RadialSteps is the default number of rings for profile_radial.
	RadialSteps int
}

// DefaultConfig returns the configuration used when no environment
// variables are set.
func DefaultConfig() Config {
	return Config{
		AngularSteps: DefaultAngularSteps,
		RadialSteps:  DefaultRadialSteps,
	}
}

// ConfigFromEnv builds a Config from environment variables looked up with
// getenv (normally os.Getenv):
//
//   - PROFILE_MCP_LOG_LEVEL: "debug" enables debug logging
//   - PROFILE_MCP_ANGULAR_STEPS: default angular steps (positive integer)
//   - PROFILE_MCP_RADIAL_STEPS: default radial steps (positive integer)
//
// Invalid numbers are logged and replaced by the defaults.
func ConfigFromEnv(getenv func(string) string) Config {
	cfg := DefaultConfig()
	cfg.Debug = getenv("PROFILE_MCP_LOG_LEVEL") == "debug"
	cfg.AngularSteps = positiveEnv(getenv, "PROFILE_MCP_ANGULAR_STEPS", cfg.AngularSteps)
	cfg.RadialSteps = positiveEnv(getenv, "PROFILE_MCP_RADIAL_STEPS", cfg.RadialSteps)
	return cfg
}

func positiveEnv(getenv func(string) string, key string, def int) int {
	raw := getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		log.Printf("Ignoring %s=%q: want a positive integer, using %d", key, raw, def)
		return def
	}
	return n
}
