package riscvh

import (
	"strconv"
	"strings"

	"github.com/xyproto/env/v2"
)

// Environment variables read by LoadConfig.
const (
	EnvMode     = "RISCVH_ENV"
	EnvDebug    = "RISCVH_DEBUG"
	EnvLogLevel = "RISCVH_LOG_LEVEL"
)

// Config is the process-wide configuration taken from the environment.
type Config struct {
	// Production sanitizes error messages.
	Production bool
	// LogLevel is the logr verbosity used by tools built on this package.
	LogLevel int
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() Config {
	return Config{
		Production: isProductionEnv(),
		LogLevel:   env.Int(EnvLogLevel, 0),
	}
}

// isProductionEnv checks if we're running in production environment
func isProductionEnv() bool {
	return productionMode(env.Str(EnvMode), env.Str(EnvDebug))
}

func productionMode(mode, debug string) bool {
	switch strings.ToLower(mode) {
	case "production", "prod":
		return true
	}

	// Check if debug mode is explicitly disabled
	if debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil && !val {
			return true
		}
	}

	return false
}
