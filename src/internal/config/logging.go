// FILE: logfan/src/internal/config/logging.go
package config

import "fmt"

// LogConfig represents the pipeline's own diagnostic logging configuration.
// This is the channel on which dropped destination writes are surfaced; it is
// entirely separate from the fan-out destinations themselves.
type LogConfig struct {
	// Output mode: "file", "stdout", "stderr", "none"
	Output string `toml:"output"`

	// Log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`

	// Directory for diagnostic log files (file output)
	Directory string `toml:"directory"`

	// Base name for diagnostic log files (file output)
	Name string `toml:"name"`
}

// DefaultLogConfig returns sensible diagnostics defaults.
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Output:    "stderr",
		Level:     "info",
		Directory: "./log",
		Name:      "logfan",
	}
}

func validateLogConfig(cfg *LogConfig) error {
	validOutputs := map[string]bool{
		"file": true, "stdout": true, "stderr": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	return nil
}
