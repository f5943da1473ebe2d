// FILE: logfan/src/internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"logfan/src/internal/core"
)

type Config struct {
	Logs    LogsConfig    `toml:"logs"`
	Console ConsoleConfig `toml:"console"`
	Logging LogConfig     `toml:"logging"`
}

// LogsConfig controls the file fan-out destinations.
type LogsConfig struct {
	// Root directory for per-source and aggregate log files
	Directory string `toml:"directory"`

	// Go time layout applied to every line; validated at startup
	TimestampFormat string `toml:"timestamp_format"`
}

// ConsoleConfig controls the optional console echo.
type ConsoleConfig struct {
	// Render console lines with ANSI colors
	Colors bool `toml:"colors"`

	// Sources echoed to the console regardless of severity
	Sources []string `toml:"sources"`

	// Severity names echoed to the console regardless of source.
	// Either list matching suffices.
	Severities []string `toml:"severities"`
}

func defaults() *Config {
	return &Config{
		Logs: LogsConfig{
			Directory:       core.DefaultLogsDirectory,
			TimestampFormat: core.DefaultTimestampFormat,
		},
		Console: ConsoleConfig{
			Colors: false,
		},
		Logging: *DefaultLogConfig(),
	}
}

// ConsoleSeverities parses the configured severity names.
func (c *Config) ConsoleSeverities() ([]core.Severity, error) {
	sevs := make([]core.Severity, 0, len(c.Console.Severities))
	for _, name := range c.Console.Severities {
		sev, err := core.ParseSeverity(name)
		if err != nil {
			return nil, err
		}
		sevs = append(sevs, sev)
	}
	return sevs, nil
}

func (c *Config) validate() error {
	if c.Logs.Directory == "" {
		return fmt.Errorf("logs directory not set")
	}
	if strings.Contains(c.Logs.Directory, "..") {
		return fmt.Errorf("logs directory contains directory traversal: %s", c.Logs.Directory)
	}

	for _, name := range c.Console.Severities {
		if _, err := core.ParseSeverity(name); err != nil {
			return fmt.Errorf("console severities: %w", err)
		}
	}

	for i, source := range c.Console.Sources {
		if source == "" {
			return fmt.Errorf("console sources: entry %d is empty", i)
		}
	}

	return validateLogConfig(&c.Logging)
}
