// FILE: logfan/src/cmd/logfan/flags.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lixenwraith/log"
)

// Command-line flags
var (
	// General flags
	configFile  = flag.String("config", "", "Config file path")
	showVersion = flag.Bool("version", false, "Show version information")
	quiet       = flag.Bool("quiet", false, "Suppress all console output from logfan itself")
	colors      = flag.Bool("colors", false, "Force colorized console echo (overrides config)")

	// Logging flags
	logOutput = flag.String("log-output", "", "Diagnostic log output: file, stdout, stderr, none (overrides config)")
	logLevel  = flag.String("log-level", "", "Diagnostic log level: debug, info, warn, error (overrides config)")
)

func init() {
	flag.Usage = customUsage
}

func customUsage() {
	fmt.Fprintf(os.Stderr, "LogFan - Local Log Fan-Out Pipeline\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Reads log lines from stdin and fans them out to per-source files,\n")
	fmt.Fprintf(os.Stderr, "per-severity aggregate files, and an optional console echo.\n")
	fmt.Fprintf(os.Stderr, "Input format: source|SEVERITY|message (bare lines default to stdin/INFO)\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")

	fmt.Fprintf(os.Stderr, "\nGeneral:\n")
	fmt.Fprintf(os.Stderr, "  -config string\n\tConfig file path\n")
	fmt.Fprintf(os.Stderr, "  -version\n\tShow version information\n")
	fmt.Fprintf(os.Stderr, "  -quiet\n\tSuppress all console output from logfan itself\n")
	fmt.Fprintf(os.Stderr, "  -colors\n\tForce colorized console echo (overrides config)\n")

	fmt.Fprintf(os.Stderr, "\nLogging:\n")
	fmt.Fprintf(os.Stderr, "  -log-output string\n\tDiagnostic log output: file, stdout, stderr, none (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -log-level string\n\tDiagnostic log level: debug, info, warn, error (overrides config)\n")

	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  # Fan out a server log with defaults\n")
	fmt.Fprintf(os.Stderr, "  tail -f server.log | %s\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  # Custom config with colorized console echo\n")
	fmt.Fprintf(os.Stderr, "  %s --config /etc/logfan.toml --colors\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "Environment Variables:\n")
	fmt.Fprintf(os.Stderr, "  LOGFAN_CONFIG_FILE  Config file path\n")
	fmt.Fprintf(os.Stderr, "  LOGFAN_CONFIG_DIR   Config directory\n")
}

func parseFlags() error {
	flag.Parse()

	if *logOutput != "" {
		validOutputs := map[string]bool{
			"file": true, "stdout": true, "stderr": true, "none": true,
		}
		if !validOutputs[*logOutput] {
			return fmt.Errorf("invalid log-output: %s (valid: file, stdout, stderr, none)", *logOutput)
		}
	}

	if *logLevel != "" {
		if _, err := parseLogLevel(*logLevel); err != nil {
			return fmt.Errorf("invalid log-level: %s (valid: debug, info, warn, error)", *logLevel)
		}
	}

	return nil
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
