// FILE: logfan/src/internal/core/severity.go
package core

import (
	"fmt"
	"strings"
)

// Severity is a symbolic category used for destination routing and color
// selection. Values are not ranked; the pipeline never compares them.
type Severity byte

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Fatal
	Verbose
)

var severityNames = map[Severity]string{
	Debug:   "DEBUG",
	Info:    "INFO",
	Warning: "WARNING",
	Error:   "ERROR",
	Fatal:   "FATAL",
	Verbose: "VERBOSE",
}

// String returns the canonical upper-case severity name.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "<unknown>"
}

// ParseSeverity converts a case-insensitive severity name to its value.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARNING", "WARN":
		return Warning, nil
	case "ERROR":
		return Error, nil
	case "FATAL":
		return Fatal, nil
	case "VERBOSE":
		return Verbose, nil
	default:
		return 0, fmt.Errorf("unknown severity: %s", name)
	}
}

// Severities lists all valid values in declaration order.
func Severities() []Severity {
	return []Severity{Debug, Info, Warning, Error, Fatal, Verbose}
}
