// FILE: logfan/src/internal/format/lines.go
package format

import (
	"fmt"

	"logfan/src/internal/core"
)

// Line builders for the three destination formats. All lines are
// newline-terminated; the layouts are stable for compatibility.

// SourceLine builds the per-source file line: [<ts>] [<SEVERITY>] <body>
func SourceLine(timestamp string, sev core.Severity, body string) []byte {
	return []byte(fmt.Sprintf("[%s] [%s] %s\n", timestamp, sev, body))
}

// AggregateLine builds the per-severity aggregate line: [<ts>] [<source>] <body>
// Aggregate lines show the source where source-file lines show the severity;
// the two files are complementary indices.
func AggregateLine(timestamp, source, body string) []byte {
	return []byte(fmt.Sprintf("[%s] [%s] %s\n", timestamp, source, body))
}

// ConsoleLine builds the plain console line: [<ts>] [<source>] [<SEVERITY>] <body>
func ConsoleLine(timestamp, source string, sev core.Severity, body string) []byte {
	return []byte(fmt.Sprintf("[%s] [%s] [%s] %s\n", timestamp, source, sev, body))
}
