// FILE: logfan/src/internal/format/format.go
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"logfan/src/internal/core"
)

// Formatter renders timestamps and entry bodies. A single formatter is shared
// by every destination; the body string is computed once per entry.
type Formatter struct {
	timestampFormat string
}

// NewFormatter creates a formatter for the given Go time layout. An empty
// layout falls back to the default.
func NewFormatter(timestampFormat string) *Formatter {
	if timestampFormat == "" {
		timestampFormat = core.DefaultTimestampFormat
	}
	return &Formatter{timestampFormat: timestampFormat}
}

// Validate dry-runs the timestamp layout: a probe time is rendered and
// parsed back with the same layout. A layout with no time tokens at all
// (typically a strftime pattern like "%H:%M:%S") renders as itself and is
// rejected, as is one that cannot round-trip. Failing here, at startup,
// beats garbling every line for the process lifetime.
func (f *Formatter) Validate() error {
	probe := time.Date(2024, time.December, 31, 23, 58, 57, 0, time.UTC)
	rendered := probe.Format(f.timestampFormat)
	if rendered == "" {
		return fmt.Errorf("timestamp format %q renders empty", f.timestampFormat)
	}
	if rendered == f.timestampFormat {
		return fmt.Errorf("timestamp format %q contains no time tokens", f.timestampFormat)
	}
	if _, err := time.Parse(f.timestampFormat, rendered); err != nil {
		return fmt.Errorf("invalid timestamp format %q: %w", f.timestampFormat, err)
	}
	return nil
}

// Timestamp renders a point in time with the configured layout.
func (f *Formatter) Timestamp(t time.Time) string {
	return t.Format(f.timestampFormat)
}

// Body renders the message followed by the call-chain suffix. Frames appear
// in the order given, oldest call site first, never reordered.
func (f *Formatter) Body(e core.LogEntry) string {
	if len(e.CallChain) == 0 {
		return e.Message
	}

	var b strings.Builder
	b.WriteString(e.Message)
	b.WriteString(" (")
	for i, frame := range e.CallChain {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(frame.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(frame.Line))
	}
	b.WriteByte(')')
	return b.String()
}
