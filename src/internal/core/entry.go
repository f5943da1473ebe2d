// FILE: logfan/src/internal/core/entry.go
package core

import (
	"time"
)

// CallFrame identifies one call site on the path that produced an entry.
type CallFrame struct {
	File string
	Line int
}

// LogEntry represents a single log record flowing through the pipeline.
// Immutable once submitted; ownership moves producer -> queue -> worker.
type LogEntry struct {
	Time      time.Time
	Source    string
	Severity  Severity
	Message   string
	CallChain []CallFrame
}
