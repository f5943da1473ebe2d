// FILE: logfan/src/internal/pipeline/logger.go
package pipeline

import (
	"runtime"
	"sync/atomic"
	"time"

	"logfan/src/internal/core"
)

// Logger is a registrant's submission handle for one source. Creating it
// registers the source; Close unregisters it, and closing the last handle
// in the process tears the pipeline down. A closed handle drops messages.
type Logger struct {
	pipeline   *Pipeline
	source     string
	traceDepth int
	closed     atomic.Bool
}

// LoggerOption adjusts a logger handle.
type LoggerOption func(*Logger)

// WithTraceDepth captures up to n call frames into each entry's call chain,
// innermost call site first. Zero disables capture.
func WithTraceDepth(n int) LoggerOption {
	return func(l *Logger) {
		l.traceDepth = n
	}
}

// NewLogger registers the source and returns its handle.
func NewLogger(p *Pipeline, source string, opts ...LoggerOption) (*Logger, error) {
	if err := p.Register(source); err != nil {
		return nil, err
	}
	l := &Logger{pipeline: p, source: source}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Log submits one message at the given severity, capturing the timestamp and
// optional call chain now, not at write time.
func (l *Logger) Log(sev core.Severity, message string) {
	l.submit(sev, message)
}

func (l *Logger) Debug(message string)   { l.submit(core.Debug, message) }
func (l *Logger) Info(message string)    { l.submit(core.Info, message) }
func (l *Logger) Warning(message string) { l.submit(core.Warning, message) }
func (l *Logger) Error(message string)   { l.submit(core.Error, message) }
func (l *Logger) Fatal(message string)   { l.submit(core.Fatal, message) }
func (l *Logger) Verbose(message string) { l.submit(core.Verbose, message) }

// submit is called directly by every exported method so the captured chain
// always starts at the user's call site.
func (l *Logger) submit(sev core.Severity, message string) {
	if l.closed.Load() {
		return
	}

	var chain []core.CallFrame
	if l.traceDepth > 0 {
		chain = callChain(4, l.traceDepth)
	}

	l.pipeline.Submit(core.LogEntry{
		Time:      time.Now(),
		Source:    l.source,
		Severity:  sev,
		Message:   message,
		CallChain: chain,
	})
}

// Source returns the source name this handle submits under.
func (l *Logger) Source() string {
	return l.source
}

// Close unregisters the source. Safe to call more than once; only the first
// call unregisters.
func (l *Logger) Close() {
	if l.closed.CompareAndSwap(false, true) {
		l.pipeline.Unregister(l.source)
	}
}

// callChain collects up to depth frames above the logging call, innermost
// call site first.
func callChain(skip, depth int) []core.CallFrame {
	pcs := make([]uintptr, depth)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	chain := make([]core.CallFrame, 0, n)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" {
			chain = append(chain, core.CallFrame{File: frame.File, Line: frame.Line})
		}
		if !more {
			break
		}
	}
	return chain
}
