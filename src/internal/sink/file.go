// FILE: logfan/src/internal/sink/file.go
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"logfan/src/internal/core"
	"logfan/src/internal/route"

	"github.com/lixenwraith/log"
	"golang.org/x/time/rate"
)

// FileSink owns the file destinations: per-source log files opened and closed
// on every write, and three process-lifetime aggregate handles. Only the
// pipeline worker touches it, so no locking is needed.
//
// Destination failures are never escalated to producers and never retried;
// the write is dropped for that destination only. Failures are surfaced on
// the diagnostic logger, throttled so a persistently broken destination
// cannot flood the diag stream.
type FileSink struct {
	dirs       *DirTree
	aggregates map[core.Severity]*os.File
	logger     *log.Logger
	diagLimit  *rate.Limiter

	// Statistics
	totalWritten atomic.Uint64
	totalFailed  atomic.Uint64
}

// NewFileSink creates the logs root and opens the aggregate files append-only
// for the process lifetime. On any open failure the already-opened handles
// are closed before returning.
func NewFileSink(root string, logger *log.Logger) (*FileSink, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logs root %q: %w", root, err)
	}

	fs := &FileSink{
		dirs:       NewDirTree(root),
		aggregates: make(map[core.Severity]*os.File, 3),
		logger:     logger,
		diagLimit:  rate.NewLimiter(rate.Every(time.Second), 5),
	}

	for _, sev := range []core.Severity{core.Warning, core.Error, core.Fatal} {
		name, _ := route.AggregateFor(sev)
		f, err := os.OpenFile(filepath.Join(root, name), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			fs.Close()
			return nil, fmt.Errorf("failed to open aggregate file %s: %w", name, err)
		}
		fs.aggregates[sev] = f
	}

	return fs, nil
}

// WriteSource appends one line to the entry's per-source file, creating any
// missing directories first. The file is opened and closed per write; the
// single Write call keeps lines atomic and immediately durable.
func (fs *FileSink) WriteSource(source string, line []byte) {
	if err := fs.dirs.Ensure(source); err != nil {
		fs.fail("create source directory", source, err)
		return
	}

	f, err := os.OpenFile(fs.dirs.SourcePath(source), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		fs.fail("open source file", source, err)
		return
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		fs.fail("write source file", source, err)
		return
	}
	fs.totalWritten.Add(1)
}

// WriteAggregate appends one line to the aggregate handle for the severity.
// Severities without an aggregate file are a no-op.
func (fs *FileSink) WriteAggregate(sev core.Severity, line []byte) {
	f, ok := fs.aggregates[sev]
	if !ok {
		return
	}
	if _, err := f.Write(line); err != nil {
		fs.fail("write aggregate file", sev.String(), err)
		return
	}
	fs.totalWritten.Add(1)
}

// Close releases the aggregate handles.
func (fs *FileSink) Close() error {
	var firstErr error
	for sev, f := range fs.aggregates {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(fs.aggregates, sev)
	}
	return firstErr
}

// Stats returns write counters.
func (fs *FileSink) Stats() map[string]any {
	return map[string]any{
		"total_written": fs.totalWritten.Load(),
		"total_failed":  fs.totalFailed.Load(),
	}
}

func (fs *FileSink) fail(op, target string, err error) {
	fs.totalFailed.Add(1)
	if fs.logger != nil && fs.diagLimit.Allow() {
		fs.logger.Error("msg", "Failed to "+op,
			"component", "file_sink",
			"target", target,
			"error", err)
	}
}
