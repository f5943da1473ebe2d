// FILE: logfan/src/internal/pipeline/pipeline.go
package pipeline

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"logfan/src/internal/config"
	"logfan/src/internal/console"
	"logfan/src/internal/core"
	"logfan/src/internal/format"
	"logfan/src/internal/queue"
	"logfan/src/internal/route"
	"logfan/src/internal/sink"

	"github.com/lixenwraith/log"
)

// Pipeline orchestrates the fan-out: it owns the queue and the single worker
// goroutine, exposes the producer-facing Submit, and tracks live registrants
// to decide when to tear everything down.
type Pipeline struct {
	queue     *queue.Queue
	files     *sink.FileSink
	formatter *format.Formatter
	router    *route.Router
	console   *console.Renderer
	logger    *log.Logger

	mu          sync.Mutex
	registrants map[string]int
	total       int
	closed      bool

	wg         sync.WaitGroup
	consoleOut io.Writer
	startTime  time.Time

	// Statistics
	totalSubmitted atomic.Uint64
	totalConsole   atomic.Uint64
}

// Option adjusts a pipeline before its worker starts.
type Option func(*Pipeline)

// WithConsoleWriter redirects console rendering, for tests.
func WithConsoleWriter(w io.Writer) Option {
	return func(p *Pipeline) {
		p.consoleOut = w
	}
}

// New validates the configuration, opens the file destinations and starts
// the worker. An invalid timestamp layout aborts here, before any entry is
// accepted. On any startup failure already-opened resources are released.
func New(cfg *config.Config, logger *log.Logger, opts ...Option) (*Pipeline, error) {
	formatter := format.NewFormatter(cfg.Logs.TimestampFormat)
	if err := formatter.Validate(); err != nil {
		return nil, fmt.Errorf("timestamp format rejected: %w", err)
	}

	sevs, err := cfg.ConsoleSeverities()
	if err != nil {
		return nil, fmt.Errorf("console severities rejected: %w", err)
	}

	files, err := sink.NewFileSink(cfg.Logs.Directory, logger)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		queue:       queue.New(),
		files:       files,
		formatter:   formatter,
		router:      route.NewRouter(cfg.Console.Sources, sevs),
		logger:      logger,
		registrants: make(map[string]int),
		consoleOut:  os.Stdout,
		startTime:   time.Now(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.console = console.NewRendererWriter(cfg.Console.Colors, p.consoleOut)

	p.wg.Add(1)
	go p.run()

	logger.Info("msg", "Pipeline started",
		"component", "pipeline",
		"logs_directory", cfg.Logs.Directory,
		"console_colors", cfg.Console.Colors)
	return p, nil
}

// Submit transfers an entry into the queue. Valid from any goroutine for the
// pipeline's lifetime; it never fails because of destination I/O. Calling it
// after teardown has begun is a caller contract violation (registrants hold
// the only valid handles).
func (p *Pipeline) Submit(e core.LogEntry) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	p.totalSubmitted.Add(1)
	p.queue.Push(e)
}

// Register adds a live registrant for the source. A source may be registered
// any number of times by independent registrants.
func (p *Pipeline) Register(source string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return fmt.Errorf("pipeline is shut down")
	}
	p.registrants[source]++
	p.total++
	return nil
}

// Unregister drops a live registrant. When the last registrant across all
// sources is gone, the whole pipeline tears down: queue stop, worker join,
// aggregate close. Directory state for the source persists regardless.
func (p *Pipeline) Unregister(source string) {
	p.mu.Lock()
	count, ok := p.registrants[source]
	if !ok {
		p.mu.Unlock()
		p.logger.Warn("msg", "Unregister of unknown source",
			"component", "pipeline",
			"source", source)
		return
	}
	if count <= 1 {
		delete(p.registrants, source)
	} else {
		p.registrants[source] = count - 1
	}
	p.total--
	last := p.total == 0
	p.mu.Unlock()

	if last {
		p.Shutdown()
	}
}

// Shutdown drains and stops the pipeline: every entry submitted before the
// stop request is fully processed before the worker exits. Idempotent.
func (p *Pipeline) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.logger.Info("msg", "Pipeline shutdown initiated", "component", "pipeline")

	p.queue.Stop()
	p.wg.Wait()

	if err := p.files.Close(); err != nil {
		p.logger.Error("msg", "Error closing aggregate files",
			"component", "pipeline",
			"error", err)
	}

	p.logger.Info("msg", "Pipeline shutdown complete", "component", "pipeline")
}

// Stats returns pipeline statistics.
func (p *Pipeline) Stats() map[string]any {
	p.mu.Lock()
	registrants := p.total
	p.mu.Unlock()

	stats := map[string]any{
		"uptime_seconds":  int(time.Since(p.startTime).Seconds()),
		"total_submitted": p.totalSubmitted.Load(),
		"total_console":   p.totalConsole.Load(),
		"queued":          p.queue.Len(),
		"registrants":     registrants,
	}
	for k, v := range p.files.Stats() {
		stats[k] = v
	}
	return stats
}
