// FILE: logfan/src/internal/pipeline/pipeline_test.go
package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"logfan/src/internal/config"
	"logfan/src/internal/core"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Logs: config.LogsConfig{
			Directory:       t.TempDir(),
			TimestampFormat: "2006-01-02 15:04:05",
		},
	}
}

func newTestPipeline(t *testing.T, cfg *config.Config, opts ...Option) *Pipeline {
	t.Helper()
	p, err := New(cfg, log.NewLogger(), opts...)
	require.NoError(t, err)
	return p
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestNewRejectsBadTimestampFormat(t *testing.T) {
	cfg := testConfig(t)
	cfg.Logs.TimestampFormat = "%H:%M:%S"
	_, err := New(cfg, log.NewLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timestamp format")
}

func TestOrderPreservation(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg)

	const n = 200
	for i := 0; i < n; i++ {
		p.Submit(core.LogEntry{Source: "ordered", Severity: core.Info,
			Message: fmt.Sprintf("msg-%d", i)})
	}
	p.Shutdown()

	lines := readLines(t, filepath.Join(cfg.Logs.Directory, "ordered.log"))
	require.Len(t, lines, n)
	for i, line := range lines {
		assert.True(t, strings.HasSuffix(line, fmt.Sprintf("msg-%d", i)),
			"line %d out of order: %s", i, line)
	}
}

func TestSeverityFanOut(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg)

	p.Submit(core.LogEntry{Source: "net/http", Severity: core.Error,
		Message: "connection refused"})
	p.Submit(core.LogEntry{Source: "net/http", Severity: core.Debug,
		Message: "handshake done"})
	p.Shutdown()

	sourceLines := readLines(t, filepath.Join(cfg.Logs.Directory, "net", "http.log"))
	require.Len(t, sourceLines, 2)
	assert.Regexp(t, `^\[.+\] \[ERROR\] connection refused$`, sourceLines[0])
	assert.Regexp(t, `^\[.+\] \[DEBUG\] handshake done$`, sourceLines[1])

	errorLines := readLines(t, filepath.Join(cfg.Logs.Directory, core.ErrorsFileName))
	require.Len(t, errorLines, 1)
	assert.Regexp(t, `^\[.+\] \[net/http\] connection refused$`, errorLines[0])

	// DEBUG never touches the aggregates
	warnings, err := os.ReadFile(filepath.Join(cfg.Logs.Directory, core.WarningsFileName))
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestCallChainInWrittenLine(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg)

	p.Submit(core.LogEntry{Source: "samp", Severity: core.Warning,
		Message: "invalid state",
		CallChain: []core.CallFrame{
			{File: "conn.c", Line: 42},
			{File: "main.c", Line: 10},
		}})
	p.Shutdown()

	lines := readLines(t, filepath.Join(cfg.Logs.Directory, "samp.log"))
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "invalid state (conn.c:42 -> main.c:10)"))

	aggLines := readLines(t, filepath.Join(cfg.Logs.Directory, core.WarningsFileName))
	require.Len(t, aggLines, 1)
	assert.True(t, strings.HasSuffix(aggLines[0], "invalid state (conn.c:42 -> main.c:10)"),
		"body must be shared verbatim across destinations")
}

func TestNestedSourceDelivery(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg)

	p.Submit(core.LogEntry{Source: "a/b/c", Severity: core.Info, Message: "first"})
	p.Submit(core.LogEntry{Source: "a/b/c", Severity: core.Info, Message: "second"})
	p.Shutdown()

	lines := readLines(t, filepath.Join(cfg.Logs.Directory, "a", "b", "c.log"))
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "second")
}

func TestDrainBeforeExit(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg)

	const m = 500
	for i := 0; i < m; i++ {
		p.Submit(core.LogEntry{Source: "drain", Severity: core.Info,
			Message: fmt.Sprintf("msg-%d", i)})
	}
	// Immediate shutdown must not truncate the queue
	p.Shutdown()

	lines := readLines(t, filepath.Join(cfg.Logs.Directory, "drain.log"))
	assert.Len(t, lines, m)
}

func TestConcurrentProducers(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg)

	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			source := fmt.Sprintf("producer-%d", i)
			for j := 0; j < perProducer; j++ {
				p.Submit(core.LogEntry{Source: source, Severity: core.Info,
					Message: fmt.Sprintf("msg-%d", j)})
			}
		}(i)
	}
	wg.Wait()
	p.Shutdown()

	total := 0
	for i := 0; i < producers; i++ {
		lines := readLines(t, filepath.Join(cfg.Logs.Directory, fmt.Sprintf("producer-%d.log", i)))
		total += len(lines)
		for j, line := range lines {
			// No byte-level interleaving and per-producer order intact
			assert.Regexp(t, `^\[.+\] \[INFO\] msg-\d+$`, line)
			assert.True(t, strings.HasSuffix(line, fmt.Sprintf("msg-%d", j)))
		}
	}
	assert.Equal(t, producers*perProducer, total)
}

func TestConsoleGating(t *testing.T) {
	t.Run("PlainBySeverity", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Console.Severities = []string{"WARNING"}

		var buf bytes.Buffer
		p := newTestPipeline(t, cfg, WithConsoleWriter(&buf))

		p.Submit(core.LogEntry{Source: "samp", Severity: core.Warning, Message: "careful"})
		p.Submit(core.LogEntry{Source: "samp", Severity: core.Info, Message: "quiet"})
		p.Shutdown()

		out := buf.String()
		assert.Contains(t, out, "[WARNING] careful")
		assert.NotContains(t, out, "quiet")
		assert.NotContains(t, out, "\x1b[", "colors disabled must mean no escape sequences")
	})

	t.Run("ColorizedBySource", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Console.Colors = true
		cfg.Console.Sources = []string{"net/http"}

		var buf bytes.Buffer
		p := newTestPipeline(t, cfg, WithConsoleWriter(&buf))

		p.Submit(core.LogEntry{Source: "net/http", Severity: core.Debug, Message: "echoed"})
		p.Submit(core.LogEntry{Source: "other", Severity: core.Debug, Message: "silent"})
		p.Shutdown()

		out := buf.String()
		assert.Contains(t, out, "echoed")
		assert.Contains(t, out, "\x1b[")
		assert.NotContains(t, out, "silent")
	})
}

func TestRegistrantTeardown(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg)

	first, err := NewLogger(p, "samp")
	require.NoError(t, err)
	second, err := NewLogger(p, "samp")
	require.NoError(t, err)
	other, err := NewLogger(p, "net/http")
	require.NoError(t, err)

	first.Info("from first")
	second.Info("from second")
	first.Close()

	// Same source still registered through the second handle
	other.Close()
	second.Error("last words")
	second.Close()

	// Teardown happened with the last unregister; everything drained
	lines := readLines(t, filepath.Join(cfg.Logs.Directory, "samp.log"))
	assert.Len(t, lines, 3)

	err = p.Register("late")
	assert.Error(t, err, "registering after teardown must fail")
}

func TestLoggerTraceDepth(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg)

	l, err := NewLogger(p, "traced", WithTraceDepth(2))
	require.NoError(t, err)
	l.Warning("with chain")
	l.Close()

	lines := readLines(t, filepath.Join(cfg.Logs.Directory, "traced.log"))
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "pipeline_test.go:", "call chain should name this test file")
	assert.Contains(t, lines[0], " -> ")
}

func TestSubmitCapturesTimeAtSubmission(t *testing.T) {
	cfg := testConfig(t)
	cfg.Logs.TimestampFormat = time.RFC3339
	p := newTestPipeline(t, cfg)

	pinned := time.Now().Add(-time.Minute)
	before := pinned.Format(time.RFC3339)
	p.Submit(core.LogEntry{
		Time:     pinned,
		Source:   "timed",
		Severity: core.Info,
		Message:  "pinned",
	})
	p.Shutdown()

	lines := readLines(t, filepath.Join(cfg.Logs.Directory, "timed.log"))
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], before[:16], "submission time must be preserved, not write time")
}
