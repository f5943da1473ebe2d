// FILE: logfan/src/cmd/logfan/ingest.go
package main

import (
	"bufio"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"logfan/src/internal/core"
	"logfan/src/internal/pipeline"

	"github.com/lixenwraith/log"
)

// Reads log lines from standard input and submits them to the pipeline.
// Line format: source|SEVERITY|message. Bare lines are submitted as
// stdin/INFO.
type StdinIngester struct {
	pipeline     *pipeline.Pipeline
	logger       *log.Logger
	totalEntries atomic.Uint64
}

func NewStdinIngester(p *pipeline.Pipeline, logger *log.Logger) *StdinIngester {
	return &StdinIngester{
		pipeline: p,
		logger:   logger,
	}
}

// Run consumes stdin until EOF. It blocks; callers run it in a goroutine.
func (s *StdinIngester) Run() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		s.pipeline.Submit(parseLine(line))
		s.totalEntries.Add(1)
	}

	if err := scanner.Err(); err != nil {
		s.logger.Error("msg", "Scanner error reading stdin",
			"component", "stdin_ingester",
			"error", err)
	}

	s.logger.Info("msg", "Stdin drained",
		"component", "stdin_ingester",
		"total_entries", s.totalEntries.Load())
}

// parseLine splits source|SEVERITY|message. Anything that does not match
// becomes a plain INFO entry under the stdin source.
func parseLine(line string) core.LogEntry {
	parts := strings.SplitN(line, "|", 3)
	if len(parts) == 3 && parts[0] != "" {
		if sev, err := core.ParseSeverity(parts[1]); err == nil {
			return core.LogEntry{
				Time:     time.Now(),
				Source:   strings.TrimSpace(parts[0]),
				Severity: sev,
				Message:  parts[2],
			}
		}
	}

	return core.LogEntry{
		Time:     time.Now(),
		Source:   "stdin",
		Severity: core.Info,
		Message:  line,
	}
}
