// FILE: logfan/src/internal/console/console.go
package console

import (
	"bytes"
	"io"
	"os"
	"sync"

	"logfan/src/internal/core"
	"logfan/src/internal/format"

	"golang.org/x/term"
)

// ANSI 24-bit color sequences. Accent colors for timestamp and source are
// fixed; the severity field color follows the entry severity.
const (
	ansiReset = "\x1b[0m"

	colorTime   = "\x1b[38;2;255;255;150m" // pale yellow
	colorSource = "\x1b[38;2;244;164;96m"  // sandy brown

	colorDebug    = "\x1b[38;2;0;128;0m"                  // green
	colorInfo     = "\x1b[38;2;65;105;225m"               // royal blue
	colorWarning  = "\x1b[38;2;255;165;0m"                // orange
	colorError    = "\x1b[38;2;255;0;0m"                  // red
	colorFatal    = "\x1b[38;2;255;255;255;48;2;255;0;0m" // white on red
	colorVerbose  = "\x1b[38;2;245;245;245m"              // white smoke
	colorFallback = "\x1b[38;2;255;255;255m"
)

// SeverityColor returns the ANSI sequence for a severity field.
func SeverityColor(sev core.Severity) string {
	switch sev {
	case core.Debug:
		return colorDebug
	case core.Info:
		return colorInfo
	case core.Warning:
		return colorWarning
	case core.Error:
		return colorError
	case core.Fatal:
		return colorFatal
	case core.Verbose:
		return colorVerbose
	default:
		return colorFallback
	}
}

// Renderer writes routed entries to the terminal, plain or colorized.
// Only the pipeline worker calls Render, so no locking is needed beyond the
// process-wide capability negotiation.
type Renderer struct {
	colors bool
	out    io.Writer
}

// NewRenderer creates a console renderer writing to stdout.
func NewRenderer(colors bool) *Renderer {
	return &Renderer{colors: colors, out: os.Stdout}
}

// NewRendererWriter creates a renderer with an explicit writer, for tests.
func NewRendererWriter(colors bool, out io.Writer) *Renderer {
	return &Renderer{colors: colors, out: out}
}

// Render emits one line for the entry. The line is assembled first and
// written with a single Write call so concurrent readers never observe a
// partially written line.
func (r *Renderer) Render(timestamp, source string, sev core.Severity, body string) {
	if !r.colors {
		r.out.Write(format.ConsoleLine(timestamp, source, sev, body))
		return
	}

	ensureTerminalColors(r.out)

	var buf bytes.Buffer
	buf.WriteByte('[')
	buf.WriteString(colorTime)
	buf.WriteString(timestamp)
	buf.WriteString(ansiReset)
	buf.WriteString("] [")
	buf.WriteString(colorSource)
	buf.WriteString(source)
	buf.WriteString(ansiReset)
	buf.WriteString("] [")
	buf.WriteString(SeverityColor(sev))
	buf.WriteString(sev.String())
	buf.WriteString(ansiReset)
	buf.WriteString("] ")
	buf.WriteString(body)
	buf.WriteByte('\n')
	r.out.Write(buf.Bytes())
}

var negotiateOnce sync.Once

// ensureTerminalColors negotiates terminal capability at most once per
// process, lazily on the first colorized write. Failure is silently ignored:
// color codes are emitted regardless and the terminal may or may not honor
// them.
func ensureTerminalColors(out io.Writer) {
	negotiateOnce.Do(func() {
		f, ok := out.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return
		}
		_ = enableVirtualTerminal(f.Fd())
	})
}
