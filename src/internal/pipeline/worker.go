// FILE: logfan/src/internal/pipeline/worker.go
package pipeline

import (
	"logfan/src/internal/core"
	"logfan/src/internal/format"
	"logfan/src/internal/route"
)

// run is the single consumer loop. Next holds the queue lock only while
// popping, so every destination write below happens with the queue unlocked
// and producers keep submitting during slow I/O. The loop exits only when
// the queue is empty and stopped.
func (p *Pipeline) run() {
	defer p.wg.Done()

	for {
		e, ok := p.queue.Next()
		if !ok {
			return
		}
		p.process(e)
	}
}

// process fans one entry out to its destinations. Formatting happens once;
// the body string is shared verbatim by every destination. Destination
// decisions are independent: a failed or absent destination never suppresses
// another.
func (p *Pipeline) process(e core.LogEntry) {
	ts := p.formatter.Timestamp(e.Time)
	body := p.formatter.Body(e)

	p.files.WriteSource(e.Source, format.SourceLine(ts, e.Severity, body))

	if _, ok := route.AggregateFor(e.Severity); ok {
		p.files.WriteAggregate(e.Severity, format.AggregateLine(ts, e.Source, body))
	}

	if p.router.Console(e) {
		p.console.Render(ts, e.Source, e.Severity, body)
		p.totalConsole.Add(1)
	}
}
