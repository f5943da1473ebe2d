// FILE: logfan/src/internal/route/route.go
package route

import (
	"logfan/src/internal/core"
)

// AggregateFor maps a severity to its aggregate file name. Only WARNING,
// ERROR and FATAL entries reach an aggregate file.
func AggregateFor(sev core.Severity) (string, bool) {
	switch sev {
	case core.Warning:
		return core.WarningsFileName, true
	case core.Error:
		return core.ErrorsFileName, true
	case core.Fatal:
		return core.FatalsFileName, true
	default:
		return "", false
	}
}

// Router decides which entries additionally reach the console. The per-source
// file and aggregate destinations are unconditional and independent of these
// flags; a missing or failed destination never suppresses another.
type Router struct {
	sources    map[string]struct{}
	severities map[core.Severity]struct{}
}

// NewRouter builds a router from the configured console echo lists. Either
// list matching is sufficient to route an entry to the console.
func NewRouter(consoleSources []string, consoleSeverities []core.Severity) *Router {
	r := &Router{
		sources:    make(map[string]struct{}, len(consoleSources)),
		severities: make(map[core.Severity]struct{}, len(consoleSeverities)),
	}
	for _, s := range consoleSources {
		r.sources[s] = struct{}{}
	}
	for _, sev := range consoleSeverities {
		r.severities[sev] = struct{}{}
	}
	return r
}

// Console reports whether the entry must be echoed to the console.
func (r *Router) Console(e core.LogEntry) bool {
	if _, ok := r.sources[e.Source]; ok {
		return true
	}
	_, ok := r.severities[e.Severity]
	return ok
}
