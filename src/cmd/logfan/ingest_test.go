// FILE: logfan/src/cmd/logfan/ingest_test.go
package main

import (
	"testing"

	"logfan/src/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	t.Run("FullForm", func(t *testing.T) {
		e := parseLine("net/http|ERROR|connection refused")
		assert.Equal(t, "net/http", e.Source)
		assert.Equal(t, core.Error, e.Severity)
		assert.Equal(t, "connection refused", e.Message)
		assert.False(t, e.Time.IsZero())
	})

	t.Run("MessageKeepsSeparators", func(t *testing.T) {
		e := parseLine("db|WARNING|slow query: SELECT a|b FROM t")
		assert.Equal(t, core.Warning, e.Severity)
		assert.Equal(t, "slow query: SELECT a|b FROM t", e.Message)
	})

	t.Run("CaseInsensitiveSeverity", func(t *testing.T) {
		e := parseLine("samp|fatal|crashed")
		assert.Equal(t, core.Fatal, e.Severity)
	})

	t.Run("BareLine", func(t *testing.T) {
		e := parseLine("just some text")
		assert.Equal(t, "stdin", e.Source)
		assert.Equal(t, core.Info, e.Severity)
		assert.Equal(t, "just some text", e.Message)
	})

	t.Run("UnknownSeverityFallsBack", func(t *testing.T) {
		e := parseLine("samp|LOUD|what")
		assert.Equal(t, "stdin", e.Source)
		assert.Equal(t, core.Info, e.Severity)
		assert.Equal(t, "samp|LOUD|what", e.Message)
	})

	t.Run("EmptySourceFallsBack", func(t *testing.T) {
		e := parseLine("|ERROR|orphan")
		assert.Equal(t, "stdin", e.Source)
	})
}
