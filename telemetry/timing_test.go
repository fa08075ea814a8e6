package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTimingCollectorReport(t *testing.T) {
	collector := NewTimingCollector()

	parse := collector.Start("parse")
	scan := parse.Child("scan")
	scan.End()
	resolve := parse.Child("resolve")
	resolve.End()
	parse.End()

	var buf bytes.Buffer
	collector.Report(&buf)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, 3, len(lines))

	assert.True(t, strings.HasPrefix(lines[0], "parse:"))
	assert.True(t, strings.HasPrefix(lines[1], "  scan:"))
	assert.True(t, strings.HasPrefix(lines[2], "  resolve:"))
}

func TestTimingCollectorNesting(t *testing.T) {
	collector := NewTimingCollector()

	// Start without an explicit Child still nests under the running timer.
	outer := collector.Start("outer")
	inner := collector.Start("inner")
	inner.End()
	outer.End()

	sibling := collector.Start("sibling")
	sibling.End()

	var buf bytes.Buffer
	collector.Report(&buf)

	out := buf.String()
	assert.True(t, strings.Contains(out, "outer:"))
	assert.True(t, strings.Contains(out, "  inner:"))
	assert.True(t, strings.Contains(out, "\nsibling:"))
}

func TestFromContextDefaultsToNoOp(t *testing.T) {
	collector := FromContext(context.Background())
	assert.True(t, collector != nil)

	// The no-op collector must be safe to use.
	timer := collector.Start("anything")
	timer.Child("nested").End()
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf)
	assert.Equal(t, 0, buf.Len())
}

func TestWithCollectorRoundTrip(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	got := FromContext(ctx)
	timer := got.Start("op")
	timer.End()

	var buf bytes.Buffer
	got.Report(&buf)
	assert.True(t, strings.Contains(buf.String(), "op:"))
}
