package telemetry

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// TimingCollector records a tree of timed operations. Timers started from
// the collector nest under whichever timer is currently open, so the
// report reflects the call structure.
type TimingCollector struct {
	mu      sync.Mutex
	roots   []*timerNode
	current *timerNode
}

type timerNode struct {
	name     string
	start    time.Time
	end      time.Time
	parent   *timerNode
	children []*timerNode
}

// NewTimingCollector creates an empty timing collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing an operation. With no timer open the operation
// becomes a new top-level entry; otherwise it nests under the currently
// open one.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	node := &timerNode{name: name, start: time.Now()}
	if c.current == nil {
		c.roots = append(c.roots, node)
	} else {
		node.parent = c.current
		c.current.children = append(c.current.children, node)
	}
	c.current = node

	return &timingTimer{collector: c, node: node}
}

// Report writes the timing tree to w, one line per operation, indented by
// nesting depth.
func (c *TimingCollector) Report(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, root := range c.roots {
		writeNode(w, root, 0)
	}
}

func writeNode(w io.Writer, node *timerNode, depth int) {
	end := node.end
	if end.IsZero() {
		end = time.Now()
	}
	_, _ = fmt.Fprintf(w, "%s%s: %s\n",
		strings.Repeat("  ", depth), node.name, end.Sub(node.start).Round(time.Microsecond))

	for _, child := range node.children {
		writeNode(w, child, depth+1)
	}
}

type timingTimer struct {
	collector *TimingCollector
	node      *timerNode
}

func (t *timingTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.node.end = time.Now()
	if t.collector.current == t.node {
		t.collector.current = t.node.parent
	}
}

func (t *timingTimer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	node := &timerNode{name: name, start: time.Now(), parent: t.node}
	t.node.children = append(t.node.children, node)

	return &timingTimer{collector: t.collector, node: node}
}
