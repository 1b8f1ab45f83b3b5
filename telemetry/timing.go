package telemetry

import (
	"io"
	"sync"
	"time"

	"github.com/robinvdvleuten/whylang/output"
)

// TimingCollector records timed passes over source text. Every call to Start
// opens a new top-level pass; nesting happens through Timer.Child, usually
// by way of WithRootTimer and StartTimer.
type TimingCollector struct {
	mu     sync.Mutex
	passes []*pass
}

// pass is one timed operation together with the input it handled.
type pass struct {
	name   string
	start  time.Time
	end    time.Time
	bytes  int
	tokens int
	nested []*pass
}

// elapsed returns the duration of p. Passes still running are measured up
// to now.
func (p *pass) elapsed() time.Duration {
	if p.end.IsZero() {
		return time.Since(p.start)
	}
	return p.end.Sub(p.start)
}

// NewTimingCollector creates an empty collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start opens a top-level pass.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := &pass{name: name, start: time.Now()}
	c.passes = append(c.passes, p)
	return &passTimer{collector: c, pass: p}
}

// Report writes every top-level pass and its nested passes to w.
func (c *TimingCollector) Report(w io.Writer, styles *output.Styles) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.passes {
		formatTimingTree(w, p, styles)
	}
}

// passTimer is the Timer handed out by a TimingCollector.
type passTimer struct {
	collector *TimingCollector
	pass      *pass
}

// End closes the pass. Only the first call has an effect.
func (t *passTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	if t.pass.end.IsZero() {
		t.pass.end = time.Now()
	}
}

// Child opens a pass nested under t.
func (t *passTimer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	p := &pass{name: name, start: time.Now()}
	t.pass.nested = append(t.pass.nested, p)
	return &passTimer{collector: t.collector, pass: p}
}

// Measure adds to the bytes and tokens handled by the pass.
func (t *passTimer) Measure(bytes, tokens int) {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.pass.bytes += bytes
	t.pass.tokens += tokens
}
