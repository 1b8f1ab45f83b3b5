package telemetry

import (
	"io"

	"github.com/robinvdvleuten/whylang/output"
)

// noOpCollector is a collector that does nothing.
// It provides zero overhead when telemetry is disabled.
type noOpCollector struct{}

// Start returns a no-op timer.
func (noOpCollector) Start(name string) Timer {
	return noOpTimer{}
}

// Report does nothing.
func (noOpCollector) Report(w io.Writer, styles *output.Styles) {}

// noOpTimer is a timer that does nothing.
type noOpTimer struct{}

// End does nothing.
func (noOpTimer) End() {}

// Measure does nothing.
func (noOpTimer) Measure(bytes, tokens int) {}

// Child returns a no-op timer.
func (noOpTimer) Child(name string) Timer {
	return noOpTimer{}
}
