package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the frame loop, in pipeline order.
const (
	PhaseInput  = "input"
	PhaseCursor = "cursor"
	PhaseOrbit  = "orbit"
	PhaseZoom   = "zoom"
	PhaseRender = "render"
)

var phaseOrder = []string{PhaseInput, PhaseCursor, PhaseOrbit, PhaseZoom, PhaseRender}

// PerfStats tracks execution time for each frame phase over a rolling
// window of samples.
type PerfStats struct {
	samples    map[string][]time.Duration
	maxSamples int
}

// NewPerfStats creates a new performance stats tracker.
func NewPerfStats() *PerfStats {
	return &PerfStats{
		samples:    make(map[string][]time.Duration),
		maxSamples: 120, // ~2 seconds of samples at 60fps
	}
}

// Record adds a duration sample for the named phase.
func (p *PerfStats) Record(name string, d time.Duration) {
	p.samples[name] = append(p.samples[name], d)
	if len(p.samples[name]) > p.maxSamples {
		p.samples[name] = p.samples[name][1:]
	}
}

// Avg returns the average duration for the named phase.
func (p *PerfStats) Avg(name string) time.Duration {
	s := p.samples[name]
	if len(s) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s {
		total += d
	}
	return total / time.Duration(len(s))
}

// LogSummary emits the per-phase averages via slog, in pipeline order.
func (p *PerfStats) LogSummary(tick int32) {
	var total time.Duration
	for _, name := range phaseOrder {
		total += p.Avg(name)
	}

	attrs := []any{"tick", tick, "total", total.Round(time.Microsecond).String()}
	for _, name := range phaseOrder {
		attrs = append(attrs, name, p.Avg(name).Round(time.Microsecond).String())
	}
	slog.Info("frame phases", attrs...)
}
