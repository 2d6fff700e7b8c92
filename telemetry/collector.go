package telemetry

import "log/slog"

// Collector buffers frame records into fixed-duration windows, emitting
// WindowStats (and optionally the raw frames) at each window boundary.
type Collector struct {
	windowTicks int32
	logStats    bool
	output      *OutputManager

	frames          []FrameRecord
	windowStartTick int32
}

// NewCollector creates a frame collector.
// windowSec: stats window length in seconds; targetFPS converts it to ticks.
// output may be nil (no CSV persistence); logStats controls slog emission.
func NewCollector(windowSec float64, targetFPS int, logStats bool, output *OutputManager) *Collector {
	ticks := int32(windowSec * float64(targetFPS))
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{
		windowTicks: ticks,
		logStats:    logStats,
		output:      output,
	}
}

// Record adds one frame and flushes the window when it is full.
func (c *Collector) Record(f FrameRecord) {
	if c == nil {
		return
	}

	if len(c.frames) == 0 {
		c.windowStartTick = f.Tick
	}
	c.frames = append(c.frames, f)
	if err := c.output.WriteFrame(f); err != nil {
		slog.Error("writing frame record", "error", err)
	}

	if f.Tick-c.windowStartTick+1 >= c.windowTicks {
		c.flush()
	}
}

// Flush closes out a partial window, e.g. on shutdown.
func (c *Collector) Flush() {
	if c == nil || len(c.frames) == 0 {
		return
	}
	c.flush()
}

func (c *Collector) flush() {
	ws := ComputeWindowStats(c.frames)

	if c.logStats {
		slog.Info("camera window",
			"window_end", ws.WindowEndTick,
			"frames", ws.Frames,
			"frame_ms_mean", ws.FrameMsMean,
			"frame_ms_p90", ws.FrameMsP90,
			"pan_distance", ws.PanDistance,
			"yaw_travel", ws.YawTravel,
			"orbit_drift_max", ws.OrbitDriftMax,
		)
	}
	if err := c.output.WriteWindow(ws); err != nil {
		slog.Error("writing window stats", "error", err)
	}

	c.frames = c.frames[:0]
}
