package telemetry

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats aggregates one stats window of frame records.
type WindowStats struct {
	WindowEndTick int32   `csv:"window_end"`
	TimeSec       float64 `csv:"time_sec"`
	Frames        int     `csv:"frames"`

	// Frame time distribution, milliseconds.
	FrameMsMean float64 `csv:"frame_ms_mean"`
	FrameMsStd  float64 `csv:"frame_ms_std"`
	FrameMsP50  float64 `csv:"frame_ms_p50"`
	FrameMsP90  float64 `csv:"frame_ms_p90"`

	// Camera motion over the window.
	PanDistance float64 `csv:"pan_distance"` // total focus travel, world units
	YawTravel   float64 `csv:"yaw_travel"`   // total |yaw delta|, radians
	PitchTravel float64 `csv:"pitch_travel"` // total |pitch delta|, radians

	// Invariant watchdog: worst orbit-distance drift seen in the window.
	OrbitDriftMax float64 `csv:"orbit_drift_max"`
}

// ComputeWindowStats reduces a window of frames to summary statistics.
// Returns a zero-valued struct when the window is empty.
func ComputeWindowStats(frames []FrameRecord) WindowStats {
	n := len(frames)
	if n == 0 {
		return WindowStats{}
	}

	ws := WindowStats{
		WindowEndTick: frames[n-1].Tick,
		TimeSec:       frames[n-1].TimeSec,
		Frames:        n,
	}

	times := make([]float64, n)
	for i, f := range frames {
		times[i] = f.FrameMs
		if f.OrbitDrift > ws.OrbitDriftMax {
			ws.OrbitDriftMax = f.OrbitDrift
		}
	}

	ws.FrameMsMean = stat.Mean(times, nil)
	if n > 1 {
		ws.FrameMsStd = stat.StdDev(times, nil)
	}
	sort.Float64s(times)
	ws.FrameMsP50 = stat.Quantile(0.5, stat.Empirical, times, nil)
	ws.FrameMsP90 = stat.Quantile(0.9, stat.Empirical, times, nil)

	for i := 1; i < n; i++ {
		ws.PanDistance += float64(frames[i].focus().Sub(frames[i-1].focus()).Len())
		ws.YawTravel += math.Abs(angleDelta(frames[i].Yaw, frames[i-1].Yaw))
		ws.PitchTravel += math.Abs(frames[i].Pitch - frames[i-1].Pitch)
	}

	return ws
}

// angleDelta returns the shortest signed difference between two angles.
func angleDelta(a, b float64) float64 {
	d := a - b
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
