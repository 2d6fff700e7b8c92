package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNilOutputManagerIsSafe(t *testing.T) {
	var om *OutputManager

	if err := om.WriteFrame(FrameRecord{Tick: 1}); err != nil {
		t.Errorf("nil manager WriteFrame: %v", err)
	}
	if err := om.WriteWindow(WindowStats{}); err != nil {
		t.Errorf("nil manager WriteWindow: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil manager Close: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("nil manager Dir() = %q, want empty", om.Dir())
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	frames := []FrameRecord{
		{Tick: 1, Projection: "perspective", FrameMs: 16.0},
		{Tick: 2, Projection: "perspective", FrameMs: 17.0},
	}
	for _, f := range frames {
		if err := om.WriteFrame(f); err != nil {
			t.Fatalf("WriteFrame: %v", err)
		}
	}
	if err := om.WriteWindow(ComputeWindowStats(frames)); err != nil {
		t.Fatalf("WriteWindow: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "camera.csv"))
	if err != nil {
		t.Fatalf("reading camera.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("camera.csv has %d lines, want header + 2 records", len(lines))
	}
	if !strings.Contains(lines[0], "tick") || !strings.Contains(lines[0], "orbit_drift") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	// Header must appear exactly once.
	if strings.Contains(lines[1], "tick") || strings.Contains(lines[2], "tick") {
		t.Error("header repeated in record lines")
	}

	windows, err := os.ReadFile(filepath.Join(dir, "windows.csv"))
	if err != nil {
		t.Fatalf("reading windows.csv: %v", err)
	}
	if !strings.Contains(string(windows), "frame_ms_mean") {
		t.Errorf("windows.csv missing stats header: %q", string(windows))
	}
}

func TestCollectorFlushesFullWindows(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	// 1-second window at 4 fps = 4 ticks per window.
	c := NewCollector(1.0, 4, false, om)
	for tick := int32(0); tick < 8; tick++ {
		c.Record(FrameRecord{Tick: tick, FrameMs: 10})
	}
	om.Close()

	data, err := os.ReadFile(filepath.Join(dir, "windows.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("windows.csv has %d lines, want header + 2 windows", len(lines))
	}
}
