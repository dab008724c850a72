package clock

import (
	"testing"
	"time"
)

func TestFormatElapsedClampsNegative(t *testing.T) {
	start := time.Now()
	now := start.Add(-time.Second)
	if got := FormatElapsed(start, now); got != "00:00:00.000" {
		t.Errorf("FormatElapsed(start, start-1s) = %q, want 00:00:00.000", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start.Add(1*time.Hour + 2*time.Minute + 3*time.Second + 456*time.Millisecond)
	if got := FormatElapsed(start, now); got != "01:02:03.456" {
		t.Errorf("FormatElapsed = %q, want 01:02:03.456", got)
	}
}

func TestStartIdempotent(t *testing.T) {
	a := Start()
	b := Start()
	if !a.Equal(b) {
		t.Errorf("Start() returned different instants: %v != %v", a, b)
	}
}
