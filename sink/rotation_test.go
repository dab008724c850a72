package sink

import (
	"testing"
	"time"
)

func TestNextRotationBoundaryDaily(t *testing.T) {
	from := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)
	got := nextRotationBoundary(Daily, from)
	want := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNextRotationBoundaryHourly(t *testing.T) {
	from := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)
	got := nextRotationBoundary(Hourly, from)
	want := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNextRotationBoundaryHourlyWrapsToMidnight(t *testing.T) {
	from := time.Date(2024, 3, 15, 23, 45, 0, 0, time.UTC)
	got := nextRotationBoundary(Hourly, from)
	want := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNextRotationBoundaryNever(t *testing.T) {
	got := nextRotationBoundary(Never, time.Now())
	if !got.IsZero() {
		t.Errorf("got %v, want zero time", got)
	}
}
