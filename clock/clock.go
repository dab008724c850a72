// Package clock tracks the process-wide elapsed-time origin shared by the
// format engine and record views.
package clock

import (
	"fmt"
	"sync"
	"time"
)

var (
	startOnce sync.Once
	startAt   time.Time
)

// Start returns the process-wide start instant, initializing it lazily
// and idempotently on first use.
func Start() time.Time {
	startOnce.Do(func() {
		startAt = time.Now()
	})
	return startAt
}

// FormatElapsed renders the duration between start and now as
// "HH:MM:SS.mmm", clamping negative durations (e.g. from a clock
// adjustment) to zero.
func FormatElapsed(start, now time.Time) string {
	d := now.Sub(start)
	if d < 0 {
		d = 0
	}
	totalMillis := d.Milliseconds()
	millis := totalMillis % 1000
	totalSecs := totalMillis / 1000
	hours := totalSecs / 3600
	minutes := (totalSecs % 3600) / 60
	seconds := totalSecs % 60
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
