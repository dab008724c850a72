// Package sink implements the file-backed log sink: rotation, retention,
// compression, and a choice of synchronous or asynchronous writer
// backends.
package sink

import (
	"strconv"
	"strings"
)

// Rotation selects when a file sink closes its current file and starts
// a new one.
type Rotation int

const (
	Never Rotation = iota
	Daily
	Hourly
)

const (
	kb = 1024
	mb = kb * 1024
	gb = mb * 1024
	tb = gb * 1024
)

// Config describes a file sink's behavior. MaxSize, RetentionDays and
// RetentionCount use 0 to mean "unset".
type Config struct {
	Path           string
	Rotation       Rotation
	MaxSize        uint64
	RetentionDays  uint32
	RetentionCount uint32
	Compression    bool
	Async          bool
}

// ParseSize parses strings like "500 MB", "1KB", "100" into a byte
// count. Returns false if the string can't be parsed.
func ParseSize(s string) (uint64, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))

	var numPart, unitPart strings.Builder
	for _, c := range s {
		if (c >= '0' && c <= '9') || c == '.' {
			numPart.WriteRune(c)
		} else {
			unitPart.WriteRune(c)
		}
	}

	num, err := strconv.ParseFloat(strings.TrimSpace(numPart.String()), 64)
	if err != nil {
		return 0, false
	}

	var multiplier uint64
	switch strings.TrimSpace(unitPart.String()) {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = kb
	case "M", "MB":
		multiplier = mb
	case "G", "GB":
		multiplier = gb
	case "T", "TB":
		multiplier = tb
	default:
		return 0, false
	}

	return uint64(num * float64(multiplier)), true
}

// ParseRotation parses a rotation string: "daily"/"1 day"/"1day",
// "hourly"/"1 hour"/"1hour", or a size string triggering size-based
// rotation with Never as the time policy.
func ParseRotation(s string) (Rotation, uint64) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "daily", "1 day", "1day":
		return Daily, 0
	case "hourly", "1 hour", "1hour":
		return Hourly, 0
	default:
		if size, ok := ParseSize(s); ok {
			return Never, size
		}
		return Never, 0
	}
}

// ParseRetention parses a retention string: a day count like "10 days",
// or a bare count like "5".
func ParseRetention(s string) (days uint32, count uint32) {
	s = strings.ToLower(strings.TrimSpace(s))

	if strings.Contains(s, "day") {
		var digits strings.Builder
		for _, c := range s {
			if c >= '0' && c <= '9' {
				digits.WriteRune(c)
			}
		}
		if n, err := strconv.ParseUint(digits.String(), 10, 32); err == nil {
			return uint32(n), 0
		}
	}

	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return 0, uint32(n)
	}

	return 0, 0
}
