package sink

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"100", 100, true},
		{"100B", 100, true},
		{"1 KB", kb, true},
		{"1KB", kb, true},
		{"500 MB", 500 * mb, true},
		{"1 GB", gb, true},
		{"bogus", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseSize(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseSize(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseRotation(t *testing.T) {
	tests := []struct {
		in       string
		wantRot  Rotation
		wantSize uint64
	}{
		{"daily", Daily, 0},
		{"hourly", Hourly, 0},
		{"500 MB", Never, 500 * mb},
		{"garbage", Never, 0},
	}
	for _, tt := range tests {
		rot, size := ParseRotation(tt.in)
		if rot != tt.wantRot || size != tt.wantSize {
			t.Errorf("ParseRotation(%q) = (%v, %d), want (%v, %d)", tt.in, rot, size, tt.wantRot, tt.wantSize)
		}
	}
}

func TestParseRetention(t *testing.T) {
	days, count := ParseRetention("10 days")
	if days != 10 || count != 0 {
		t.Errorf("ParseRetention(10 days) = (%d, %d), want (10, 0)", days, count)
	}
	days, count = ParseRetention("5")
	if days != 0 || count != 5 {
		t.Errorf("ParseRetention(5) = (%d, %d), want (0, 5)", days, count)
	}
}
