package timecodec

import (
	"fmt"
	"testing"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"9:30", 570, false}, // single-digit hour accepted
		{"23:59", 1439, false},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
		{"12:3", 0, true},
		{"-1:30", 0, true},
	}

	for _, tt := range tests {
		got, err := TimeToMinutes(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("TimeToMinutes(%q): expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("TimeToMinutes(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1439, "23:59"},
		{1440, "00:00"}, // wraps at day boundary
		{1500, "01:00"},
		{-30, "23:30"}, // negative wraps into previous day
	}

	for _, tt := range tests {
		if got := MinutesToTime(tt.in); got != tt.want {
			t.Errorf("MinutesToTime(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Round-trip: every valid zero-padded HH:MM survives codec both ways.
func TestRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 7 {
			in := fmt.Sprintf("%02d:%02d", h, m)
			mins, err := TimeToMinutes(in)
			if err != nil {
				t.Fatalf("TimeToMinutes(%q): %v", in, err)
			}
			if out := MinutesToTime(mins); out != in {
				t.Errorf("round trip %q -> %d -> %q", in, mins, out)
			}
		}
	}
}

func TestPixelsToMinutes(t *testing.T) {
	tests := []struct {
		px         float64
		hourHeight float64
		snap       int
		want       int
	}{
		{0, 60, 30, 0},
		{60, 60, 30, 60},    // one hour row down
		{645, 60, 15, 645},  // exactly on a 15' boundary at 1px/min
		{652, 60, 15, 645},  // snaps down
		{653, 60, 15, 660},  // snaps up
		{37, 60, 30, 30},    // snaps down
		{100, 0, 15, 0},     // degenerate geometry
		{100, 60, 0, 0},     // degenerate snap
		{30, 120, 15, 15},   // denser rows: 30px = 15 minutes
	}

	for _, tt := range tests {
		got := PixelsToMinutes(tt.px, tt.hourHeight, tt.snap)
		if got != tt.want {
			t.Errorf("PixelsToMinutes(%v, %v, %d) = %d, want %d",
				tt.px, tt.hourHeight, tt.snap, got, tt.want)
		}
	}
}

func TestMinutesToPixels(t *testing.T) {
	if got := MinutesToPixels(90, 60); got != 90 {
		t.Errorf("MinutesToPixels(90, 60) = %v, want 90", got)
	}
	if got := MinutesToPixels(30, 120); got != 60 {
		t.Errorf("MinutesToPixels(30, 120) = %v, want 60", got)
	}
}

func TestRoundToNearestIncrement(t *testing.T) {
	tests := []struct {
		in   string
		inc  int
		want string
	}{
		{"09:07", 15, "09:00"},
		{"09:08", 15, "09:15"},
		{"23:53", 15, "00:00"}, // rolls hour and wraps the day
		{"10:45", 15, "10:45"},
		{"10:50", 30, "11:00"},
		{"9:07", 15, "09:00"}, // single-digit hour zero-padded on output
		{"garbage", 15, FallbackTime},
		{"", 15, FallbackTime},
		{"10:00", 0, FallbackTime},
	}

	for _, tt := range tests {
		if got := RoundToNearestIncrement(tt.in, tt.inc); got != tt.want {
			t.Errorf("RoundToNearestIncrement(%q, %d) = %q, want %q",
				tt.in, tt.inc, got, tt.want)
		}
	}
}

// Rounding an already-rounded time is a no-op.
func TestRoundToNearestIncrementIdempotent(t *testing.T) {
	inputs := []string{"09:07", "09:08", "23:53", "00:00", "13:37"}
	for _, in := range inputs {
		for _, inc := range []int{15, 30} {
			once := RoundToNearestIncrement(in, inc)
			twice := RoundToNearestIncrement(once, inc)
			if once != twice {
				t.Errorf("not idempotent for %q inc=%d: %q then %q", in, inc, once, twice)
			}
		}
	}
}

func TestClampMinutes(t *testing.T) {
	tests := []struct{ in, want int }{
		{-10, 0},
		{0, 0},
		{720, 720},
		{1439, 1439},
		{1440, 1439},
		{5000, 1439},
	}
	for _, tt := range tests {
		if got := ClampMinutes(tt.in); got != tt.want {
			t.Errorf("ClampMinutes(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
