// Package timecodec converts between "HH:MM" wall-clock strings,
// minute offsets since midnight, and pixel offsets on a vertical
// day timeline, snapping to a configurable minute granularity.
package timecodec

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when a time string is not "HH:MM".
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// FallbackTime is returned by RoundToNearestIncrement for malformed
// input so callers rendering a confirmation view never see garbage.
const FallbackTime = "12:00"

// MinutesPerDay is the number of minutes on the timeline.
const MinutesPerDay = 24 * 60

var timePattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// TimeToMinutes converts an "HH:MM" string into minutes since midnight.
// Single-digit hours are accepted. Minutes above 59 are rejected.
func TimeToMinutes(t string) (int, error) {
	if !timePattern.MatchString(t) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	parts := strings.SplitN(t, ":", 2)
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	return hours*60 + minutes, nil
}

// MinutesToTime converts minutes since midnight into a zero-padded
// "HH:MM" string. Hours wrap modulo 24, so crossing the day boundary
// rolls over instead of producing "24:xx". Negative offsets wrap back
// into the previous day.
func MinutesToTime(minutes int) string {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// PixelsToMinutes maps a vertical pixel offset within the timeline to a
// minute offset, snapped to snapMinutes. hourHeightPx is the rendered
// height of one hour row.
func PixelsToMinutes(px, hourHeightPx float64, snapMinutes int) int {
	if hourHeightPx <= 0 || snapMinutes <= 0 {
		return 0
	}
	raw := math.Round(px / hourHeightPx * 60)
	return int(math.Round(raw/float64(snapMinutes))) * snapMinutes
}

// MinutesToPixels is the rendering inverse of PixelsToMinutes: it maps
// a minute offset (or a duration) to a pixel offset (or height).
func MinutesToPixels(minutes int, hourHeightPx float64) float64 {
	return float64(minutes) / 60 * hourHeightPx
}

// RoundToNearestIncrement rounds an "HH:MM" time to the nearest multiple
// of incrementMinutes. A minute value of 60 after rounding rolls into
// the next hour, wrapping modulo 24 at the day boundary. Malformed input
// falls back to FallbackTime rather than propagating an error, so the
// confirmation view always has something renderable.
func RoundToNearestIncrement(t string, incrementMinutes int) string {
	total, err := TimeToMinutes(t)
	if err != nil || incrementMinutes <= 0 {
		return FallbackTime
	}

	hours := total / 60
	mins := total % 60

	rounded := int(math.Round(float64(mins)/float64(incrementMinutes))) * incrementMinutes
	if rounded == 60 {
		hours++
		rounded = 0
	}

	return MinutesToTime(hours*60 + rounded)
}

// ClampMinutes clamps a minute offset to the renderable day range
// [0, 23:59].
func ClampMinutes(minutes int) int {
	if minutes < 0 {
		return 0
	}
	if minutes > MinutesPerDay-1 {
		return MinutesPerDay - 1
	}
	return minutes
}
