package view

import (
	"strconv"
	"strings"
)

const (
	// MinDelta and MaxDelta bound every point-delta input
	MinDelta = 0
	MaxDelta = 9999

	// DefaultDelta is the initial value of a delta input
	DefaultDelta = 10
)

// ParseDelta normalizes a raw point-delta input: non-numeric input coerces
// to 0, and the result is clamped to [MinDelta, MaxDelta]. The clamped value
// is what gets sent; the add control sends +value, the subtract control
// sends -value.
func ParseDelta(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return clampDelta(n)
}

func clampDelta(n int) int {
	if n < MinDelta {
		return MinDelta
	}
	if n > MaxDelta {
		return MaxDelta
	}
	return n
}
