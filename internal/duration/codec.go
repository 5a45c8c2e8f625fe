// Package duration converts between an hours/minutes/seconds triple and a
// total number of seconds, and provides the interchangeable pickers used to
// enter a duration.
package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MaxHours   = 23
	MaxMinutes = 59
	MaxSeconds = 59

	// MaxTotal is the largest total reachable from in-range wheel positions.
	MaxTotal = MaxHours*3600 + MaxMinutes*60 + MaxSeconds

	// DefaultSliderMax is the upper bound of the flat slider.
	DefaultSliderMax = 3600
)

// ErrInvalidDuration is returned by Parse for unparseable or negative input.
var ErrInvalidDuration = errors.New("invalid duration")

// Parts is a duration split into wheel positions.
type Parts struct {
	Hours   int
	Minutes int
	Seconds int
}

// Encode returns h*3600 + m*60 + s. Inputs are not clamped.
func Encode(hours, minutes, seconds int) int {
	return hours*3600 + minutes*60 + seconds
}

// Decompose splits total seconds into hours, minutes and seconds.
func Decompose(total int) Parts {
	return Parts{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// Total encodes p back into seconds.
func (p Parts) Total() int {
	return Encode(p.Hours, p.Minutes, p.Seconds)
}

// Valid reports whether every component is within its wheel range.
func (p Parts) Valid() bool {
	return inRange(p.Hours, MaxHours) && inRange(p.Minutes, MaxMinutes) && inRange(p.Seconds, MaxSeconds)
}

func (p Parts) String() string {
	return fmt.Sprintf("%02dh %02dm %02ds", p.Hours, p.Minutes, p.Seconds)
}

// FormatSeconds renders a total as "{n}s".
func FormatSeconds(total int) string {
	return strconv.Itoa(total) + "s"
}

// Parse accepts a bare number of seconds ("3723") or a Go duration string
// ("1h2m3s"). Fractions of a second are truncated.
func Parse(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("%w: %q is negative", ErrInvalidDuration, s)
		}
		return n, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidDuration, s)
	}
	return int(d / time.Second), nil
}

func inRange(v, max int) bool {
	return v >= 0 && v <= max
}
