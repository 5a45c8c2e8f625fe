package duration

import (
	"errors"
	"fmt"
)

// Picker names.
const (
	PickerWheel  = "wheel"
	PickerSlider = "slider"
)

// ErrUnknownPicker is returned by NewPicker for an unrecognised kind.
var ErrUnknownPicker = errors.New("unknown picker")

// Picker is an input adapter that produces a total number of seconds.
// Wheel and Slider are interchangeable behind this contract.
type Picker interface {
	Name() string
	// Seconds returns the currently selected total.
	Seconds() int
	// Set moves the picker to total, clamped to what the picker can show.
	Set(total int)
	// Adjust moves the focused component by delta steps.
	Adjust(delta int)
	// Focus moves focus between components; a no-op for single-component pickers.
	Focus(delta int)
	// Display renders the current selection.
	Display() string
}

// SliderOptions configures the flat slider.
type SliderOptions struct {
	MaxSeconds  int
	StepSeconds int
}

// NewPicker returns the picker registered under kind.
func NewPicker(kind string, opts SliderOptions) (Picker, error) {
	switch kind {
	case PickerWheel, "":
		return NewWheel(), nil
	case PickerSlider:
		return NewSlider(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPicker, kind)
	}
}

// Wheel is three bounded wheels: hours 0..23, minutes and seconds 0..59.
// Wheels wrap around at either end.
type Wheel struct {
	parts Parts
	focus int
}

// Wheel components, in focus order.
const (
	WheelHours = iota
	WheelMinutes
	WheelSeconds
	wheelCount
)

func NewWheel() *Wheel {
	return &Wheel{}
}

func (w *Wheel) Name() string { return PickerWheel }

func (w *Wheel) Seconds() int { return w.parts.Total() }

// Parts returns the current wheel positions.
func (w *Wheel) Parts() Parts { return w.parts }

// Focused returns the index of the focused wheel.
func (w *Wheel) Focused() int { return w.focus }

func (w *Wheel) Set(total int) {
	w.parts = Decompose(clamp(total, 0, MaxTotal))
}

func (w *Wheel) Adjust(delta int) {
	switch w.focus {
	case WheelHours:
		w.parts.Hours = wrap(w.parts.Hours+delta, MaxHours+1)
	case WheelMinutes:
		w.parts.Minutes = wrap(w.parts.Minutes+delta, MaxMinutes+1)
	case WheelSeconds:
		w.parts.Seconds = wrap(w.parts.Seconds+delta, MaxSeconds+1)
	}
}

func (w *Wheel) Focus(delta int) {
	w.focus = wrap(w.focus+delta, wheelCount)
}

func (w *Wheel) Display() string {
	return w.parts.String()
}

// Window returns the values shown above and below the selection of wheel i.
func (w *Wheel) Window(i int) (prev, cur, next int) {
	var v, n int
	switch i {
	case WheelHours:
		v, n = w.parts.Hours, MaxHours+1
	case WheelMinutes:
		v, n = w.parts.Minutes, MaxMinutes+1
	default:
		v, n = w.parts.Seconds, MaxSeconds+1
	}
	return wrap(v-1, n), v, wrap(v+1, n)
}

// Slider is a flat range 0..MaxSeconds moved in fixed steps.
type Slider struct {
	value int
	max   int
	step  int
}

func NewSlider(opts SliderOptions) *Slider {
	s := &Slider{max: opts.MaxSeconds, step: opts.StepSeconds}
	if s.max <= 0 {
		s.max = DefaultSliderMax
	}
	if s.step <= 0 {
		s.step = 1
	}
	return s
}

func (s *Slider) Name() string { return PickerSlider }

func (s *Slider) Seconds() int { return s.value }

// Max returns the upper bound of the slider.
func (s *Slider) Max() int { return s.max }

// Fraction returns the position as a value in [0, 1].
func (s *Slider) Fraction() float64 {
	return float64(s.value) / float64(s.max)
}

func (s *Slider) Set(total int) {
	s.value = clamp(total, 0, s.max)
}

func (s *Slider) Adjust(delta int) {
	s.value = clamp(s.value+delta*s.step, 0, s.max)
}

func (s *Slider) Focus(int) {}

func (s *Slider) Display() string {
	return FormatSeconds(s.value)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
