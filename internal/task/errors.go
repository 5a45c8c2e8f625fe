package task

import "errors"

var (
	// ErrIndexOutOfRange is returned when a parent index does not address an
	// existing parent.
	ErrIndexOutOfRange = errors.New("parent index out of range")

	// ErrNegativeDuration is returned when a child duration is below zero.
	ErrNegativeDuration = errors.New("duration must not be negative")
)
