package powerinfo

import "errors"

var (
	// ErrNoBattery indicates no qualifying system battery was found.
	ErrNoBattery = errors.New("no battery device found")
)
