package touchcal

import "errors"

var (
	// ErrNotRoot is returned when not running with an effective UID of 0.
	ErrNotRoot = errors.New("must be run as root")

	// ErrRotationUnknown is returned when no rotation was given and none could be detected.
	ErrRotationUnknown = errors.New("could not detect screen rotation")

	// ErrUnsupportedRotation is returned when the rotation is not 0, 90, 180 or 270.
	ErrUnsupportedRotation = errors.New("unsupported rotation")

	// ErrWriteFailed is returned when at least one calibration file could not be written.
	ErrWriteFailed = errors.New("failed to update calibration")
)
