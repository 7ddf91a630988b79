package shift

import "errors"

var (
	ErrShiftNotFound    = errors.New("Shift not found")
	ErrInvalidShiftTime = errors.New("invalid shift time")
)
