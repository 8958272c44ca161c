package crescendo

import "errors"

var (
	// ErrInvalidConfig is returned by New and Config.Validate for any
	// configuration that cannot be rendered.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidKey is returned for a pitch class outside C, C#, ..., B.
	ErrInvalidKey = errors.New("invalid key")

	// ErrDegenerateBuffer is returned when a mix is silent and so cannot be
	// normalized.
	ErrDegenerateBuffer = errors.New("degenerate buffer")
)
