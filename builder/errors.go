package builder

import "errors"

var (
	// ErrTooFewNodes indicates a topology parameter below the documented
	// minimum for that constructor.
	ErrTooFewNodes = errors.New("builder: too few nodes for topology")
	// ErrNilConstructor indicates a nil Constructor was passed to Build.
	ErrNilConstructor = errors.New("builder: nil constructor")
)
