package markup

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrUnknownStyle indicates a style name that matches no decoration.
	ErrUnknownStyle = errors.New("unknown style")

	// ErrInvalidPattern indicates a malformed file glob.
	ErrInvalidPattern = errors.New("invalid glob pattern")
)
