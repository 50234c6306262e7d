package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation wraps every rule violation so callers can classify the
	// failure without inspecting validator internals.
	ErrValidation = errors.New("request validation failed")
)
