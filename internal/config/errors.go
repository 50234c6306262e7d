package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidUpstreamConfigs indicates invalid upstream settings
	// (for example, missing base URL, device ID, or a non-positive call
	// deadline).
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")
	// ErrMissingEnvelopeKeys indicates that one or both AES envelope keys
	// are absent. The gateway cannot speak the upstream wire format without
	// them.
	ErrMissingEnvelopeKeys = errors.New("missing envelope keys")
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, empty listen address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
