// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Courtlens

// Package apperrors defines the closed error taxonomy of the gateway.
//
// Every failure that leaves the core — whether it originated in parameter
// validation, the envelope codec, the upstream transport, or upstream
// semantics — is represented by exactly one [*Error] carrying a [Kind] from
// the fixed set below. Callers outside the core (the HTTP route layer) only
// ever see the kind, the message, and the optional details; internal error
// types never cross that boundary.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind is the tag of a normalized gateway error. The set is closed: no other
// values are ever produced.
type Kind string

const (
	// KindInvalidArgument — structural validation of caller parameters
	// failed before any network call was made.
	KindInvalidArgument Kind = "invalid_argument"

	// KindAuthFailure — the caller-supplied token is missing or unparseable.
	KindAuthFailure Kind = "auth_failure"

	// KindUpstreamAuthFailure — upstream rejected the token or handshake.
	KindUpstreamAuthFailure Kind = "upstream_auth_failure"

	// KindNotFound — the query was well-formed but upstream has no matching
	// data.
	KindNotFound Kind = "not_found"

	// KindConflict — upstream reported a state conflict.
	KindConflict Kind = "conflict"

	// KindMalformedPayload — an encrypted envelope could not be parsed into
	// its IV and ciphertext parts.
	KindMalformedPayload Kind = "malformed_payload"

	// KindDecryptionFailure — the ciphertext failed the cipher's
	// integrity/format check.
	KindDecryptionFailure Kind = "decryption_failure"

	// KindUpstreamTimeout — the per-call deadline expired waiting on
	// upstream.
	KindUpstreamTimeout Kind = "upstream_timeout"

	// KindUpstreamUnavailable — upstream could not be reached at all.
	KindUpstreamUnavailable Kind = "upstream_unavailable"

	// KindInternal — any other unexpected failure.
	KindInternal Kind = "internal_error"
)

// Error is the normalized error value handed to consumers of the core.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New returns a normalized error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf returns a normalized error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithDetails attaches structured details and returns the receiver for
// chaining.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// KindOf extracts the kind from err. Errors that are not (or do not wrap) an
// [*Error] report [KindInternal] — an unclassified failure is by definition
// unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// AsError returns the [*Error] wrapped in err, or a [KindInternal] wrapper
// around err's message if there is none. It never returns nil for a non-nil
// err, so callers can rely on every propagated failure carrying a kind.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindInternal, Message: err.Error()}
}
