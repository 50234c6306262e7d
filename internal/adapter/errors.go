package adapter

import "errors"

// Sentinel errors produced by the transport layer. Callers match them with
// [errors.Is]; the service layer's translator is the only place they are
// converted into the public error taxonomy.
var (
	// ErrUpstreamTimeout indicates the per-session deadline expired before
	// upstream answered.
	ErrUpstreamTimeout = errors.New("upstream timeout")

	// ErrUpstreamUnavailable indicates a connection-level failure reaching
	// upstream (refused, DNS, reset).
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamRejected indicates upstream answered 401 or 403 — the
	// forwarded token or handshake was not accepted.
	ErrUpstreamRejected = errors.New("upstream rejected request")

	// ErrUpstreamStatus indicates any other non-200 upstream status.
	ErrUpstreamStatus = errors.New("unexpected upstream status")

	// ErrNoData indicates upstream answered 200 with a plain JSON body
	// instead of an encrypted envelope, which is how it signals an empty
	// result set.
	ErrNoData = errors.New("upstream returned no data")
)
