// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Courtlens

// Package adapter holds the outbound side of the gateway: an isolated
// per-call HTTP session factory and the catalogue of upstream endpoints.
// Nothing in this package interprets ciphertext; it moves opaque envelope
// strings and classifies transport failures.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/go-resty/resty/v2"

	"github.com/courtlens/ecourts-gateway/internal/config"
	"github.com/courtlens/ecourts-gateway/internal/logger"
	"github.com/courtlens/ecourts-gateway/internal/metrics"
	"github.com/courtlens/ecourts-gateway/internal/utils"
)

// SessionFunc runs inside one isolated upstream session. The resty client it
// receives is created for this call alone and is torn down when the function
// returns; it must not be retained.
type SessionFunc func(ctx context.Context, session *resty.Client) error

// Transport opens one independent upstream session per logical exchange.
// Sessions never outlive the call that opened them and are never shared, so
// concurrent gateway operations cannot observe each other's connection state.
type Transport struct {
	cfg    config.Upstream
	log    *logger.Logger
	active atomic.Int64
}

func NewTransport(cfg config.Upstream, log *logger.Logger) *Transport {
	return &Transport{cfg: cfg, log: log}
}

// WithSession opens a fresh session bounded by the configured upstream
// timeout, runs fn on it and guarantees release of the session's connections
// afterwards, whether fn succeeded, failed or panicked. The returned error is
// fn's error with transport-level failures classified into the adapter
// sentinels.
func (t *Transport) WithSession(ctx context.Context, fn SessionFunc) error {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.RequestTimeout)
	defer cancel()

	session := utils.NewHTTPClient()
	session.SetBaseURL(strings.TrimRight(t.cfg.BaseURL, "/")).
		SetTimeout(t.cfg.RequestTimeout).
		SetHeader("Host", t.cfg.HostHeader).
		SetHeader("User-Agent", t.cfg.UserAgent).
		SetHeader("Accept", "application/json")

	t.active.Add(1)
	metrics.SessionOpened()
	t.log.Debug().Int64("active_sessions", t.active.Load()).Msg("upstream session opened")
	defer func() {
		session.GetClient().CloseIdleConnections()
		t.active.Add(-1)
		metrics.SessionClosed()
		t.log.Debug().Int64("active_sessions", t.active.Load()).Msg("upstream session released")
	}()

	return classifyTransportError(fn(ctx, session.Client))
}

// ActiveSessions reports the number of sessions currently open. It exists so
// release behaviour is observable; steady state is zero.
func (t *Transport) ActiveSessions() int64 {
	return t.active.Load()
}

// classifyTransportError folds connection-level failures into the adapter
// sentinels. Errors already carrying a sentinel pass through untouched, as do
// errors that did not originate in the transport.
func classifyTransportError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUpstreamRejected) || errors.Is(err, ErrUpstreamStatus) ||
		errors.Is(err, ErrUpstreamTimeout) || errors.Is(err, ErrUpstreamUnavailable) {
		return err
	}

	// A caller hanging up is not an upstream failure; leave it unclassified.
	if errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrUpstreamTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %s", ErrUpstreamTimeout, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err)
	}

	return err
}
