// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Courtlens

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// ecourts-gateway application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Upstream holds everything needed to talk to the e-courts backend:
	// base URL, envelope keys, device identity, and the per-call deadline.
	Upstream Upstream `envPrefix:"UPSTREAM_"`

	// Server holds network address and timeout settings for the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Upstream holds the deployment-fixed parameters of the e-courts backend.
//
// RequestKeyHex and ResponseKeyHex are the two AES envelope keys shared
// out-of-band with upstream. They are deployment configuration, not code:
// the cipher parameters must be confirmed against the live service before
// rollout.
type Upstream struct {
	// BaseURL is the root of the upstream web-service endpoints
	// (e.g. "https://app.ecourts.gov.in/ecourts_mobile").
	// Env: UPSTREAM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestKeyHex is the hex-encoded AES key under which outbound
	// envelopes (request params and the forwarded bearer token) are sealed.
	// Must be kept confidential.
	// Env: UPSTREAM_REQUEST_KEY
	RequestKeyHex string `env:"REQUEST_KEY"`

	// ResponseKeyHex is the hex-encoded AES key under which upstream seals
	// its response envelopes. Must be kept confidential.
	// Env: UPSTREAM_RESPONSE_KEY
	ResponseKeyHex string `env:"RESPONSE_KEY"`

	// DeviceID is the device identity sent in the handshake and cause-list
	// uid field as "<DeviceID>:in.gov.ecourts.eCourtsServices".
	// Env: UPSTREAM_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// HostHeader overrides the Host header on upstream calls. Upstream
	// routes on it, so it usually stays at the production default even when
	// BaseURL points at a staging mirror.
	// Env: UPSTREAM_HOST_HEADER
	HostHeader string `env:"HOST_HEADER" envDefault:"app.ecourts.gov.in"`

	// UserAgent is the User-Agent presented to upstream. The backend only
	// answers clients that look like its mobile app.
	// Env: UPSTREAM_USER_AGENT
	UserAgent string `env:"USER_AGENT" envDefault:"Dalvik/2.1.0 (Linux; U; Android 16; Pixel 7 Build/BP3A.250905.014)"`

	// RequestTimeout is the fixed deadline applied to every transport
	// session (e.g. "20s"). A call exceeding it surfaces as an
	// upstream-timeout error; there is no retry.
	// Env: UPSTREAM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"20s"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"0.0.0.0:8080"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
