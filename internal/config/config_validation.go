// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Courtlens

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Upstream.BaseURL == "" {
		return ErrInvalidUpstreamConfigs
	}

	if cfg.Upstream.RequestKeyHex == "" || cfg.Upstream.ResponseKeyHex == "" {
		return ErrMissingEnvelopeKeys
	}

	if cfg.Upstream.DeviceID == "" {
		return ErrInvalidUpstreamConfigs
	}

	if cfg.Upstream.RequestTimeout <= 0 {
		return ErrInvalidUpstreamConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
