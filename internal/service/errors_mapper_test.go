package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtlens/ecourts-gateway/internal/adapter"
	"github.com/courtlens/ecourts-gateway/internal/apperrors"
	"github.com/courtlens/ecourts-gateway/internal/crypto"
	"github.com/courtlens/ecourts-gateway/internal/validators"
)

func TestNormalizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.Kind
	}{
		{name: "validation", err: fmt.Errorf("%w: bad date", validators.ErrValidation), want: apperrors.KindInvalidArgument},
		{name: "unsupported type", err: validators.ErrUnsupportedType, want: apperrors.KindInvalidArgument},
		{name: "no data", err: adapter.ErrNoData, want: apperrors.KindNotFound},
		{name: "rejected", err: fmt.Errorf("wrapped: %w", adapter.ErrUpstreamRejected), want: apperrors.KindUpstreamAuthFailure},
		{name: "timeout", err: adapter.ErrUpstreamTimeout, want: apperrors.KindUpstreamTimeout},
		{name: "unavailable", err: adapter.ErrUpstreamUnavailable, want: apperrors.KindUpstreamUnavailable},
		{name: "bad status", err: adapter.ErrUpstreamStatus, want: apperrors.KindUpstreamUnavailable},
		{name: "malformed envelope", err: crypto.ErrMalformedEnvelope, want: apperrors.KindMalformedPayload},
		{name: "decryption failed", err: crypto.ErrDecryptionFailed, want: apperrors.KindDecryptionFailure},
		{name: "unclassified", err: errors.New("boom"), want: apperrors.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.KindOf(normalizeError(tt.err)))
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, normalizeError(nil))
	})

	t.Run("classified errors pass through", func(t *testing.T) {
		original := apperrors.New(apperrors.KindAuthFailure, "no token")
		assert.Same(t, original, normalizeError(original).(*apperrors.Error))
	})
}
