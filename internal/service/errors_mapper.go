// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Courtlens

package service

import (
	"errors"

	"github.com/courtlens/ecourts-gateway/internal/adapter"
	"github.com/courtlens/ecourts-gateway/internal/apperrors"
	"github.com/courtlens/ecourts-gateway/internal/crypto"
	"github.com/courtlens/ecourts-gateway/internal/validators"
)

// normalizeError is the single translation point from internal failures to
// the public error taxonomy. Errors that already carry a kind pass through;
// everything unrecognised degrades to an internal error.
func normalizeError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, validators.ErrValidation), errors.Is(err, validators.ErrUnsupportedType):
		return apperrors.Newf(apperrors.KindInvalidArgument, "%s", err)

	case errors.Is(err, adapter.ErrNoData):
		return apperrors.New(apperrors.KindNotFound, "upstream has no matching records")

	case errors.Is(err, adapter.ErrUpstreamRejected):
		return apperrors.Newf(apperrors.KindUpstreamAuthFailure, "%s", err)

	case errors.Is(err, adapter.ErrUpstreamTimeout):
		return apperrors.Newf(apperrors.KindUpstreamTimeout, "%s", err)

	case errors.Is(err, adapter.ErrUpstreamUnavailable), errors.Is(err, adapter.ErrUpstreamStatus):
		return apperrors.Newf(apperrors.KindUpstreamUnavailable, "%s", err)

	case errors.Is(err, crypto.ErrMalformedEnvelope):
		return apperrors.Newf(apperrors.KindMalformedPayload, "%s", err)

	case errors.Is(err, crypto.ErrDecryptionFailed), errors.Is(err, crypto.ErrInvalidKey):
		return apperrors.Newf(apperrors.KindDecryptionFailure, "%s", err)

	default:
		return apperrors.Newf(apperrors.KindInternal, "%s", err)
	}
}
