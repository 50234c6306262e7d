// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Courtlens

package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/courtlens/ecourts-gateway/internal/adapter"
	"github.com/courtlens/ecourts-gateway/internal/apperrors"
	"github.com/courtlens/ecourts-gateway/internal/config"
	"github.com/courtlens/ecourts-gateway/internal/crypto"
	"github.com/courtlens/ecourts-gateway/internal/logger"
	"github.com/courtlens/ecourts-gateway/internal/utils"
	"github.com/courtlens/ecourts-gateway/internal/validators"
	"github.com/courtlens/ecourts-gateway/models"
)

// uidSuffix is the application identity upstream expects after the device id.
const uidSuffix = ":in.gov.ecourts.eCourtsServices"

// handshakeVersion is the client protocol version sent on every handshake.
const handshakeVersion = "3.0"

// Wire values for the cause-list category flag. Confirm against the live
// deployment before relying on them; the mobile client sends abbreviated
// forms rather than the public CIVIL/CRIMINAL labels.
var causeListFlags = map[string]string{
	models.CauseListCivil:    "Civ",
	models.CauseListCriminal: "Cri",
}

// gatewayService is the concrete implementation of GatewayService. It
// composes the envelope codec, the isolated transport and request validation;
// all state is read-only after construction, so it is safe for concurrent
// use.
type gatewayService struct {
	codec     crypto.EnvelopeCodec
	transport *adapter.Transport
	validator validators.Validator
	deviceID  string
	logger    *logger.Logger
}

// NewGatewayService wires the façade to the given codec and transport.
func NewGatewayService(codec crypto.EnvelopeCodec, transport *adapter.Transport, validator validators.Validator, cfg config.Upstream, logger *logger.Logger) GatewayService {
	return &gatewayService{
		codec:     codec,
		transport: transport,
		validator: validator,
		deviceID:  cfg.DeviceID,
		logger:    logger,
	}
}

func (g *gatewayService) uid() string {
	return g.deviceID + uidSuffix
}

// call runs one full operation round: encrypt the body, open a session,
// exchange, decrypt. token may be empty for the unauthenticated handshake.
// The raw body leaves the session closure so the session can close before
// decryption starts.
func (g *gatewayService) call(ctx context.Context, endpoint string, body map[string]string, token string) (map[string]any, error) {
	envelope, err := g.codec.EncryptRequest(body)
	if err != nil {
		return nil, err
	}

	encryptedToken := ""
	if token != "" {
		encryptedToken, err = g.codec.EncryptRequest(token)
		if err != nil {
			return nil, err
		}
	}

	var raw string
	err = g.transport.WithSession(ctx, func(ctx context.Context, session *resty.Client) error {
		var exchangeErr error
		raw, exchangeErr = adapter.Exchange(ctx, session, endpoint, envelope, encryptedToken)
		return exchangeErr
	})
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := g.codec.DecryptResponse(raw, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ensureToken rejects callers whose token is absent or not even structurally
// a JWT, before any session is opened. Expiry is upstream's call, not ours.
func (g *gatewayService) ensureToken(token string) error {
	if token == "" {
		return apperrors.New(apperrors.KindAuthFailure, "bearer token is required")
	}
	if err := utils.CheckJWTStructure(token); err != nil {
		return apperrors.Newf(apperrors.KindAuthFailure, "bearer token is not a valid JWT: %s", err)
	}
	return nil
}

// IssueToken performs the device handshake. The response carries a single
// `token` field; anything else is a malformed answer.
func (g *gatewayService) IssueToken(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	result, err := g.call(ctx, adapter.EndpointHandshake, map[string]string{
		"version": handshakeVersion,
		"uid":     g.uid(),
	}, "")
	if err != nil {
		log.Err(err).Msg("token handshake failed")
		// A cleartext handshake answer is a broken answer, not an empty
		// result set; the "no records" reading only applies to the data
		// operations.
		if errors.Is(err, adapter.ErrNoData) {
			return "", apperrors.Newf(apperrors.KindMalformedPayload, "handshake answer is not an encrypted envelope: %s", err)
		}
		return "", normalizeError(err)
	}

	token, _ := result["token"].(string)
	if token == "" {
		log.Error().Msg("handshake answer carries no token")
		return "", apperrors.New(apperrors.KindMalformedPayload, "handshake answer carries no token")
	}

	log.Debug().Msg("token issued")
	return token, nil
}

func (g *gatewayService) States(ctx context.Context, token string) (map[string]any, error) {
	if err := g.ensureToken(token); err != nil {
		return nil, err
	}

	result, err := g.call(ctx, adapter.EndpointStates, map[string]string{
		"action_code": "fillState",
		"time":        strconv.FormatInt(time.Now().Unix(), 10),
	}, token)
	return result, normalizeError(err)
}

func (g *gatewayService) Districts(ctx context.Context, token string, req models.DistrictsRequest) (map[string]any, error) {
	if err := g.ensureToken(token); err != nil {
		return nil, err
	}
	if err := g.validator.Validate(ctx, req); err != nil {
		return nil, normalizeError(err)
	}

	result, err := g.call(ctx, adapter.EndpointDistricts, map[string]string{
		"state_code": req.StateCode,
		"test_param": "pending",
	}, token)
	return result, normalizeError(err)
}

func (g *gatewayService) CourtComplex(ctx context.Context, token string, req models.CourtComplexRequest) (map[string]any, error) {
	if err := g.ensureToken(token); err != nil {
		return nil, err
	}
	if err := g.validator.Validate(ctx, req); err != nil {
		return nil, normalizeError(err)
	}

	result, err := g.call(ctx, adapter.EndpointCourtComplex, map[string]string{
		"action_code": "fillCourtComplex",
		"state_code":  req.StateCode,
		"dist_code":   req.DistrictCode,
	}, token)
	return result, normalizeError(err)
}

func (g *gatewayService) CourtNames(ctx context.Context, token string, req models.CourtNameRequest) (map[string]any, error) {
	if err := g.ensureToken(token); err != nil {
		return nil, err
	}
	if err := g.validator.Validate(ctx, req); err != nil {
		return nil, normalizeError(err)
	}

	result, err := g.call(ctx, adapter.EndpointCourtNames, map[string]string{
		"state_code":     req.StateCode,
		"dist_code":      req.DistrictCode,
		"court_code":     req.CourtCode,
		"language_flag":  "english",
		"bilingual_flag": "0",
	}, token)
	return result, normalizeError(err)
}

func (g *gatewayService) CauseList(ctx context.Context, token string, req models.CauseListRequest) (map[string]any, error) {
	if err := g.ensureToken(token); err != nil {
		return nil, err
	}
	if err := g.validator.Validate(ctx, req); err != nil {
		return nil, normalizeError(err)
	}

	result, err := g.call(ctx, adapter.EndpointCauseList, map[string]string{
		"state_code":     req.StateCode,
		"dist_code":      req.DistrictCode,
		"flag":           causeListFlags[req.CauseListType],
		"selprevdays":    "0",
		"court_no":       req.CourtNumber,
		"court_code":     req.CourtCode,
		"causelist_date": req.Date,
		"language_flag":  "english",
		"bilingual_flag": "0",
		"uid":            g.uid(),
	}, token)
	return result, normalizeError(err)
}

// CaseDetail resolves a CNR in two steps: the case list answer decides
// whether the case has a registered number. Registered cases read the full
// history endpoint; cases still at the filing stage read the filing history
// endpoint.
func (g *gatewayService) CaseDetail(ctx context.Context, token string, req models.CaseDetailRequest) (map[string]any, error) {
	if err := g.ensureToken(token); err != nil {
		return nil, err
	}
	if err := g.validator.Validate(ctx, req); err != nil {
		return nil, normalizeError(err)
	}

	caseList, err := g.call(ctx, adapter.EndpointCaseList, map[string]string{
		"cino":           req.CNR,
		"version_number": handshakeVersion,
		"language_flag":  "english",
		"bilingual_flag": "0",
	}, token)
	if err != nil {
		return nil, normalizeError(err)
	}

	endpoint := adapter.EndpointCaseHistory
	body := map[string]string{
		"cinum":          req.CNR,
		"language_flag":  "english",
		"bilingual_flag": "0",
	}
	if caseList["case_number"] == nil {
		endpoint = adapter.EndpointFilingHistory
		body = map[string]string{
			"cino":           req.CNR,
			"language_flag":  "english",
			"bilingual_flag": "0",
		}
	}

	result, err := g.call(ctx, endpoint, body, token)
	return result, normalizeError(err)
}
