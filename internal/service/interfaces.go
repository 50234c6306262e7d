// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Courtlens

package service

import (
	"context"

	"github.com/courtlens/ecourts-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_service_mock.go -package=mock

// GatewayService is the operation façade over the encrypted upstream. Every
// method opens its own upstream session, forwards one operation and returns
// the decrypted result. Tokens are caller-owned: the service never stores
// one, so each authenticated call pays the forwarding cost explicitly.
type GatewayService interface {
	// IssueToken performs the device handshake and returns a fresh bearer
	// token. The token is returned to the caller and forgotten.
	IssueToken(ctx context.Context) (string, error)

	States(ctx context.Context, token string) (map[string]any, error)
	Districts(ctx context.Context, token string, req models.DistrictsRequest) (map[string]any, error)
	CourtComplex(ctx context.Context, token string, req models.CourtComplexRequest) (map[string]any, error)
	CourtNames(ctx context.Context, token string, req models.CourtNameRequest) (map[string]any, error)
	CauseList(ctx context.Context, token string, req models.CauseListRequest) (map[string]any, error)
	CaseDetail(ctx context.Context, token string, req models.CaseDetailRequest) (map[string]any, error)

	// Run dispatches an operation by kind tag with loosely typed parameters.
	Run(ctx context.Context, kind string, token string, params map[string]string) (map[string]any, error)
}
