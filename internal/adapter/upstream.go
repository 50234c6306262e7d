// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Courtlens

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/courtlens/ecourts-gateway/internal/metrics"
)

// Upstream endpoint paths. Every call is a GET with the encrypted request
// envelope in the `params` query parameter; this is how the mobile backend
// expects its traffic regardless of the operation's semantics.
const (
	EndpointHandshake     = "/appReleaseWebService.php"
	EndpointStates        = "/stateWebService.php"
	EndpointDistricts     = "/districtWebService.php"
	EndpointCourtComplex  = "/courtEstWebService.php"
	EndpointCourtNames    = "/courtNameWebService.php"
	EndpointCauseList     = "/cases_new.php"
	EndpointCaseList      = "/listOfCasesWebService.php"
	EndpointCaseHistory   = "/caseHistoryWebService.php"
	EndpointFilingHistory = "/filingCaseHistory.php"
)

// Exchange performs a single request/response round with upstream on an open
// session. paramsEnvelope is the already-encrypted request envelope;
// encryptedToken, when non-empty, is forwarded as a bearer credential. The
// raw response body is returned undecoded — decryption is the caller's
// concern.
func Exchange(ctx context.Context, session *resty.Client, endpoint, paramsEnvelope, encryptedToken string) (string, error) {
	req := session.R().
		SetContext(ctx).
		SetQueryParam("params", paramsEnvelope)
	if encryptedToken != "" {
		req.SetHeader("Authorization", "Bearer "+encryptedToken)
	}

	start := time.Now()
	resp, err := req.Get(endpoint)
	if err != nil {
		metrics.ObserveUpstreamRequest(endpoint, metrics.OutcomeTransportError, time.Since(start))
		return "", fmt.Errorf("upstream %s: %w", endpoint, err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusOK:
		body := resp.String()
		if isPlainJSON(body) {
			metrics.ObserveUpstreamRequest(endpoint, metrics.OutcomeNoData, time.Since(start))
			return "", fmt.Errorf("%w: %s answered in clear", ErrNoData, endpoint)
		}
		metrics.ObserveUpstreamRequest(endpoint, metrics.OutcomeOK, time.Since(start))
		return body, nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		metrics.ObserveUpstreamRequest(endpoint, metrics.OutcomeRejected, time.Since(start))
		return "", fmt.Errorf("%w: %s returned %d", ErrUpstreamRejected, endpoint, code)
	default:
		metrics.ObserveUpstreamRequest(endpoint, metrics.OutcomeBadStatus, time.Since(start))
		return "", fmt.Errorf("%w: %s returned %d", ErrUpstreamStatus, endpoint, code)
	}
}

// isPlainJSON reports whether a 200 body is cleartext JSON rather than an
// encrypted envelope. Upstream never encrypts its "no records" answers.
func isPlainJSON(body string) bool {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return false
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return false
	}
	return json.Valid([]byte(trimmed))
}
