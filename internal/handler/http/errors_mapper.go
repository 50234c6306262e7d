package http

import (
	"net/http"

	"github.com/courtlens/ecourts-gateway/internal/apperrors"
	"github.com/courtlens/ecourts-gateway/internal/utils"
	"github.com/courtlens/ecourts-gateway/models"
)

var kindStatusMap = map[apperrors.Kind]int{
	apperrors.KindInvalidArgument:     http.StatusBadRequest,
	apperrors.KindAuthFailure:         http.StatusUnauthorized,
	apperrors.KindUpstreamAuthFailure: http.StatusUnauthorized,
	apperrors.KindNotFound:            http.StatusNotFound,
	apperrors.KindConflict:            http.StatusConflict,
	apperrors.KindMalformedPayload:    http.StatusInternalServerError,
	apperrors.KindDecryptionFailure:   http.StatusInternalServerError,
	apperrors.KindUpstreamTimeout:     http.StatusGatewayTimeout,
	apperrors.KindUpstreamUnavailable: http.StatusBadGateway,
	apperrors.KindInternal:            http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if status, ok := kindStatusMap[apperrors.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeError renders err as the API's error envelope, surfacing the kind and
// message verbatim.
func writeError(w http.ResponseWriter, err error) {
	appErr := apperrors.AsError(err)
	status := statusFromError(err)

	details := map[string]any{"kind": string(appErr.Kind)}
	for k, v := range appErr.Details {
		details[k] = v
	}

	utils.WriteJSON(w, models.NewErrorResponse(status, appErr.Message, details), status)
}
