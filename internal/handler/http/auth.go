package http

import (
	"net/http"

	"github.com/courtlens/ecourts-gateway/internal/apperrors"
	"github.com/courtlens/ecourts-gateway/internal/logger"
	"github.com/courtlens/ecourts-gateway/internal/utils"
	"github.com/courtlens/ecourts-gateway/models"
)

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, err := h.services.Gateway.IssueToken(ctx)
	if err != nil {
		log.Err(err).Msg("token issuance failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.NewSuccessResponse(http.StatusOK, "token issued", map[string]any{
		"token": token,
	}), http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "healthy", Message: "API is running"}, http.StatusOK)
}

// bearerToken pulls the caller's token off the Authorization header. The
// token is handed straight to the service layer; no session is opened when
// the header is absent or malformed.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", apperrors.New(apperrors.KindAuthFailure, "authorization header is required")
	}
	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", apperrors.Newf(apperrors.KindAuthFailure, "%s", err)
	}
	return token, nil
}
