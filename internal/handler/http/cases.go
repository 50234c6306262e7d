package http

import (
	"net/http"

	"github.com/courtlens/ecourts-gateway/internal/logger"
	"github.com/courtlens/ecourts-gateway/models"
)

func (h *Handler) caseDetail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := bearerToken(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req := models.CaseDetailRequest{CNR: r.URL.Query().Get("cnr")}

	data, err := h.services.Gateway.CaseDetail(r.Context(), token, req)
	if err != nil {
		log.Err(err).Str("cnr", req.CNR).Msg("case detail lookup failed")
		writeError(w, err)
		return
	}

	writeData(w, "case details retrieved", data)
}
