package http

import (
	"encoding/json"
	"net/http"

	"github.com/courtlens/ecourts-gateway/internal/apperrors"
	"github.com/courtlens/ecourts-gateway/internal/logger"
	"github.com/courtlens/ecourts-gateway/internal/utils"
	"github.com/courtlens/ecourts-gateway/models"
)

// decodeBody reads a JSON request body into target, reporting failures as
// invalid arguments.
func decodeBody(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return apperrors.Newf(apperrors.KindInvalidArgument, "invalid JSON body: %s", err)
	}
	return nil
}

func writeData(w http.ResponseWriter, message string, data map[string]any) {
	utils.WriteJSON(w, models.NewSuccessResponse(http.StatusOK, message, data), http.StatusOK)
}

func (h *Handler) states(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := bearerToken(r)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := h.services.Gateway.States(r.Context(), token)
	if err != nil {
		log.Err(err).Msg("states lookup failed")
		writeError(w, err)
		return
	}

	writeData(w, "states retrieved", data)
}

func (h *Handler) districts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := bearerToken(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req models.DistrictsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	data, err := h.services.Gateway.Districts(r.Context(), token, req)
	if err != nil {
		log.Err(err).Str("state_code", req.StateCode).Msg("districts lookup failed")
		writeError(w, err)
		return
	}

	writeData(w, "districts retrieved", data)
}

func (h *Handler) courtComplex(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := bearerToken(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req models.CourtComplexRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	data, err := h.services.Gateway.CourtComplex(r.Context(), token, req)
	if err != nil {
		log.Err(err).Str("state_code", req.StateCode).Str("district_code", req.DistrictCode).Msg("court complex lookup failed")
		writeError(w, err)
		return
	}

	writeData(w, "court complexes retrieved", data)
}

func (h *Handler) courtNames(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := bearerToken(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req models.CourtNameRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	data, err := h.services.Gateway.CourtNames(r.Context(), token, req)
	if err != nil {
		log.Err(err).Str("court_code", req.CourtCode).Msg("court names lookup failed")
		writeError(w, err)
		return
	}

	writeData(w, "court names retrieved", data)
}

func (h *Handler) causeList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := bearerToken(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req models.CauseListRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	data, err := h.services.Gateway.CauseList(r.Context(), token, req)
	if err != nil {
		log.Err(err).Str("causelist_date", req.Date).Msg("cause list lookup failed")
		writeError(w, err)
		return
	}

	writeData(w, "cause list retrieved", data)
}
