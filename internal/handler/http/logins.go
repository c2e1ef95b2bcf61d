// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/models"
)

func (h *Handler) logins(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	pageOrigin := r.URL.Query().Get("origin")
	query := r.URL.Query().Get("query")
	currentDomainOnly, _ := strconv.ParseBool(r.URL.Query().Get("current_domain_only"))

	candidates, err := h.services.ListingService.Candidates(r.Context(), pageOrigin, query, currentDomainOnly)
	if err != nil {
		log.Err(err).Str("func", "*Handler.logins").Msg("error building candidate listing")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	response := models.LoginsResponse{
		Logins: make([]*models.LoginCandidate, len(candidates)),
		Length: len(candidates),
	}
	for i := range candidates {
		response.Logins[i] = &candidates[i]
	}

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.logins").Msg("error writing response")
	}
}

func (h *Handler) fill(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.FillActionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.fill").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(r.Context(), request); err != nil {
		log.Err(err).Str("func", "*Handler.fill").Msg("invalid fill request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.services.FillService.Fill(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fill").Msg("fill action failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	// a successful fill changes the usage ranking context
	h.services.BadgeService.Invalidate(request.Origin)

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.fill").Msg("error writing response")
	}
}

func (h *Handler) copyField(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CopyActionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.copyField").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(r.Context(), request); err != nil {
		log.Err(err).Str("func", "*Handler.copyField").Msg("invalid copy request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.services.CredentialService.Copy(r.Context(), request.Origin, request.StoreID, request.Login, request.Field)
	if err != nil {
		log.Err(err).Str("func", "*Handler.copyField").Msg("copy action failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) badge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	response, err := h.services.BadgeService.Badge(r.Context(), r.URL.Query().Get("origin"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.badge").Msg("error computing badge count")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.badge").Msg("error writing response")
	}
}
