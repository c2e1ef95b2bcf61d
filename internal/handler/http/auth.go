// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/models"
)

func (h *Handler) pair(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.PairRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.pair").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(r.Context(), request); err != nil {
		log.Err(err).Str("func", "*Handler.pair").Msg("invalid pair request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.services.AuthService.Pair(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pair").Msg("pairing failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.pair").Msg("error writing response")
	}
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.version))
}
