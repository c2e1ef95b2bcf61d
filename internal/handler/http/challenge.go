// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
)

// awaitChallengeRequest registers a basic-auth challenge for a URL
// prefix and blocks until a credential is chosen for it.
type awaitChallengeRequest struct {
	URLPrefix string `json:"url_prefix"`
}

// resolveChallengeRequest answers the pending challenge matching URL.
type resolveChallengeRequest struct {
	URL     string `json:"url"`
	StoreID string `json:"store_id"`
	Login   string `json:"login"`
}

func (h *Handler) awaitChallenge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request awaitChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.awaitChallenge").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	answer, err := h.services.Challenges.Await(r.Context(), request.URLPrefix)
	if err != nil {
		log.Err(err).Str("func", "*Handler.awaitChallenge").Msg("challenge not answered")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, answer, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.awaitChallenge").Msg("error writing response")
	}
}

func (h *Handler) resolveChallenge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request resolveChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.resolveChallenge").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resolved := h.services.Challenges.Resolve(request.URL, service.ChallengeAnswer{
		StoreID: request.StoreID,
		Login:   request.Login,
	})
	if !resolved {
		http.Error(w, "no pending challenge matches the URL", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
