// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
)

// auth is an HTTP middleware that enforces the paired-session JWT.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the paired client's ID in the request context under [utils.ClientIDCtxKey]
// before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is
// absent, malformed, or the token fails validation.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		// Store the paired client's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.ClientIDCtxKey, token.ClientID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
