// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/pair", h.pair)
		r.Get("/api/version", h.getVersion)
	})

	// routes requiring a paired session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/logins", h.logins)
		r.Post("/api/fill", h.fill)
		r.Post("/api/copy", h.copyField)
		r.Get("/api/badge", h.badge)

		r.Post("/api/challenge/await", h.awaitChallenge)
		r.Post("/api/challenge/resolve", h.resolveChallenge)
	})

	return router
}
