// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-autofill/internal/adapter"
	"github.com/MKhiriev/go-pass-autofill/internal/fill"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
	"github.com/MKhiriev/go-pass-autofill/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidOrigin:           http.StatusBadRequest,
	service.ErrUnknownField:            http.StatusBadRequest,
	service.ErrUnknownStore:            http.StatusNotFound,
	service.ErrNoOTPConfigured:         http.StatusNotFound,
	service.ErrWrongPairingKey:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrChallengeAbandoned:      http.StatusConflict,

	fill.ErrNoFillableForm:    http.StatusUnprocessableEntity,
	fill.ErrTopFrameInjection: http.StatusBadGateway,

	adapter.ErrBadRequest: http.StatusBadRequest,
	adapter.ErrNotFound:   http.StatusNotFound,
	adapter.ErrInternal:   http.StatusBadGateway,
	adapter.ErrHostAction: http.StatusBadGateway,

	store.ErrUsageNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
