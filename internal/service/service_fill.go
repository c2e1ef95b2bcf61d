// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-autofill/internal/config"
	"github.com/MKhiriev/go-pass-autofill/internal/credential"
	"github.com/MKhiriev/go-pass-autofill/internal/fill"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/store"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// fillService resolves a fill request into concrete field values and
// hands them to the page dispatcher.
type fillService struct {
	credentials CredentialService
	dispatcher  *fill.Dispatcher
	usage       store.UsageRepository
	cfg         config.AgentConfig

	now func() time.Time

	logger *logger.Logger
}

// NewFillService constructs a [FillService].
func NewFillService(credentials CredentialService, dispatcher *fill.Dispatcher, usage store.UsageRepository, cfg config.AgentConfig, logger *logger.Logger) FillService {
	logger.Debug().Msg("creating fill service")
	return &fillService{
		credentials: credentials,
		dispatcher:  dispatcher,
		usage:       usage,
		cfg:         cfg,
		now:         time.Now,
		logger:      logger,
	}
}

// Fill implements [FillService]. A request without explicit fields
// fills login and secret. The otp field is generated fresh at fill
// time, never cached.
func (s *fillService) Fill(ctx context.Context, request models.FillActionRequest) (models.FillActionResponse, error) {
	log := logger.FromContext(ctx)

	cred, err := s.credentials.Fetch(ctx, request.Origin, request.StoreID, request.Login)
	if err != nil {
		return models.FillActionResponse{}, err
	}

	fieldNames := request.Fields
	if len(fieldNames) == 0 {
		fieldNames = []string{models.FieldLogin, models.FieldSecret}
	}

	fields, err := s.resolveFields(cred, fieldNames)
	if err != nil {
		return models.FillActionResponse{}, err
	}

	filled, err := s.dispatcher.Dispatch(ctx, fill.Request{
		Origin:     request.Origin,
		Login:      request.Login,
		Fields:     fields,
		AutoSubmit: credential.EffectiveAutoSubmit(cred, s.cfg.Stores[request.StoreID], s.cfg.App.AutoSubmit),
	})
	if err != nil {
		return models.FillActionResponse{}, err
	}

	key := utils.UsageKey(request.Origin, request.StoreID, request.Login)
	if _, err = s.usage.RecordUse(ctx, key, s.now(), s.cfg.App.UsageDebounce); err != nil {
		log.Err(err).Msg("usage recording after fill failed")
	}

	log.Debug().Str("login", request.Login).Strs("filled", filled).Msg("fill completed")
	return models.FillActionResponse{FilledFields: filled}, nil
}

// resolveFields maps requested field names to their concrete values.
// Every requested field must resolve; an entry missing one of them
// cannot satisfy the request.
func (s *fillService) resolveFields(cred models.Credential, names []string) (map[string]string, error) {
	fields := make(map[string]string, len(names))
	for _, name := range names {
		switch name {
		case models.FieldSecret:
			fields[name] = cred.Fields.Secret
		case models.FieldLogin:
			fields[name] = cred.Fields.Login
		case models.FieldURL:
			if cred.Fields.URL == nil {
				return nil, fmt.Errorf("%w: %q is not set", ErrUnknownField, name)
			}
			fields[name] = *cred.Fields.URL
		case models.FieldOpenid:
			if cred.Fields.Openid == nil {
				return nil, fmt.Errorf("%w: %q is not set", ErrUnknownField, name)
			}
			fields[name] = *cred.Fields.Openid
		case models.FieldOtp:
			if cred.Fields.Otp == nil {
				return nil, ErrNoOTPConfigured
			}
			token, err := credential.GenerateOTP(cred.Fields.Otp.Params, s.now())
			if err != nil {
				return nil, fmt.Errorf("generate OTP: %w", err)
			}
			fields[name] = token
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}
	return fields, nil
}
