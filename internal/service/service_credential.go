// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-pass-autofill/internal/adapter"
	"github.com/MKhiriev/go-pass-autofill/internal/config"
	"github.com/MKhiriev/go-pass-autofill/internal/credential"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/store"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// clipboardWriter abstracts the system clipboard for testing.
type clipboardWriter interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

// systemClipboard delegates to the atotto/clipboard package.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }
func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }

// credentialService fetches, parses and acts on single entries.
type credentialService struct {
	host  adapter.HostAdapter
	usage store.UsageRepository
	cfg   config.AgentConfig

	clipboard  clipboardWriter
	clearAfter func(d time.Duration, f func()) // time.AfterFunc seam
	now        func() time.Time

	logger *logger.Logger
}

// NewCredentialService constructs a [CredentialService].
func NewCredentialService(host adapter.HostAdapter, usage store.UsageRepository, cfg config.AgentConfig, logger *logger.Logger) CredentialService {
	logger.Debug().Msg("creating credential service")
	return &credentialService{
		host:      host,
		usage:     usage,
		cfg:       cfg,
		clipboard: systemClipboard{},
		clearAfter: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
		now:    time.Now,
		logger: logger,
	}
}

// Fetch implements [CredentialService].
func (s *credentialService) Fetch(ctx context.Context, pageOrigin, storeID, login string) (models.Credential, error) {
	st, ok := s.cfg.Stores[storeID]
	if !ok {
		return models.Credential{}, fmt.Errorf("%w: %q", ErrUnknownStore, storeID)
	}

	contents, err := s.host.Fetch(ctx, storeID, login+entrySuffix)
	if err != nil {
		return models.Credential{}, fmt.Errorf("fetch entry %q: %w", login, err)
	}

	cred, err := credential.Parse(contents, credential.ParseConfig{
		EntryName:       login,
		Store:           st,
		DefaultUsername: s.cfg.App.DefaultUsername,
		EnableOTP:       s.cfg.App.EnableOTP,
	})
	if err != nil {
		return models.Credential{}, err
	}

	return cred, nil
}

// Copy implements [CredentialService]. The clipboard is cleared after
// the configured delay unless another value has replaced ours by then.
func (s *credentialService) Copy(ctx context.Context, pageOrigin, storeID, login, field string) error {
	log := logger.FromContext(ctx)

	cred, err := s.Fetch(ctx, pageOrigin, storeID, login)
	if err != nil {
		return err
	}

	value, err := s.fieldValue(cred, storeID, field)
	if err != nil {
		return err
	}

	if err = s.clipboard.WriteAll(value); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	s.scheduleClear(value)

	if pageOrigin != "" {
		key := utils.UsageKey(pageOrigin, storeID, login)
		if _, err = s.usage.RecordUse(ctx, key, s.now(), s.cfg.App.UsageDebounce); err != nil {
			log.Err(err).Msg("usage recording after copy failed")
		}
	}

	log.Debug().Str("field", field).Str("login", login).Msg("credential field copied")
	return nil
}

// GenerateTOTP implements [CredentialService].
func (s *credentialService) GenerateTOTP(ctx context.Context, storeID, login string) (string, error) {
	cred, err := s.Fetch(ctx, "", storeID, login)
	if err != nil {
		return "", err
	}
	if cred.Fields.Otp == nil {
		return "", fmt.Errorf("%w: %q", ErrNoOTPConfigured, login)
	}

	token, err := credential.GenerateOTP(cred.Fields.Otp.Params, s.now())
	if err != nil {
		return "", fmt.Errorf("generate OTP for %q: %w", login, err)
	}
	return token, nil
}

// Save implements [CredentialService].
func (s *credentialService) Save(ctx context.Context, storeID, login, contents string) error {
	if _, ok := s.cfg.Stores[storeID]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStore, storeID)
	}
	if err := s.host.Save(ctx, storeID, login+entrySuffix, contents); err != nil {
		return fmt.Errorf("save entry %q: %w", login, err)
	}
	return nil
}

// Delete implements [CredentialService].
func (s *credentialService) Delete(ctx context.Context, storeID, login string) error {
	if _, ok := s.cfg.Stores[storeID]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStore, storeID)
	}
	if err := s.host.Delete(ctx, storeID, login+entrySuffix); err != nil {
		return fmt.Errorf("delete entry %q: %w", login, err)
	}
	return nil
}

// fieldValue resolves one copyable field of a parsed credential.
func (s *credentialService) fieldValue(cred models.Credential, storeID string, field string) (string, error) {
	switch field {
	case models.FieldSecret:
		return cred.Fields.Secret, nil
	case models.FieldLogin:
		return cred.Fields.Login, nil
	case models.FieldURL:
		if cred.Fields.URL != nil {
			return *cred.Fields.URL, nil
		}
	case models.FieldOpenid:
		if cred.Fields.Openid != nil {
			return *cred.Fields.Openid, nil
		}
	case models.FieldOtp:
		if cred.Fields.Otp != nil {
			return credential.GenerateOTP(cred.Fields.Otp.Params, s.now())
		}
		return "", ErrNoOTPConfigured
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return "", fmt.Errorf("%w: %q is not set", ErrUnknownField, field)
}

// scheduleClear wipes the clipboard after the configured delay, but only
// if it still holds the value we placed there.
func (s *credentialService) scheduleClear(value string) {
	delay := s.cfg.App.ClipboardClearDelay
	if delay <= 0 {
		return
	}

	s.clearAfter(delay, func() {
		current, err := s.clipboard.ReadAll()
		if err == nil && current == value {
			_ = s.clipboard.WriteAll("")
		}
	})
}
