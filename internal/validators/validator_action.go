// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-autofill/models"
)

const (
	FieldOrigin     = "origin"
	FieldStoreID    = "store_id"
	FieldLogin      = "login"
	FieldField      = "field"
	FieldFields     = "fields"
	FieldPairingKey = "pairing_key"
)

var allowedCredentialFields = []string{
	models.FieldSecret,
	models.FieldLogin,
	models.FieldOpenid,
	models.FieldOtp,
	models.FieldURL,
}

type ActionValidator struct {
}

func NewActionValidator() Validator {
	return &ActionValidator{}
}

func (v *ActionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FillActionRequest:
		return v.validateFillActionRequest(ctx, value, fields...)
	case *models.FillActionRequest:
		return v.validateFillActionRequest(ctx, *value, fields...)

	case models.CopyActionRequest:
		return v.validateCopyActionRequest(ctx, value, fields...)
	case *models.CopyActionRequest:
		return v.validateCopyActionRequest(ctx, *value, fields...)

	case models.PairRequest:
		return v.validatePairRequest(ctx, value, fields...)
	case *models.PairRequest:
		return v.validatePairRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isAllowedCredentialField(name string) bool {
	for _, f := range allowedCredentialFields {
		if name == f {
			return true
		}
	}
	return false
}

func (v *ActionValidator) validateFillActionRequest(ctx context.Context, request models.FillActionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOrigin, FieldStoreID, FieldLogin, FieldFields}
	}

	for _, f := range fields {
		switch f {
		case FieldOrigin:
			if request.Origin == "" {
				return ErrEmptyOrigin
			}
		case FieldStoreID:
			if request.StoreID == "" {
				return ErrEmptyStoreID
			}
		case FieldLogin:
			if request.Login == "" {
				return ErrEmptyLogin
			}
		case FieldFields:
			// an empty list is fine, the service falls back to login+secret
			for i, name := range request.Fields {
				if !isAllowedCredentialField(name) {
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidField)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ActionValidator) validateCopyActionRequest(ctx context.Context, request models.CopyActionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOrigin, FieldStoreID, FieldLogin, FieldField}
	}

	for _, f := range fields {
		switch f {
		case FieldOrigin:
			// copies from the picker carry no page origin

		case FieldStoreID:
			if request.StoreID == "" {
				return ErrEmptyStoreID
			}
		case FieldLogin:
			if request.Login == "" {
				return ErrEmptyLogin
			}
		case FieldField:
			if request.Field == "" {
				return ErrEmptyField
			}
			if !isAllowedCredentialField(request.Field) {
				return ErrInvalidField
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ActionValidator) validatePairRequest(ctx context.Context, request models.PairRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPairingKey}
	}

	for _, f := range fields {
		switch f {
		case FieldPairingKey:
			if request.PairingKey == "" {
				return ErrEmptyPairingKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
