// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidOrigin = errors.New("invalid origin")
	ErrUnknownStore  = errors.New("unknown store")
	ErrUnknownField  = errors.New("unknown credential field")

	// ErrNoOTPConfigured is returned when an OTP operation targets an
	// entry without an otp field or with OTP disabled for its scope.
	ErrNoOTPConfigured = errors.New("no OTP configured for entry")

	// ErrWrongPairingKey is returned by Pair for a mismatched key.
	ErrWrongPairingKey = errors.New("wrong pairing key")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrChallengeAbandoned is returned to a challenge waiter whose
	// pending challenge was superseded by a newer one for the same
	// URL prefix.
	ErrChallengeAbandoned = errors.New("auth challenge abandoned")
)
