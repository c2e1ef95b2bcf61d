// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-autofill/internal/config"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// authService pairs popup clients against the shared pairing key and
// validates their session tokens.
type authService struct {
	pairingKey    string
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	uuid *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService].
func NewAuthService(cfg config.AgentConfig, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		pairingKey:    cfg.App.PairingKey,
		tokenSignKey:  cfg.App.TokenSignKey,
		tokenIssuer:   cfg.App.TokenIssuer,
		tokenDuration: cfg.App.TokenDuration,
		uuid:          utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

// Pair implements [AuthService]. The pairing key comparison is
// constant-time.
func (s *authService) Pair(ctx context.Context, request models.PairRequest) (models.PairResponse, error) {
	log := logger.FromContext(ctx)

	if subtle.ConstantTimeCompare([]byte(request.PairingKey), []byte(s.pairingKey)) != 1 {
		log.Warn().Str("client_id", request.ClientID).Msg("pairing rejected")
		return models.PairResponse{}, ErrWrongPairingKey
	}

	clientID := request.ClientID
	if clientID == "" {
		clientID = s.uuid.Generate()
	}

	token, err := utils.GenerateSessionToken(s.tokenIssuer, clientID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.PairResponse{}, fmt.Errorf("issue session token: %w", err)
	}

	log.Info().Str("client_id", clientID).Msg("popup client paired")
	return models.PairResponse{Token: token.SignedString}, nil
}

// ParseToken implements [AuthService].
func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return token, nil
}
