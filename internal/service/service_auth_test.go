package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-autofill/internal/config"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/models"
)

func newTestAuthService() AuthService {
	return NewAuthService(config.AgentConfig{
		App: config.AgentApp{
			PairingKey:    "correct-horse",
			TokenSignKey:  "sign-key",
			TokenIssuer:   "go-pass-autofill",
			TokenDuration: time.Hour,
		},
	}, logger.Nop())
}

func TestAuthService_Pair(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	got, err := svc.Pair(ctx, models.PairRequest{
		ClientID:   "popup-1",
		PairingKey: "correct-horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, got.Token)

	token, err := svc.ParseToken(ctx, got.Token)
	require.NoError(t, err)
	assert.Equal(t, "popup-1", token.ClientID)
}

func TestAuthService_Pair_WrongKey(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Pair(context.Background(), models.PairRequest{
		ClientID:   "popup-1",
		PairingKey: "battery-staple",
	})
	assert.ErrorIs(t, err, ErrWrongPairingKey)
}

func TestAuthService_Pair_GeneratesClientID(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	got, err := svc.Pair(ctx, models.PairRequest{PairingKey: "correct-horse"})
	require.NoError(t, err)

	token, err := svc.ParseToken(ctx, got.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, token.ClientID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
