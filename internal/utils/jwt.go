package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-autofill/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT session token for a
// paired popup client.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the agent instance that issued the token
//   - Subject   (sub): the paired client identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateSessionToken(issuer, clientID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || clientID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   clientID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, ClientID: clientID}, nil
}

// ValidateAndParseSessionToken validates the given session token string and
// extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Returns a [models.Token] with the parsed token and the extracted client
// identifier, or an error if validation fails.
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	clientID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if clientID == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, ClientID: clientID}, nil
}

// ParseBearerToken extracts the token part of an "Authorization: Bearer ..."
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
