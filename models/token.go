package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token issued to a paired popup client.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// ClientID is a cached copy of the "sub" (subject) claim: the extension
// client identifier the session was issued to.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the agent process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// ClientID is the paired client identifier extracted from the
	// "sub" claim. Internal agent-side cache.
	ClientID string `json:"-"`
}

// GetClientID extracts the client identifier from the token's "sub"
// (subject) claim. Returns an error if the claim is missing or empty.
func (t *Token) GetClientID() (string, error) {
	clientID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting client ID from token: %w", err)
	}
	if clientID == "" {
		return "", fmt.Errorf("empty subject claim in session token")
	}

	return clientID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
