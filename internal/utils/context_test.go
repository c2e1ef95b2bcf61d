package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetClientIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientIDCtxKey, "extension-1")

	clientID, ok := GetClientIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "extension-1", clientID)
}

func TestGetClientIDFromContext_Missing(t *testing.T) {
	_, ok := GetClientIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetClientIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientIDCtxKey, 42)

	_, ok := GetClientIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetOriginFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), OriginCtxKey, "https://example.com")

	origin, ok := GetOriginFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "https://example.com", origin)
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "origin", OriginCtxKey.String())
}
