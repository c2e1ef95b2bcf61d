package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for pairing client IDs and request
// trace ids. It prefers time-ordered v7 UUIDs so identifiers sort by
// creation time in logs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 UUID string, falling back to v4 when the
// entropy source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
