// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// usageKeySalt separates the usage-statistics key space from any other
// derived key material.
const usageKeySalt = "go-pass-autofill/usage-stats"

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers.
// Each hasher in the pool is configured with the provided hash key.
//
// Purpose:
//   - Avoid repeated allocations of new hash.Hash instances
//   - Reduce GC pressure on the listing-refresh path, which hashes every
//     candidate of every store
//
// Parameters:
//
//	hashKey - key used for all HMAC operations
func InitHasherPool(hashKey []byte) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, hashKey)
		},
	}
}

// DeriveUsageHashKey stretches the locally stored agent secret into the
// HMAC key used for usage-statistics hashing. PBKDF2 keeps a low-entropy
// secret from being trivially brute-forced against the at-rest hashes.
func DeriveUsageHashKey(secret string) []byte {
	return pbkdf2.Key([]byte(secret), []byte(usageKeySalt), 4096, 32, sha256.New)
}

// Hash computes an HMAC-SHA256 signature over the given byte slice
// using a hasher pulled from the global hasher pool.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashHex computes the pooled HMAC-SHA256 digest of data and returns it
// hex-encoded.
func HashHex(data string) string {
	return hex.EncodeToString(Hash([]byte(data)))
}

// UsageKey computes the storage key of a usage-statistics record as a
// chained one-way hash:
//
//	hash(origin + hash(storeID + hash(login)))
//
// The chaining exists so the persisted usage history contains neither
// plaintext origins nor entry paths, and so two records agree only when
// all three components agree.
func UsageKey(origin, storeID, login string) string {
	inner := HashHex(login)
	middle := HashHex(storeID + inner)
	return HashHex(origin + middle)
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded
// string.
//
// Unlike Hash, this function does not use the global hasher pool and
// creates a new HMAC instance on each call. Suitable for one-off hashing
// where pool initialization is not desired.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
