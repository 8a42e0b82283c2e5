// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

// Headers identifying the caller of an acting request.
const (
	CallerAddressHeader = "X-Caller-Address"
	CallerKeyHeader     = "X-Caller-Key"
)

var (
	ErrMissingCallerKey = errors.New("missing caller key")
	ErrInvalidCallerKey = errors.New("invalid caller key")
)

// GenerateCallerKey creates an HMAC-based key proving control of an address.
// This is deterministic and verifiable. The address should be in its
// checksummed form so every spelling of it maps to the same key.
func GenerateCallerKey(address, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(address))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateCallerKey checks if the provided key is valid for the address
func ValidateCallerKey(address, key, salt string) error {
	if key == "" {
		return ErrMissingCallerKey
	}
	expected := GenerateCallerKey(address, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidCallerKey
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for correlating log lines
	return hex.EncodeToString(sum[:8])
}
