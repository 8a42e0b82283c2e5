// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

const testAddress = "0x1000000000000000000000000000000000000001"

func TestGenerateCallerKey(t *testing.T) {
	tests := []struct {
		name    string
		address string
		salt    string
	}{
		{"standard", testAddress, "secret-salt"},
		{"empty address", "", "salt"},
		{"empty salt", testAddress, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateCallerKey(tt.address, tt.salt)

			if key == "" {
				t.Error("GenerateCallerKey() returned empty string")
			}

			// Should be deterministic
			if key2 := GenerateCallerKey(tt.address, tt.salt); key != key2 {
				t.Error("GenerateCallerKey() is not deterministic")
			}

			if tt.address != "" && tt.salt != "" {
				if GenerateCallerKey(tt.address+"x", tt.salt) == key {
					t.Error("GenerateCallerKey() produced same key for different addresses")
				}
			}

			// Should be URL-safe (no padding)
			if strings.ContainsAny(key, "=+/") {
				t.Errorf("GenerateCallerKey() is not URL-safe: %s", key)
			}
		})
	}
}

func TestValidateCallerKey(t *testing.T) {
	salt := "test-salt"
	validKey := GenerateCallerKey(testAddress, salt)

	tests := []struct {
		name    string
		address string
		key     string
		salt    string
		wantErr error
	}{
		{"valid key", testAddress, validKey, salt, nil},
		{"wrong key", testAddress, "wrong-key", salt, ErrInvalidCallerKey},
		{"wrong address", "0x2000000000000000000000000000000000000002", validKey, salt, ErrInvalidCallerKey},
		{"wrong salt", testAddress, validKey, "different-salt", ErrInvalidCallerKey},
		{"empty key", testAddress, "", salt, ErrMissingCallerKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCallerKey(tt.address, tt.key, tt.salt)
			if err != tt.wantErr {
				t.Errorf("ValidateCallerKey() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHashIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		salt string
	}{
		{"IPv4", "192.168.1.1", "ip-salt"},
		{"IPv6", "2001:0db8:85a3::8a2e:0370:7334", "ip-salt"},
		{"localhost", "127.0.0.1", "ip-salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashIP(tt.ip, tt.salt)

			// Should be 16 hex characters (8 bytes * 2)
			if len(hash) != 16 {
				t.Errorf("HashIP() length = %d, want 16", len(hash))
			}

			for _, c := range hash {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("HashIP() contains invalid hex char: %c", c)
				}
			}

			if hash2 := HashIP(tt.ip, tt.salt); hash != hash2 {
				t.Error("HashIP() is not deterministic")
			}
		})
	}

	if HashIP("192.168.1.1", "salt") == HashIP("192.168.1.2", "salt") {
		t.Error("HashIP() produced same hash for different IPs")
	}
	if HashIP("192.168.1.1", "salt1") == HashIP("192.168.1.1", "salt2") {
		t.Error("HashIP() produced same hash for different salts")
	}
}

func BenchmarkGenerateCallerKey(b *testing.B) {
	salt := "test-salt"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateCallerKey(testAddress, salt)
	}
}

func BenchmarkValidateCallerKey(b *testing.B) {
	salt := "test-salt"
	key := GenerateCallerKey(testAddress, salt)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ValidateCallerKey(testAddress, key, salt)
	}
}
