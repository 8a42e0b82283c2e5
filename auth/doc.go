// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides caller authentication utilities.

# Caller Keys

Every request that acts as someone (the administrator or a voter) carries the
caller's address and a caller key. Caller keys use HMAC-SHA256 over the
checksummed address:

	key := auth.GenerateCallerKey(address, salt)
	err := auth.ValidateCallerKey(address, key, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same address and salt always produce the same key. This allows validation
without storing keys in the database.

The administrator gets their key from the -print-admin-key flag; voters
receive theirs in the registration response.

# IP Hashing

Request logs carry a hashed client address instead of the raw IP:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
