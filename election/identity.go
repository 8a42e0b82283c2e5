// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Identity is an account address. Hex() renders the EIP-55 checksummed form.
type Identity = common.Address

// ParseIdentity accepts a hex address in any letter case, with or without
// the 0x prefix.
func ParseIdentity(s string) (Identity, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return Identity{}, fmt.Errorf("%w: %q", ErrInvalidIdentity, s)
	}
	return common.HexToAddress(s), nil
}
