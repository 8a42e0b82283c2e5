// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

func (e *Election) requireAdmin(caller Identity) error {
	if caller != e.admin {
		return ErrUnauthorized
	}
	return nil
}

// IsAdmin reports whether caller is the administrator.
func (e *Election) IsAdmin(caller Identity) bool {
	return e.requireAdmin(caller) == nil
}
