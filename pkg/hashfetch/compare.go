// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package hashfetch

import "strings"

// HashEqual compares a reference digest against a calculated one.
// Hex digests carry no case-sensitive meaning, so comparison is ASCII
// case-insensitive. There is no fuzzy or partial matching.
func HashEqual(reference, calculated string) bool {
	if reference == "" || calculated == "" {
		return false
	}
	return strings.EqualFold(reference, calculated)
}
