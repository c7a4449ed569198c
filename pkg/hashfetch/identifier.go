// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package hashfetch

import "strings"

// HashIdentifier is a parsed user-supplied reference hash of the form
// "[algorithm:]hexdigest". Algorithm is nil when no prefix was given, in
// which case the caller's selected algorithm applies. When a prefix is
// present it takes precedence over any separately selected algorithm.
type HashIdentifier struct {
	// Hex is the digest in its original case.
	Hex string

	// Algorithm is the resolved prefix, or nil for a bare digest.
	Algorithm *Algorithm
}

// ParseHash parses a reference hash string.
//
// The digest part must be non-empty, consist only of ASCII hex digits and
// have an even number of characters. An unresolvable algorithm prefix is an
// error rather than being ignored, so "md5:abc123" cannot silently pass as
// a bare digest. Note that the digest length is never cross-checked against
// the algorithm's output length; a wrong-length digest simply fails the
// later comparison.
func ParseHash(input string) (HashIdentifier, error) {
	if strings.TrimSpace(input) == "" {
		return HashIdentifier{}, ErrEmptyHash
	}

	prefix, hexPart, hasPrefix := strings.Cut(input, ":")
	if !hasPrefix {
		hexPart = input
	}

	if !isHexDigest(hexPart) {
		return HashIdentifier{}, ErrHashFormat
	}

	if !hasPrefix {
		return HashIdentifier{Hex: hexPart}, nil
	}

	algo, err := ParseAlgorithm(prefix)
	if err != nil {
		return HashIdentifier{}, ErrUnknownPrefix
	}
	return HashIdentifier{Hex: hexPart, Algorithm: &algo}, nil
}

// isHexDigest reports whether s is a non-empty, even-length string of
// ASCII hex digits. Odd-length input is rejected rather than padded.
func isHexDigest(s string) bool {
	if s == "" || len(s)%2 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
