// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package hashfetch

import (
	"errors"
	"testing"
)

func TestParseHash(t *testing.T) {
	t.Run("bare digest", func(t *testing.T) {
		id, err := ParseHash("a591a6d40bf4")
		if err != nil {
			t.Fatalf("ParseHash failed: %v", err)
		}
		if id.Hex != "a591a6d40bf4" {
			t.Errorf("Hex = %q", id.Hex)
		}
		if id.Algorithm != nil {
			t.Errorf("expected nil Algorithm for bare digest, got %v", *id.Algorithm)
		}
	})

	t.Run("prefixed digest", func(t *testing.T) {
		cases := map[string]Algorithm{
			"sha256:a591a6d4":   SHA2_256,
			"sha2-512:a591a6d4": SHA2_512,
			"SHA3-224:a591a6d4": SHA3_224,
			"sha3_384:a591a6d4": SHA3_384,
		}
		for input, want := range cases {
			id, err := ParseHash(input)
			if err != nil {
				t.Errorf("ParseHash(%q) failed: %v", input, err)
				continue
			}
			if id.Algorithm == nil || *id.Algorithm != want {
				t.Errorf("ParseHash(%q) algorithm = %v, want %v", input, id.Algorithm, want)
			}
			if id.Hex != "a591a6d4" {
				t.Errorf("ParseHash(%q) hex = %q", input, id.Hex)
			}
		}
	})

	t.Run("original case preserved", func(t *testing.T) {
		id, err := ParseHash("A591a6D4")
		if err != nil {
			t.Fatalf("ParseHash failed: %v", err)
		}
		if id.Hex != "A591a6D4" {
			t.Errorf("Hex = %q, case must not be normalized", id.Hex)
		}
	})

	t.Run("empty and whitespace rejected", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\t\n"} {
			_, err := ParseHash(input)
			if !errors.Is(err, ErrEmptyHash) {
				t.Errorf("ParseHash(%q) = %v, want ErrEmptyHash", input, err)
			}
		}
	})

	t.Run("non-hex rejected", func(t *testing.T) {
		for _, input := range []string{"xyz123", "a591g6d4", "a591 a6d4", "sha256:nothex"} {
			_, err := ParseHash(input)
			if !errors.Is(err, ErrHashFormat) {
				t.Errorf("ParseHash(%q) = %v, want ErrHashFormat", input, err)
			}
		}
	})

	t.Run("odd length rejected", func(t *testing.T) {
		_, err := ParseHash("a591a6d")
		if !errors.Is(err, ErrHashFormat) {
			t.Errorf("ParseHash odd-length = %v, want ErrHashFormat", err)
		}
	})

	t.Run("unknown prefix rejected", func(t *testing.T) {
		// An unresolvable prefix must not silently pass as a bare digest.
		for _, input := range []string{"md5:a591a6d4", "blake2:a591a6d4"} {
			_, err := ParseHash(input)
			if !errors.Is(err, ErrUnknownPrefix) {
				t.Errorf("ParseHash(%q) = %v, want ErrUnknownPrefix", input, err)
			}
		}
	})

	t.Run("hex checked before prefix", func(t *testing.T) {
		// A bad digest behind a bad prefix reports the format problem.
		_, err := ParseHash("md5:zzz")
		if !errors.Is(err, ErrHashFormat) {
			t.Errorf("ParseHash(\"md5:zzz\") = %v, want ErrHashFormat", err)
		}
	})

	t.Run("empty digest behind prefix rejected", func(t *testing.T) {
		_, err := ParseHash("sha256:")
		if !errors.Is(err, ErrHashFormat) {
			t.Errorf("ParseHash(\"sha256:\") = %v, want ErrHashFormat", err)
		}
	})

	t.Run("length not cross-checked against algorithm", func(t *testing.T) {
		// A short digest with a valid prefix parses; it just will not match.
		id, err := ParseHash("sha512:a591a6d4")
		if err != nil {
			t.Fatalf("ParseHash failed: %v", err)
		}
		if id.Algorithm == nil || *id.Algorithm != SHA2_512 {
			t.Errorf("algorithm = %v, want SHA2-512", id.Algorithm)
		}
	})
}
