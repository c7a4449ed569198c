// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package hashfetch

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Algorithm identifies one of the supported digest functions.
// The zero value is SHA2-256, the default everywhere a user does not
// choose explicitly.
type Algorithm int

const (
	SHA2_256 Algorithm = iota
	SHA2_224
	SHA2_384
	SHA2_512
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
)

// DefaultAlgorithm is used when neither a flag nor a hash prefix selects one.
const DefaultAlgorithm = SHA2_256

// String returns the canonical display name, e.g. "SHA2-256".
func (a Algorithm) String() string {
	switch a {
	case SHA2_224:
		return "SHA2-224"
	case SHA2_256:
		return "SHA2-256"
	case SHA2_384:
		return "SHA2-384"
	case SHA2_512:
		return "SHA2-512"
	case SHA3_224:
		return "SHA3-224"
	case SHA3_256:
		return "SHA3-256"
	case SHA3_384:
		return "SHA3-384"
	case SHA3_512:
		return "SHA3-512"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// newHash returns a fresh accumulator for the algorithm.
func (a Algorithm) newHash() hash.Hash {
	switch a {
	case SHA2_224:
		return sha256.New224()
	case SHA2_256:
		return sha256.New()
	case SHA2_384:
		return sha512.New384()
	case SHA2_512:
		return sha512.New()
	case SHA3_224:
		return sha3.New224()
	case SHA3_256:
		return sha3.New256()
	case SHA3_384:
		return sha3.New384()
	case SHA3_512:
		return sha3.New512()
	default:
		return sha256.New()
	}
}

// ParseAlgorithm resolves a user-supplied algorithm name. Matching is
// case-insensitive and treats '-' and '_' as interchangeable; the short
// SHA-2 spellings ("sha256") are accepted alongside the canonical ones.
func ParseAlgorithm(v string) (Algorithm, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	s = strings.ReplaceAll(s, "_", "-")
	switch s {
	case "sha224", "sha2-224":
		return SHA2_224, nil
	case "sha256", "sha2-256":
		return SHA2_256, nil
	case "sha384", "sha2-384":
		return SHA2_384, nil
	case "sha512", "sha2-512":
		return SHA2_512, nil
	case "sha3-224":
		return SHA3_224, nil
	case "sha3-256":
		return SHA3_256, nil
	case "sha3-384":
		return SHA3_384, nil
	case "sha3-512":
		return SHA3_512, nil
	default:
		return DefaultAlgorithm, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, v)
	}
}

// AlgorithmNames lists the canonical names in a stable order, for flag help.
func AlgorithmNames() []string {
	return []string{
		"sha2-224", "sha2-256", "sha2-384", "sha2-512",
		"sha3-224", "sha3-256", "sha3-384", "sha3-512",
	}
}
