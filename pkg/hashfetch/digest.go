// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package hashfetch

import (
	"encoding/hex"
	"hash"
)

// Digest is an incremental digest accumulator for one Algorithm.
// It is single-use: Update until the input is exhausted, then Finalize
// exactly once. A Digest must not be shared across goroutines.
type Digest struct {
	algo Algorithm
	h    hash.Hash
}

// NewDigest returns a fresh accumulator for the given algorithm.
func NewDigest(algo Algorithm) *Digest {
	return &Digest{algo: algo, h: algo.newHash()}
}

// Algorithm reports which algorithm this digest computes.
func (d *Digest) Algorithm() Algorithm { return d.algo }

// Update feeds data into the accumulator. It never fails.
func (d *Digest) Update(p []byte) {
	d.h.Write(p)
}

// Finalize consumes the accumulator and returns the raw digest bytes.
// The Digest must not be updated afterwards.
func (d *Digest) Finalize() []byte {
	sum := d.h.Sum(nil)
	d.h = nil
	return sum
}

// FinalizeHex consumes the accumulator and returns the lowercase-hex digest.
func (d *Digest) FinalizeHex() string {
	return hex.EncodeToString(d.Finalize())
}

// SumHex computes the lowercase-hex digest of data already fully in memory.
func SumHex(data []byte, algo Algorithm) string {
	h := algo.newHash()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
