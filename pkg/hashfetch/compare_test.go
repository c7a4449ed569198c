// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package hashfetch

import "testing"

func TestHashEqual(t *testing.T) {
	t.Run("case insensitive match", func(t *testing.T) {
		if !HashEqual("A1B2C3D4", "a1b2c3d4") {
			t.Error("expected case-insensitive match")
		}
		if !HashEqual("a1b2c3d4", "a1b2c3d4") {
			t.Error("expected identical digests to match")
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		if HashEqual("a1b2c3d4", "a1b2c3d5") {
			t.Error("different digests must not match")
		}
		if HashEqual("a1b2", "a1b2c3d4") {
			t.Error("prefix must not match")
		}
	})

	t.Run("empty never matches", func(t *testing.T) {
		if HashEqual("", "") {
			t.Error("two empty strings must not match")
		}
		if HashEqual("a1b2", "") || HashEqual("", "a1b2") {
			t.Error("empty side must not match")
		}
	})
}
