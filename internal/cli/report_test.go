// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/hashfetch/hashfetch/pkg/hashfetch"
)

func TestCommandResultReport(t *testing.T) {
	color.NoColor = true

	t.Run("without comparison", func(t *testing.T) {
		var buf strings.Builder
		commandResult{
			Source:    "/tmp/file.txt",
			Algorithm: hashfetch.SHA2_256,
			Digest:    "a591a6d4",
		}.report(&buf)

		out := buf.String()
		if !strings.Contains(out, "/tmp/file.txt") {
			t.Errorf("missing source in output:\n%s", out)
		}
		if !strings.Contains(out, "a591a6d4") {
			t.Errorf("missing digest in output:\n%s", out)
		}
		if !strings.Contains(out, "SHA2-256") {
			t.Errorf("missing algorithm in output:\n%s", out)
		}
		if strings.Contains(out, "match") {
			t.Errorf("unexpected comparison verdict:\n%s", out)
		}
	})

	t.Run("matching comparison", func(t *testing.T) {
		var buf strings.Builder
		commandResult{
			Source:    "/tmp/file.txt",
			Algorithm: hashfetch.SHA2_256,
			Digest:    "a591a6d4",
			Compare:   &compareResult{Matches: true, Reference: "A591A6D4"},
		}.report(&buf)

		out := buf.String()
		if !strings.Contains(out, "Hash sums match") {
			t.Errorf("missing match verdict:\n%s", out)
		}
		// The reference is echoed lowercase.
		if !strings.Contains(out, "a591a6d4") {
			t.Errorf("missing lowercased reference:\n%s", out)
		}
	})

	t.Run("failing comparison", func(t *testing.T) {
		var buf strings.Builder
		commandResult{
			Source:    "buffer of 5 byte(s)",
			Algorithm: hashfetch.SHA3_512,
			Digest:    "aabbccdd",
			Compare:   &compareResult{Matches: false, Reference: "11223344"},
		}.report(&buf)

		out := buf.String()
		if !strings.Contains(out, "DO NOT match") {
			t.Errorf("missing mismatch verdict:\n%s", out)
		}
		if !strings.Contains(out, "SHA3-512") {
			t.Errorf("missing algorithm in output:\n%s", out)
		}
	})
}
