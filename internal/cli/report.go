// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/hashfetch/hashfetch/internal/applog"
	"github.com/hashfetch/hashfetch/pkg/hashfetch"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed, color.Bold)
)

// compareResult is the outcome of checking a calculated digest against a
// user-supplied reference hash.
type compareResult struct {
	Matches   bool
	Reference string
}

// commandResult is what either command hands to the reporting layer:
// the digest, where it came from, and an optional comparison.
type commandResult struct {
	// Source describes the input for display: an absolute path, a URL
	// target, or a buffer description.
	Source string

	// SaveName is the short name used when persisting the result;
	// "hash_sum" for buffers, the base name otherwise.
	SaveName string

	Algorithm hashfetch.Algorithm
	Digest    string
	Compare   *compareResult
	Save      bool
}

// process renders the result and persists it when requested.
func (r commandResult) process(w io.Writer) error {
	r.report(w)
	if !r.Save {
		return nil
	}
	path, err := r.save()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Hash sum saved to  : %s\n", path)
	return nil
}

func (r commandResult) report(w io.Writer) {
	fmt.Fprintf(w, "Input source       : %s\n", r.Source)
	fmt.Fprintf(w, "Calculated hash sum: %s\n", r.Digest)

	if r.Compare != nil {
		fmt.Fprintf(w, "Given hash sum     : %s\n", strings.ToLower(r.Compare.Reference))
		if r.Compare.Matches {
			fmt.Fprintf(w, "%s - used algorithm: %s\n", okColor.Sprint("Hash sums match"), warnColor.Sprint(r.Algorithm))
		} else {
			fmt.Fprintf(w, "%s - used algorithm: %s\n", failColor.Sprint("Hash sums DO NOT match"), warnColor.Sprint(r.Algorithm))
		}
	} else {
		fmt.Fprintf(w, "Used algorithm     : %s\n", warnColor.Sprint(r.Algorithm))
	}

	slog.Info("hash sum calculated",
		"source", r.Source,
		"algorithm", r.Algorithm.String(),
		"digest", r.Digest,
		"compared", r.Compare != nil,
	)
}

// save writes "{digest}\t{name}" into the app data directory. The file is
// named after the source with the lowercase algorithm name as extension,
// so repeated runs over the same source overwrite rather than accumulate.
func (r commandResult) save() (string, error) {
	if err := applog.EnsureDataDir(); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s.%s", r.SaveName, strings.ToLower(r.Algorithm.String()))
	path := filepath.Join(applog.DataDir(), name)
	line := fmt.Sprintf("%s\t%s\n", r.Digest, r.SaveName)
	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		return "", fmt.Errorf("failed to save the hash sum: %w", err)
	}
	return path, nil
}
