// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hashfetch/hashfetch/internal/tui"
	"github.com/hashfetch/hashfetch/pkg/hashfetch"
)

func newLocalCmd(opts *rootOpts) *cobra.Command {
	var (
		algoName     string
		path         string
		buffer       string
		includeNames bool
		save         bool
	)

	cmd := &cobra.Command{
		Use:   "local [HASH]",
		Short: "Calculate the hash sum of a local file, directory or text buffer",
		Long: "Calculate the hash sum of a local file, a whole directory tree or an in-memory text buffer. " +
			"An optional reference hash sum is compared against the result; a prefix like 'sha512:' on it selects the algorithm.",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: applyConfigDefaults(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := hashfetch.ParseAlgorithm(algoName)
			if err != nil {
				return err
			}

			var ref *hashfetch.HashIdentifier
			if len(args) == 1 {
				id, err := hashfetch.ParseHash(args[0])
				if err != nil {
					return err
				}
				ref = &id
				if id.Algorithm != nil {
					algo = *id.Algorithm
				}
			}

			if path == "" && !cmd.Flags().Changed("buffer") {
				return fmt.Errorf("either --path or --buffer must be provided")
			}

			res := commandResult{Algorithm: algo, Save: save}

			if path != "" {
				if _, err := os.Stat(path); err != nil {
					return fmt.Errorf("the specified path %q cannot be read: %w", path, err)
				}
				slog.Info("hashing local path", "path", path, "include_names", includeNames)

				spin := tui.NewSpinner("Calculate hash sum... this may take a while")
				sum, err := hashfetch.HashPath(cmd.Context(), path, algo, includeNames)
				spin.Stop()
				if err != nil {
					return err
				}

				abs, aerr := filepath.Abs(path)
				if aerr != nil {
					abs = path
				}
				res.Source = abs
				res.SaveName = filepath.Base(filepath.Clean(path))
				res.Digest = sum
			} else {
				res.Source = fmt.Sprintf("buffer of %d byte(s)", len(buffer))
				res.SaveName = "hash_sum"
				res.Digest = hashfetch.HashBuffer([]byte(buffer), algo)
			}

			if ref != nil {
				res.Compare = &compareResult{
					Matches:   hashfetch.HashEqual(ref.Hex, res.Digest),
					Reference: ref.Hex,
				}
			}
			return res.process(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&algoName, "algorithm", "a", "sha2-256",
		"hash algorithm: "+strings.Join(hashfetch.AlgorithmNames(), "|"))
	cmd.Flags().StringVarP(&path, "path", "p", "", "file or directory to hash")
	cmd.Flags().StringVarP(&buffer, "buffer", "b", "", "text buffer to hash")
	cmd.Flags().BoolVarP(&includeNames, "include-names", "i", false, "fold file and directory names into the hash sum")
	cmd.Flags().BoolVarP(&save, "save", "s", false, "save the hash sum to a file in the app data directory")
	cmd.MarkFlagsMutuallyExclusive("path", "buffer")
	return cmd
}
