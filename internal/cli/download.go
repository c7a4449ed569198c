// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/hashfetch/hashfetch/internal/tui"
	"github.com/hashfetch/hashfetch/pkg/hashfetch"
)

func newDownloadCmd(opts *rootOpts) *cobra.Command {
	var (
		algoName string
		output   string
		rename   string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "download URL [HASH]",
		Short: "Download a file and calculate its hash sum",
		Long: "Download a file over HTTP(S), stream it to disk and calculate its hash sum on the fly. " +
			"An optional reference hash sum is compared against the result; a prefix like 'sha512:' on it selects the algorithm.",
		Args:    cobra.RangeArgs(1, 2),
		PreRunE: applyConfigDefaults(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			osType, err := hashfetch.DetectOS()
			if err != nil {
				return err
			}
			algo, err := hashfetch.ParseAlgorithm(algoName)
			if err != nil {
				return err
			}

			rawURL := args[0]
			if !hashfetch.IsValidURL(rawURL) {
				return fmt.Errorf("invalid URL %q: expected an http(s) URL with a host, e.g. https://example.com/file.tar.gz", rawURL)
			}

			var ref *hashfetch.HashIdentifier
			if len(args) == 2 {
				id, err := hashfetch.ParseHash(args[1])
				if err != nil {
					return err
				}
				ref = &id
				if id.Algorithm != nil {
					algo = *id.Algorithm
				}
			}

			outDir := output
			if outDir == "" {
				outDir, err = hashfetch.DownloadDir()
				if err != nil {
					return err
				}
			}
			if fi, err := os.Stat(outDir); err != nil || !fi.IsDir() {
				return fmt.Errorf("invalid output target %q: not an existing directory", outDir)
			}

			if rename != "" {
				if err := hashfetch.ValidateFilename(osType, rename); err != nil {
					return fmt.Errorf("invalid filename for --rename: %w", err)
				}
			}

			var bar *pb.ProgressBar
			var spin *tui.Spinner
			stopUI := func() {
				if bar != nil {
					bar.Finish()
					bar = nil
				}
				if spin != nil {
					spin.Stop()
					spin = nil
				}
			}
			defer stopUI()

			outcome, err := hashfetch.Download(cmd.Context(), hashfetch.Request{
				URL:            rawURL,
				OutputDir:      outDir,
				RenameTo:       rename,
				Algorithm:      algo,
				OS:             osType,
				PromptFilename: func() (string, error) { return promptFilename(osType) },
				OnSize: func(info hashfetch.SizeInfo, filename string) {
					slog.Info("starting download", "url", rawURL, "file", filename, "size", info.Total)
					fmt.Printf("Downloading %q\n", filename)
					if info.State == hashfetch.SizeKnown && tui.Interactive() {
						bar = tui.NewByteBar(info.Total)
					} else {
						spin = tui.NewSpinner("Download in progress...")
					}
				},
				Progress: func(written int64) {
					if bar != nil {
						bar.SetCurrent(written)
					} else if spin != nil {
						spin.SetMessage("Download in progress... " + hashfetch.HumanBytes(written))
					}
				},
			})
			stopUI()
			if err != nil {
				return err
			}

			fmt.Printf("Download done in   : %s (%s)\n",
				hashfetch.FormatDuration(outcome.Elapsed), hashfetch.HumanBytes(outcome.BytesWritten))

			res := commandResult{
				Source:    outcome.Path,
				SaveName:  outcome.FileName,
				Algorithm: algo,
				Digest:    outcome.HexDigest,
				Save:      save,
			}
			if ref != nil {
				res.Compare = &compareResult{
					Matches:   hashfetch.HashEqual(ref.Hex, outcome.HexDigest),
					Reference: ref.Hex,
				}
			}
			return res.process(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&algoName, "algorithm", "a", "sha2-256",
		"hash algorithm: "+strings.Join(hashfetch.AlgorithmNames(), "|"))
	cmd.Flags().StringVarP(&output, "output", "o", "", "existing directory to download into (default: the user's download folder)")
	cmd.Flags().StringVarP(&rename, "rename", "r", "", "save the download under this name instead of the server-supplied one")
	cmd.Flags().BoolVarP(&save, "save", "s", false, "save the hash sum to a file in the app data directory")
	return cmd
}

// promptFilename asks the user for a filename when the server response did
// not yield one, looping until the input is legal on the host OS.
func promptFilename(osType hashfetch.OS) (string, error) {
	warnColor.Println("Could not determine a filename from the server response.")
	fmt.Println("Please enter a name for the file to be downloaded:")

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\t--> ")
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		name := strings.TrimSpace(sc.Text())
		if err := hashfetch.ValidateFilename(osType, name); err != nil {
			warnColor.Printf("Invalid filename: %v\n", err)
			continue
		}
		return name, nil
	}
}
