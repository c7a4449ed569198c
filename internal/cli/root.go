// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

// Package cli wires the hashfetch commands: download, local and version.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hashfetch/hashfetch/internal/applog"
	"github.com/hashfetch/hashfetch/pkg/hashfetch"
)

// rootOpts holds the persistent flags shared by every command.
type rootOpts struct {
	Logging string
	Config  string
}

// Execute runs the CLI and returns the terminal error, if any. The caller
// maps the error to an exit code; ErrInterrupted in particular gets its
// own code and its notice is already printed here.
func Execute(version string) error {
	ctx, cancel := signalContext()
	defer cancel()

	opts := &rootOpts{}

	root := &cobra.Command{
		Use:           "hashfetch",
		Short:         "Download or hash files and verify their hash sums",
		Long:          "hashfetch downloads a file over HTTP(S) or hashes local files, directories and text buffers, and can compare the result against a reference hash sum.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applog.Setup(opts.Logging)
		},
	}
	root.PersistentFlags().StringVarP(&opts.Logging, "logging", "l", "", "write a log file to the app data directory: debug|info")
	root.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "path to a config file (JSON or YAML)")

	root.AddCommand(newDownloadCmd(opts))
	root.AddCommand(newLocalCmd(opts))
	root.AddCommand(newVersionCmd(version))

	err := root.ExecuteContext(ctx)
	if err != nil {
		if errors.Is(err, hashfetch.ErrInterrupted) {
			fmt.Fprintln(os.Stdout, "\nhashfetch was terminated by the user")
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
	return err
}

// signalContext returns a context canceled on SIGINT or SIGTERM. A second
// signal kills the process the usual way because the handler is removed
// once the context is done.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
