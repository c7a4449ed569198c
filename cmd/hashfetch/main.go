// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"os"

	"github.com/hashfetch/hashfetch/internal/cli"
	"github.com/hashfetch/hashfetch/pkg/hashfetch"
)

// Version is set at build time via ldflags
var Version = "1.0.0-dev"

func main() {
	if err := cli.Execute(Version); err != nil {
		if errors.Is(err, hashfetch.ErrInterrupted) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
