// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig holds the user-configurable defaults. Every field is optional;
// explicit flags always win over configured values.
type fileConfig struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Output    string `json:"output" yaml:"output"`
	Save      *bool  `json:"save" yaml:"save"`
}

// applyConfigDefaults loads the config file and fills in any flag the user
// did not set explicitly. With no --config flag the default locations are
// probed; a missing default file is not an error, a missing explicit one is.
func applyConfigDefaults(opts *rootOpts) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		path := opts.Config
		if path == "" {
			path = findDefaultConfig()
			if path == "" {
				return nil
			}
		}

		cfg, err := loadConfigFile(path)
		if err != nil {
			return err
		}
		slog.Debug("applying config defaults", "path", path)

		setString := func(flag, value string) error {
			if value == "" {
				return nil
			}
			f := cmd.Flags().Lookup(flag)
			if f == nil || f.Changed {
				return nil
			}
			return cmd.Flags().Set(flag, value)
		}

		if err := setString("algorithm", cfg.Algorithm); err != nil {
			return err
		}
		if err := setString("output", cfg.Output); err != nil {
			return err
		}
		if cfg.Save != nil {
			if f := cmd.Flags().Lookup("save"); f != nil && !f.Changed {
				if err := cmd.Flags().Set("save", fmt.Sprintf("%t", *cfg.Save)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// findDefaultConfig probes ~/.config for hashfetch.{json,yaml,yml} and
// returns the first that exists.
func findDefaultConfig() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"hashfetch.json", "hashfetch.yaml", "hashfetch.yml"} {
		p := filepath.Join(home, ".config", name)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p
		}
	}
	return ""
}

func loadConfigFile(path string) (*fileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &fileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
		}
	}
	return cfg, nil
}
