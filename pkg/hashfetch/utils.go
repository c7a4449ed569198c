// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package hashfetch

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"
)

// IsValidURL reports whether rawURL is a downloadable URL: an http or https
// scheme and a non-empty host. A missing path is treated as "/".
func IsValidURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// absPath returns path as an absolute path, or the input unchanged when it
// cannot be resolved.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// HumanBytes renders a byte count in binary units, e.g. "2.00 KiB".
func HumanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for n/div >= unit && exp < 3 {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(n)/float64(div), "KMGT"[exp])
}

// FormatDuration renders an elapsed duration with second resolution,
// e.g. "1m 7s"; durations under a second render as "< 1s".
func FormatDuration(d time.Duration) string {
	secs := int64(d.Seconds())
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	remaining := secs % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, remaining)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, remaining)
	case remaining < 1:
		return "< 1s"
	default:
		return fmt.Sprintf("%ds", remaining)
	}
}
