// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package hashfetch

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// OS identifies an operating system with known filename rules.
type OS int

const (
	Linux OS = iota
	MacOS
	Windows
)

// Invalid filename characters per OS family.
const (
	unixInvalidFilenameChars    = `:/\`
	windowsInvalidFilenameChars = `<>:"/\|?*`
)

func (o OS) String() string {
	switch o {
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	case Windows:
		return "windows"
	default:
		return fmt.Sprintf("OS(%d)", int(o))
	}
}

// DetectOS identifies the host operating system. Running on anything other
// than Linux, macOS or Windows is an error, since the filename rules and
// the default download directory would be unknown.
func DetectOS() (OS, error) {
	switch runtime.GOOS {
	case "linux":
		return Linux, nil
	case "darwin":
		return MacOS, nil
	case "windows":
		return Windows, nil
	default:
		return Linux, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// invalidFilenameChars returns the set of characters that are illegal in a
// filename on the given OS.
func (o OS) invalidFilenameChars() string {
	if o == Windows {
		return windowsInvalidFilenameChars
	}
	return unixInvalidFilenameChars
}

// DownloadDir returns the user's download folder for the host OS.
func DownloadDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user home directory: %w", err)
	}
	return filepath.Join(home, "Downloads"), nil
}
