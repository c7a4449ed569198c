// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package hashfetch

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	unixFilenameRe     = regexp.MustCompile(`^[^:/\\]+$`)
	windowsFilenameRe  = regexp.MustCompile(`^[^<>:"/\\|?*]+$`)
	windowsReservedRe  = regexp.MustCompile(`^(?i:CON|PRN|AUX|NUL|COM[1-9]|LPT[1-9])(\..+)?$`)
	dispositionParamRe = regexp.MustCompile(`(?i)^\s*filename(\*)?\s*=\s*(.+)\s*$`)
)

// ValidateFilename reports whether name is legal on the given OS.
// Windows additionally forbids reserved device names (CON, COM1, ...) and
// names ending with a dot.
func ValidateFilename(osType OS, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	switch osType {
	case Windows:
		if strings.HasSuffix(name, ".") {
			return fmt.Errorf("filenames on Windows must not end with a dot")
		}
		if windowsReservedRe.MatchString(name) {
			return fmt.Errorf("%q is a reserved filename on Windows", name)
		}
		if !windowsFilenameRe.MatchString(name) {
			return fmt.Errorf("filename contains characters not allowed on Windows: %s", windowsInvalidFilenameChars)
		}
	default:
		if !unixFilenameRe.MatchString(name) {
			return fmt.Errorf("filename contains characters not allowed on %s: %s", osType, unixInvalidFilenameChars)
		}
	}
	return nil
}

// SanitizeFilename replaces every character illegal on the given OS with an
// underscore. Characters are replaced rather than dropped, so two distinct
// server-supplied names cannot collapse into the same local name.
func SanitizeFilename(osType OS, name string) string {
	invalid := osType.invalidFilenameChars()
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(invalid, r) {
			b.WriteByte('_')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ExtractFilename determines the download filename from the server
// response: Content-Disposition first, then the final path segment of the
// (redirect-followed) response URL. The result is sanitized for the given
// OS. ok is false when neither source yields a name.
func ExtractFilename(finalURL, contentDisposition string, osType OS) (name string, ok bool) {
	name = filenameFromContentDisposition(contentDisposition)
	if name == "" {
		name = filenameFromURL(finalURL)
	}
	if name == "" {
		return "", false
	}
	return SanitizeFilename(osType, decodePercentEncoded(name)), true
}

// filenameFromContentDisposition extracts a filename from a
// Content-Disposition header. Both the plain filename= parameter and the
// RFC 5987 encoded filename* parameter are supported; the encoded form
// wins when both are present.
func filenameFromContentDisposition(header string) string {
	if header == "" || !strings.HasPrefix(strings.ToLower(strings.TrimSpace(header)), "attachment") {
		return ""
	}

	var plain, encoded string
	for _, part := range strings.Split(header, ";") {
		m := dispositionParamRe.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		value := strings.Trim(m[2], ` "'`)
		if m[1] == "*" {
			// RFC 5987 form: charset'language'value
			lower := strings.ToLower(value)
			if i := strings.Index(lower, "''"); i >= 0 && strings.HasPrefix(lower, "utf-8") {
				value = value[i+2:]
			}
			encoded = value
		} else {
			plain = value
		}
	}

	if encoded != "" {
		return encoded
	}
	return plain
}

// filenameFromURL extracts the last path segment of a URL, with query
// parameters already excluded by the parser.
func filenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segs := strings.Split(u.Path, "/")
	last := segs[len(segs)-1]
	return strings.TrimSpace(last)
}

// decodePercentEncoded decodes a percent-encoded UTF-8 string, falling back
// to the raw input if it does not decode cleanly.
func decodePercentEncoded(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
