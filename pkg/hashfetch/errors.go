// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package hashfetch

import (
	"errors"
	"fmt"
)

// Common errors returned by the library.
var (
	// ErrEmptyHash is returned when a reference hash is empty or whitespace.
	ErrEmptyHash = errors.New("an empty hash is not allowed")

	// ErrHashFormat is returned when a reference hash is not a well-formed
	// hex digest (non-hex characters or an odd number of digits).
	ErrHashFormat = errors.New("the specified hash is not a valid hexadecimal digest")

	// ErrUnknownPrefix is returned when a reference hash carries an
	// algorithm prefix that does not resolve to a supported algorithm.
	ErrUnknownPrefix = errors.New("unknown algorithm prefix (e.g. use 'sha256' for SHA2-256)")

	// ErrUnknownAlgorithm is returned for an unsupported algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

	// ErrSizeIndeterminate is returned when a server response gives no way
	// to size the download (no usable Content-Length, Content-Range or
	// chunked Transfer-Encoding).
	ErrSizeIndeterminate = errors.New("the server response did not provide any way to determine the file size; check the server or try another source")

	// ErrInterrupted is returned when an operation is canceled by the user.
	ErrInterrupted = errors.New("interrupted by user")
)

// TransportError indicates that no HTTP response was obtained at all
// (connection refused, DNS failure, timeout).
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("download failed: transport error for %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError indicates a response was obtained but signals failure
// (non-2xx status). Snippet holds the start of the response body, if any.
type ProtocolError struct {
	URL        string
	StatusCode int
	Status     string
	Snippet    string
}

func (e *ProtocolError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("download failed: HTTP %s: %s", e.Status, e.Snippet)
	}
	return fmt.Sprintf("download failed: HTTP %s", e.Status)
}

// IOError indicates a local filesystem failure. Path is always absolute
// when the offending path could be resolved.
type IOError struct {
	Op   string // "create", "read", "write", "open"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
