// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package hashfetch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// downloadChunkSize is the read-buffer size for streaming a response body.
// Cancellation is checked once per chunk, so this also bounds abort latency.
const downloadChunkSize = 32 * 1024

// SizeState classifies what a server response reveals about the payload size.
type SizeState int

const (
	// SizeUnknown means no detection strategy yielded anything. Downloads
	// with an unknown size are refused outright.
	SizeUnknown SizeState = iota

	// SizeKnown means the total byte count was determined from headers.
	SizeKnown

	// SizeChunked means the server intentionally withheld the total size
	// (chunked transfer); only unbounded progress can be shown.
	SizeChunked
)

// SizeInfo is the outcome of response size detection. Total is only
// meaningful when State is SizeKnown.
type SizeInfo struct {
	State SizeState
	Total int64
}

// Request describes a single download.
type Request struct {
	// URL is the resource to fetch. Must be http or https with a host.
	URL string

	// OutputDir is the existing directory the file is saved into.
	OutputDir string

	// RenameTo overrides filename resolution when non-empty. The caller is
	// responsible for having validated it against the host OS rules.
	RenameTo string

	// Algorithm selects the digest computed over the body while streaming.
	Algorithm Algorithm

	// OS selects the filename legality rules used for sanitizing.
	OS OS

	// PromptFilename is consulted when neither the response headers nor the
	// URL yield a filename. When nil, that situation is an error.
	PromptFilename func() (string, error)

	// OnSize is called once, after the payload size is determined and the
	// destination filename resolved, before any bytes are written.
	OnSize func(info SizeInfo, filename string)

	// Progress is called after every chunk with cumulative bytes written.
	Progress func(written int64)
}

// Outcome describes a completed download.
type Outcome struct {
	// Path is the absolute path of the written file.
	Path string

	// FileName is the resolved (sanitized) file name.
	FileName string

	// BytesWritten is the total payload size written to disk.
	BytesWritten int64

	// Elapsed is the wall-clock duration of the transfer.
	Elapsed time.Duration

	// HexDigest is the lowercase-hex digest of the body, computed while
	// streaming so the content never needs a second pass.
	HexDigest string
}

// Download fetches req.URL, streams the body to disk in fixed-size chunks
// and computes the content digest on the fly.
//
// Failures are classified: *TransportError when no response was obtained,
// *ProtocolError for a non-2xx status, *IOError for local filesystem
// trouble, ErrSizeIndeterminate when the response gives no way to size the
// payload, and ErrInterrupted on cancellation. A failed or interrupted
// transfer leaves the partial file on disk for diagnosis; deleting it is
// the caller's decision. There are no internal retries.
func Download(ctx context.Context, req Request) (*Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !IsValidURL(req.URL) {
		return nil, fmt.Errorf("invalid URL %q: expected an http(s) URL with a host", req.URL)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", req.URL, err)
	}
	httpReq.Header.Set("User-Agent", "hashfetch/1")

	resp, err := newHTTPClient().Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, ErrInterrupted
		}
		return nil, &TransportError{URL: req.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProtocolError{
			URL:        req.URL,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Snippet:    bodySnippet(resp.Body),
		}
	}

	size := detectSize(resp)
	if size.State == SizeUnknown {
		return nil, ErrSizeIndeterminate
	}

	filename, err := resolveFilename(req, resp)
	if err != nil {
		return nil, err
	}

	if req.OnSize != nil {
		req.OnSize(size, filename)
	}

	dst := filepath.Join(req.OutputDir, filename)
	written, digest, elapsed, err := streamToFile(ctx, resp.Body, req.URL, dst, req.Algorithm, req.Progress)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Path:         absPath(dst),
		FileName:     filename,
		BytesWritten: written,
		Elapsed:      elapsed,
		HexDigest:    digest,
	}, nil
}

// detectSize derives the payload size from response metadata. Strategies
// are tried in order and the first usable answer wins; a strategy that
// yields nothing (absent header, zero or unparsable value) falls through
// to the next instead of failing immediately.
func detectSize(resp *http.Response) SizeInfo {
	if total, ok := parseContentLength(resp.Header.Get("Content-Length")); ok {
		return SizeInfo{State: SizeKnown, Total: total}
	}
	if info, ok := parseContentRange(resp.Header.Get("Content-Range")); ok {
		return info
	}
	if isChunked(resp) {
		return SizeInfo{State: SizeChunked}
	}
	return SizeInfo{State: SizeUnknown}
}

func parseContentLength(v string) (int64, bool) {
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// parseContentRange reads the total-size segment after the final '/' of a
// Content-Range value. A "*" total means the server intentionally withheld
// the size, which is reported as chunked rather than unknown.
func parseContentRange(v string) (SizeInfo, bool) {
	if v == "" {
		return SizeInfo{}, false
	}
	total := v[strings.LastIndex(v, "/")+1:]
	if strings.Contains(total, "*") {
		return SizeInfo{State: SizeChunked}, true
	}
	n, err := strconv.ParseInt(strings.TrimSpace(total), 10, 64)
	if err != nil || n <= 0 {
		return SizeInfo{}, false
	}
	return SizeInfo{State: SizeKnown, Total: n}, true
}

func isChunked(resp *http.Response) bool {
	for _, te := range resp.TransferEncoding {
		if strings.EqualFold(te, "chunked") {
			return true
		}
	}
	return strings.Contains(strings.ToLower(resp.Header.Get("Transfer-Encoding")), "chunked")
}

// resolveFilename picks the destination name: caller override first, then
// the response headers/URL, then the prompt collaborator.
func resolveFilename(req Request, resp *http.Response) (string, error) {
	if req.RenameTo != "" {
		return req.RenameTo, nil
	}

	// The response URL, not the request URL: after redirects they differ.
	finalURL := req.URL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	if name, ok := ExtractFilename(finalURL, resp.Header.Get("Content-Disposition"), req.OS); ok {
		return name, nil
	}

	if req.PromptFilename == nil {
		return "", fmt.Errorf("could not determine a filename from the server response")
	}
	name, err := req.PromptFilename()
	if err != nil {
		return "", err
	}
	return name, nil
}

// streamToFile copies body to dst in fixed-size chunks, feeding the digest
// engine as it goes. Cancellation is checked every iteration; the file is
// flushed and closed on every exit path, successful or not.
func streamToFile(ctx context.Context, body io.Reader, srcURL, dst string, algo Algorithm, progress func(int64)) (written int64, digest string, elapsed time.Duration, err error) {
	out, err := os.Create(dst)
	if err != nil {
		return 0, "", 0, &IOError{Op: "create", Path: absPath(dst), Err: err}
	}
	w := bufio.NewWriter(out)
	closeOut := func() {
		w.Flush()
		out.Close()
	}

	d := NewDigest(algo)
	buf := make([]byte, downloadChunkSize)
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			closeOut()
			return written, "", time.Since(start), ErrInterrupted
		default:
		}

		n, rerr := body.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				closeOut()
				return written, "", time.Since(start), &IOError{Op: "write", Path: absPath(dst), Err: werr}
			}
			d.Update(buf[:n])
			written += int64(n)
			if progress != nil {
				progress(written)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			closeOut()
			if errors.Is(rerr, context.Canceled) {
				return written, "", time.Since(start), ErrInterrupted
			}
			return written, "", time.Since(start), &TransportError{URL: srcURL, Err: fmt.Errorf("reading response body: %w", rerr)}
		}
	}

	if ferr := w.Flush(); ferr != nil {
		out.Close()
		return written, "", time.Since(start), &IOError{Op: "write", Path: absPath(dst), Err: ferr}
	}
	if cerr := out.Close(); cerr != nil {
		return written, "", time.Since(start), &IOError{Op: "write", Path: absPath(dst), Err: cerr}
	}

	return written, d.FinalizeHex(), time.Since(start), nil
}

// newHTTPClient builds the transport used for downloads: an 8s connect
// timeout, no overall deadline (transfers can be arbitrarily long), and
// redirect following left at the default.
func newHTTPClient() *http.Client {
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 8 * time.Second}).DialContext,
		MaxIdleConns:          16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{Transport: tr}
}

// bodySnippet reads a short prefix of an error response body for diagnosis.
func bodySnippet(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
