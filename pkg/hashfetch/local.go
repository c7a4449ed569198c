// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package hashfetch

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// hashChunkSize is the read-buffer size for streaming local content.
const hashChunkSize = 64 * 1024

// HashBuffer computes the lowercase-hex digest of an in-memory buffer.
func HashBuffer(data []byte, algo Algorithm) string {
	return SumHex(data, algo)
}

// HashFile computes the digest of a single file, streamed in fixed-size
// chunks. With includeName the file's base name is fed into the digest
// before any content bytes; that ordering is part of what the digest means.
func HashFile(path string, algo Algorithm, includeName bool) (string, error) {
	return hashFile(context.Background(), path, algo, includeName)
}

// HashDirectory computes the digest of an entire directory tree. Entries
// are visited in lexical path order regardless of how the filesystem
// enumerates them, so the same contents always produce the same digest.
// With includeNames the root's base name is fed first, then each entry's
// slash-separated path relative to the root before its content; directories
// contribute their relative path only.
func HashDirectory(root string, algo Algorithm, includeNames bool) (string, error) {
	return hashDirectory(context.Background(), root, algo, includeNames)
}

// HashPath hashes a file or directory on a worker goroutine so the caller
// can drive a progress indicator concurrently. It blocks until the single
// terminal result arrives. Cancellation is honored at chunk granularity;
// a canceled run reports ErrInterrupted and discards the partial digest.
func HashPath(ctx context.Context, path string, algo Algorithm, includeNames bool) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	fi, err := os.Stat(path)
	if err != nil {
		return "", &IOError{Op: "open", Path: absPath(path), Err: err}
	}

	type result struct {
		sum string
		err error
	}
	ch := make(chan result, 1)

	go func() {
		var sum string
		var err error
		if fi.IsDir() {
			sum, err = hashDirectory(ctx, path, algo, includeNames)
		} else {
			sum, err = hashFile(ctx, path, algo, includeNames)
		}
		ch <- result{sum: sum, err: err}
	}()

	select {
	case res := <-ch:
		return res.sum, res.err
	case <-ctx.Done():
		// The worker notices cancellation at its next chunk boundary.
		res := <-ch
		if res.err != nil {
			return "", res.err
		}
		return "", ErrInterrupted
	}
}

func hashFile(ctx context.Context, path string, algo Algorithm, includeName bool) (string, error) {
	d := NewDigest(algo)
	if includeName {
		d.Update([]byte(filepath.Base(path)))
	}
	if err := hashFileContent(ctx, d, path); err != nil {
		return "", err
	}
	return d.FinalizeHex(), nil
}

func hashDirectory(ctx context.Context, root string, algo Algorithm, includeNames bool) (string, error) {
	d := NewDigest(algo)
	if includeNames {
		d.Update([]byte(filepath.Base(filepath.Clean(root))))
	}

	err := fs.WalkDir(os.DirFS(root), ".", func(rel string, entry fs.DirEntry, err error) error {
		if err != nil {
			return &IOError{Op: "read", Path: absPath(filepath.Join(root, filepath.FromSlash(rel))), Err: err}
		}
		if rel == "." {
			return nil
		}
		if ctx.Err() != nil {
			return ErrInterrupted
		}
		if includeNames {
			// Always the slash-separated path relative to the root, so the
			// digest is portable across filesystems and platforms.
			d.Update([]byte(rel))
		}
		if entry.Type().IsRegular() {
			return hashFileContent(ctx, d, filepath.Join(root, filepath.FromSlash(rel)))
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return d.FinalizeHex(), nil
}

func hashFileContent(ctx context.Context, d *Digest, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &IOError{Op: "open", Path: absPath(path), Err: err}
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, hashChunkSize)
	buf := make([]byte, hashChunkSize)
	for {
		if ctx.Err() != nil {
			return ErrInterrupted
		}
		n, rerr := r.Read(buf)
		if n > 0 {
			d.Update(buf[:n])
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return &IOError{Op: "read", Path: absPath(path), Err: rerr}
		}
	}
}
