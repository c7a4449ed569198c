// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

/*
Package hashfetch computes streaming digests over downloaded or local
content and verifies them against user-supplied reference hashes.

# Features

  - Eight selectable algorithms: SHA2-224/256/384/512 and SHA3-224/256/384/512
  - Streaming digests: arbitrarily large inputs in fixed-size chunks
  - Deterministic directory hashing: same contents, same digest, on any
    filesystem, with optional name folding
  - Download pipeline: size detection, filename resolution, progress
    callbacks, classified failures
  - Context cancellation: checked at chunk granularity everywhere

# Hashing local content

	sum, err := hashfetch.HashFile("archive.tar.gz", hashfetch.SHA2_256, false)

	sum, err = hashfetch.HashDirectory("dataset/", hashfetch.SHA3_512, true)

	sum = hashfetch.HashBuffer([]byte("Hello World"), hashfetch.SHA2_256)

# Downloading

	out, err := hashfetch.Download(ctx, hashfetch.Request{
		URL:       "https://example.com/release.tar.gz",
		OutputDir: "/tmp",
		Algorithm: hashfetch.SHA2_256,
		OS:        hashfetch.Linux,
	})
	if err == nil {
		fmt.Println(out.HexDigest)
	}

The body digest is computed while streaming, so downloaded content never
needs a second read pass.

# Verifying

	id, err := hashfetch.ParseHash("sha256:a591a6d4...")
	match := hashfetch.HashEqual(id.Hex, out.HexDigest)

A prefix on the reference hash ("sha256:", "sha3-512:", ...) selects the
algorithm and overrides any separately configured one.
*/
package hashfetch
