// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

package hashfetch

import "testing"

// Empty-input digests for every supported algorithm, from the FIPS 180-4
// and FIPS 202 reference values.
var emptyDigests = map[Algorithm]string{
	SHA2_224: "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f",
	SHA2_256: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	SHA2_384: "38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b",
	SHA2_512: "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
	SHA3_224: "6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7",
	SHA3_256: "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
	SHA3_384: "0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004",
	SHA3_512: "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26",
}

func TestDigestEmptyInput(t *testing.T) {
	for algo, want := range emptyDigests {
		d := NewDigest(algo)
		if got := d.FinalizeHex(); got != want {
			t.Errorf("%v empty digest = %s, want %s", algo, got, want)
		}
	}
}

func TestDigestKnownVector(t *testing.T) {
	const want = "a591a6d40bf420404a011733cfb7b190d62c65bf0bcda32b57b277d9ad9f146e"

	d := NewDigest(SHA2_256)
	d.Update([]byte("Hello World"))
	if got := d.FinalizeHex(); got != want {
		t.Errorf("SHA2-256(\"Hello World\") = %s, want %s", got, want)
	}
}

func TestDigestChunkingIrrelevant(t *testing.T) {
	// Feeding input in pieces must match feeding it at once.
	whole := NewDigest(SHA3_384)
	whole.Update([]byte("Hello World"))

	pieces := NewDigest(SHA3_384)
	pieces.Update([]byte("Hello"))
	pieces.Update([]byte(" "))
	pieces.Update([]byte("World"))

	a, b := whole.FinalizeHex(), pieces.FinalizeHex()
	if a != b {
		t.Errorf("chunked digest %s != whole digest %s", b, a)
	}
}

func TestSumHex(t *testing.T) {
	d := NewDigest(SHA2_512)
	d.Update([]byte("Hello World"))
	if got, want := SumHex([]byte("Hello World"), SHA2_512), d.FinalizeHex(); got != want {
		t.Errorf("SumHex = %s, want %s", got, want)
	}
}

func TestDigestAlgorithm(t *testing.T) {
	if got := NewDigest(SHA3_224).Algorithm(); got != SHA3_224 {
		t.Errorf("Algorithm() = %v, want SHA3-224", got)
	}
}
