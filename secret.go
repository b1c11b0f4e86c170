// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:SymbolNotFound/goxxh/secret.go

package goxxh

// The default secret, a fixed block of pseudorandom key material.  The
// short-length kernels and the long-input loop sample it at fixed offsets,
// so these bytes are part of the wire contract and must never change.
var kSecret = [SECRET_DEFAULT_SIZE]byte{
	0xb8, 0xfe, 0x6c, 0x39, 0x23, 0xa4, 0x4b, 0xbe, 0x7c, 0x01, 0x81, 0x2c, 0xf7, 0x21, 0xad, 0x1c,
	0xde, 0xd4, 0x6d, 0xe9, 0x83, 0x90, 0x97, 0xdb, 0x72, 0x40, 0xa4, 0xa4, 0xb7, 0xb3, 0x67, 0x1f,
	0xcb, 0x79, 0xe6, 0x4e, 0xcc, 0xc0, 0xe5, 0x78, 0x82, 0x5a, 0xd0, 0x7d, 0xcc, 0xff, 0x72, 0x21,
	0xb8, 0x08, 0x46, 0x74, 0xf7, 0x43, 0x24, 0x8e, 0xe0, 0x35, 0x90, 0xe6, 0x81, 0x3a, 0x26, 0x4c,
	0x3c, 0x28, 0x52, 0xbb, 0x91, 0xc3, 0x00, 0xcb, 0x88, 0xd0, 0x65, 0x8b, 0x1b, 0x53, 0x2e, 0xa3,
	0x71, 0x64, 0x48, 0x97, 0xa2, 0x0d, 0xf9, 0x4e, 0x38, 0x19, 0xef, 0x46, 0xa9, 0xde, 0xac, 0xd8,
	0xa8, 0xfa, 0x76, 0x3f, 0xe3, 0x9c, 0x34, 0x3f, 0xf9, 0xdc, 0xbb, 0xc7, 0xc7, 0x0b, 0x4f, 0x1d,
	0x8a, 0x51, 0xe0, 0x4b, 0xcd, 0xb4, 0x59, 0x31, 0xc8, 0x9f, 0x7e, 0xc9, 0xd9, 0x78, 0x73, 0x64,
	0xea, 0xc5, 0xac, 0x83, 0x34, 0xd3, 0xeb, 0xc3, 0xc5, 0x81, 0xa0, 0xff, 0xfa, 0x13, 0x63, 0xeb,
	0x17, 0x0d, 0xdd, 0x51, 0xb7, 0xf0, 0xda, 0x49, 0xd3, 0x16, 0x55, 0x26, 0x29, 0xd4, 0x68, 0x9e,
	0x2b, 0x16, 0xbe, 0x58, 0x7d, 0x47, 0xa1, 0xfc, 0x8f, 0xf8, 0xb8, 0xd1, 0x7a, 0xd0, 0x31, 0xce,
	0x45, 0xcb, 0x3a, 0x8f, 0x95, 0x16, 0x04, 0x28, 0xaf, 0xd7, 0xfb, 0xca, 0xbb, 0x4b, 0x40, 0x7e,
}

// checkSecret validates caller-supplied key material.  Any alignment and
// any length at or above SECRET_SIZE_MIN is acceptable.
func checkSecret(secret []byte) error {
	if len(secret) < SECRET_SIZE_MIN {
		return ErrInvalidInput
	}
	return nil
}

// DeriveSecret expands a numeric seed into the full-size secret the
// seeded variants use internally on long inputs.  Hashing a long input
// with this secret is identical to hashing it with the seed.
func DeriveSecret(seed uint64) [SECRET_DEFAULT_SIZE]byte {
	var out [SECRET_DEFAULT_SIZE]byte
	deriveSecret(&out, seed)
	return out
}

// GenerateSecret derives a full-size secret from arbitrary seed bytes.
// The result is deterministic in the seed.  An empty seed yields the
// default secret verbatim.  Use this when the caller wants the strength
// of a custom secret without supplying 136+ bytes of entropy directly.
func GenerateSecret(seed []byte) [SECRET_DEFAULT_SIZE]byte {
	var out [SECRET_DEFAULT_SIZE]byte
	if len(seed) == 0 {
		copy(out[:], kSecret[:])
		return out
	}

	// Twelve 16-byte segments, each the canonical form of a 128-bit
	// digest of the seed.  The first segment is keyed with zero; segment
	// n is keyed with the n-th 64-bit word of the seed material (repeated
	// to fill one word per segment) plus n.
	const nbSegments = SECRET_DEFAULT_SIZE / 16
	var pool [nbSegments * 8]byte
	filled := copy(pool[:], seed)
	for filled < len(pool) {
		filled += copy(pool[filled:], pool[:filled])
	}

	scrambler := Sum128Seed(seed, 0).Bytes()
	copy(out[:16], scrambler[:])
	for n := 1; n < nbSegments; n++ {
		segment := Sum128Seed(seed, readU64(pool[:], 8*n)+uint64(n)).Bytes()
		copy(out[16*n:], segment[:])
	}
	return out
}
