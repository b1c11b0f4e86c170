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
// github.com:SymbolNotFound/goxxh/xxh32/xxh32.go

// Package xxh32 implements the classic seeded 32-bit hash.  It consumes
// input in 16-byte blocks across four rotating lanes, with a byte-level
// finalizer for the tail.
package xxh32

import (
	"encoding/binary"
	"errors"
	"hash"
	"math/bits"
)

// ErrMalformedDigest reports a canonical digest of the wrong length.
var ErrMalformedDigest = errors.New("xxh32: malformed canonical digest")

const (
	PRIME32_1 = 0x9E3779B1
	PRIME32_2 = 0x85EBCA77
	PRIME32_3 = 0xC2B2AE3D
	PRIME32_4 = 0x27D4EB2F
	PRIME32_5 = 0x165667B1

	// BLOCK_LEN bytes feed the four lanes per round.
	BLOCK_LEN = 16

	// DIGEST_BYTES is the canonical digest length.
	DIGEST_BYTES = 4
)

// Sum32 returns the 32-bit hash of b personalized by seed.
func Sum32(b []byte, seed uint32) uint32 {
	ln := len(b)
	var h uint32
	if ln >= BLOCK_LEN {
		v1 := seed + PRIME32_1 + PRIME32_2
		v2 := seed + PRIME32_2
		v3 := seed
		v4 := seed - PRIME32_1
		for len(b) >= BLOCK_LEN {
			v1 = round(v1, binary.LittleEndian.Uint32(b))
			v2 = round(v2, binary.LittleEndian.Uint32(b[4:]))
			v3 = round(v3, binary.LittleEndian.Uint32(b[8:]))
			v4 = round(v4, binary.LittleEndian.Uint32(b[12:]))
			b = b[BLOCK_LEN:]
		}
		h = bits.RotateLeft32(v1, 1) + bits.RotateLeft32(v2, 7) +
			bits.RotateLeft32(v3, 12) + bits.RotateLeft32(v4, 18)
	} else {
		h = seed + PRIME32_5
	}
	h += uint32(ln)
	return finalize(h, b)
}

func round(acc, input uint32) uint32 {
	acc += input * PRIME32_2
	return bits.RotateLeft32(acc, 13) * PRIME32_1
}

func finalize(h uint32, tail []byte) uint32 {
	for len(tail) >= 4 {
		h += binary.LittleEndian.Uint32(tail) * PRIME32_3
		h = bits.RotateLeft32(h, 17) * PRIME32_4
		tail = tail[4:]
	}
	for _, c := range tail {
		h += uint32(c) * PRIME32_5
		h = bits.RotateLeft32(h, 11) * PRIME32_1
	}
	h ^= h >> 15
	h *= PRIME32_2
	h ^= h >> 13
	h *= PRIME32_3
	h ^= h >> 16
	return h
}

// Hasher computes the hash incrementally.  Any split of the input across
// Write calls produces the same digest as Sum32 over the concatenation.
type Hasher struct {
	v1, v2, v3, v4 uint32
	total          uint64
	mem            [BLOCK_LEN]byte
	n              int
	seed           uint32
}

var _ hash.Hash32 = (*Hasher)(nil)

// New returns a streaming hasher with seed zero.
func New() *Hasher {
	return NewSeed(0)
}

// NewSeed returns a streaming hasher personalized by seed.
func NewSeed(seed uint32) *Hasher {
	h := &Hasher{seed: seed}
	h.Reset()
	return h
}

// Reset restarts the hasher, keeping its seed.
func (h *Hasher) Reset() {
	h.v1 = h.seed + PRIME32_1 + PRIME32_2
	h.v2 = h.seed + PRIME32_2
	h.v3 = h.seed
	h.v4 = h.seed - PRIME32_1
	h.total = 0
	h.n = 0
}

// ResetSeed restarts the hasher with a new seed.
func (h *Hasher) ResetSeed(seed uint32) {
	h.seed = seed
	h.Reset()
}

// Write absorbs p.  It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	h.total += uint64(n)

	if h.n+len(p) < BLOCK_LEN {
		h.n += copy(h.mem[h.n:], p)
		return n, nil
	}
	if h.n > 0 {
		c := copy(h.mem[h.n:], p)
		p = p[c:]
		h.block(h.mem[:])
		h.n = 0
	}
	for len(p) >= BLOCK_LEN {
		h.block(p[:BLOCK_LEN])
		p = p[BLOCK_LEN:]
	}
	h.n = copy(h.mem[:], p)
	return n, nil
}

func (h *Hasher) block(b []byte) {
	h.v1 = round(h.v1, binary.LittleEndian.Uint32(b))
	h.v2 = round(h.v2, binary.LittleEndian.Uint32(b[4:]))
	h.v3 = round(h.v3, binary.LittleEndian.Uint32(b[8:]))
	h.v4 = round(h.v4, binary.LittleEndian.Uint32(b[12:]))
}

// Sum32 returns the digest of everything written so far without
// altering the state.
func (h *Hasher) Sum32() uint32 {
	var res uint32
	if h.total >= BLOCK_LEN {
		res = bits.RotateLeft32(h.v1, 1) + bits.RotateLeft32(h.v2, 7) +
			bits.RotateLeft32(h.v3, 12) + bits.RotateLeft32(h.v4, 18)
	} else {
		res = h.seed + PRIME32_5
	}
	res += uint32(h.total)
	return finalize(res, h.mem[:h.n])
}

// Sum appends the canonical big-endian digest to b.
func (h *Hasher) Sum(b []byte) []byte {
	d := Canonical(h.Sum32())
	return append(b, d[:]...)
}

// Size returns the digest length in bytes.
func (h *Hasher) Size() int { return DIGEST_BYTES }

// BlockSize returns the lane block length.
func (h *Hasher) BlockSize() int { return BLOCK_LEN }

// Canonical returns the canonical big-endian encoding of a digest.
func Canonical(v uint32) [DIGEST_BYTES]byte {
	var out [DIGEST_BYTES]byte
	binary.BigEndian.PutUint32(out[:], v)
	return out
}

// FromCanonical decodes a canonical 4-byte digest.
func FromCanonical(b []byte) (uint32, error) {
	if len(b) != DIGEST_BYTES {
		return 0, ErrMalformedDigest
	}
	return binary.BigEndian.Uint32(b), nil
}
