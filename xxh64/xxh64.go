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
// github.com:SymbolNotFound/goxxh/xxh64/xxh64.go

// Package xxh64 implements the classic seeded 64-bit hash: four 64-bit
// lanes over 32-byte blocks, a lane merge, and a byte-level finalizer.
package xxh64

import (
	"encoding/binary"
	"errors"
	"hash"
	"math/bits"
)

const (
	PRIME64_1 = 0x9E3779B185EBCA87
	PRIME64_2 = 0xC2B2AE3D27D4EB4F
	PRIME64_3 = 0x165667B19E3779F9
	PRIME64_4 = 0x85EBCA77C2B2AE63
	PRIME64_5 = 0x27D4EB2F165667C5

	// BLOCK_LEN bytes feed the four lanes per round.
	BLOCK_LEN = 32

	// DIGEST_BYTES is the canonical digest length.
	DIGEST_BYTES = 8
)

// ErrMalformedDigest reports a canonical digest of the wrong length.
var ErrMalformedDigest = errors.New("xxh64: malformed canonical digest")

// Sum64 returns the 64-bit hash of b personalized by seed.
func Sum64(b []byte, seed uint64) uint64 {
	ln := len(b)
	var h uint64
	if ln >= BLOCK_LEN {
		v1 := seed + PRIME64_1 + PRIME64_2
		v2 := seed + PRIME64_2
		v3 := seed
		v4 := seed - PRIME64_1
		for len(b) >= BLOCK_LEN {
			v1 = round(v1, binary.LittleEndian.Uint64(b))
			v2 = round(v2, binary.LittleEndian.Uint64(b[8:]))
			v3 = round(v3, binary.LittleEndian.Uint64(b[16:]))
			v4 = round(v4, binary.LittleEndian.Uint64(b[24:]))
			b = b[BLOCK_LEN:]
		}
		h = bits.RotateLeft64(v1, 1) + bits.RotateLeft64(v2, 7) +
			bits.RotateLeft64(v3, 12) + bits.RotateLeft64(v4, 18)
		h = mergeRound(h, v1)
		h = mergeRound(h, v2)
		h = mergeRound(h, v3)
		h = mergeRound(h, v4)
	} else {
		h = seed + PRIME64_5
	}
	h += uint64(ln)
	return finalize(h, b)
}

func round(acc, input uint64) uint64 {
	acc += input * PRIME64_2
	return bits.RotateLeft64(acc, 31) * PRIME64_1
}

func mergeRound(h, v uint64) uint64 {
	h ^= round(0, v)
	return h*PRIME64_1 + PRIME64_4
}

func finalize(h uint64, tail []byte) uint64 {
	for len(tail) >= 8 {
		h ^= round(0, binary.LittleEndian.Uint64(tail))
		h = bits.RotateLeft64(h, 27)*PRIME64_1 + PRIME64_4
		tail = tail[8:]
	}
	if len(tail) >= 4 {
		h ^= uint64(binary.LittleEndian.Uint32(tail)) * PRIME64_1
		h = bits.RotateLeft64(h, 23)*PRIME64_2 + PRIME64_3
		tail = tail[4:]
	}
	for _, c := range tail {
		h ^= uint64(c) * PRIME64_5
		h = bits.RotateLeft64(h, 11) * PRIME64_1
	}
	h ^= h >> 33
	h *= PRIME64_2
	h ^= h >> 29
	h *= PRIME64_3
	h ^= h >> 32
	return h
}

// Hasher computes the hash incrementally.  Any split of the input across
// Write calls produces the same digest as Sum64 over the concatenation.
type Hasher struct {
	v1, v2, v3, v4 uint64
	total          uint64
	mem            [BLOCK_LEN]byte
	n              int
	seed           uint64
}

var _ hash.Hash64 = (*Hasher)(nil)

// New returns a streaming hasher with seed zero.
func New() *Hasher {
	return NewSeed(0)
}

// NewSeed returns a streaming hasher personalized by seed.
func NewSeed(seed uint64) *Hasher {
	h := &Hasher{seed: seed}
	h.Reset()
	return h
}

// Reset restarts the hasher, keeping its seed.
func (h *Hasher) Reset() {
	h.v1 = h.seed + PRIME64_1 + PRIME64_2
	h.v2 = h.seed + PRIME64_2
	h.v3 = h.seed
	h.v4 = h.seed - PRIME64_1
	h.total = 0
	h.n = 0
}

// ResetSeed restarts the hasher with a new seed.
func (h *Hasher) ResetSeed(seed uint64) {
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
	h.v1 = round(h.v1, binary.LittleEndian.Uint64(b))
	h.v2 = round(h.v2, binary.LittleEndian.Uint64(b[8:]))
	h.v3 = round(h.v3, binary.LittleEndian.Uint64(b[16:]))
	h.v4 = round(h.v4, binary.LittleEndian.Uint64(b[24:]))
}

// Sum64 returns the digest of everything written so far without
// altering the state.
func (h *Hasher) Sum64() uint64 {
	var res uint64
	if h.total >= BLOCK_LEN {
		res = bits.RotateLeft64(h.v1, 1) + bits.RotateLeft64(h.v2, 7) +
			bits.RotateLeft64(h.v3, 12) + bits.RotateLeft64(h.v4, 18)
		res = mergeRound(res, h.v1)
		res = mergeRound(res, h.v2)
		res = mergeRound(res, h.v3)
		res = mergeRound(res, h.v4)
	} else {
		res = h.seed + PRIME64_5
	}
	res += h.total
	return finalize(res, h.mem[:h.n])
}

// Sum appends the canonical big-endian digest to b.
func (h *Hasher) Sum(b []byte) []byte {
	d := Canonical(h.Sum64())
	return append(b, d[:]...)
}

// Size returns the digest length in bytes.
func (h *Hasher) Size() int { return DIGEST_BYTES }

// BlockSize returns the lane block length.
func (h *Hasher) BlockSize() int { return BLOCK_LEN }

// Canonical returns the canonical big-endian encoding of a digest.
func Canonical(v uint64) [DIGEST_BYTES]byte {
	var out [DIGEST_BYTES]byte
	binary.BigEndian.PutUint64(out[:], v)
	return out
}

// FromCanonical decodes a canonical 8-byte digest.
func FromCanonical(b []byte) (uint64, error) {
	if len(b) != DIGEST_BYTES {
		return 0, ErrMalformedDigest
	}
	return binary.BigEndian.Uint64(b), nil
}
