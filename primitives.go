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
// github.com:SymbolNotFound/goxxh/primitives.go

package goxxh

import (
	"encoding/binary"
	"math/bits"
)

// Prime constants shared across the hash family.  The accumulator lanes
// are seeded from these and the scrambler multiplies by PRIME32_1.
const (
	PRIME32_1 = 0x9E3779B1
	PRIME32_2 = 0x85EBCA77
	PRIME32_3 = 0xC2B2AE3D
	PRIME32_4 = 0x27D4EB2F
	PRIME32_5 = 0x165667B1

	PRIME64_1 = 0x9E3779B185EBCA87
	PRIME64_2 = 0xC2B2AE3D27D4EB4F
	PRIME64_3 = 0x165667B19E3779F9
	PRIME64_4 = 0x85EBCA77C2B2AE63
	PRIME64_5 = 0x27D4EB2F165667C5
)

// All byte-order awareness in the package lives in these loads and stores.
// Everything above them treats input as a little-endian byte stream, no
// matter the host.

func readU32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off:])
}

func readU64(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off:])
}

func writeU64(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:], v)
}

// mult32to64 widens both operands and returns the full 64-bit product.
func mult32to64(x, y uint32) uint64 {
	return uint64(x) * uint64(y)
}

// mul128Fold64 folds the full 128-bit product of a and b down to 64 bits
// with an XOR of its halves.
func mul128Fold64(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

func xorshift64(v uint64, shift uint) uint64 {
	return v ^ (v >> shift)
}

// avalanche is the final mix applied to short hash results.  Short inputs
// are already fairly well distributed, so this is lighter than the
// classic 64-bit finalizer.
func avalanche(h uint64) uint64 {
	h = xorshift64(h, 37)
	h *= 0x165667919E3779F9
	h = xorshift64(h, 32)
	return h
}
