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
// github.com:SymbolNotFound/goxxh/short64.go

package goxxh

import "math/bits"

// Short inputs never touch the accumulator loop.  Each length bucket
// mixes a fixed window of the secret; the offsets are part of the wire
// contract.

func hashLen0to16_64(input, secret []byte, seed uint64) uint64 {
	ln := len(input)
	if ln > 8 {
		return hashLen9to16_64(input, secret, seed)
	}
	if ln >= 4 {
		return hashLen4to8_64(input, secret, seed)
	}
	if ln > 0 {
		return hashLen1to3_64(input, secret, seed)
	}
	return avalanche((PRIME64_1 + seed) ^ (readU64(secret, 56) ^ readU64(secret, 64)))
}

func hashLen1to3_64(input, secret []byte, seed uint64) uint64 {
	ln := len(input)
	// len = 1: combined = { input[0], 0x01, input[0], input[0] }
	// len = 2: combined = { input[1], 0x02, input[0], input[1] }
	// len = 3: combined = { input[2], 0x03, input[0], input[1] }
	c1 := uint32(input[0])
	c2 := uint32(input[ln>>1])
	c3 := uint32(input[ln-1])
	combined := c1<<16 | c2<<24 | c3 | uint32(ln)<<8
	bitflip := uint64(readU32(secret, 0)^readU32(secret, 4)) + seed
	keyed := uint64(combined) ^ bitflip
	return avalanche(keyed * PRIME64_1)
}

func hashLen4to8_64(input, secret []byte, seed uint64) uint64 {
	ln := len(input)
	seed ^= uint64(bits.ReverseBytes32(uint32(seed))) << 32
	input1 := readU32(input, 0)
	input2 := readU32(input, ln-4)
	bitflip := (readU64(secret, 8) ^ readU64(secret, 16)) - seed
	input64 := uint64(input2) + uint64(input1)<<32
	x := input64 ^ bitflip
	// rrmxmx-style mix
	x ^= bits.RotateLeft64(x, 49) ^ bits.RotateLeft64(x, 24)
	x *= 0x9FB21C651E98DF25
	x ^= (x >> 35) + uint64(ln)
	x *= 0x9FB21C651E98DF25
	return xorshift64(x, 28)
}

func hashLen9to16_64(input, secret []byte, seed uint64) uint64 {
	ln := len(input)
	bitflip1 := (readU64(secret, 24) ^ readU64(secret, 32)) + seed
	bitflip2 := (readU64(secret, 40) ^ readU64(secret, 48)) - seed
	inputLo := readU64(input, 0) ^ bitflip1
	inputHi := readU64(input, ln-8) ^ bitflip2
	acc := uint64(ln) +
		bits.ReverseBytes64(inputLo) + inputHi +
		mul128Fold64(inputLo, inputHi)
	return avalanche(acc)
}

// mix16B folds one 16-byte input window against one 16-byte secret window.
func mix16B(input []byte, inOff int, secret []byte, secOff int, seed uint64) uint64 {
	inputLo := readU64(input, inOff)
	inputHi := readU64(input, inOff+8)
	return mul128Fold64(
		inputLo^(readU64(secret, secOff)+seed),
		inputHi^(readU64(secret, secOff+8)-seed),
	)
}

func hashLen17to128_64(input, secret []byte, seed uint64) uint64 {
	ln := len(input)
	acc := uint64(ln) * PRIME64_1
	if ln > 32 {
		if ln > 64 {
			if ln > 96 {
				acc += mix16B(input, 48, secret, 96, seed)
				acc += mix16B(input, ln-64, secret, 112, seed)
			}
			acc += mix16B(input, 32, secret, 64, seed)
			acc += mix16B(input, ln-48, secret, 80, seed)
		}
		acc += mix16B(input, 16, secret, 32, seed)
		acc += mix16B(input, ln-32, secret, 48, seed)
	}
	acc += mix16B(input, 0, secret, 0, seed)
	acc += mix16B(input, ln-16, secret, 16, seed)
	return avalanche(acc)
}

func hashLen129to240_64(input, secret []byte, seed uint64) uint64 {
	ln := len(input)
	acc := uint64(ln) * PRIME64_1
	nbRounds := ln / 16
	for i := 0; i < 8; i++ {
		acc += mix16B(input, 16*i, secret, 16*i, seed)
	}
	acc = avalanche(acc)
	for i := 8; i < nbRounds; i++ {
		acc += mix16B(input, 16*i, secret, 16*(i-8)+midsizeStartOffset, seed)
	}
	acc += mix16B(input, ln-16, secret, SECRET_SIZE_MIN-midsizeLastOffset, seed)
	return avalanche(acc)
}
