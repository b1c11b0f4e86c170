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
// github.com:SymbolNotFound/goxxh/short128.go

package goxxh

import "math/bits"

// The 128-bit short kernels double their 64-bit counterparts with a
// second mixing lane and opposite bit-flip polarity for the high half.

func hashLen0to16_128(input, secret []byte, seed uint64) Uint128 {
	ln := len(input)
	if ln > 8 {
		return hashLen9to16_128(input, secret, seed)
	}
	if ln >= 4 {
		return hashLen4to8_128(input, secret, seed)
	}
	if ln > 0 {
		return hashLen1to3_128(input, secret, seed)
	}
	bitflipL := readU64(secret, 64) ^ readU64(secret, 72)
	bitflipH := readU64(secret, 80) ^ readU64(secret, 88)
	return Uint128{
		Lo: avalanche((PRIME64_1 + seed) ^ bitflipL),
		Hi: avalanche((PRIME64_2 - seed) ^ bitflipH),
	}
}

func hashLen1to3_128(input, secret []byte, seed uint64) Uint128 {
	ln := len(input)
	c1 := uint32(input[0])
	c2 := uint32(input[ln>>1])
	c3 := uint32(input[ln-1])
	combinedL := c1<<16 | c2<<24 | c3 | uint32(ln)<<8
	combinedH := bits.RotateLeft32(bits.ReverseBytes32(combinedL), 13)
	bitflipL := uint64(readU32(secret, 0)^readU32(secret, 4)) + seed
	bitflipH := uint64(readU32(secret, 8)^readU32(secret, 12)) - seed
	keyedLo := uint64(combinedL) ^ bitflipL
	keyedHi := uint64(combinedH) ^ bitflipH
	return Uint128{
		Lo: avalanche(keyedLo * PRIME64_1),
		Hi: avalanche(keyedHi * PRIME64_5),
	}
}

func hashLen4to8_128(input, secret []byte, seed uint64) Uint128 {
	ln := len(input)
	seed ^= uint64(bits.ReverseBytes32(uint32(seed))) << 32
	inputLo := readU32(input, 0)
	inputHi := readU32(input, ln-4)
	input64 := uint64(inputLo) + uint64(inputHi)<<32
	bitflip := (readU64(secret, 16) ^ readU64(secret, 24)) + seed
	keyed := input64 ^ bitflip

	// Shift len left so the added term is even and the multiplier stays
	// odd; an even multiplier would discard the low bit.
	hi, lo := bits.Mul64(keyed, PRIME64_1+uint64(ln)<<2)
	hi += lo << 1
	lo ^= hi >> 3

	lo = xorshift64(lo, 35)
	lo *= 0x9FB21C651E98DF25
	lo = xorshift64(lo, 28)
	hi = avalanche(hi)
	return Uint128{Lo: lo, Hi: hi}
}

func hashLen9to16_128(input, secret []byte, seed uint64) Uint128 {
	ln := len(input)
	bitflipL := (readU64(secret, 32) ^ readU64(secret, 40)) - seed
	bitflipH := (readU64(secret, 48) ^ readU64(secret, 56)) + seed
	inputLo := readU64(input, 0)
	inputHi := readU64(input, ln-8)
	mHi, mLo := bits.Mul64(inputLo^inputHi^bitflipL, PRIME64_1)
	// Park len in the middle so the 128x64 multiply below spreads it
	// into both halves.
	mLo += uint64(ln-1) << 54
	inputHi ^= bitflipH
	mHi += inputHi + mult32to64(uint32(inputHi), PRIME32_2-1)
	mLo ^= bits.ReverseBytes64(mHi)

	hHi, hLo := bits.Mul64(mLo, PRIME64_2)
	hHi += mHi * PRIME64_2
	return Uint128{
		Lo: avalanche(hLo),
		Hi: avalanche(hHi),
	}
}

// mix32B is a wider cousin of mix16B that keeps the raw input alive
// across the fold, so a multiply by zero cannot erase it.
func mix32B(acc Uint128, input []byte, off1, off2 int, secret []byte, secOff int, seed uint64) Uint128 {
	acc.Lo += mix16B(input, off1, secret, secOff, seed)
	acc.Lo ^= readU64(input, off2) + readU64(input, off2+8)
	acc.Hi += mix16B(input, off2, secret, secOff+16, seed)
	acc.Hi ^= readU64(input, off1) + readU64(input, off1+8)
	return acc
}

func hashLen17to128_128(input, secret []byte, seed uint64) Uint128 {
	ln := len(input)
	acc := Uint128{Lo: uint64(ln) * PRIME64_1}
	if ln > 32 {
		if ln > 64 {
			if ln > 96 {
				acc = mix32B(acc, input, 48, ln-64, secret, 96, seed)
			}
			acc = mix32B(acc, input, 32, ln-48, secret, 64, seed)
		}
		acc = mix32B(acc, input, 16, ln-32, secret, 32, seed)
	}
	acc = mix32B(acc, input, 0, ln-16, secret, 0, seed)
	return foldMidsize128(acc, uint64(ln), seed)
}

func hashLen129to240_128(input, secret []byte, seed uint64) Uint128 {
	ln := len(input)
	acc := Uint128{Lo: uint64(ln) * PRIME64_1}
	nbRounds := ln / 32
	for i := 0; i < 4; i++ {
		acc = mix32B(acc, input, 32*i, 32*i+16, secret, 32*i, seed)
	}
	acc.Lo = avalanche(acc.Lo)
	acc.Hi = avalanche(acc.Hi)
	for i := 4; i < nbRounds; i++ {
		acc = mix32B(acc, input, 32*i, 32*i+16, secret, midsizeStartOffset+32*(i-4), seed)
	}
	acc = mix32B(acc, input, ln-16, ln-32, secret, SECRET_SIZE_MIN-midsizeLastOffset-16, 0-seed)
	return foldMidsize128(acc, uint64(ln), seed)
}

func foldMidsize128(acc Uint128, ln, seed uint64) Uint128 {
	lo := acc.Lo + acc.Hi
	hi := acc.Lo*PRIME64_1 + acc.Hi*PRIME64_4 + (ln-seed)*PRIME64_2
	return Uint128{
		Lo: avalanche(lo),
		Hi: 0 - avalanche(hi),
	}
}
