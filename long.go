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
// github.com:SymbolNotFound/goxxh/long.go

package goxxh

// Inputs above MIDSIZE_MAX run an 8-lane accumulator over 64-byte
// stripes.  Stripes are grouped into blocks sized by the secret; each
// block ends in a scramble that breaks up linear accumulation bias.

// initAcc returns the accumulator starting state.  The lane order is
// fixed by the wire contract.
func initAcc() [ACC_LANES]uint64 {
	return [ACC_LANES]uint64{
		PRIME32_3, PRIME64_1, PRIME64_2, PRIME64_3,
		PRIME64_4, PRIME32_2, PRIME64_5, PRIME32_1,
	}
}

// accumulateScalar512 consumes one stripe.  In 128-bit mode the raw data
// lands in the adjacent lane so the two output halves cross-pollinate.
func accumulateScalar512(acc *[ACC_LANES]uint64, input, secret []byte, wide128 bool) {
	for i := 0; i < ACC_LANES; i++ {
		dataVal := readU64(input, 8*i)
		dataKey := dataVal ^ readU64(secret, 8*i)
		if wide128 {
			acc[i^1] += dataVal
		} else {
			acc[i] += dataVal
		}
		acc[i] += mult32to64(uint32(dataKey), uint32(dataKey>>32))
	}
}

// scrambleScalar remixes every lane with the tail of the secret.
func scrambleScalar(acc *[ACC_LANES]uint64, secret []byte) {
	for i := 0; i < ACC_LANES; i++ {
		key64 := readU64(secret, 8*i)
		acc64 := xorshift64(acc[i], 47)
		acc64 ^= key64
		acc64 *= PRIME32_1
		acc[i] = acc64
	}
}

// deriveSecretScalar writes the seed-personalized secret: each 16-byte
// pair of the default secret gets the seed added to its low word and
// subtracted from its high word.
func deriveSecretScalar(dst *[SECRET_DEFAULT_SIZE]byte, seed uint64) {
	for i := 0; i < SECRET_DEFAULT_SIZE/16; i++ {
		lo := readU64(kSecret[:], 16*i) + seed
		hi := readU64(kSecret[:], 16*i+8) - seed
		writeU64(dst[:], 16*i, lo)
		writeU64(dst[:], 16*i+8, hi)
	}
}

// accumulate runs nbStripes stripes, sliding the secret window by the
// consume rate each time.
func accumulate(acc *[ACC_LANES]uint64, input, secret []byte, nbStripes int, wide128 bool) {
	for n := 0; n < nbStripes; n++ {
		accumulate512(acc, input[n*STRIPE_LEN:], secret[n*SECRET_CONSUME_RATE:], wide128)
	}
}

// hashLongLoop drives the block structure: whole blocks each followed by
// a scramble, a trailing partial block, and, when the input length is
// not stripe-aligned, one final stripe overlapping the end of the input.
func hashLongLoop(acc *[ACC_LANES]uint64, input, secret []byte, wide128 bool) {
	ln := len(input)
	nbRounds := (len(secret) - STRIPE_LEN) / SECRET_CONSUME_RATE
	blockLen := STRIPE_LEN * nbRounds
	nbBlocks := ln / blockLen

	for n := 0; n < nbBlocks; n++ {
		accumulate(acc, input[n*blockLen:], secret, nbRounds, wide128)
		scrambleAcc(acc, secret[len(secret)-STRIPE_LEN:])
	}

	nbStripes := (ln - nbBlocks*blockLen) / STRIPE_LEN
	accumulate(acc, input[nbBlocks*blockLen:], secret, nbStripes, wide128)

	if ln&(STRIPE_LEN-1) != 0 {
		// The overlapping stripe keeps tail bytes from washing out.
		// Its secret window is deliberately misaligned from the
		// scrambler's.
		accumulate512(acc, input[ln-STRIPE_LEN:],
			secret[len(secret)-STRIPE_LEN-secretLastAccStart:], wide128)
	}
}

func mix2Accs(a0, a1 uint64, secret []byte, off int) uint64 {
	return mul128Fold64(
		a0^readU64(secret, off),
		a1^readU64(secret, off+8),
	)
}

// mergeAccs folds the eight lanes down to one 64-bit value.
func mergeAccs(acc *[ACC_LANES]uint64, secret []byte, secOff int, start uint64) uint64 {
	result := start
	for i := 0; i < 4; i++ {
		result += mix2Accs(acc[2*i], acc[2*i+1], secret, secOff+16*i)
	}
	return avalanche(result)
}

func hashLong64(input, secret []byte) uint64 {
	acc := initAcc()
	hashLongLoop(&acc, input, secret, false)
	return mergeAccs(&acc, secret, secretMergeAccsStart, uint64(len(input))*PRIME64_1)
}

func hashLong64Seed(input []byte, seed uint64) uint64 {
	if seed == 0 {
		return hashLong64(input, kSecret[:])
	}
	var secret [SECRET_DEFAULT_SIZE]byte
	deriveSecret(&secret, seed)
	return hashLong64(input, secret[:])
}

func hashLong128(input, secret []byte) Uint128 {
	acc := initAcc()
	hashLongLoop(&acc, input, secret, true)
	ln := uint64(len(input))
	return Uint128{
		Lo: mergeAccs(&acc, secret, secretMergeAccsStart, ln*PRIME64_1),
		Hi: mergeAccs(&acc, secret,
			len(secret)-8*ACC_LANES-secretMergeAccsStart, ^(ln * PRIME64_2)),
	}
}

func hashLong128Seed(input []byte, seed uint64) Uint128 {
	if seed == 0 {
		return hashLong128(input, kSecret[:])
	}
	var secret [SECRET_DEFAULT_SIZE]byte
	deriveSecret(&secret, seed)
	return hashLong128(input, secret[:])
}
