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
// github.com:SymbolNotFound/goxxh/xxh3.go

// Package goxxh implements a family of fast, seeded, non-cryptographic
// hash functions over byte sequences: a 64-bit and a 128-bit
// variable-strength hash in this package, plus the classic 32- and
// 64-bit hashes in the xxh32 and xxh64 subpackages.
//
// Every function has a single-shot form and a streaming form that are
// bit-identical for the same concatenated input and seed.  The 64- and
// 128-bit variants additionally accept caller-supplied "secret" key
// material in place of a seed.  Digests have a canonical big-endian
// byte encoding, so values are comparable across machines of any byte
// order.
//
// None of these functions resist adversarial inputs.  Do not use them
// where cryptographic strength is required.
package goxxh

import "errors"

// Structural constants of the hash family.
const (
	// SECRET_SIZE_MIN is the smallest acceptable length for
	// caller-supplied secrets.
	SECRET_SIZE_MIN = 136

	// SECRET_DEFAULT_SIZE is the length of the built-in secret and of
	// secrets derived from a seed.
	SECRET_DEFAULT_SIZE = 192

	// STRIPE_LEN bytes are consumed per accumulator pass.
	STRIPE_LEN = 64

	// ACC_LANES is the number of 64-bit accumulator lanes.
	ACC_LANES = 8

	// SECRET_CONSUME_RATE is how far the secret window slides per stripe.
	SECRET_CONSUME_RATE = 8

	// MIDSIZE_MAX is the largest input handled by the short-length
	// kernels; anything longer runs the accumulator loop.
	MIDSIZE_MAX = 240

	// INTERNAL_BUFFER is the streaming state's staging capacity.
	INTERNAL_BUFFER = 256
)

const (
	midsizeStartOffset   = 3
	midsizeLastOffset    = 17
	secretLastAccStart   = 7
	secretMergeAccsStart = 11
	internalBufferStripe = INTERNAL_BUFFER / STRIPE_LEN
)

var (
	// ErrInvalidInput reports a secret shorter than SECRET_SIZE_MIN or
	// a malformed canonical digest.
	ErrInvalidInput = errors.New("goxxh: invalid input")

	// ErrUnsupportedBackend reports a forced backend the current CPU or
	// OS cannot run.
	ErrUnsupportedBackend = errors.New("goxxh: backend not supported on this cpu")

	// ErrInvalidState reports use of a streaming state that was never
	// reset.
	ErrInvalidState = errors.New("goxxh: state has not been reset")
)

// Sum64 returns the 64-bit hash of b with seed zero.
func Sum64(b []byte) uint64 {
	return Sum64Seed(b, 0)
}

// Sum64Seed returns the 64-bit hash of b personalized by seed.
func Sum64Seed(b []byte, seed uint64) uint64 {
	switch ln := len(b); {
	case ln <= 16:
		return hashLen0to16_64(b, kSecret[:], seed)
	case ln <= 128:
		return hashLen17to128_64(b, kSecret[:], seed)
	case ln <= MIDSIZE_MAX:
		return hashLen129to240_64(b, kSecret[:], seed)
	}
	return hashLong64Seed(b, seed)
}

// Sum64Secret returns the 64-bit hash of b keyed by the caller's secret.
// The secret must be at least SECRET_SIZE_MIN bytes of reasonably
// pseudorandom material; GenerateSecret builds a suitable one.
func Sum64Secret(b, secret []byte) (uint64, error) {
	if err := checkSecret(secret); err != nil {
		return 0, err
	}
	return sum64Secret(b, secret), nil
}

// sum64Secret assumes the secret was already validated.
func sum64Secret(b, secret []byte) uint64 {
	switch ln := len(b); {
	case ln <= 16:
		return hashLen0to16_64(b, secret, 0)
	case ln <= 128:
		return hashLen17to128_64(b, secret, 0)
	case ln <= MIDSIZE_MAX:
		return hashLen129to240_64(b, secret, 0)
	}
	return hashLong64(b, secret)
}

// Sum128 returns the 128-bit hash of b with seed zero.
func Sum128(b []byte) Uint128 {
	return Sum128Seed(b, 0)
}

// Sum128Seed returns the 128-bit hash of b personalized by seed.
func Sum128Seed(b []byte, seed uint64) Uint128 {
	switch ln := len(b); {
	case ln <= 16:
		return hashLen0to16_128(b, kSecret[:], seed)
	case ln <= 128:
		return hashLen17to128_128(b, kSecret[:], seed)
	case ln <= MIDSIZE_MAX:
		return hashLen129to240_128(b, kSecret[:], seed)
	}
	return hashLong128Seed(b, seed)
}

// Sum128Secret returns the 128-bit hash of b keyed by the caller's
// secret.
func Sum128Secret(b, secret []byte) (Uint128, error) {
	if err := checkSecret(secret); err != nil {
		return Uint128{}, err
	}
	return sum128Secret(b, secret), nil
}

func sum128Secret(b, secret []byte) Uint128 {
	switch ln := len(b); {
	case ln <= 16:
		return hashLen0to16_128(b, secret, 0)
	case ln <= 128:
		return hashLen17to128_128(b, secret, 0)
	case ln <= MIDSIZE_MAX:
		return hashLen129to240_128(b, secret, 0)
	}
	return hashLong128(b, secret)
}
