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
// github.com:SymbolNotFound/goxxh/state_test.go

package goxxh_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/goxxh"
)

// Streaming over any partition of the input must reproduce the
// single-shot digest bit for bit.  The chunk sizes here deliberately
// straddle the stripe length, the internal buffer size, and both of
// their off-by-one neighbors.
func Test_Streaming_Partitions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	input := make([]byte, 1<<20)
	rng.Read(input)

	chunkSizes := []int{1, 63, 64, 65, 255, 256, 257, 1000, 65536}
	seeds := []uint64{0, 1, 0x9E3779B97F4A7C15}

	for _, seed := range seeds {
		want64 := goxxh.Sum64Seed(input, seed)
		want128 := goxxh.Sum128Seed(input, seed)

		for _, chunk := range chunkSizes {
			h64 := goxxh.NewSeed(seed)
			h128 := goxxh.New128Seed(seed)
			for pos := 0; pos < len(input); pos += chunk {
				end := pos + chunk
				if end > len(input) {
					end = len(input)
				}
				h64.Write(input[pos:end])
				h128.Write(input[pos:end])
			}
			require.Equal(t, want64, h64.Sum64(),
				"64-bit digest diverged at chunk size %d, seed %#x", chunk, seed)
			require.Equal(t, want128, h128.Sum128(),
				"128-bit digest diverged at chunk size %d, seed %#x", chunk, seed)
		}
	}
}

// Random partitions cover chunk-boundary interactions the fixed sizes
// above cannot.
func Test_Streaming_RandomPartitions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	input := make([]byte, 100_000)
	rng.Read(input)

	want := goxxh.Sum64(input)
	want128 := goxxh.Sum128(input)

	for trial := 0; trial < 20; trial++ {
		h := goxxh.New()
		h128 := goxxh.New128()
		for pos := 0; pos < len(input); {
			n := rng.Intn(700) + 1
			if pos+n > len(input) {
				n = len(input) - pos
			}
			h.Write(input[pos : pos+n])
			h128.Write(input[pos : pos+n])
			pos += n
		}
		require.Equal(t, want, h.Sum64())
		require.Equal(t, want128, h128.Sum128())
	}
}

// Lengths around every internal boundary: length buckets, stripe ends,
// block ends, and buffer ends.
func Test_Streaming_BoundaryLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	input := make([]byte, 4200)
	rng.Read(input)

	lengths := []int{
		0, 1, 2, 3, 4, 8, 9, 16, 17, 32, 64, 96, 128, 129, 160, 192, 240,
		241, 255, 256, 257, 319, 320, 321, 511, 512, 513, 1023, 1024, 1025,
		2047, 2048, 2049, 4096, 4161,
	}
	for _, ln := range lengths {
		data := input[:ln]
		want := goxxh.Sum64Seed(data, 99)
		h := goxxh.NewSeed(99)
		for i := 0; i < ln; i += 37 {
			end := i + 37
			if end > ln {
				end = ln
			}
			h.Write(data[i:end])
		}
		require.Equal(t, want, h.Sum64(), "length %d", ln)
	}
}

func Test_Digest_Idempotent(t *testing.T) {
	input := sanityBuffer()
	h := goxxh.New()
	h.Write(input)
	first := h.Sum64()
	second := h.Sum64()
	require.Equal(t, first, second)

	// Updating after a digest continues the stream.
	h.Write(input)
	joined := append(append([]byte{}, input...), input...)
	require.Equal(t, goxxh.Sum64(joined), h.Sum64())
}

func Test_EmptyWrite_NoOp(t *testing.T) {
	h := goxxh.New()
	h.Write([]byte("split "))
	n, err := h.Write(nil)
	require.NoError(t, err)
	require.Zero(t, n)
	h.Write([]byte("input"))
	require.Equal(t, goxxh.Sum64([]byte("split input")), h.Sum64())
}

func Test_Clone_IndependentState(t *testing.T) {
	input := sanityBuffer()
	h := goxxh.New()
	h.Write(input[:1000])

	snapshot := h.Clone()
	h.Write(input[1000:])

	require.Equal(t, goxxh.Sum64(input[:1000]), snapshot.Sum64())
	require.Equal(t, goxxh.Sum64(input), h.Sum64())

	snapshot.Write(input[1000:])
	require.Equal(t, goxxh.Sum64(input), snapshot.Sum64())
}

func Test_ZeroValueState_Rejected(t *testing.T) {
	var h goxxh.Hasher
	_, err := h.Write([]byte("x"))
	require.ErrorIs(t, err, goxxh.ErrInvalidState)
	require.PanicsWithValue(t, goxxh.ErrInvalidState, func() { h.Sum64() })

	// Reset makes the zero value usable.
	h.Reset()
	_, err = h.Write([]byte("x"))
	require.NoError(t, err)
	require.Equal(t, goxxh.Sum64([]byte("x")), h.Sum64())
}

func Test_SecretValidation(t *testing.T) {
	buffer := sanityBuffer()
	short := buffer[:goxxh.SECRET_SIZE_MIN-1]

	_, err := goxxh.Sum64Secret(buffer, short)
	require.ErrorIs(t, err, goxxh.ErrInvalidInput)
	_, err = goxxh.Sum128Secret(buffer, short)
	require.ErrorIs(t, err, goxxh.ErrInvalidInput)
	_, err = goxxh.NewSecret(short)
	require.ErrorIs(t, err, goxxh.ErrInvalidInput)
	_, err = goxxh.New128Secret(short)
	require.ErrorIs(t, err, goxxh.ErrInvalidInput)

	minimal := buffer[:goxxh.SECRET_SIZE_MIN]
	_, err = goxxh.Sum64Secret(buffer, minimal)
	require.NoError(t, err)
}

// Hashing with a seed and hashing with the secret derived from that
// seed agree on every input long enough to reach the accumulator; the
// short-input paths key the default secret directly, so the check
// starts past MIDSIZE_MAX.
func Test_SeedDerivedSecret_Equivalence(t *testing.T) {
	buffer := sanityBuffer()
	for _, seed := range []uint64{1, 42, 0x9E3779B97F4A7C15} {
		derived := goxxh.DeriveSecret(seed)
		for _, ln := range []int{241, 403, 512, 2048, 2367} {
			viaSeed := goxxh.Sum64Seed(buffer[:ln], seed)
			viaSecret, err := goxxh.Sum64Secret(buffer[:ln], derived[:])
			require.NoError(t, err)
			require.Equal(t, viaSeed, viaSecret, "len %d seed %#x", ln, seed)
		}
	}
}

func Test_SeedZero_Equivalence(t *testing.T) {
	buffer := sanityBuffer()
	for _, ln := range []int{0, 1, 6, 12, 24, 48, 80, 195, 403, 2367} {
		require.Equal(t, goxxh.Sum64(buffer[:ln]), goxxh.Sum64Seed(buffer[:ln], 0))
		require.Equal(t, goxxh.Sum128(buffer[:ln]), goxxh.Sum128Seed(buffer[:ln], 0))
	}
}
