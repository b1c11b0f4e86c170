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
// github.com:SymbolNotFound/goxxh/digest_test.go

package goxxh_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/goxxh"
)

func Test_Canonical_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10_000; i++ {
		v32 := rng.Uint32()
		c32 := goxxh.Canonical32(v32)
		back32, err := goxxh.FromCanonical32(c32[:])
		require.NoError(t, err)
		require.Equal(t, v32, back32)

		v64 := rng.Uint64()
		c64 := goxxh.Canonical64(v64)
		back64, err := goxxh.FromCanonical64(c64[:])
		require.NoError(t, err)
		require.Equal(t, v64, back64)

		v128 := goxxh.Uint128{Lo: rng.Uint64(), Hi: rng.Uint64()}
		c128 := v128.Bytes()
		back128, err := goxxh.FromCanonical128(c128[:])
		require.NoError(t, err)
		require.Equal(t, v128, back128)
	}
}

func Test_Canonical_BigEndian(t *testing.T) {
	c := goxxh.Canonical64(0x0102030405060708)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, c[:])

	d := goxxh.Uint128{Lo: 0x1112131415161718, Hi: 0x0102030405060708}.Bytes()
	require.Equal(t, []byte{
		1, 2, 3, 4, 5, 6, 7, 8,
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
	}, d[:])
}

func Test_Canonical_Malformed(t *testing.T) {
	_, err := goxxh.FromCanonical32([]byte{1, 2, 3})
	require.ErrorIs(t, err, goxxh.ErrInvalidInput)
	_, err = goxxh.FromCanonical64(make([]byte, 9))
	require.ErrorIs(t, err, goxxh.ErrInvalidInput)
	_, err = goxxh.FromCanonical128(nil)
	require.ErrorIs(t, err, goxxh.ErrInvalidInput)
}

// Compare must be a total order matching byte-wise comparison of the
// canonical forms, with Equal as its zero case.
func Test_Uint128_Ordering(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	digests := make([]goxxh.Uint128, 200)
	for i := range digests {
		// Low-entropy halves force plenty of Hi ties.
		digests[i] = goxxh.Uint128{
			Lo: uint64(rng.Intn(4)),
			Hi: uint64(rng.Intn(4)),
		}
	}

	for _, x := range digests {
		require.Zero(t, x.Compare(x))
		require.True(t, x.Equal(x))
		for _, y := range digests {
			cmp := x.Compare(y)
			require.Equal(t, -cmp, y.Compare(x), "antisymmetry")
			require.Equal(t, cmp == 0, x.Equal(y))

			xb, yb := x.Bytes(), y.Bytes()
			require.Equal(t, bytes.Compare(xb[:], yb[:]), cmp,
				"ordering must match canonical byte order")

			if cmp == 0 {
				continue
			}
			// Transitivity spot-check through a third digest.
			for _, z := range digests[:20] {
				if x.Compare(y) < 0 && y.Compare(z) < 0 {
					require.Negative(t, x.Compare(z), "transitivity")
				}
			}
		}
	}
}

func Test_Sum_AppendsCanonical(t *testing.T) {
	input := []byte("canonical append check")

	h := goxxh.New()
	h.Write(input)
	want := goxxh.Canonical64(goxxh.Sum64(input))
	require.Equal(t, want[:], h.Sum(nil))
	require.Equal(t, append([]byte("prefix"), want[:]...), h.Sum([]byte("prefix")))

	h128 := goxxh.New128()
	h128.Write(input)
	want128 := goxxh.Sum128(input).Bytes()
	require.Equal(t, want128[:], h128.Sum(nil))
}
