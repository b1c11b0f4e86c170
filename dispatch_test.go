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
// github.com:SymbolNotFound/goxxh/dispatch_test.go

package goxxh_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/goxxh"
)

// Every supported backend must agree with every other on every input.
// The scalar backend is the reference.
func Test_Backend_Agreement(t *testing.T) {
	best := goxxh.ActiveBackend()
	defer goxxh.ForceBackend(best)

	rng := rand.New(rand.NewSource(17))
	sizes := []int{241, 1024, 4096, 1 << 20}
	seeds := []uint64{0, 0x9E3779B97F4A7C15}

	for _, size := range sizes {
		input := make([]byte, size)
		rng.Read(input)

		for _, seed := range seeds {
			require.NoError(t, goxxh.ForceBackend(goxxh.Scalar))
			ref64 := goxxh.Sum64Seed(input, seed)
			ref128 := goxxh.Sum128Seed(input, seed)
			refSecret := goxxh.DeriveSecret(seed ^ 0xA5A5)
			refKeyed, err := goxxh.Sum64Secret(input, refSecret[:])
			require.NoError(t, err)

			for _, b := range goxxh.AvailableBackends() {
				require.NoError(t, goxxh.ForceBackend(b))
				require.Equal(t, ref64, goxxh.Sum64Seed(input, seed),
					"backend %v disagrees on Sum64 (size %d, seed %#x)", b, size, seed)
				require.Equal(t, ref128, goxxh.Sum128Seed(input, seed),
					"backend %v disagrees on Sum128 (size %d, seed %#x)", b, size, seed)
				keyed, err := goxxh.Sum64Secret(input, refSecret[:])
				require.NoError(t, err)
				require.Equal(t, refKeyed, keyed,
					"backend %v disagrees on Sum64Secret (size %d)", b, size)

				h := goxxh.NewSeed(seed)
				h.Write(input[:size/3])
				h.Write(input[size/3:])
				require.Equal(t, ref64, h.Sum64(),
					"backend %v disagrees on streaming digest (size %d)", b, size)
			}
		}
	}
}

// Seed-derived secrets must come out byte-identical from every backend.
func Test_Backend_DeriveSecret_Agreement(t *testing.T) {
	best := goxxh.ActiveBackend()
	defer goxxh.ForceBackend(best)

	for _, seed := range []uint64{1, 0xDEADBEEF, ^uint64(0)} {
		require.NoError(t, goxxh.ForceBackend(goxxh.Scalar))
		ref := goxxh.DeriveSecret(seed)
		for _, b := range goxxh.AvailableBackends() {
			require.NoError(t, goxxh.ForceBackend(b))
			require.Equal(t, ref, goxxh.DeriveSecret(seed), "backend %v", b)
		}
	}
}

func Test_ForceBackend_Unsupported(t *testing.T) {
	supported := make(map[goxxh.Backend]bool)
	for _, b := range goxxh.AvailableBackends() {
		supported[b] = true
	}
	all := []goxxh.Backend{
		goxxh.Scalar, goxxh.SSE2, goxxh.AVX2, goxxh.AVX512,
		goxxh.NEON, goxxh.SVE, goxxh.VSX,
	}
	for _, b := range all {
		err := goxxh.ForceBackend(b)
		if supported[b] {
			require.NoError(t, err, "backend %v", b)
			require.Equal(t, b, goxxh.ActiveBackend())
		} else {
			require.ErrorIs(t, err, goxxh.ErrUnsupportedBackend, "backend %v", b)
		}
	}
	// Out-of-range values are rejected, not dereferenced.
	require.ErrorIs(t, goxxh.ForceBackend(goxxh.Backend(250)), goxxh.ErrUnsupportedBackend)

	// Restore automatic selection.
	best := goxxh.AvailableBackends()[0]
	require.NoError(t, goxxh.ForceBackend(best))
}

func Test_Backend_Probe(t *testing.T) {
	available := goxxh.AvailableBackends()
	require.NotEmpty(t, available)
	require.Equal(t, goxxh.Scalar, available[len(available)-1],
		"scalar must always be available and ranked last")
	require.Contains(t, available, goxxh.ActiveBackend())
}
