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
// github.com:SymbolNotFound/goxxh/dispatch.go

package goxxh

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Backend identifies one implementation of the three vectorizable
// kernels (stripe accumulation, scrambling, secret derivation).  All
// backends produce identical digests; selection affects speed only.
type Backend uint8

const (
	Scalar Backend = iota
	SSE2
	AVX2
	AVX512
	NEON
	SVE
	VSX
	nBackends
)

func (b Backend) String() string {
	switch b {
	case Scalar:
		return "scalar"
	case SSE2:
		return "sse2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	case SVE:
		return "sve"
	case VSX:
		return "vsx"
	}
	return "unknown"
}

// kernelSet is the capability set a backend provides.
type kernelSet struct {
	accumulate512 func(acc *[ACC_LANES]uint64, input, secret []byte, wide128 bool)
	scramble      func(acc *[ACC_LANES]uint64, secret []byte)
	deriveSecret  func(dst *[SECRET_DEFAULT_SIZE]byte, seed uint64)
}

var kernelTable = [nBackends]kernelSet{
	Scalar: {accumulateScalar512, scrambleScalar, deriveSecretScalar},
	SSE2:   {accumulateWide128, scrambleWide128, deriveSecretWide128},
	AVX2:   {accumulateWide256, scrambleWide256, deriveSecretWide256},
	AVX512: {accumulateWide512, scrambleWide512, deriveSecretWide512},
	NEON:   {accumulateWide128, scrambleWide128, deriveSecretWide128},
	SVE:    {accumulateWide512, scrambleWide512, deriveSecretWide512},
	VSX:    {accumulateWide128, scrambleWide128, deriveSecretWide128},
}

// The resolved function table.  Set once during package init and left
// alone afterwards; ForceBackend rewrites it for tests and tuning and
// must not race with in-flight hashing.
var (
	accumulate512 = accumulateScalar512
	scrambleAcc   = scrambleScalar
	deriveSecret  = deriveSecretScalar

	supported [nBackends]bool
	active    Backend
)

func init() {
	probeBackends()
	selectBackend(bestBackend())
}

// probeBackends runs exactly once per process.  Feature flags come from
// the OS-validated view in x/sys/cpu, so AVX2/AVX512 imply the kernel
// saves the wider register state.
func probeBackends() {
	supported[Scalar] = true
	switch runtime.GOARCH {
	case "amd64":
		supported[SSE2] = true // architectural baseline
		supported[AVX2] = cpu.X86.HasAVX2
		supported[AVX512] = cpu.X86.HasAVX512F
	case "386":
		supported[SSE2] = cpu.X86.HasSSE2
	case "arm64":
		supported[NEON] = true // architectural baseline
		supported[SVE] = cpu.ARM64.HasSVE
	case "ppc64", "ppc64le":
		supported[VSX] = cpu.PPC64.IsPOWER8
	}
}

func bestBackend() Backend {
	for _, b := range [...]Backend{AVX512, SVE, AVX2, SSE2, NEON, VSX} {
		if supported[b] {
			return b
		}
	}
	return Scalar
}

func selectBackend(b Backend) {
	ks := kernelTable[b]
	accumulate512 = ks.accumulate512
	scrambleAcc = ks.scramble
	deriveSecret = ks.deriveSecret
	active = b
}

// ForceBackend overrides the automatic selection.  Forcing a backend the
// current CPU does not support returns ErrUnsupportedBackend and leaves
// the selection unchanged.  Call it before hashing begins; it is not
// synchronized against concurrent hashers.
func ForceBackend(b Backend) error {
	if b >= nBackends || !supported[b] {
		return ErrUnsupportedBackend
	}
	selectBackend(b)
	return nil
}

// ActiveBackend reports the backend currently in use.
func ActiveBackend() Backend {
	return active
}

// AvailableBackends lists every backend the capability probe accepted,
// in selection-preference order ending with Scalar.
func AvailableBackends() []Backend {
	var out []Backend
	for _, b := range [...]Backend{AVX512, SVE, AVX2, SSE2, NEON, VSX, Scalar} {
		if supported[b] {
			out = append(out, b)
		}
	}
	return out
}
