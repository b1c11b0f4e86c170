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
// github.com:SymbolNotFound/goxxh/bench_test.go

package goxxh_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/SymbolNotFound/goxxh"
)

var benchSink uint64

func benchInput(size int) []byte {
	buf := make([]byte, size)
	rand.New(rand.NewSource(int64(size))).Read(buf)
	return buf
}

func Benchmark_Sum64(b *testing.B) {
	for _, size := range []int{3, 8, 16, 32, 77, 128, 240, 1024, 65536, 1 << 20} {
		input := benchInput(size)
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				benchSink ^= goxxh.Sum64(input)
			}
		})
	}
}

func Benchmark_Sum64Seed(b *testing.B) {
	input := benchInput(1 << 20)
	b.SetBytes(1 << 20)
	for i := 0; i < b.N; i++ {
		benchSink ^= goxxh.Sum64Seed(input, 0x9E3779B97F4A7C15)
	}
}

func Benchmark_Sum128(b *testing.B) {
	for _, size := range []int{16, 240, 1024, 65536, 1 << 20} {
		input := benchInput(size)
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				d := goxxh.Sum128(input)
				benchSink ^= d.Lo ^ d.Hi
			}
		})
	}
}

func Benchmark_Streaming(b *testing.B) {
	input := benchInput(1 << 20)
	h := goxxh.New()
	b.SetBytes(1 << 20)
	for i := 0; i < b.N; i++ {
		h.Reset()
		h.Write(input)
		benchSink ^= h.Sum64()
	}
}

func Benchmark_Backends(b *testing.B) {
	input := benchInput(1 << 20)
	best := goxxh.ActiveBackend()
	defer goxxh.ForceBackend(best)
	for _, backend := range goxxh.AvailableBackends() {
		b.Run(backend.String(), func(b *testing.B) {
			if err := goxxh.ForceBackend(backend); err != nil {
				b.Fatal(err)
			}
			b.SetBytes(1 << 20)
			for i := 0; i < b.N; i++ {
				benchSink ^= goxxh.Sum64(input)
			}
		})
	}
}

func Benchmark_DeriveSecret(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := goxxh.DeriveSecret(uint64(i))
		benchSink ^= uint64(s[0])
	}
}
