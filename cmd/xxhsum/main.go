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
// github.com:SymbolNotFound/goxxh/cmd/xxhsum/main.go

// Prints digests of files (or stdin) in canonical hex, one line per
// input, in the style of the classic checksum tools:
//
//	xxhsum --algo xxh128 *.tar
//
// With --bench N it times N passes over each input instead and reports
// throughput.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/SymbolNotFound/goxxh"
	"github.com/SymbolNotFound/goxxh/xxh32"
	"github.com/SymbolNotFound/goxxh/xxh64"
)

var backendNames = map[string]goxxh.Backend{
	"scalar": goxxh.Scalar,
	"sse2":   goxxh.SSE2,
	"avx2":   goxxh.AVX2,
	"avx512": goxxh.AVX512,
	"neon":   goxxh.NEON,
	"sve":    goxxh.SVE,
	"vsx":    goxxh.VSX,
}

func main() {
	algo := flag.String("algo", "xxh3", "hash function: xxh32, xxh64, xxh3 or xxh128")
	seed := flag.Uint64("seed", 0, "seed value (decimal)")
	secretPath := flag.String("secret", "", "file holding key material, at least 136 bytes (xxh3/xxh128)")
	backend := flag.String("backend", "", "force a vector backend: scalar, sse2, avx2, avx512, neon, sve, vsx")
	bench := flag.Int("bench", 0, "time N passes over each input and report MB/s instead of printing digests")
	flag.Parse()

	if *backend != "" {
		b, ok := backendNames[*backend]
		if !ok {
			log.Fatalf("unknown backend %q", *backend)
		}
		if err := goxxh.ForceBackend(b); err != nil {
			log.Fatal(err)
		}
	}

	var secret []byte
	if *secretPath != "" {
		var err error
		secret, err = os.ReadFile(*secretPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		data, err := readInput(path)
		if err != nil {
			log.Fatal(err)
		}
		if *bench > 0 {
			benchmark(*algo, path, data, secret, *seed, *bench)
			continue
		}
		digest, err := digestOf(*algo, data, secret, *seed)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s  %s\n", digest, path)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func digestOf(algo string, data, secret []byte, seed uint64) (string, error) {
	switch algo {
	case "xxh32":
		d := xxh32.Canonical(xxh32.Sum32(data, uint32(seed)))
		return fmt.Sprintf("%x", d[:]), nil
	case "xxh64":
		d := xxh64.Canonical(xxh64.Sum64(data, seed))
		return fmt.Sprintf("%x", d[:]), nil
	case "xxh3":
		if secret != nil {
			v, err := goxxh.Sum64Secret(data, secret)
			if err != nil {
				return "", err
			}
			d := goxxh.Canonical64(v)
			return fmt.Sprintf("%x", d[:]), nil
		}
		d := goxxh.Canonical64(goxxh.Sum64Seed(data, seed))
		return fmt.Sprintf("%x", d[:]), nil
	case "xxh128":
		if secret != nil {
			v, err := goxxh.Sum128Secret(data, secret)
			if err != nil {
				return "", err
			}
			d := v.Bytes()
			return fmt.Sprintf("%x", d[:]), nil
		}
		d := goxxh.Sum128Seed(data, seed).Bytes()
		return fmt.Sprintf("%x", d[:]), nil
	}
	return "", fmt.Errorf("unknown algorithm %q", algo)
}

// benchmark runs rounds passes of the selected hash over data and
// reports the aggregate throughput, keeping a running XOR of digests so
// the calls cannot be optimized away.
func benchmark(algo, path string, data, secret []byte, seed uint64, rounds int) {
	var sink uint64
	start := time.Now()
	for i := 0; i < rounds; i++ {
		switch algo {
		case "xxh32":
			sink ^= uint64(xxh32.Sum32(data, uint32(seed)))
		case "xxh64":
			sink ^= xxh64.Sum64(data, seed)
		case "xxh3":
			if secret != nil {
				v, err := goxxh.Sum64Secret(data, secret)
				if err != nil {
					log.Fatal(err)
				}
				sink ^= v
			} else {
				sink ^= goxxh.Sum64Seed(data, seed)
			}
		case "xxh128":
			if secret != nil {
				v, err := goxxh.Sum128Secret(data, secret)
				if err != nil {
					log.Fatal(err)
				}
				sink ^= v.Lo ^ v.Hi
			} else {
				v := goxxh.Sum128Seed(data, seed)
				sink ^= v.Lo ^ v.Hi
			}
		default:
			log.Fatalf("unknown algorithm %q", algo)
		}
	}
	elapsed := time.Since(start)
	mbps := float64(len(data)) * float64(rounds) / (1e6 * elapsed.Seconds())
	fmt.Printf("%-8s %-24s %9d bytes x%-6d %10.1f MB/s  (%016x)\n",
		algo, path, len(data), rounds, mbps, sink)
}
