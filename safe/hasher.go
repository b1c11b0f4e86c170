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
// github.com:SymbolNotFound/goxxh/safe/hasher.go

// Package safe provides a channel-based wrapper around the streaming
// hashers, allowing multiple goroutines to hash through a shared pool of
// states.  A streaming state is owned by one goroutine at a time; here
// each worker goroutine owns its own pair of states and serves requests
// from a common channel, so callers never share mutable hash state.
// This is useful where many goroutines hash medium-to-large inputs and
// the per-call allocation of a fresh state would show up in profiles.
package safe

import (
	"io"
	"runtime"

	"github.com/SymbolNotFound/goxxh"
)

type SafeHasher interface {
	// Sum64 hashes data with the pool's seed.
	Sum64(data []byte) uint64
	// Sum128 hashes data with the pool's seed.
	Sum128(data []byte) goxxh.Uint128
	// Sum128From streams r through one worker's state.
	Sum128From(r io.Reader) (goxxh.Uint128, error)
	// Close stops the workers.  In-flight requests complete; later
	// calls on the pool panic, so close only after all users quit.
	Close()
}

// New starts a pool of worker goroutines, each owning its own streaming
// states seeded with seed.  A non-positive worker count defaults to the
// number of usable CPUs.
func New(seed uint64, workers int) SafeHasher {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := &hashchan{
		seed:     seed,
		requests: make(chan request),
	}
	for i := 0; i < workers; i++ {
		go pool.serve()
	}
	return pool
}

type request struct {
	data   []byte
	reader io.Reader
	out64  chan uint64
	out128 chan reply128
}

type reply128 struct {
	digest goxxh.Uint128
	err    error
}

type hashchan struct {
	seed     uint64
	requests chan request
}

func (pool *hashchan) serve() {
	h64 := goxxh.NewSeed(pool.seed)
	h128 := goxxh.New128Seed(pool.seed)
	for req := range pool.requests {
		switch {
		case req.out64 != nil:
			h64.ResetSeed(pool.seed)
			h64.Write(req.data)
			req.out64 <- h64.Sum64()
		case req.reader != nil:
			h128.ResetSeed(pool.seed)
			_, err := io.Copy(h128, req.reader)
			req.out128 <- reply128{h128.Sum128(), err}
		default:
			h128.ResetSeed(pool.seed)
			h128.Write(req.data)
			req.out128 <- reply128{digest: h128.Sum128()}
		}
	}
}

func (pool *hashchan) Sum64(data []byte) uint64 {
	out := make(chan uint64, 1)
	pool.requests <- request{data: data, out64: out}
	return <-out
}

func (pool *hashchan) Sum128(data []byte) goxxh.Uint128 {
	out := make(chan reply128, 1)
	pool.requests <- request{data: data, out128: out}
	return (<-out).digest
}

func (pool *hashchan) Sum128From(r io.Reader) (goxxh.Uint128, error) {
	out := make(chan reply128, 1)
	pool.requests <- request{reader: r, out128: out}
	rep := <-out
	return rep.digest, rep.err
}

func (pool *hashchan) Close() {
	close(pool.requests)
}
