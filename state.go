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
// github.com:SymbolNotFound/goxxh/state.go

package goxxh

import "hash"

// state is the streaming core shared by the 64- and 128-bit hashers.
// It buffers input in INTERNAL_BUFFER-byte batches and feeds whole
// batches through the accumulator, so any sequence of Write calls
// splits the input exactly the way the single-shot path does.
//
// A state either owns a seed-derived secret (customSecret) or borrows a
// caller's secret (extSecret); never both.  A borrowed secret must
// outlive the state.
type state struct {
	acc             [ACC_LANES]uint64
	buffer          [INTERNAL_BUFFER]byte
	buffered        int
	totalLen        uint64
	stripesSoFar    int
	stripesPerBlock int
	secretLimit     int
	seed            uint64
	customSecret    [SECRET_DEFAULT_SIZE]byte
	extSecret       []byte
	live            bool
}

func (s *state) reset(seed uint64, ext []byte) {
	*s = state{}
	s.acc = initAcc()
	s.seed = seed
	size := SECRET_DEFAULT_SIZE
	if ext != nil {
		size = len(ext)
	}
	s.extSecret = ext
	s.secretLimit = size - STRIPE_LEN
	s.stripesPerBlock = s.secretLimit / SECRET_CONSUME_RATE
	s.live = true
}

func (s *state) secretView() []byte {
	if s.extSecret != nil {
		return s.extSecret
	}
	return s.customSecret[:]
}

// consumeStripes feeds totalStripes stripes into acc, inserting a
// scramble when the running count crosses a block boundary.  The
// caller's soFar cursor tracks the secret offset between calls.
func consumeStripes(acc *[ACC_LANES]uint64, soFar *int, perBlock int,
	data []byte, totalStripes int, secret []byte, secretLimit int, wide128 bool) {

	if perBlock-*soFar <= totalStripes {
		nb := perBlock - *soFar
		accumulate(acc, data, secret[*soFar*SECRET_CONSUME_RATE:], nb, wide128)
		scrambleAcc(acc, secret[secretLimit:])
		accumulate(acc, data[nb*STRIPE_LEN:], secret, totalStripes-nb, wide128)
		*soFar = totalStripes - nb
	} else {
		accumulate(acc, data, secret[*soFar*SECRET_CONSUME_RATE:], totalStripes, wide128)
		*soFar += totalStripes
	}
}

func (s *state) update(p []byte, wide128 bool) error {
	if !s.live {
		return ErrInvalidState
	}
	if len(p) == 0 {
		return nil
	}
	secret := s.secretView()
	s.totalLen += uint64(len(p))

	if s.buffered+len(p) <= INTERNAL_BUFFER {
		s.buffered += copy(s.buffer[s.buffered:], p)
		return nil
	}

	// Top off and drain the staging buffer first.
	if s.buffered > 0 {
		load := INTERNAL_BUFFER - s.buffered
		copy(s.buffer[s.buffered:], p[:load])
		p = p[load:]
		consumeStripes(&s.acc, &s.stripesSoFar, s.stripesPerBlock,
			s.buffer[:], internalBufferStripe, secret, s.secretLimit, wide128)
		s.buffered = 0
	}

	// Consume directly from the caller's slice in whole-buffer batches,
	// always leaving at least one byte for the staging buffer.
	if len(p) > INTERNAL_BUFFER {
		n := 0
		for len(p)-n > INTERNAL_BUFFER {
			consumeStripes(&s.acc, &s.stripesSoFar, s.stripesPerBlock,
				p[n:], internalBufferStripe, secret, s.secretLimit, wide128)
			n += INTERNAL_BUFFER
		}
		// The buffer tail must hold the stream bytes that precede the
		// residue, or the wrap-around final stripe in digest would see
		// stale data.
		copy(s.buffer[INTERNAL_BUFFER-STRIPE_LEN:], p[n-STRIPE_LEN:n])
		p = p[n:]
	}

	s.buffered = copy(s.buffer[:], p)
	return nil
}

// digestLong replays the buffered tail into a copy of the accumulator.
// The state itself is never mutated, which keeps digests idempotent and
// lets callers keep writing afterwards.
func (s *state) digestLong(acc *[ACC_LANES]uint64, secret []byte, wide128 bool) {
	*acc = s.acc
	if s.buffered >= STRIPE_LEN {
		total := s.buffered / STRIPE_LEN
		soFar := s.stripesSoFar
		consumeStripes(acc, &soFar, s.stripesPerBlock,
			s.buffer[:], total, secret, s.secretLimit, wide128)
		if s.buffered%STRIPE_LEN != 0 {
			accumulate512(acc, s.buffer[s.buffered-STRIPE_LEN:],
				secret[s.secretLimit-secretLastAccStart:], wide128)
		}
	} else if s.buffered > 0 {
		// Rebuild the overlapping final stripe: the missing head bytes
		// live at the end of the buffer.
		var lastStripe [STRIPE_LEN]byte
		catchup := STRIPE_LEN - s.buffered
		copy(lastStripe[:catchup], s.buffer[INTERNAL_BUFFER-catchup:])
		copy(lastStripe[catchup:], s.buffer[:s.buffered])
		accumulate512(acc, lastStripe[:],
			secret[s.secretLimit-secretLastAccStart:], wide128)
	}
}

func (s *state) digest64() uint64 {
	secret := s.secretView()
	if s.totalLen > MIDSIZE_MAX {
		var acc [ACC_LANES]uint64
		s.digestLong(&acc, secret, false)
		return mergeAccs(&acc, secret, secretMergeAccsStart, s.totalLen*PRIME64_1)
	}
	// The accumulator never ran; the whole input is still buffered.
	if s.seed != 0 {
		return Sum64Seed(s.buffer[:s.totalLen], s.seed)
	}
	return sum64Secret(s.buffer[:s.totalLen], secret)
}

func (s *state) digest128() Uint128 {
	secret := s.secretView()
	if s.totalLen > MIDSIZE_MAX {
		var acc [ACC_LANES]uint64
		s.digestLong(&acc, secret, true)
		return Uint128{
			Lo: mergeAccs(&acc, secret, secretMergeAccsStart,
				s.totalLen*PRIME64_1),
			Hi: mergeAccs(&acc, secret,
				s.secretLimit+STRIPE_LEN-8*ACC_LANES-secretMergeAccsStart,
				^(s.totalLen * PRIME64_2)),
		}
	}
	if s.seed != 0 {
		return Sum128Seed(s.buffer[:s.totalLen], s.seed)
	}
	return sum128Secret(s.buffer[:s.totalLen], secret)
}

// Hasher is the streaming form of the 64-bit hash.  It satisfies
// hash.Hash64; Sum appends the canonical big-endian digest.
//
// A Hasher is owned by a single goroutine at a time.  The zero value is
// not usable until one of the Reset methods runs; New* constructors
// return ready states.
type Hasher struct {
	s state
}

var (
	_ hash.Hash   = (*Hasher)(nil)
	_ hash.Hash64 = (*Hasher)(nil)
)

// New returns a streaming 64-bit hasher with seed zero.
func New() *Hasher {
	h := new(Hasher)
	h.Reset()
	return h
}

// NewSeed returns a streaming 64-bit hasher personalized by seed.
func NewSeed(seed uint64) *Hasher {
	h := new(Hasher)
	h.ResetSeed(seed)
	return h
}

// NewSecret returns a streaming 64-bit hasher keyed by the caller's
// secret.  The secret is borrowed, not copied; it must outlive the
// hasher.
func NewSecret(secret []byte) (*Hasher, error) {
	h := new(Hasher)
	if err := h.ResetSecret(secret); err != nil {
		return nil, err
	}
	return h, nil
}

// Reset returns the hasher to its seed-zero starting state.
func (h *Hasher) Reset() {
	h.s.reset(0, kSecret[:])
}

// ResetSeed restarts the hasher with a new seed.
func (h *Hasher) ResetSeed(seed uint64) {
	h.s.reset(seed, nil)
	deriveSecret(&h.s.customSecret, seed)
}

// ResetSecret restarts the hasher with caller-supplied key material.
func (h *Hasher) ResetSecret(secret []byte) error {
	if err := checkSecret(secret); err != nil {
		return err
	}
	h.s.reset(0, secret)
	return nil
}

// Write absorbs p.  It returns ErrInvalidState on a zero-value hasher
// that was never reset; it never fails otherwise.
func (h *Hasher) Write(p []byte) (int, error) {
	if err := h.s.update(p, false); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum64 returns the digest of everything written so far.  It does not
// alter the state: calling it repeatedly, or writing more afterwards,
// is fine.  It panics with ErrInvalidState on a hasher never reset.
func (h *Hasher) Sum64() uint64 {
	if !h.s.live {
		panic(ErrInvalidState)
	}
	return h.s.digest64()
}

// Sum appends the canonical big-endian digest to b.
func (h *Hasher) Sum(b []byte) []byte {
	d := Canonical64(h.Sum64())
	return append(b, d[:]...)
}

// Size returns the digest length in bytes.
func (h *Hasher) Size() int { return 8 }

// BlockSize returns the stripe length.
func (h *Hasher) BlockSize() int { return STRIPE_LEN }

// Clone returns an independent copy of the hasher's current state.
func (h *Hasher) Clone() *Hasher {
	c := *h
	return &c
}

// Hasher128 is the streaming form of the 128-bit hash.  Sum appends the
// canonical 16-byte digest; Sum128 returns the pair directly.
type Hasher128 struct {
	s state
}

var _ hash.Hash = (*Hasher128)(nil)

// New128 returns a streaming 128-bit hasher with seed zero.
func New128() *Hasher128 {
	h := new(Hasher128)
	h.Reset()
	return h
}

// New128Seed returns a streaming 128-bit hasher personalized by seed.
func New128Seed(seed uint64) *Hasher128 {
	h := new(Hasher128)
	h.ResetSeed(seed)
	return h
}

// New128Secret returns a streaming 128-bit hasher keyed by the caller's
// secret.  The secret is borrowed, not copied.
func New128Secret(secret []byte) (*Hasher128, error) {
	h := new(Hasher128)
	if err := h.ResetSecret(secret); err != nil {
		return nil, err
	}
	return h, nil
}

// Reset returns the hasher to its seed-zero starting state.
func (h *Hasher128) Reset() {
	h.s.reset(0, kSecret[:])
}

// ResetSeed restarts the hasher with a new seed.
func (h *Hasher128) ResetSeed(seed uint64) {
	h.s.reset(seed, nil)
	deriveSecret(&h.s.customSecret, seed)
}

// ResetSecret restarts the hasher with caller-supplied key material.
func (h *Hasher128) ResetSecret(secret []byte) error {
	if err := checkSecret(secret); err != nil {
		return err
	}
	h.s.reset(0, secret)
	return nil
}

// Write absorbs p.
func (h *Hasher128) Write(p []byte) (int, error) {
	if err := h.s.update(p, true); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum128 returns the digest of everything written so far without
// altering the state.  It panics with ErrInvalidState on a hasher never
// reset.
func (h *Hasher128) Sum128() Uint128 {
	if !h.s.live {
		panic(ErrInvalidState)
	}
	return h.s.digest128()
}

// Sum appends the canonical big-endian digest to b.
func (h *Hasher128) Sum(b []byte) []byte {
	d := h.Sum128().Bytes()
	return append(b, d[:]...)
}

// Size returns the digest length in bytes.
func (h *Hasher128) Size() int { return 16 }

// BlockSize returns the stripe length.
func (h *Hasher128) BlockSize() int { return STRIPE_LEN }

// Clone returns an independent copy of the hasher's current state.
func (h *Hasher128) Clone() *Hasher128 {
	c := *h
	return &c
}
