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
// github.com:SymbolNotFound/goxxh/digest.go

package goxxh

import "encoding/binary"

// Uint128 is a 128-bit digest.  Hi carries the more significant half for
// ordering and canonical encoding.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Bytes returns the canonical encoding: big-endian, high half first.
// The canonical form is identical on every host byte order.
func (x Uint128) Bytes() [16]byte {
	var out [16]byte
	binary.BigEndian.PutUint64(out[0:8], x.Hi)
	binary.BigEndian.PutUint64(out[8:16], x.Lo)
	return out
}

// Equal reports whether two digests are identical.
func (x Uint128) Equal(y Uint128) bool {
	return x == y
}

// Compare orders digests lexicographically on (Hi, Lo), returning
// -1, 0, or +1.  The ordering matches a byte-wise comparison of the
// canonical encodings.
func (x Uint128) Compare(y Uint128) int {
	switch {
	case x.Hi > y.Hi:
		return 1
	case x.Hi < y.Hi:
		return -1
	case x.Lo > y.Lo:
		return 1
	case x.Lo < y.Lo:
		return -1
	}
	return 0
}

// FromCanonical128 decodes a canonical 16-byte digest.
func FromCanonical128(b []byte) (Uint128, error) {
	if len(b) != 16 {
		return Uint128{}, ErrInvalidInput
	}
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[0:8]),
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}, nil
}

// Canonical64 returns the canonical big-endian encoding of a 64-bit
// digest.
func Canonical64(v uint64) [8]byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], v)
	return out
}

// FromCanonical64 decodes a canonical 8-byte digest.
func FromCanonical64(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, ErrInvalidInput
	}
	return binary.BigEndian.Uint64(b), nil
}

// Canonical32 returns the canonical big-endian encoding of a 32-bit
// digest.
func Canonical32(v uint32) [4]byte {
	var out [4]byte
	binary.BigEndian.PutUint32(out[:], v)
	return out
}

// FromCanonical32 decodes a canonical 4-byte digest.
func FromCanonical32(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, ErrInvalidInput
	}
	return binary.BigEndian.Uint32(b), nil
}
