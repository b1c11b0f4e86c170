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
// github.com:SymbolNotFound/goxxh/backends.go

package goxxh

// Vector-width kernel variants.  Go has no portable SIMD intrinsics, so
// each variant is structured the way the corresponding vector unit walks
// a stripe: 128-bit backends consume two lanes per column, 256-bit four,
// and 512-bit the whole stripe at once.  The compiler's autovectorizer
// and scheduler get straight-line code at the matching granularity.
// Every variant is bit-identical to the scalar kernel.

func accumulateWide128(acc *[ACC_LANES]uint64, input, secret []byte, wide128 bool) {
	for i := 0; i < ACC_LANES; i += 2 {
		d0 := readU64(input, 8*i)
		d1 := readU64(input, 8*i+8)
		k0 := d0 ^ readU64(secret, 8*i)
		k1 := d1 ^ readU64(secret, 8*i+8)
		if wide128 {
			acc[i] += d1
			acc[i+1] += d0
		} else {
			acc[i] += d0
			acc[i+1] += d1
		}
		acc[i] += mult32to64(uint32(k0), uint32(k0>>32))
		acc[i+1] += mult32to64(uint32(k1), uint32(k1>>32))
	}
}

func accumulateWide256(acc *[ACC_LANES]uint64, input, secret []byte, wide128 bool) {
	for i := 0; i < ACC_LANES; i += 4 {
		d0 := readU64(input, 8*i)
		d1 := readU64(input, 8*i+8)
		d2 := readU64(input, 8*i+16)
		d3 := readU64(input, 8*i+24)
		k0 := d0 ^ readU64(secret, 8*i)
		k1 := d1 ^ readU64(secret, 8*i+8)
		k2 := d2 ^ readU64(secret, 8*i+16)
		k3 := d3 ^ readU64(secret, 8*i+24)
		if wide128 {
			acc[i] += d1
			acc[i+1] += d0
			acc[i+2] += d3
			acc[i+3] += d2
		} else {
			acc[i] += d0
			acc[i+1] += d1
			acc[i+2] += d2
			acc[i+3] += d3
		}
		acc[i] += mult32to64(uint32(k0), uint32(k0>>32))
		acc[i+1] += mult32to64(uint32(k1), uint32(k1>>32))
		acc[i+2] += mult32to64(uint32(k2), uint32(k2>>32))
		acc[i+3] += mult32to64(uint32(k3), uint32(k3>>32))
	}
}

func accumulateWide512(acc *[ACC_LANES]uint64, input, secret []byte, wide128 bool) {
	d0 := readU64(input, 0)
	d1 := readU64(input, 8)
	d2 := readU64(input, 16)
	d3 := readU64(input, 24)
	d4 := readU64(input, 32)
	d5 := readU64(input, 40)
	d6 := readU64(input, 48)
	d7 := readU64(input, 56)
	k0 := d0 ^ readU64(secret, 0)
	k1 := d1 ^ readU64(secret, 8)
	k2 := d2 ^ readU64(secret, 16)
	k3 := d3 ^ readU64(secret, 24)
	k4 := d4 ^ readU64(secret, 32)
	k5 := d5 ^ readU64(secret, 40)
	k6 := d6 ^ readU64(secret, 48)
	k7 := d7 ^ readU64(secret, 56)
	if wide128 {
		acc[0] += d1
		acc[1] += d0
		acc[2] += d3
		acc[3] += d2
		acc[4] += d5
		acc[5] += d4
		acc[6] += d7
		acc[7] += d6
	} else {
		acc[0] += d0
		acc[1] += d1
		acc[2] += d2
		acc[3] += d3
		acc[4] += d4
		acc[5] += d5
		acc[6] += d6
		acc[7] += d7
	}
	acc[0] += mult32to64(uint32(k0), uint32(k0>>32))
	acc[1] += mult32to64(uint32(k1), uint32(k1>>32))
	acc[2] += mult32to64(uint32(k2), uint32(k2>>32))
	acc[3] += mult32to64(uint32(k3), uint32(k3>>32))
	acc[4] += mult32to64(uint32(k4), uint32(k4>>32))
	acc[5] += mult32to64(uint32(k5), uint32(k5>>32))
	acc[6] += mult32to64(uint32(k6), uint32(k6>>32))
	acc[7] += mult32to64(uint32(k7), uint32(k7>>32))
}

func scrambleWide128(acc *[ACC_LANES]uint64, secret []byte) {
	for i := 0; i < ACC_LANES; i += 2 {
		a0 := xorshift64(acc[i], 47) ^ readU64(secret, 8*i)
		a1 := xorshift64(acc[i+1], 47) ^ readU64(secret, 8*i+8)
		acc[i] = a0 * PRIME32_1
		acc[i+1] = a1 * PRIME32_1
	}
}

func scrambleWide256(acc *[ACC_LANES]uint64, secret []byte) {
	for i := 0; i < ACC_LANES; i += 4 {
		a0 := xorshift64(acc[i], 47) ^ readU64(secret, 8*i)
		a1 := xorshift64(acc[i+1], 47) ^ readU64(secret, 8*i+8)
		a2 := xorshift64(acc[i+2], 47) ^ readU64(secret, 8*i+16)
		a3 := xorshift64(acc[i+3], 47) ^ readU64(secret, 8*i+24)
		acc[i] = a0 * PRIME32_1
		acc[i+1] = a1 * PRIME32_1
		acc[i+2] = a2 * PRIME32_1
		acc[i+3] = a3 * PRIME32_1
	}
}

func scrambleWide512(acc *[ACC_LANES]uint64, secret []byte) {
	a0 := xorshift64(acc[0], 47) ^ readU64(secret, 0)
	a1 := xorshift64(acc[1], 47) ^ readU64(secret, 8)
	a2 := xorshift64(acc[2], 47) ^ readU64(secret, 16)
	a3 := xorshift64(acc[3], 47) ^ readU64(secret, 24)
	a4 := xorshift64(acc[4], 47) ^ readU64(secret, 32)
	a5 := xorshift64(acc[5], 47) ^ readU64(secret, 40)
	a6 := xorshift64(acc[6], 47) ^ readU64(secret, 48)
	a7 := xorshift64(acc[7], 47) ^ readU64(secret, 56)
	acc[0] = a0 * PRIME32_1
	acc[1] = a1 * PRIME32_1
	acc[2] = a2 * PRIME32_1
	acc[3] = a3 * PRIME32_1
	acc[4] = a4 * PRIME32_1
	acc[5] = a5 * PRIME32_1
	acc[6] = a6 * PRIME32_1
	acc[7] = a7 * PRIME32_1
}

func deriveSecretWide128(dst *[SECRET_DEFAULT_SIZE]byte, seed uint64) {
	for i := 0; i < SECRET_DEFAULT_SIZE/16; i++ {
		writeU64(dst[:], 16*i, readU64(kSecret[:], 16*i)+seed)
		writeU64(dst[:], 16*i+8, readU64(kSecret[:], 16*i+8)-seed)
	}
}

func deriveSecretWide256(dst *[SECRET_DEFAULT_SIZE]byte, seed uint64) {
	for i := 0; i < SECRET_DEFAULT_SIZE/32; i++ {
		writeU64(dst[:], 32*i, readU64(kSecret[:], 32*i)+seed)
		writeU64(dst[:], 32*i+8, readU64(kSecret[:], 32*i+8)-seed)
		writeU64(dst[:], 32*i+16, readU64(kSecret[:], 32*i+16)+seed)
		writeU64(dst[:], 32*i+24, readU64(kSecret[:], 32*i+24)-seed)
	}
}

func deriveSecretWide512(dst *[SECRET_DEFAULT_SIZE]byte, seed uint64) {
	for i := 0; i < SECRET_DEFAULT_SIZE/64; i++ {
		writeU64(dst[:], 64*i, readU64(kSecret[:], 64*i)+seed)
		writeU64(dst[:], 64*i+8, readU64(kSecret[:], 64*i+8)-seed)
		writeU64(dst[:], 64*i+16, readU64(kSecret[:], 64*i+16)+seed)
		writeU64(dst[:], 64*i+24, readU64(kSecret[:], 64*i+24)-seed)
		writeU64(dst[:], 64*i+32, readU64(kSecret[:], 64*i+32)+seed)
		writeU64(dst[:], 64*i+40, readU64(kSecret[:], 64*i+40)-seed)
		writeU64(dst[:], 64*i+48, readU64(kSecret[:], 64*i+48)+seed)
		writeU64(dst[:], 64*i+56, readU64(kSecret[:], 64*i+56)-seed)
	}
}
