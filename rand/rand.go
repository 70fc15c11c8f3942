// SPDX-License-Identifier: GPL-2.0-or-later

// Package rand implements the 32-bit Mersenne Twister MT19937 with the
// seeding, float and bit extraction semantics of the reference
// init_by_array based library.
//
// A Generator is not safe for concurrent use. Give every goroutine its
// own Generator, either seeded independently or copied with Clone.
// MT19937 is predictable from its output and must not be used where
// cryptographic randomness is required.
package rand

import (
	"encoding/binary"
	"math/bits"

	"github.com/chewxy/math32"
)

const (
	n = 624
	m = 397

	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	temperB = 0x9d2c5680
	temperC = 0xefc60000
)

type Generator struct {
	mt  [n]uint32
	idx int
}

// New returns a Generator seeded with s. A nil s seeds from the
// operating system entropy source.
func New(s Seed) *Generator {
	g := &Generator{}
	g.Seed(s)
	return g
}

func (g *Generator) twist() {
	mt := &g.mt
	var i int
	for ; i < n-m; i++ {
		y := mt[i]&upperMask | mt[i+1]&lowerMask
		mt[i] = mt[i+m] ^ y>>1 ^ matrixA*(y&1)
	}
	for ; i < n-1; i++ {
		y := mt[i]&upperMask | mt[i+1]&lowerMask
		mt[i] = mt[i+m-n] ^ y>>1 ^ matrixA*(y&1)
	}
	y := mt[n-1]&upperMask | mt[0]&lowerMask
	mt[n-1] = mt[m-1] ^ y>>1 ^ matrixA*(y&1)
	g.idx = 0
}

// Uint32 returns the next tempered 32-bit word.
func (g *Generator) Uint32() uint32 {
	if g.idx >= n {
		g.twist()
	}
	y := g.mt[g.idx]
	y ^= y >> 11
	y ^= y << 7 & temperB
	y ^= y << 15 & temperC
	y ^= y >> 18
	g.idx++
	return y
}

// Float64 returns a float in [0, 1) with 53 bits of precision, built
// from two words.
func (g *Generator) Float64() float64 {
	a := g.Uint32() >> 5
	b := g.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Float32 returns a float in [0, 1) from the top 24 bits of one word.
func (g *Generator) Float32() float32 {
	return math32.Ldexp(float32(g.Uint32()>>8), -24)
}

// bits64 draws k bits, 1 <= k <= 64, consuming words the same way Bits
// does.
func (g *Generator) bits64(k int) uint64 {
	if k <= 32 {
		return uint64(g.Uint32() >> (32 - k))
	}
	lo := uint64(g.Uint32())
	hi := uint64(g.Uint32() >> (64 - k))
	return hi<<32 | lo
}

// Uint64n returns a uniform value in [0, n) by rejection sampling over
// draws of bit length n. It panics if n == 0.
func (g *Generator) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("invalid argument to Uint64n")
	}
	k := bits.Len64(n)
	r := g.bits64(k)
	for r >= n {
		r = g.bits64(k)
	}
	return r
}

// Intn returns a uniform value in [0, n). It panics if n <= 0.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	return int(g.Uint64n(uint64(n)))
}

// Read fills p with random bytes. The output equals the little-endian
// encoding of Bits(8*len(p)). It never fails.
func (g *Generator) Read(p []byte) (int, error) {
	full := len(p) / 4
	for i := 0; i < full; i++ {
		binary.LittleEndian.PutUint32(p[4*i:], g.Uint32())
	}
	if rem := len(p) % 4; rem != 0 {
		r := g.Uint32() >> (32 - 8*rem)
		for j := 0; j < rem; j++ {
			p[4*full+j] = byte(r >> (8 * j))
		}
	}
	return len(p), nil
}
