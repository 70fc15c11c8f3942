// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"mersenne/conlog"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func withEntropy(t *testing.T, r interface{ Read([]byte) (int, error) }) {
	old := entropy
	entropy = r
	t.Cleanup(func() { entropy = old })
}

func nonConstant(g *Generator, draws int) bool {
	first := g.Uint32()
	for i := 1; i < draws; i++ {
		if g.Uint32() != first {
			return true
		}
	}
	return false
}

func TestIntKey(t *testing.T) {
	huge, _ := new(big.Int).SetString("0x1_00000002_00000003", 0)
	tests := []struct {
		v    *big.Int
		want []uint32
	}{
		{big.NewInt(0), []uint32{0}},
		{big.NewInt(42), []uint32{42}},
		{big.NewInt(-42), []uint32{42}},
		{big.NewInt(1 << 32), []uint32{0, 1}},
		{huge, []uint32{3, 2, 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, intKey(tt.v), "intKey(%v)", tt.v)
	}
}

func TestZeroSeed(t *testing.T) {
	g := New(FromInt(0))
	st := g.State()
	assert.Equal(t, uint32(0x80000000), st[0])
	allZero := true
	for _, w := range st[1:n] {
		if w != 0 {
			allZero = false
			break
		}
	}
	assert.False(t, allZero, "state vector is all zero")
	assert.True(t, nonConstant(g, 100), "output is constant")
}

func TestSeedVariants(t *testing.T) {
	draw := func(s Seed) []uint32 {
		g := New(s)
		out := make([]uint32, 100)
		for i := range out {
			out[i] = g.Uint32()
		}
		return out
	}
	assert.Equal(t, draw(FromInt(42)), draw(FromInt(42)))
	assert.Equal(t, draw(FromBytes([]byte("abc"))), draw(FromBytes([]byte("abc"))))
	assert.Equal(t, draw(FromBytes([]byte("abc"))), draw(FromString("abc")))
	assert.NotEqual(t, draw(FromInt(42)), draw(FromBytes([]byte("abc"))))
	assert.NotEqual(t, draw(FromInt(42)), draw(FromString("42")))
	assert.Equal(t, draw(FromInt(42)), draw(FromBig(big.NewInt(42))))
	assert.Equal(t, draw(FromInt(0)), draw(FromBig(nil)))
}

func TestSeedCopiesInput(t *testing.T) {
	b := []byte("abc")
	s := FromBytes(b)
	b[0] = 'x'
	assert.Equal(t, uint32(3315820543), New(s).Uint32())

	v := big.NewInt(42)
	bs := FromBig(v)
	v.SetInt64(7)
	assert.Equal(t, uint32(2746317213), New(bs).Uint32())
}

func TestReseed(t *testing.T) {
	g := New(FromInt(1))
	g.Uint32()
	g.Seed(FromInt(42))
	assert.Equal(t, uint32(2746317213), g.Uint32())
}

func TestEntropySeed(t *testing.T) {
	// key words 1..624, so the same key comes from the integer
	// sum((i+1) << 32i)
	var buf bytes.Buffer
	v := new(big.Int)
	for i := n - 1; i >= 0; i-- {
		v.Lsh(v, 32)
		v.Or(v, big.NewInt(int64(i+1)))
	}
	for i := 0; i < n; i++ {
		binary.Write(&buf, binary.LittleEndian, uint32(i+1))
	}
	withEntropy(t, bytes.NewReader(buf.Bytes()))

	a := New(FromEntropy())
	b := New(FromBig(v))
	assert.Equal(t, b.State(), a.State())
}

func TestNilSeedUsesEntropy(t *testing.T) {
	withEntropy(t, bytes.NewReader(make([]byte, 4*n)))
	a := New(nil)
	b := New(FromInt(0))
	// 624 zero words is a different key than the single word 0
	assert.NotEqual(t, b.State(), a.State())
	assert.True(t, nonConstant(a, 100))
}

func TestEntropyFallback(t *testing.T) {
	withEntropy(t, failingReader{})
	var logged string
	conlog.SetDPrintf(func(f string, v ...interface{}) { logged += fmt.Sprintf(f, v...) })
	defer conlog.SetDPrintf(nil)

	g := New(FromEntropy())
	st := g.State()
	assert.Equal(t, uint32(0x80000000), st[0])
	assert.Equal(t, uint32(n), st[n])
	assert.True(t, nonConstant(g, 100))
	assert.Contains(t, logged, "entropy unavailable")

	k := timePidKey()
	assert.Len(t, k, 5)
}

func TestEntropyShortRead(t *testing.T) {
	withEntropy(t, bytes.NewReader(make([]byte, 10)))
	_, err := entropyKey()
	assert.True(t, errors.Is(err, errEntropyUnavailable), "err = %v", err)
}
