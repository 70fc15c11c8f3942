// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	crand "crypto/rand"
	"crypto/sha512"
	"encoding/binary"
	"io"
	"math/big"
	"os"
	"time"

	"github.com/pkg/errors"

	"mersenne/conlog"
	"mersenne/qtime"
)

const initSeed = 19650218

var (
	errEntropyUnavailable = errors.New("entropy unavailable")

	// entropy is read for FromEntropy seeds.
	entropy io.Reader = crand.Reader
)

// Seed selects how a Generator is seeded. It is implemented by the
// values returned from FromEntropy, FromInt, FromBig, FromBytes and
// FromString.
type Seed interface {
	key() []uint32
}

type entropySeed struct{}

type intSeed struct {
	v *big.Int
}

type byteSeed struct {
	b []byte
}

// FromEntropy seeds from the operating system entropy source, falling
// back to the wall clock, process id and monotonic clock when that
// source cannot be read.
func FromEntropy() Seed { return entropySeed{} }

// FromInt seeds from |v|.
func FromInt(v int64) Seed { return intSeed{big.NewInt(v)} }

// FromBig seeds from |v|. v is copied. A nil v is treated as zero.
func FromBig(v *big.Int) Seed {
	c := new(big.Int)
	if v != nil {
		c.Set(v)
	}
	return intSeed{c}
}

// FromBytes seeds from b followed by its SHA-512 digest, read as one
// big-endian integer. b is copied.
func FromBytes(b []byte) Seed {
	return byteSeed{append([]byte(nil), b...)}
}

// FromString seeds from the UTF-8 bytes of s, see FromBytes.
func FromString(s string) Seed { return byteSeed{[]byte(s)} }

func (entropySeed) key() []uint32 {
	k, err := entropyKey()
	if err != nil {
		conlog.DPrintf("rand: %v, seeding from time and pid\n", err)
		return timePidKey()
	}
	return k
}

func (s intSeed) key() []uint32 {
	return intKey(s.v)
}

func (s byteSeed) key() []uint32 {
	sum := sha512.Sum512(s.b)
	buf := make([]byte, 0, len(s.b)+len(sum))
	buf = append(buf, s.b...)
	buf = append(buf, sum[:]...)
	return intKey(new(big.Int).SetBytes(buf))
}

func entropyKey() ([]uint32, error) {
	var buf [n * 4]byte
	if _, err := io.ReadFull(entropy, buf[:]); err != nil {
		return nil, errors.Wrapf(errEntropyUnavailable, "read: %v", err)
	}
	k := make([]uint32, n)
	for i := range k {
		k[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
	return k, nil
}

func timePidKey() []uint32 {
	now := uint64(time.Now().UnixNano())
	mono := uint64(qtime.QTime().Nanoseconds())
	return []uint32{
		uint32(now),
		uint32(now >> 32),
		uint32(os.Getpid()),
		uint32(mono),
		uint32(mono >> 32),
	}
}

// intKey splits |v| into 32-bit words, least significant first.
func intKey(v *big.Int) []uint32 {
	b := new(big.Int).Abs(v).Bytes()
	if len(b) == 0 {
		return []uint32{0}
	}
	if pad := len(b) % 4; pad != 0 {
		b = append(make([]byte, 4-pad), b...)
	}
	k := make([]uint32, 0, len(b)/4)
	for i := len(b); i > 0; i -= 4 {
		k = append(k, binary.BigEndian.Uint32(b[i-4:i]))
	}
	return k
}

// Seed reinitializes g. A nil s seeds from the entropy source.
func (g *Generator) Seed(s Seed) {
	if s == nil {
		s = entropySeed{}
	}
	g.initByArray(s.key())
}

func (g *Generator) initGenrand(s uint32) {
	mt := &g.mt
	mt[0] = s
	for i := 1; i < n; i++ {
		mt[i] = 1812433253*(mt[i-1]^mt[i-1]>>30) + uint32(i)
	}
	g.idx = n
}

func (g *Generator) initByArray(key []uint32) {
	g.initGenrand(initSeed)
	mt := &g.mt
	i, j := 1, 0
	k := n
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		mt[i] = (mt[i] ^ (mt[i-1]^mt[i-1]>>30)*1664525) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			mt[0] = mt[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		mt[i] = (mt[i] ^ (mt[i-1]^mt[i-1]>>30)*1566083941) - uint32(i)
		i++
		if i >= n {
			mt[0] = mt[n-1]
			i = 1
		}
	}
	mt[0] = 0x80000000
}
