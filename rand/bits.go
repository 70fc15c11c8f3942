// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	"encoding/binary"
	"math/big"
	"slices"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
)

// Bits returns a non-negative integer with k random bits.
// Whole words are concatenated least significant first and a trailing
// partial word contributes its top k%32 bits.
func (g *Generator) Bits(k int) (*big.Int, error) {
	if k <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "number of bits must be greater than zero, got %d", k)
	}
	if k <= 32 {
		return new(big.Int).SetUint64(uint64(g.Uint32() >> (32 - k))), nil
	}
	words, rem := k/32, k%32
	buf := make([]byte, 0, 4*words+4)
	for i := 0; i < words; i++ {
		buf = binary.LittleEndian.AppendUint32(buf, g.Uint32())
	}
	if rem != 0 {
		r := g.Uint32() >> (32 - rem)
		for j := 0; j < (rem+7)/8; j++ {
			buf = append(buf, byte(r>>(8*j)))
		}
	}
	slices.Reverse(buf)
	return new(big.Int).SetBytes(buf), nil
}
