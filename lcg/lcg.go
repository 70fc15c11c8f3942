// SPDX-License-Identifier: GPL-2.0-or-later

// Package lcg is a linear congruential generator
// state' = (a*state + c) mod m, used as a baseline next to the Mersenne
// Twister.
package lcg

import (
	"math/bits"

	"github.com/pkg/errors"
)

var ErrConfiguration = errors.New("invalid lcg parameters")

type Generator struct {
	a, c, m uint64
	state   uint64
}

// New returns a generator with multiplier a, increment c and modulus m
// starting at seed mod m. Both a and c must be less than m.
func New(a, c, m, seed uint64) (*Generator, error) {
	if err := Validate(a, c, m); err != nil {
		return nil, err
	}
	return &Generator{a: a, c: c, m: m, state: seed % m}, nil
}

// Validate checks the parameters New accepts.
func Validate(a, c, m uint64) error {
	if m == 0 {
		return errors.Wrap(ErrConfiguration, "modulus must be positive")
	}
	if a >= m || c >= m {
		return errors.Wrapf(ErrConfiguration, "multiplier %d and increment %d must be less than modulus %d", a, c, m)
	}
	return nil
}

// Next advances the state and returns it.
func (g *Generator) Next() uint64 {
	// a, state, c < m so the 128-bit sum stays below m*m and hi < m.
	hi, lo := bits.Mul64(g.a, g.state)
	lo, carry := bits.Add64(lo, g.c, 0)
	hi += carry
	_, g.state = bits.Div64(hi, lo, g.m)
	return g.state
}

// Float64 advances the state and returns it divided by m.
func (g *Generator) Float64() float64 {
	return float64(g.Next()) / float64(g.m)
}
