// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	mrand "math/rand"
)

// Float64Source is anything that draws floats in [0, 1).
type Float64Source interface {
	Float64() float64
}

// Samples draws count floats from src in sequence order.
func Samples(src Float64Source, count int) []float64 {
	if count <= 0 {
		return nil
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = src.Float64()
	}
	return out
}

type source struct {
	g *Generator
}

// Source adapts g to math/rand. Draws through the adapter advance g.
func Source(g *Generator) mrand.Source64 {
	return source{g}
}

func (s source) Uint64() uint64 { return s.g.bits64(64) }
func (s source) Int63() int64   { return int64(s.g.bits64(63)) }
func (s source) Seed(v int64)   { s.g.Seed(FromInt(v)) }
