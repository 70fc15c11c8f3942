// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	"github.com/pkg/errors"
)

// StateLen is the length of a state snapshot: the 624 words followed by
// the cursor.
const StateLen = n + 1

// State returns a copy of the generator state.
func (g *Generator) State() []uint32 {
	s := make([]uint32, StateLen)
	copy(s, g.mt[:])
	s[n] = uint32(g.idx)
	return s
}

// SetState replaces the generator state with a snapshot from State.
// On error g is left unchanged.
func (g *Generator) SetState(s []uint32) error {
	if len(s) != StateLen {
		return errors.Wrapf(ErrInvalidState, "state vector has %d elements, want %d", len(s), StateLen)
	}
	if s[n] > n {
		return errors.Wrapf(ErrInvalidState, "cursor %d out of range [0, %d]", s[n], n)
	}
	copy(g.mt[:], s[:n])
	g.idx = int(s[n])
	return nil
}

// Clone returns an independent generator that continues with the same
// sequence as g.
func (g *Generator) Clone() *Generator {
	c := *g
	return &c
}
