// SPDX-License-Identifier: GPL-2.0-or-later

package qtime

import (
	"testing"
	"time"
)

func TestQTimeMonotonic(t *testing.T) {
	a := QTime()
	b := QTime()
	if b < a {
		t.Errorf("QTime() went backwards: %v then %v", a, b)
	}
}

var sink []byte

func TestMeasure(t *testing.T) {
	d, mem := Measure(func() {
		sink = make([]byte, 1<<20)
		time.Sleep(time.Millisecond)
	})
	if d < time.Millisecond {
		t.Errorf("Measure() elapsed = %v, want >= 1ms", d)
	}
	if mem < 1<<20 {
		t.Errorf("Measure() allocated = %d, want >= %d", mem, 1<<20)
	}
}
