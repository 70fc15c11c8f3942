// SPDX-License-Identifier: GPL-2.0-or-later

package qtime

import (
	"runtime"
	"time"
)

var (
	startTime = time.Now()
)

// QTime is the monotonic time since process start.
func QTime() time.Duration {
	return time.Now().Sub(startTime)
}

// Measure runs f and reports its wall time and the bytes it allocated
// on the heap.
func Measure(f func()) (time.Duration, uint64) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := QTime()
	f()
	elapsed := QTime() - start
	runtime.ReadMemStats(&after)
	return elapsed, after.TotalAlloc - before.TotalAlloc
}
