// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog routes printf style messages to hooks installed by the
// binary. Until a hook is set, messages are dropped.
package conlog

var (
	p  func(string, ...interface{}) = discard
	dp func(string, ...interface{}) = discard
)

func discard(string, ...interface{}) {}

func SetPrintf(f func(string, ...interface{})) {
	if f == nil {
		f = discard
	}
	p = f
}

// SetDPrintf installs the debug hook.
func SetDPrintf(f func(string, ...interface{})) {
	if f == nil {
		f = discard
	}
	dp = f
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

func DPrintf(format string, v ...interface{}) {
	dp(format, v...)
}
