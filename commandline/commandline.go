// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"fmt"
	"math/big"
	"strconv"
)

var (
	debug bool

	lcgModulus    uint64
	lcgMultiplier uint64
	lcgIncrement  uint64

	maxRange int

	count optInt
	seed  bigInt
)

// optInt is an int flag that remembers whether it was given.
type optInt struct {
	set bool
	num int
}

func (o *optInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("must be positive, got %d", v)
	}
	o.set = true
	o.num = int(v)
	return nil
}

func (o *optInt) String() string {
	if !o.set {
		return ""
	}
	return strconv.Itoa(o.num)
}

// bigInt accepts integers of any size, in any base strconv prefixes
// allow.
type bigInt struct {
	v *big.Int
}

func (b *bigInt) Set(s string) error {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return fmt.Errorf("not an integer: %q", s)
	}
	b.v = v
	return nil
}

func (b *bigInt) String() string {
	if b.v == nil {
		return ""
	}
	return b.v.String()
}

func init() {
	flag.BoolVar(&debug, "debug", false, "enable debug logging")

	flag.Uint64Var(&lcgModulus, "lcg_modulus", 1<<32, "Modulus 'm' in LCG")
	flag.Uint64Var(&lcgMultiplier, "lcg_multiplier", 594_156_893, "Multiplier 'a' in LCG")
	flag.Uint64Var(&lcgIncrement, "lcg_increment", 0, "Increment 'c' in LCG")

	flag.IntVar(&maxRange, "max_range", 1000000, "Range of the numbers to be generated")

	flag.Var(&count, "count", "Number of random numbers to generate")
	flag.Var(&seed, "seed", "Initial seed for LCG and MT")
}

func Debug() bool {
	return debug
}

func LCGModulus() uint64 {
	return lcgModulus
}

func LCGMultiplier() uint64 {
	return lcgMultiplier
}

func LCGIncrement() uint64 {
	return lcgIncrement
}

func MaxRange() int {
	return maxRange
}

// Count returns the -count value and whether it was given.
func Count() (int, bool) {
	return count.num, count.set
}

// Seed returns the -seed value, nil if it was not given.
func Seed() *big.Int {
	if seed.v == nil {
		return nil
	}
	return new(big.Int).Set(seed.v)
}
