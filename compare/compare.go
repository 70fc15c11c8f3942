// SPDX-License-Identifier: GPL-2.0-or-later

// Package compare draws the same number of samples from the Mersenne
// Twister and from a linear congruential generator and reports how long
// each took, what it allocated and the first values it produced.
package compare

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"mersenne/conlog"
	"mersenne/lcg"
	"mersenne/qtime"
	"mersenne/rand"
)

const preview = 10

type Case struct {
	Count  int
	Lo, Hi int
}

var DefaultCases = []Case{
	{Count: 1000, Lo: 0, Hi: 100},
	{Count: 100000, Lo: 1, Hi: 10000},
	{Count: 1000000, Lo: 1, Hi: 1000000},
}

type Config struct {
	Multiplier uint64
	Increment  uint64
	Modulus    uint64
	// Seed seeds both generators. Nil or zero picks a random seed.
	Seed *big.Int
	// Count replaces DefaultCases with one case of Count samples in
	// [1, MaxRange) when positive.
	Count    int
	MaxRange int
}

// Cases returns the cases cfg asks for.
func (cfg *Config) Cases() []Case {
	if cfg.Count > 0 {
		return []Case{{Count: cfg.Count, Lo: 1, Hi: cfg.MaxRange}}
	}
	return DefaultCases
}

type Result struct {
	Name    string
	Elapsed time.Duration
	Alloc   uint64
	Numbers []int
}

// Scale maps f in [0, 1) onto [lo, hi).
func Scale(f float64, lo, hi int) int {
	return int(f*float64(hi-lo)) + lo
}

// Measure draws c.Count samples from src and scales them into c's range.
func Measure(name string, src rand.Float64Source, c Case) Result {
	var nums []int
	elapsed, alloc := qtime.Measure(func() {
		raw := rand.Samples(src, c.Count)
		nums = make([]int, len(raw))
		for i, f := range raw {
			nums[i] = Scale(f, c.Lo, c.Hi)
		}
	})
	return Result{Name: name, Elapsed: elapsed, Alloc: alloc, Numbers: nums}
}

func randomSeed() *big.Int {
	g := rand.New(rand.FromEntropy())
	return new(big.Int).SetUint64(g.Uint64n(1 << 32))
}

// Run validates cfg and writes a report for every case to w. The
// Mersenne Twister is seeded once and keeps drawing across cases.
func Run(w io.Writer, cfg Config) error {
	if err := lcg.Validate(cfg.Multiplier, cfg.Increment, cfg.Modulus); err != nil {
		return err
	}
	if cfg.Count > 0 && cfg.MaxRange <= 1 {
		return errors.Errorf("max range must be greater than 1, got %d", cfg.MaxRange)
	}
	seed := cfg.Seed
	if seed == nil || seed.Sign() == 0 {
		seed = randomSeed()
		conlog.DPrintf("compare: no seed given, using %v\n", seed)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "run id")
	}

	fmt.Fprintf(w, "Run: %v\n", id)
	fmt.Fprintf(w, "LCG Multiplier: %d\n", cfg.Multiplier)
	fmt.Fprintf(w, "LCG Increment: %d\n", cfg.Increment)
	fmt.Fprintf(w, "LCG Modulus: %d\n", cfg.Modulus)
	fmt.Fprintf(w, "Seed: %v\n", seed)
	if cfg.Count > 0 {
		fmt.Fprintf(w, "Count: %d\n", cfg.Count)
		fmt.Fprintf(w, "Range: 1 - %d\n", cfg.MaxRange)
	}
	fmt.Fprintln(w)

	mt := rand.New(rand.FromBig(seed))
	lcgSeed := new(big.Int).Mod(new(big.Int).Abs(seed), new(big.Int).SetUint64(cfg.Modulus)).Uint64()

	for _, c := range cfg.Cases() {
		// the baseline restarts from the seed each case
		lg, err := lcg.New(cfg.Multiplier, cfg.Increment, cfg.Modulus, lcgSeed)
		if err != nil {
			return err
		}
		conlog.DPrintf("compare: %d numbers in [%d, %d)\n", c.Count, c.Lo, c.Hi)
		printResult(w, Measure("LCG", lg, c), c)
		printResult(w, Measure("MT", mt, c), c)
		fmt.Fprintf(w, "%s\n", dashes)
	}
	return nil
}

const dashes = "--------------------------------------------------"

func printResult(w io.Writer, r Result, c Case) {
	n := len(r.Numbers)
	if n > preview {
		n = preview
	}
	fmt.Fprintf(w, "%s Test Case: %d numbers in range (%d, %d)\n", r.Name, c.Count, c.Lo, c.Hi)
	fmt.Fprintf(w, "  Time taken: %.6fs\n", r.Elapsed.Seconds())
	fmt.Fprintf(w, "  Memory used: %.6f MiB\n", float64(r.Alloc)/(1<<20))
	fmt.Fprintf(w, "  First %d numbers: %v\n\n", n, r.Numbers[:n])
}
