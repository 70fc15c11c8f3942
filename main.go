// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"log"
	"os"

	"mersenne/commandline"
	"mersenne/compare"
	"mersenne/conlog"
)

func main() {
	flag.Parse()

	conlog.SetPrintf(log.Printf)
	if commandline.Debug() {
		conlog.SetDPrintf(log.Printf)
	}

	count, _ := commandline.Count()
	cfg := compare.Config{
		Multiplier: commandline.LCGMultiplier(),
		Increment:  commandline.LCGIncrement(),
		Modulus:    commandline.LCGModulus(),
		Seed:       commandline.Seed(),
		Count:      count,
		MaxRange:   commandline.MaxRange(),
	}
	if err := compare.Run(os.Stdout, cfg); err != nil {
		conlog.Printf("%v\n", err)
		os.Exit(1)
	}
}
