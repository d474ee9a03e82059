// Package main runs the gocui debugger console.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"

	"github.com/aquinn/chirp8"
	"github.com/aquinn/chirp8/tui"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	seed := flag.Uint64("seed", 0, "seed for the random generator, 0 seeds from the clock")
	flag.Parse()

	// logging to stdout would fight gocui for the terminal
	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	logger := log.NewWithConfig(cfg)

	if flag.NArg() < 1 {
		fmt.Printf("chirp8-dbg %s - CHIP-8 debugger console\n\n", buildinfo.Version(version, commit, date))
		fmt.Printf("usage: chirp8-dbg [options] <rom file>\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	machine := chirp8.New(*seed)

	rom, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Fatal(err.Error())
	}
	if err := machine.LoadProgram(rom); err != nil {
		logger.Fatal(err.Error())
	}

	if err := tui.New(machine, logger).Run(); err != nil {
		logger.Fatal(err.Error())
	}
}
