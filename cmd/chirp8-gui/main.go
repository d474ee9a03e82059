// Package main runs the raylib frontend.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"

	"github.com/aquinn/chirp8"
	"github.com/aquinn/chirp8/gui"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	seed := flag.Uint64("seed", 0, "seed for the random generator, 0 seeds from the clock")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg := log.DefaultConfig()
	if *debug {
		cfg.Level = log.DebugLevel
	}
	logger := log.NewWithConfig(cfg)

	logger.Info(fmt.Sprintf("chirp8-gui %s", buildinfo.Version(version, commit, date)))

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	machine := chirp8.New(*seed)
	app := gui.NewApp(machine, logger)

	// a ROM can also be dropped onto the window later
	if flag.NArg() > 0 {
		app.Load(flag.Arg(0))
	}

	app.Run()
}
