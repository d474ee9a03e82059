// Package main serves a CHIP-8 session over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"

	"github.com/aquinn/chirp8"
	"github.com/aquinn/chirp8/web"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	port := flag.Int("port", 9999, "port of the server")
	seed := flag.Uint64("seed", 0, "seed for the random generator, 0 seeds from the clock")
	useDebugger := flag.Bool("dbg", false, "enable the debugger endpoints, console starts paused")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg := log.DefaultConfig()
	if *debug {
		cfg.Level = log.DebugLevel
	}
	logger := log.NewWithConfig(cfg)

	if flag.NArg() < 1 {
		fmt.Printf("chirp8-web %s - CHIP-8 console over HTTP\n\n", buildinfo.Version(version, commit, date))
		fmt.Printf("usage: chirp8-web [options] <rom file>\n\n")
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

	server := web.NewServer(machine, logger, func(config *web.ServerConfig) {
		config.UseDebugger = *useDebugger
	})

	if err := server.Listen(app.Context(), *port); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("server stopped")
			return
		}
		logger.Fatal(err.Error())
	}
}
