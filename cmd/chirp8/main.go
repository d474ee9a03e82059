// Package main runs a CHIP-8 ROM in the terminal.
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
	"github.com/aquinn/chirp8/term"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	seed := flag.Uint64("seed", 0, "seed for the random generator, 0 seeds from the clock")
	debug := flag.Bool("debug", false, "enable debug logging")
	quiet := flag.Bool("q", false, "quiet mode")
	flag.Parse()

	logger := createLogger(*debug, *quiet)

	if flag.NArg() < 1 {
		fmt.Printf("chirp8 %s - CHIP-8 console for the terminal\n\n", buildinfo.Version(version, commit, date))
		fmt.Printf("usage: chirp8 [options] <rom file>\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(app.Context(), logger, *seed, flag.Arg(0)); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("session stopped")
			return
		}
		logger.Fatal(err.Error())
	}
}

func run(ctx context.Context, logger *log.Logger, seed uint64, romPath string) error {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	machine := chirp8.New(seed)

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}
	if err := machine.LoadProgram(rom); err != nil {
		return fmt.Errorf("loading rom '%s': %w", romPath, err)
	}
	logger.Debug("program loaded",
		log.String("path", romPath),
		log.Int("bytes", len(rom)))

	keyboard, err := term.NewKeyboard(chirp8.DefaultKeyboardLayout)
	if err != nil {
		return err
	}
	defer func() {
		_ = keyboard.Close()
	}()

	display := term.NewDisplay(os.Stdout)
	if err := display.Clear(); err != nil {
		return err
	}

	console := chirp8.NewConsole(machine, display, keyboard, term.NewBuzzer(os.Stdout))

	return console.Run(ctx)
}

func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}

	return log.NewWithConfig(cfg)
}
