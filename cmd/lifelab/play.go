package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/lifelab/internal/input"
	"github.com/san-kum/lifelab/internal/life"
	"github.com/san-kum/lifelab/internal/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// commandBuffer bounds how many unprocessed inputs can queue up between
// frames before the listener blocks.
const commandBuffer = 64

// runPlay drives the raw-terminal player: the engine owns the board, a
// listener goroutine feeds parsed keys and mouse clicks over a channel,
// and only changed cells are repainted. Starts paused; space begins
// playback.
func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Pattern = args[0]
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("play needs a terminal (try: lifelab run)")
	}

	termW, termH, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read terminal size: %w", err)
	}

	w, h := cfg.Width, cfg.Height
	if w <= 0 || w > termW {
		w = termW
	}
	if h <= 0 || h > termH {
		h = termH
	}

	g, err := seedGrid(w, h, cfg.Pattern, cfg.Density, cfg.Seed)
	if err != nil {
		return err
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	alive, dead := cfg.Glyphs()
	r := render.NewANSI(os.Stdout, render.Glyphs{Alive: alive, Dead: dead})
	if err := r.EnterScreen(); err != nil {
		return err
	}
	defer r.ExitScreen()

	// paint the seed; everything after this is diffs
	if err := r.Apply(g.AliveUpdates()); err != nil {
		return err
	}

	commands := make(chan life.Command, commandBuffer)
	go input.Listen(os.Stdin, commands, g.Width(), g.Height())

	eng := life.NewEngine(g, r, commands)
	if cfg.FPS > 0 {
		eng.SetInterval(time.Second / time.Duration(cfg.FPS))
	}

	return eng.Run(context.Background())
}
