package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/sparkle"
	"github.com/phanxgames/sparkle/termsurface"
)

var (
	termFPS    int
	cellWidth  float64
	cellHeight float64
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the simulation in the terminal",
	Long: `Renders into the terminal with one cell per block of canvas pixels.
Keys g, b and r toggle the grab, bubble and repulse modes, + and - add or
remove a particle, and q or Escape quits.`,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().IntVar(&termFPS, "fps", 30, "Frames per second")
	termCmd.Flags().Float64Var(&cellWidth, "cell-width", termsurface.DefaultCellWidth, "Canvas pixels per cell, horizontally")
	termCmd.Flags().Float64Var(&cellHeight, "cell-height", termsurface.DefaultCellHeight, "Canvas pixels per cell, vertically")
}

func runTerm(cmd *cobra.Command, args []string) error {
	opts, err := flags.options()
	if err != nil {
		return err
	}
	sp, err := flags.scriptedPointer()
	if err != nil {
		return err
	}
	if flags.debug {
		_, _ = fmt.Fprintln(os.Stderr, "[sparkle] --debug is ignored in the terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	surf := termsurface.NewSurface(screen, cellWidth, cellHeight)
	w, h := surf.Canvas()

	var (
		ptr    sparkle.PointerSource
		runPtr *termsurface.Pointer
	)
	if sp != nil {
		ptr = sp
	} else {
		runPtr = termsurface.NewPointer(surf)
		ptr = runPtr
	}

	c, err := sparkle.NewContainer(sparkle.Config{
		Width:   w,
		Height:  h,
		Options: opts,
		Rand:    flags.rand(),
		Pointer: ptr,
	})
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = termsurface.Run(ctx, screen, c, surf, termsurface.RunConfig{FPS: termFPS, Pointer: runPtr})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
