package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/sparkle"
	"github.com/phanxgames/sparkle/ebitensurface"
)

var (
	windowWidth   int
	windowHeight  int
	showFPS       bool
	screenshotDir string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Run the simulation in a desktop window",
	Long: `Opens a resizable window. Keys G, B and R toggle the grab, bubble and
repulse modes, P saves a screenshot, and Escape quits.`,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&windowWidth, "width", 800, "Window width")
	windowCmd.Flags().IntVar(&windowHeight, "height", 600, "Window height")
	windowCmd.Flags().BoolVar(&showFPS, "fps", false, "Show the FPS overlay")
	windowCmd.Flags().StringVar(&screenshotDir, "screenshots", "screenshots", "Directory for screenshots (empty disables)")
}

func runWindow(cmd *cobra.Command, args []string) error {
	opts, err := flags.options()
	if err != nil {
		return err
	}
	surf, err := ebitensurface.NewSurface()
	if err != nil {
		return err
	}
	if flags.image != "" {
		f, err := os.Open(flags.image)
		if err != nil {
			return fmt.Errorf("open image: %w", err)
		}
		err = surf.LoadImage(flags.image, f)
		f.Close()
		if err != nil {
			return err
		}
	}

	cfg := ebitensurface.RunConfig{
		Title:         "sparkle",
		Width:         windowWidth,
		Height:        windowHeight,
		ShowFPS:       showFPS,
		Background:    color.NRGBA{R: 0x0b, G: 0x0d, B: 0x17, A: 0xff},
		ScreenshotDir: screenshotDir,
	}
	var ptr sparkle.PointerSource
	sp, err := flags.scriptedPointer()
	if err != nil {
		return err
	}
	if sp != nil {
		ptr = sp
	} else {
		cfg.Pointer = ebitensurface.NewPointer(windowWidth, windowHeight)
		ptr = cfg.Pointer
	}

	c, err := sparkle.NewContainer(sparkle.Config{
		Width:   float64(windowWidth),
		Height:  float64(windowHeight),
		Options: opts,
		Rand:    flags.rand(),
		Pointer: ptr,
	})
	if err != nil {
		return err
	}
	c.SetDebugMode(flags.debug)
	return ebitensurface.Run(c, surf, cfg)
}
