package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/phanxgames/sparkle"
)

// simFlags holds the simulation flags shared by every subcommand.
type simFlags struct {
	count        int
	density      bool
	seed         uint64
	colors       []string
	shapes       []string
	chars        []string
	image        string
	size         float64
	sizeRandom   bool
	opacity      float64
	speed        float64
	direction    string
	straight     bool
	out          string
	bounce       bool
	links        bool
	linkDistance float64
	hover        string
	click        string
	parallax     bool
	script       string
	debug        bool
}

func defaultSimFlags() *simFlags {
	d := sparkle.DefaultOptions()
	return &simFlags{
		count:        d.Particles.Number,
		density:      d.Particles.Density.Enable,
		colors:       []string{"#ffffff"},
		shapes:       []string{"circle"},
		chars:        []string{"*"},
		size:         d.Particles.Size.Value,
		sizeRandom:   d.Particles.Size.Random,
		opacity:      d.Particles.Opacity.Value,
		speed:        d.Particles.Move.Speed,
		direction:    "none",
		out:          "wrap",
		links:        d.Particles.Links.Enable,
		linkDistance: d.Particles.Links.Distance,
		hover:        "repulse",
		click:        "push",
	}
}

func (f *simFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.count, "count", f.count, "Number of particles")
	fs.BoolVar(&f.density, "density", f.density, "Scale the particle count with the canvas area")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	fs.StringSliceVar(&f.colors, "color", f.colors, "Particle colors: hex, rgb(...), hsl(...) or random")
	fs.StringSliceVar(&f.shapes, "shape", f.shapes, "Shapes: circle, square, triangle, polygon, star, image, char")
	fs.StringSliceVar(&f.chars, "char", f.chars, "Characters drawn by char particles")
	fs.StringVar(&f.image, "image", "", "PNG file drawn by image particles")
	fs.Float64Var(&f.size, "size", f.size, "Particle radius in pixels")
	fs.BoolVar(&f.sizeRandom, "size-random", f.sizeRandom, "Randomize each radius up to --size")
	fs.Float64Var(&f.opacity, "opacity", f.opacity, "Particle opacity")
	fs.Float64Var(&f.speed, "speed", f.speed, "Move speed")
	fs.StringVar(&f.direction, "direction", f.direction, "Baseline direction: none, top, top-right, ..., left, top-left")
	fs.BoolVar(&f.straight, "straight", false, "Move exactly along --direction without drift")
	fs.StringVar(&f.out, "out", f.out, "Edge policy: wrap, bounce or destroy")
	fs.BoolVar(&f.bounce, "bounce", false, "Avoid overlap at spawn and bounce particles off each other")
	fs.BoolVar(&f.links, "links", f.links, "Draw link lines between nearby particles")
	fs.Float64Var(&f.linkDistance, "link-distance", f.linkDistance, "Maximum link length in pixels")
	fs.StringVar(&f.hover, "hover", f.hover, "Hover mode: none, grab, bubble or repulse")
	fs.StringVar(&f.click, "click", f.click, "Click action: none, push or remove")
	fs.BoolVar(&f.parallax, "parallax", false, "Offset particles with the pointer")
	fs.StringVar(&f.script, "script", "", "JSON pointer script replayed instead of live input")
	fs.BoolVar(&f.debug, "debug", false, "Print per-frame stats to stderr")
}

// options translates the flags into a configuration snapshot.
func (f *simFlags) options() (sparkle.Options, error) {
	opts := sparkle.DefaultOptions()
	po := &opts.Particles

	po.Number = f.count
	po.Density.Enable = f.density
	switch {
	case len(f.colors) == 1:
		po.Color = sparkle.ColorLiteral(f.colors[0])
	case len(f.colors) > 1:
		po.Color = sparkle.ColorList(f.colors...)
	}

	kinds := make([]sparkle.ShapeKind, 0, len(f.shapes))
	for _, name := range f.shapes {
		k, ok := sparkle.ParseShapeKind(name)
		if !ok {
			return opts, fmt.Errorf("unknown shape %q", name)
		}
		kinds = append(kinds, k)
		if k == sparkle.ShapeImage && f.image == "" {
			return opts, fmt.Errorf("shape image needs --image")
		}
	}
	po.Shape.Type = sparkle.ShapeList(kinds...)
	po.Shape.Character.Value = sparkle.CharacterList(f.chars...)
	if f.image != "" {
		po.Shape.Image.Src = f.image
	}

	po.Size.Value = f.size
	po.Size.Random = f.sizeRandom
	po.Opacity.Value = f.opacity

	dir, ok := sparkle.ParseDirection(f.direction)
	if !ok {
		return opts, fmt.Errorf("unknown direction %q", f.direction)
	}
	out, ok := sparkle.ParseOutMode(f.out)
	if !ok {
		return opts, fmt.Errorf("unknown edge policy %q", f.out)
	}
	po.Move.Speed = f.speed
	po.Move.Direction = dir
	po.Move.Straight = f.straight
	po.Move.OutMode = out
	po.Move.Bounce = f.bounce

	po.Links.Enable = f.links
	po.Links.Distance = f.linkDistance

	hover, ok := sparkle.ParseInteractMode(f.hover)
	if !ok {
		return opts, fmt.Errorf("unknown hover mode %q", f.hover)
	}
	click, ok := sparkle.ParseClickAction(f.click)
	if !ok {
		return opts, fmt.Errorf("unknown click action %q", f.click)
	}
	ev := &opts.Interactivity.Events
	ev.OnHover.Enable = hover != sparkle.ModeNone
	ev.OnHover.Mode = hover
	ev.OnHover.Parallax.Enable = f.parallax
	ev.OnClick.Enable = click != sparkle.ClickNone
	ev.OnClick.Action = click
	return opts, nil
}

func (f *simFlags) rand() sparkle.Rand {
	seed := f.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return sparkle.NewRand(seed)
}

// scriptedPointer loads --script, or returns nil when it is not set.
func (f *simFlags) scriptedPointer() (*sparkle.ScriptedPointer, error) {
	if f.script == "" {
		return nil, nil
	}
	data, err := os.ReadFile(f.script)
	if err != nil {
		return nil, fmt.Errorf("read pointer script: %w", err)
	}
	sp, err := sparkle.LoadPointerScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.script, err)
	}
	return sp, nil
}
