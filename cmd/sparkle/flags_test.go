package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/phanxgames/sparkle"
)

func parseFlags(t *testing.T, args ...string) *simFlags {
	t.Helper()
	f := defaultSimFlags()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return f
}

func TestDefaultFlagsMatchDefaultOptions(t *testing.T) {
	opts, err := parseFlags(t).options()
	if err != nil {
		t.Fatal(err)
	}
	d := sparkle.DefaultOptions()
	if opts.Particles.Number != d.Particles.Number || opts.Particles.Links.Distance != d.Particles.Links.Distance {
		t.Errorf("particles = %+v", opts.Particles)
	}
	ev := opts.Interactivity.Events
	if !ev.OnHover.Enable || ev.OnHover.Mode != sparkle.ModeRepulse {
		t.Errorf("hover = %+v", ev.OnHover)
	}
	if !ev.OnClick.Enable || ev.OnClick.Action != sparkle.ClickPush {
		t.Errorf("click = %+v", ev.OnClick)
	}
}

func TestFlagsToOptions(t *testing.T) {
	f := parseFlags(t,
		"--count=12", "--density=false",
		"--color=#ff0000,#00ff00", "--shape=star,char", "--char=a,b",
		"--direction=bottom-left", "--straight", "--out=bounce", "--bounce",
		"--hover=grab", "--click=none", "--parallax",
	)
	opts, err := f.options()
	if err != nil {
		t.Fatal(err)
	}
	po := opts.Particles
	if po.Number != 12 || po.Density.Enable {
		t.Errorf("number = %d, density = %v", po.Number, po.Density.Enable)
	}
	if po.Move.Direction != sparkle.DirectionBottomLeft || !po.Move.Straight || po.Move.OutMode != sparkle.OutBounce || !po.Move.Bounce {
		t.Errorf("move = %+v", po.Move)
	}
	ev := opts.Interactivity.Events
	if ev.OnHover.Mode != sparkle.ModeGrab || !ev.OnHover.Parallax.Enable || ev.OnClick.Enable {
		t.Errorf("events = %+v", ev)
	}

	c, err := sparkle.NewContainer(sparkle.Config{Width: 400, Height: 300, Options: opts, Rand: sparkle.NewRand(2)})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range c.Particles() {
		if p.Shape != sparkle.ShapeStar && p.Shape != sparkle.ShapeChar {
			t.Errorf("shape = %v", p.Shape)
		}
		if rgb := p.Color.RGB; rgb == nil || (*rgb != sparkle.RGB{R: 255} && *rgb != sparkle.RGB{G: 255}) {
			t.Errorf("color = %+v", p.Color)
		}
	}
}

func TestFlagErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--shape=blob"}, `unknown shape "blob"`},
		{[]string{"--shape=image"}, "needs --image"},
		{[]string{"--direction=up"}, `unknown direction "up"`},
		{[]string{"--out=explode"}, `unknown edge policy "explode"`},
		{[]string{"--hover=poke"}, `unknown hover mode "poke"`},
		{[]string{"--click=double"}, `unknown click action "double"`},
	}
	for _, tt := range tests {
		_, err := parseFlags(t, tt.args...).options()
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%v: err = %v, want containing %q", tt.args, err, tt.want)
		}
	}
}

func TestScriptedPointerFlag(t *testing.T) {
	if sp, err := parseFlags(t).scriptedPointer(); sp != nil || err != nil {
		t.Errorf("no script = %v, %v", sp, err)
	}

	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(`{"steps": [{"action": "move", "x": 1, "y": 2}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	sp, err := parseFlags(t, "--script="+good).scriptedPointer()
	if err != nil || sp == nil {
		t.Fatalf("good script = %v, %v", sp, err)
	}
	if st := sp.Poll(); st.Position != (sparkle.Vec2{X: 1, Y: 2}) {
		t.Errorf("first poll = %+v", st)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"steps": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := parseFlags(t, "--script="+bad).scriptedPointer(); err == nil || !strings.Contains(err.Error(), "bad.json") {
		t.Errorf("bad script err = %v", err)
	}
	if _, err := parseFlags(t, "--script="+filepath.Join(dir, "missing.json")).scriptedPointer(); err == nil {
		t.Error("missing script should fail")
	}
}

func TestSeededRandIsReproducible(t *testing.T) {
	f := parseFlags(t, "--seed=42")
	a, b := f.rand(), f.rand()
	for i := 0; i < 5; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed produced different sequences")
		}
	}
}
