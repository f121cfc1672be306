// Package sparkle is a frame-driven 2D particle engine: a population of
// particles drifting around a bounded canvas, linked by lines, and reacting to
// the pointer.
//
// A [Container] owns the particles, the canvas size, an immutable [Options]
// snapshot, and the pointer state. The host calls [Container.Update] and
// [Container.Draw] once per frame (or [Container.Frame] for both):
//
//	c, err := sparkle.NewContainer(sparkle.Config{
//		Width: 800, Height: 600,
//		Options: sparkle.DefaultOptions(),
//		Pointer: pointer,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	// every frame:
//	c.Update(1.0 / 60)
//	c.Draw(surface)
//
// Drawing goes through the [Surface] interface. The ebitensurface package
// renders onto an Ebitengine window and termsurface rasterizes into a tcell
// terminal screen.
//
// # Frame order
//
// Update polls the [PointerSource], applies a pending click (push or remove),
// then for each particle integrates motion and animation, applies the
// boundary policy, and runs the bubble, repulse, and grab interactions.
// Particles destroyed by the boundary policy are removed after the pass, so
// the collection never changes while it is iterated. Draw then renders link
// lines, grab lines, and every particle by shape.
//
// # Randomness
//
// Construction draws from a [Rand]. Pass [NewRand] with a fixed seed in
// [Config] to reproduce a layout exactly.
package sparkle
