package sparkle

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fade tracks the strength of a pointer effect on one particle. While the
// pointer holds the effect the factor is set directly; once released it
// tweens back to zero over the configured duration.
type fade struct {
	factor float64
	tween  *gween.Tween
}

// hold sets the factor and cancels any running release.
func (f *fade) hold(v float64) {
	f.factor = v
	f.tween = nil
}

// release starts tweening the factor to zero. A non-positive duration drops
// it immediately. No-op when already released or idle.
func (f *fade) release(duration float64) {
	if f.factor == 0 || f.tween != nil {
		return
	}
	if duration <= 0 {
		f.factor = 0
		return
	}
	f.tween = gween.New(float32(f.factor), 0, float32(duration), ease.OutQuad)
}

// step advances a running release by dt seconds.
func (f *fade) step(dt float64) {
	if f.tween == nil {
		return
	}
	val, done := f.tween.Update(float32(dt))
	f.factor = float64(val)
	if done || f.factor <= 0 {
		f.factor = 0
		f.tween = nil
	}
}
