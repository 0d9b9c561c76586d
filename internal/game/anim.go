package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// moveAnimTicks is the slide duration in 60Hz update ticks.
const moveAnimTicks = 6

// playerAnim slides the player sprite between cell centers. Purely visual:
// the session position snaps immediately on an approved move and the sprite
// catches up.
type playerAnim struct {
	x, y float32
	tx   *gween.Tween
	ty   *gween.Tween
}

// jumpTo places the sprite immediately, cancelling any running slide.
func (a *playerAnim) jumpTo(x, y float32) {
	a.x, a.y = x, y
	a.tx, a.ty = nil, nil
}

// slideTo starts a tween from the sprite's current position. Starting from
// the current (possibly mid-slide) position keeps rapid keypresses smooth.
func (a *playerAnim) slideTo(x, y float32) {
	a.tx = gween.New(a.x, x, moveAnimTicks, ease.OutQuad)
	a.ty = gween.New(a.y, y, moveAnimTicks, ease.OutQuad)
}

// update advances the slide by dt ticks.
func (a *playerAnim) update(dt float32) {
	if a.tx != nil {
		v, done := a.tx.Update(dt)
		a.x = v
		if done {
			a.tx = nil
		}
	}
	if a.ty != nil {
		v, done := a.ty.Update(dt)
		a.y = v
		if done {
			a.ty = nil
		}
	}
}

// settled reports whether the sprite has reached its target.
func (a *playerAnim) settled() bool {
	return a.tx == nil && a.ty == nil
}
