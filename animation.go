package tilekit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 properties of a Tile simultaneously. Create one
// via TweenPosition, TweenScale, TweenRotation or TweenAlpha and call
// Update(dt) each frame. Values are written through the tile's setters, so
// dirty tracking and the transform cache behave as for any other edit.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	apply  [2]func(float64)
	count  int
	Done   bool
}

// Update advances all tweens by dt seconds and applies the current values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.apply[i](float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that moves tile to (toX, toY) over the
// given duration using the easing function.
func TweenPosition(tile *Tile, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(tile.X()), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(tile.Y()), float32(toY), duration, fn)
	g.apply[0] = tile.SetX
	g.apply[1] = tile.SetY
	return g
}

// TweenScale creates a TweenGroup that animates ScaleX and ScaleY to the
// given values.
func TweenScale(tile *Tile, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(tile.ScaleX()), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(tile.ScaleY()), float32(toSY), duration, fn)
	g.apply[0] = tile.SetScaleX
	g.apply[1] = tile.SetScaleY
	return g
}

// TweenRotation creates a TweenGroup that animates Rotation (degrees).
func TweenRotation(tile *Tile, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(tile.Rotation()), float32(to), duration, fn)
	g.apply[0] = tile.SetRotation
	return g
}

// TweenAlpha creates a TweenGroup that animates Alpha.
func TweenAlpha(tile *Tile, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(tile.Alpha()), float32(to), duration, fn)
	g.apply[0] = tile.SetAlpha
	return g
}
