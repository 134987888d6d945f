package dotmesh

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to two float64 fields on a Sprite simultaneously.
// Create one via TweenMove or TweenMoveX/TweenMoveY and call Update(dt)
// each tick; values are written straight to the sprite's position fields.
//
// There is no global animation manager — callers drive Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	fields [2]*float64
	count  int
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// sprite fields. Done is set once every tween has finished.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenMove animates the sprite's X and Y to the target position over the
// given duration using the easing function.
func TweenMove(s *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(s.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(s.Y), float32(toY), duration, fn)
	g.fields[0] = &s.X
	g.fields[1] = &s.Y
	return g
}

// TweenMoveX animates only the sprite's X coordinate.
func TweenMoveX(s *Sprite, toX float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(s.X), float32(toX), duration, fn)
	g.fields[0] = &s.X
	return g
}

// TweenMoveY animates only the sprite's Y coordinate.
func TweenMoveY(s *Sprite, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(s.Y), float32(toY), duration, fn)
	g.fields[0] = &s.Y
	return g
}

// TweenValue animates an arbitrary float64 field, for anything beyond
// position (a fade level, a camera offset). The field keeps its current
// value as the starting point.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}
