package dotmesh

import (
	"github.com/solarlune/resolv"
)

// Contact is one pixel-exact overlap found during a world step.
type Contact struct {
	A, B   *Sprite
	Region DotRect
}

// ContactSink receives contacts as the world finds them. Implementations
// must not call back into the world.
type ContactSink interface {
	EmitContact(Contact)
}

// ContactFunc adapts a plain function to a ContactSink.
type ContactFunc func(Contact)

// EmitContact calls fn with the contact.
func (fn ContactFunc) EmitContact(c Contact) { fn(c) }

// World pairs a resolv broad phase with pixel-exact narrow-phase checks.
// Sprites added to the world are bucketed into resolv's spatial grid by
// their collision bounding box; each Step the grid proposes candidate pairs
// and only those pairs pay for a mesh walk.
type World struct {
	space   *resolv.Space
	objects map[*Sprite]*resolv.Object
	order   []*Sprite
	index   map[*Sprite]int
	sink    ContactSink
}

// NewWorld creates a world covering w×h dots, with tile-sized broad-phase
// cells.
func NewWorld(w, h int) *World {
	return &World{
		space:   resolv.NewSpace(w, h, TileSize, TileSize),
		objects: make(map[*Sprite]*resolv.Object),
		index:   make(map[*Sprite]int),
	}
}

// SetContactSink routes contacts found by Step to the sink. A nil sink
// discards them.
func (w *World) SetContactSink(sink ContactSink) {
	w.sink = sink
}

// Add registers a sprite for collision stepping. Adding the same sprite
// twice is a no-op.
func (w *World) Add(s *Sprite) {
	if _, ok := w.objects[s]; ok {
		return
	}
	box, ok := s.BBox()
	if !ok {
		box = DotRect{X: s.Origin().X, Y: s.Origin().Y, W: 1, H: 1}
	}
	obj := resolv.NewObject(float64(box.X), float64(box.Y), float64(max(box.W, 1)), float64(max(box.H, 1)), "sprite")
	obj.Data = s
	w.space.Add(obj)
	w.objects[s] = obj
	w.index[s] = len(w.order)
	w.order = append(w.order, s)
}

// Remove drops a sprite from the world. Removing an unknown sprite is a
// no-op.
func (w *World) Remove(s *Sprite) {
	obj, ok := w.objects[s]
	if !ok {
		return
	}
	w.space.Remove(obj)
	delete(w.objects, s)

	i := w.index[s]
	w.order = append(w.order[:i], w.order[i+1:]...)
	delete(w.index, s)
	for j := i; j < len(w.order); j++ {
		w.index[w.order[j]] = j
	}
}

// Len returns the number of sprites in the world.
func (w *World) Len() int {
	return len(w.order)
}

// Step refreshes the broad phase from current sprite positions, then runs
// the pixel-exact check on every candidate pair and emits one Contact per
// overlapping pair, in insertion order of the first sprite. Each unordered
// pair is reported once per step, with A the earlier-added sprite.
func (w *World) Step() {
	for s, obj := range w.objects {
		box, ok := s.BBox()
		if !ok {
			origin := s.Origin()
			box = DotRect{X: origin.X, Y: origin.Y, W: 1, H: 1}
		}
		obj.X, obj.Y = float64(box.X), float64(box.Y)
		obj.W, obj.H = float64(max(box.W, 1)), float64(max(box.H, 1))
		obj.Update()
	}

	for i, s := range w.order {
		obj := w.objects[s]
		col := obj.Check(0, 0, "sprite")
		if col == nil {
			continue
		}
		for _, other := range col.Objects {
			o := other.Data.(*Sprite)
			if w.index[o] <= i {
				continue
			}
			region, hit := CheckCollision(s, o)
			if !hit {
				continue
			}
			if w.sink != nil {
				w.sink.EmitContact(Contact{A: s, B: o, Region: region})
			}
		}
	}
}
