package dotmesh

import "math"

// Collider is anything with a world position and a collision mesh. The
// origin is the top-left corner of the object in dot space; the library
// holds no notion of "current position" inside a mesh, so every query reads
// it fresh from the collider.
type Collider interface {
	Origin() DotPoint
	Mesh() Mesh
}

// CheckCollision tests two positioned colliders for pixel overlap.
// Colliders without a mesh never collide.
func CheckCollision(a, b Collider) (DotRect, bool) {
	return Collide(a.Mesh(), b.Mesh(), a.Origin(), b.Origin())
}

// Sprite is a set of named frames (poses) plus a world position. The
// position is kept as float64 so movement can be tweened; it is rounded to
// dot space for collision queries and drawing.
type Sprite struct {
	Name string
	X, Y float64

	frames  map[string]*Frame
	current string
}

// NewSprite creates an empty sprite. Add poses with AddFrame; the first
// frame added becomes the current pose.
func NewSprite(name string) *Sprite {
	return &Sprite{
		Name:   name,
		frames: make(map[string]*Frame),
	}
}

// AddFrame registers a pose under the given key. The first registered pose
// becomes current.
func (s *Sprite) AddFrame(key string, f *Frame) {
	if len(s.frames) == 0 {
		s.current = key
	}
	s.frames[key] = f
}

// SetPose switches the current pose. Returns false (and keeps the current
// pose) when no frame is registered under key.
func (s *Sprite) SetPose(key string) bool {
	if _, ok := s.frames[key]; !ok {
		debugf("sprite %q has no pose %q", s.Name, key)
		return false
	}
	s.current = key
	return true
}

// Pose returns the current pose key.
func (s *Sprite) Pose() string {
	return s.current
}

// Frame returns the current pose's frame, or nil for a sprite with no
// frames.
func (s *Sprite) Frame() *Frame {
	return s.frames[s.current]
}

// Origin returns the sprite's top-left corner rounded to dot space.
func (s *Sprite) Origin() DotPoint {
	return DotPoint{int(math.Round(s.X)), int(math.Round(s.Y))}
}

// Mesh returns the current frame's collision mesh, or nil when the sprite
// has no frame or the frame is mesh-less.
func (s *Sprite) Mesh() Mesh {
	if f := s.Frame(); f != nil {
		return f.Mesh()
	}
	return nil
}

// BBox returns the world-space bounding box of the sprite's collision
// pixels at its current position. ok is false for mesh-less sprites.
func (s *Sprite) BBox() (DotRect, bool) {
	f := s.Frame()
	if f == nil {
		return DotRect{}, false
	}
	local, ok := f.BBox()
	if !ok {
		return DotRect{}, false
	}
	return local.Translate(s.Origin().Vec()), true
}
