package dotmesh

// TileSize is the side length, in dots, of the fixed block that underlies
// both the render grid and the collision mesh leaves.
const TileSize = 16

// Reference dot-screen dimensions. Nothing in the collision core clamps to
// these; they describe the logical screen games composite onto (see Surface).
const (
	DotWidth  = 320
	DotHeight = 240
)

// DotPoint is a position in dot (pixel) space. The origin is the top-left
// corner, with Y increasing downward.
type DotPoint struct {
	X, Y int
}

// DotVec is a displacement in dot space.
type DotVec struct {
	X, Y int
}

// TilePoint is a position in tile space: one unit per 16×16 block.
type TilePoint struct {
	X, Y int
}

// Add returns the point translated by v.
func (p DotPoint) Add(v DotVec) DotPoint {
	return DotPoint{p.X + v.X, p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p DotPoint) Sub(q DotPoint) DotVec {
	return DotVec{p.X - q.X, p.Y - q.Y}
}

// Vec converts the point to a displacement from the origin.
func (p DotPoint) Vec() DotVec {
	return DotVec(p)
}

// Neg returns the opposite displacement.
func (v DotVec) Neg() DotVec {
	return DotVec{-v.X, -v.Y}
}

// Add returns the component-wise sum of two displacements.
func (v DotVec) Add(w DotVec) DotVec {
	return DotVec{v.X + w.X, v.Y + w.Y}
}

// Scale returns the displacement multiplied by k.
func (v DotVec) Scale(k int) DotVec {
	return DotVec{v.X * k, v.Y * k}
}

// Dot returns the dot-space position of the tile's top-left corner.
func (p TilePoint) Dot() DotPoint {
	return DotPoint{p.X * TileSize, p.Y * TileSize}
}

// DotRect is an axis-aligned rectangle in dot space: origin plus size.
// A rectangle with non-positive width or height is empty and represents
// "no occupied pixels".
type DotRect struct {
	X, Y, W, H int
}

// tileRect is the local bounds of a single tile.
func tileRect() DotRect {
	return DotRect{0, 0, TileSize, TileSize}
}

// Empty reports whether the rectangle covers no dots.
func (r DotRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// MaxX returns the exclusive right edge.
func (r DotRect) MaxX() int { return r.X + r.W }

// MaxY returns the exclusive bottom edge.
func (r DotRect) MaxY() int { return r.Y + r.H }

// Translate returns the rectangle moved by v. Size is unchanged.
func (r DotRect) Translate(v DotVec) DotRect {
	return DotRect{r.X + v.X, r.Y + v.Y, r.W, r.H}
}

// Contains reports whether the dot at p lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r DotRect) Contains(p DotPoint) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Intersects reports whether r and other share at least one dot.
// Empty rectangles intersect nothing.
func (r DotRect) Intersects(other DotRect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.MaxX() && other.X < r.MaxX() &&
		r.Y < other.MaxY() && other.Y < r.MaxY()
}

// Intersect returns the overlap of r and other. ok is false when the two
// rectangles share no dots.
func (r DotRect) Intersect(other DotRect) (DotRect, bool) {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.MaxX(), other.MaxX())
	y1 := min(r.MaxY(), other.MaxY())
	if x0 >= x1 || y0 >= y1 {
		return DotRect{}, false
	}
	return DotRect{x0, y0, x1 - x0, y1 - y0}, true
}

// Union returns the smallest rectangle covering both r and other.
// Empty rectangles contribute nothing.
func (r DotRect) Union(other DotRect) DotRect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.MaxX(), other.MaxX())
	y1 := max(r.MaxY(), other.MaxY())
	return DotRect{x0, y0, x1 - x0, y1 - y0}
}

// bboxIntersects reports whether two bounding boxes overlap once each is
// translated to its world offset. This is the pruning test used at every
// level of a collision query.
func bboxIntersects(b1, b2 DotRect, off1, off2 DotPoint) bool {
	return b1.Translate(off1.Vec()).Intersects(b2.Translate(off2.Vec()))
}

// bboxIntersection returns the world-space overlap of two offset bounding
// boxes, or ok=false when they are disjoint.
func bboxIntersection(b1, b2 DotRect, off1, off2 DotPoint) (DotRect, bool) {
	return b1.Translate(off1.Vec()).Intersect(b2.Translate(off2.Vec()))
}

// tileCount returns how many tiles are needed to cover length dots.
func tileCount(length int) int {
	return (length + TileSize - 1) / TileSize
}
