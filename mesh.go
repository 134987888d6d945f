package dotmesh

import (
	"fmt"
	"image"
)

// TileDir identifies a child's quadrant within its parent mesh node.
type TileDir uint8

const (
	LeftUp TileDir = iota
	RightUp
	RightDown
	LeftDown
)

// tileDirs is the fixed construction and iteration order of quadrants.
var tileDirs = [4]TileDir{LeftUp, RightUp, RightDown, LeftDown}

// Vec returns the quadrant's unit displacement: (0,0) for LeftUp through
// (0,1) for LeftDown.
func (d TileDir) Vec() DotVec {
	switch d {
	case LeftUp:
		return DotVec{0, 0}
	case RightUp:
		return DotVec{1, 0}
	case RightDown:
		return DotVec{1, 1}
	default:
		return DotVec{0, 1}
	}
}

// String returns the quadrant name.
func (d TileDir) String() string {
	switch d {
	case LeftUp:
		return "LeftUp"
	case RightUp:
		return "RightUp"
	case RightDown:
		return "RightDown"
	default:
		return "LeftDown"
	}
}

// maxMeshScale is the largest supported scale tier. A mesh of scale s spans
// s*TileSize dots per side, so the ceiling is a 256×256 sprite.
const maxMeshScale = 16

// MaxMeshSpan is the largest sprite dimension, in dots, a mesh can cover.
const MaxMeshSpan = maxMeshScale * TileSize

// quadrantOffset returns the dot-space displacement of a child quadrant
// inside a node of the given scale. Scales are powers of two, so each child
// spans exactly scale/2 tiles and the same rule applies during construction
// and at every collision compensation step.
func quadrantOffset(dir TileDir, scale int) DotVec {
	return dir.Vec().Scale(scale / 2 * TileSize)
}

// meshScale returns the smallest power-of-two tile multiple whose span
// covers maxLen dots: 1, 2, 4, 8 or 16. Anything wider than MaxMeshSpan is
// a content-authoring error and panics; oversized assets must be caught
// before they ship, not silently truncated.
func meshScale(maxLen int) int {
	span := TileSize
	for scale := 1; scale <= maxMeshScale; scale *= 2 {
		if maxLen <= span {
			return scale
		}
		span *= 2
	}
	panic(fmt.Sprintf("dotmesh: sprite span %d exceeds the maximum supported mesh span of %d", maxLen, MaxMeshSpan))
}

// meshChild is one occupied quadrant of a node.
type meshChild struct {
	tree Mesh
	dir  TileDir
}

// MeshNode is an interior node of a collision mesh: up to four child
// subtrees, one per occupied quadrant, plus the union bounding box of the
// children translated into this node's local space.
type MeshNode struct {
	children []meshChild
	bbox     DotRect
	scale    int
}

// BBox returns the bounding box of occupied pixels, relative to the node's
// own top-left corner. It always fully contains every child's translated
// bounding box.
func (n *MeshNode) BBox() DotRect {
	return n.bbox
}

// Scale returns how many base tiles the node spans per side.
func (n *MeshNode) Scale() int {
	return n.scale
}

func (*MeshNode) isMesh() {}

// Mesh is a quadtree of per-pixel occupancy masks: either a single
// *MeshLeaf or a *MeshNode of up to four sub-meshes. A mesh is immutable
// after construction and safe for concurrent queries; rebuilding from a new
// pixel buffer is the only way to change it.
type Mesh interface {
	// BBox returns the bounding box of occupied pixels in the mesh's own
	// local dot coordinates.
	BBox() DotRect

	isMesh()
}

// NewMesh builds a collision mesh from a decoded RGBA buffer. A pixel
// participates in collision when the low nibble of its alpha byte is
// non-zero, independent of its visible opacity. ok is false when the buffer
// contains no such pixel; callers must treat that as a valid, mesh-less
// sprite. Buffers wider or taller than MaxMeshSpan panic.
func NewMesh(img *image.RGBA) (Mesh, bool) {
	b := img.Bounds()
	return meshFromRegion(img, DotRect{0, 0, b.Dx(), b.Dy()})
}

// meshFromRegion recursively subdivides region (in buffer coordinates).
// Regions that fit one tile become leaves; anything larger splits into four
// scale/2 quadrants, keeping only the ones that produced a subtree.
func meshFromRegion(img *image.RGBA, region DotRect) (Mesh, bool) {
	if region.Empty() {
		return nil, false
	}
	scale := meshScale(max(region.W, region.H))
	if scale == 1 {
		leaf, ok := newMeshLeaf(img, region)
		if !ok {
			return nil, false
		}
		return leaf, true
	}
	half := scale / 2 * TileSize
	var children []meshChild
	var bbox DotRect
	for _, dir := range tileDirs {
		v := dir.Vec().Scale(half)
		quad := DotRect{region.X + v.X, region.Y + v.Y, half, half}
		sub, ok := quad.Intersect(region)
		if !ok {
			continue
		}
		child, ok := meshFromRegion(img, sub)
		if !ok {
			continue
		}
		bbox = bbox.Union(child.BBox().Translate(v))
		children = append(children, meshChild{tree: child, dir: dir})
	}
	if len(children) == 0 {
		return nil, false
	}
	return &MeshNode{children: children, bbox: bbox, scale: scale}, true
}

// Collide tests two positioned meshes for pixel overlap. Each offset is the
// world-space position of that mesh's top-left corner. On overlap it
// returns a world-space rectangle covering at least one overlapping pixel
// region: the bounding-box intersection at the first colliding leaf pair.
// The query stops at the first hit; it never enumerates every contact.
//
// Either mesh may be nil (a mesh-less sprite), which never collides.
func Collide(a, b Mesh, offA, offB DotPoint) (DotRect, bool) {
	switch s := a.(type) {
	case *MeshLeaf:
		switch o := b.(type) {
		case *MeshLeaf:
			return s.collideLeaf(o, offA, offB)
		case *MeshNode:
			return s.collideNode(o, offA, offB)
		}
	case *MeshNode:
		switch o := b.(type) {
		case *MeshLeaf:
			return o.collideNode(s, offB, offA)
		case *MeshNode:
			return s.collideNode(o, offA, offB)
		}
	}
	return DotRect{}, false
}

// collideNode tests two nodes, walking this node's children in insertion
// order, compounding the offset by each child's quadrant displacement, and
// pruning against the other node's bounding box before descending. The
// first child pair to overlap wins.
func (n *MeshNode) collideNode(other *MeshNode, offS, offO DotPoint) (DotRect, bool) {
	if !bboxIntersects(n.bbox, other.bbox, offS, offO) {
		return DotRect{}, false
	}
	for _, c := range n.children {
		childOff := offS.Add(quadrantOffset(c.dir, n.scale))
		if !bboxIntersects(c.tree.BBox(), other.bbox, childOff, offO) {
			continue
		}
		var (
			hit DotRect
			ok  bool
		)
		switch child := c.tree.(type) {
		case *MeshLeaf:
			hit, ok = child.collideNode(other, childOff, offO)
		case *MeshNode:
			hit, ok = child.collideNode(other, childOff, offO)
		}
		if ok {
			return hit, true
		}
	}
	return DotRect{}, false
}

// meshRows rasterizes a mesh back into packed nibble rows: the result is
// scale words wide and scale*TileSize rows tall, with absent quadrants left
// zero. Used by Frame.RestoreImage and the debug dump.
func meshRows(m Mesh) [][]uint64 {
	switch t := m.(type) {
	case *MeshLeaf:
		rows := make([][]uint64, TileSize)
		for y := range rows {
			rows[y] = []uint64{t.rows[y]}
		}
		return rows
	case *MeshNode:
		half := t.scale / 2
		rows := make([][]uint64, t.scale*TileSize)
		for y := range rows {
			rows[y] = make([]uint64, t.scale)
		}
		for _, c := range t.children {
			sub := meshRows(c.tree)
			baseRow := c.dir.Vec().Y * half * TileSize
			baseWord := c.dir.Vec().X * half
			for y := range sub {
				copy(rows[baseRow+y][baseWord:baseWord+len(sub[y])], sub[y])
			}
		}
		return rows
	}
	return nil
}

// meshNibble extracts the collision nibble of pixel (x, y) from a meshRows
// raster.
func meshNibble(rows [][]uint64, x, y int) uint8 {
	if y < 0 || y >= len(rows) {
		return 0
	}
	word := x / TileSize
	if x < 0 || word >= len(rows[y]) {
		return 0
	}
	return uint8(rows[y][word]>>nibbleShift(x%TileSize)) & collisionMask
}
