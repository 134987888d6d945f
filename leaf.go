package dotmesh

import (
	"image"
	"strings"
)

// MeshLeaf is the base case of a collision mesh: one tile's per-pixel
// occupancy. Each row packs one 4-bit collision nibble per pixel, with
// column x at bit offset (15-x)*4, plus the bounding box of occupied
// pixels in tile-local dot coordinates.
//
// A leaf always contains at least one occupied pixel; construction of an
// empty region yields absence instead of an empty leaf.
type MeshLeaf struct {
	rows [TileSize]uint64
	bbox DotRect
}

// BBox returns the bounding box of occupied pixels, relative to the leaf's
// own top-left corner.
func (l *MeshLeaf) BBox() DotRect {
	return l.bbox
}

func (*MeshLeaf) isMesh() {}

// nibbleShift returns the bit offset of column x's collision nibble.
func nibbleShift(x int) uint {
	checkTileCoord(x, 0)
	return uint(TileSize-1-x) * 4
}

// packedAlpha reads the packed alpha byte of the pixel at (x, y), measured
// from the image's top-left corner.
func packedAlpha(img *image.RGBA, x, y int) uint8 {
	b := img.Bounds()
	return img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y)+3]
}

// newMeshLeaf scans the pixels of region (at most one tile, in buffer
// coordinates) and packs their collision nibbles into row masks. ok is
// false when no pixel in the region carries collision bits.
func newMeshLeaf(img *image.RGBA, region DotRect) (*MeshLeaf, bool) {
	minX, minY := TileSize, TileSize
	maxX, maxY := -1, -1
	var rows [TileSize]uint64
	for y := 0; y < region.H; y++ {
		for x := 0; x < region.W; x++ {
			bits := collisionBits(packedAlpha(img, region.X+x, region.Y+y))
			if bits == 0 {
				continue
			}
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
			rows[y] |= uint64(bits) << nibbleShift(x)
		}
	}
	if maxX < 0 {
		return nil, false
	}
	return &MeshLeaf{
		rows: rows,
		bbox: DotRect{minX, minY, maxX - minX + 1, maxY - minY + 1},
	}, true
}

// tileRange translates the world-space rectangle into the leaf's local
// coordinates (the leaf sits at world offset off) and clips it to the tile.
func leafRange(world DotRect, off DotPoint) (DotRect, bool) {
	return world.Translate(off.Vec().Neg()).Intersect(tileRect())
}

// lineMask returns a function that aligns a row mask to an intersection
// window: columns [start, start+length) are shifted to the top of the word
// and everything outside the window is cleared. Applying the respective
// masks of two leaves puts their shared columns at the same bit positions.
func lineMask(start, length int) func(uint64) uint64 {
	keep := ^uint64(0) << (uint(TileSize-length) * 4)
	shift := uint(start) * 4
	return func(row uint64) uint64 {
		return (row << shift) & keep
	}
}

// collideLeaf tests two leaves positioned at the given world offsets.
// It intersects the offset bounding boxes, aligns both leaves' row masks to
// the intersection window, and scans its rows top to bottom. The first row
// where the masks share a set bit wins and the bbox intersection is
// reported; no further contact geometry is derived.
func (l *MeshLeaf) collideLeaf(other *MeshLeaf, offS, offO DotPoint) (DotRect, bool) {
	inter, ok := bboxIntersection(l.bbox, other.bbox, offS, offO)
	if !ok {
		return DotRect{}, false
	}
	rangeS, ok := leafRange(inter, offS)
	if !ok {
		return DotRect{}, false
	}
	rangeO, ok := leafRange(inter, offO)
	if !ok {
		return DotRect{}, false
	}
	maskS := lineMask(rangeS.X, rangeS.W)
	maskO := lineMask(rangeO.X, rangeO.W)
	for i := 0; i < rangeS.H; i++ {
		rowS := maskS(l.rows[rangeS.Y+i])
		rowO := maskO(other.rows[rangeO.Y+i])
		if rowS&rowO != 0 {
			return inter, true
		}
	}
	return DotRect{}, false
}

// collideNode tests the leaf against a node's children, compounding the
// node's offset by each child's quadrant displacement and pruning against
// every child bounding box before descending.
func (l *MeshLeaf) collideNode(n *MeshNode, offS, offO DotPoint) (DotRect, bool) {
	if !bboxIntersects(l.bbox, n.bbox, offS, offO) {
		return DotRect{}, false
	}
	for _, c := range n.children {
		childOff := offO.Add(quadrantOffset(c.dir, n.scale))
		if !bboxIntersects(l.bbox, c.tree.BBox(), offS, childOff) {
			continue
		}
		var (
			hit DotRect
			ok  bool
		)
		switch child := c.tree.(type) {
		case *MeshLeaf:
			hit, ok = l.collideLeaf(child, offS, childOff)
		case *MeshNode:
			hit, ok = l.collideNode(child, offS, childOff)
		}
		if ok {
			return hit, true
		}
	}
	return DotRect{}, false
}

// rowString renders one row mask as 16 occupancy characters, for debugging.
func rowString(row uint64) string {
	var sb strings.Builder
	for x := 0; x < TileSize; x++ {
		if row>>nibbleShift(x)&uint64(collisionMask) != 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
