package dotmesh

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is one renderable pose of a sprite: a collision mesh and the tile
// grid derived from the same source image. Frames are built once from a
// decoded image and read-only afterwards.
type Frame struct {
	name string

	// mesh is nil when the source image had no collision pixels; such a
	// frame is valid and never collides.
	mesh Mesh

	// tiles holds one entry per tile-sized region with at least one
	// visible dot.
	tiles []PlacedTile

	// alpha is the frame-wide opacity: the maximum visible alpha found in
	// the source image.
	alpha Alpha

	// Source dimensions, kept so the original buffer can be restored.
	origW, origH int

	// Lazily built texture for the ebiten renderer (see render.go).
	img *ebiten.Image
}

// NewFrame builds a frame from a decoded RGBA buffer. The buffer's alpha
// bytes are packed per PackAlpha: high nibble visible opacity, low nibble
// collision attribute. A fully transparent buffer yields a frame with no
// mesh and no tiles, which draws nothing and never collides. Buffers wider
// or taller than MaxMeshSpan panic (see NewMesh).
func NewFrame(img *image.RGBA, name string) *Frame {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	f := &Frame{name: name, origW: w, origH: h}

	for ty := 0; ty < tileCount(h); ty++ {
		for tx := 0; tx < tileCount(w); tx++ {
			tile := new(Tile)
			sx, sy := tx*TileSize, ty*TileSize
			for y := sy; y < min(sy+TileSize, h); y++ {
				for x := sx; x < min(sx+TileSize, w); x++ {
					a := alphaBits(packedAlpha(img, x, y))
					if a.Transparent() {
						continue
					}
					f.alpha = MaxAlpha(f.alpha, a)
					i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
					tile.set(x-sx, y-sy, Dot{
						Color:  Color{img.Pix[i], img.Pix[i+1], img.Pix[i+2]},
						Opaque: true,
					})
				}
			}
			if tile.empty() {
				continue
			}
			f.tiles = append(f.tiles, PlacedTile{Tile: tile, Pos: TilePoint{tx, ty}})
		}
	}

	f.mesh, _ = NewMesh(img)
	return f
}

// Name returns the frame's identifier.
func (f *Frame) Name() string {
	return f.name
}

// Size returns the source image dimensions in dots.
func (f *Frame) Size() (w, h int) {
	return f.origW, f.origH
}

// Alpha returns the frame-wide opacity level.
func (f *Frame) Alpha() Alpha {
	return f.alpha
}

// Mesh returns the frame's collision mesh, or nil when the source image
// had no collision pixels.
func (f *Frame) Mesh() Mesh {
	return f.mesh
}

// Tiles returns the render tile grid: one tile per occupied tile-sized
// region and its tile-space position. Consumed by renderers; the core
// never draws pixels itself.
func (f *Frame) Tiles() []PlacedTile {
	return f.tiles
}

// BBox returns the bounding box of collision pixels in frame-local dot
// coordinates. ok is false for mesh-less frames.
func (f *Frame) BBox() (DotRect, bool) {
	if f.mesh == nil {
		return DotRect{}, false
	}
	return f.mesh.BBox(), true
}

// Collide tests two positioned frames for pixel overlap. See Collide.
func (f *Frame) Collide(other *Frame, offS, offO DotPoint) (DotRect, bool) {
	if f.mesh == nil || other.mesh == nil {
		return DotRect{}, false
	}
	return Collide(f.mesh, other.mesh, offS, offO)
}

// RestoreImage rebuilds the source RGBA buffer from the frame's tiles,
// frame alpha, and mesh. Invisible dots come back white with visible alpha
// zero; collision nibbles are restored from the mesh, so a frame built from
// a PackAlpha-encoded image round-trips exactly. Intended for asset
// debugging and round-trip tests.
func (f *Frame) RestoreImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.origW, f.origH))
	for y := 0; y < f.origH; y++ {
		for x := 0; x < f.origW; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 255, 255, 255
		}
	}
	for _, pt := range f.tiles {
		base := pt.Pos.Dot()
		for y := 0; y < TileSize; y++ {
			for x := 0; x < TileSize; x++ {
				d := pt.Tile.At(x, y)
				if !d.Opaque {
					continue
				}
				i := img.PixOffset(base.X+x, base.Y+y)
				img.Pix[i], img.Pix[i+1], img.Pix[i+2] = d.Color.R, d.Color.G, d.Color.B
				img.Pix[i+3] = uint8(f.alpha) << 4
			}
		}
	}
	if f.mesh != nil {
		rows := meshRows(f.mesh)
		for y := 0; y < f.origH; y++ {
			for x := 0; x < f.origW; x++ {
				bits := meshNibble(rows, x, y)
				if bits == 0 {
					continue
				}
				img.Pix[img.PixOffset(x, y)+3] |= bits
			}
		}
	}
	return img
}
