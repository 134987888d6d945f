package dotmesh

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// image returns the frame's GPU texture, building it from the tile grid on
// first use. Visible dots get the frame alpha expanded to 8 bits; everything
// else stays transparent.
func (f *Frame) image() *ebiten.Image {
	if f.img != nil {
		return f.img
	}
	src := image.NewNRGBA(image.Rect(0, 0, f.origW, f.origH))
	a := f.alpha.Byte()
	for _, pt := range f.tiles {
		base := pt.Pos.Dot()
		for y := 0; y < TileSize; y++ {
			for x := 0; x < TileSize; x++ {
				d := pt.Tile.At(x, y)
				if !d.Opaque {
					continue
				}
				i := src.PixOffset(base.X+x, base.Y+y)
				src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = d.Color.R, d.Color.G, d.Color.B, a
			}
		}
	}
	f.img = ebiten.NewImageFromImage(src)
	return f.img
}

// Draw renders the sprite's current frame onto dst at the sprite's position.
// Sprites with no registered frames draw nothing.
func (s *Sprite) Draw(dst *ebiten.Image) {
	f := s.Frame()
	if f == nil || len(f.tiles) == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Round(s.X), math.Round(s.Y))
	dst.DrawImage(f.image(), op)
}

// DrawDebug renders the sprite and overlays its collision bounding box as a
// one-pixel magenta outline. Frames without a mesh get no overlay.
func (s *Sprite) DrawDebug(dst *ebiten.Image) {
	s.Draw(dst)
	box, ok := s.BBox()
	if !ok {
		return
	}
	vector.StrokeRect(dst,
		float32(box.X), float32(box.Y), float32(box.W), float32(box.H),
		1, color.RGBA{0xFF, 0x00, 0xFF, 0xFF}, false)
}
