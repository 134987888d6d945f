package dotmesh

import "image"

// Surface is a software dot-screen: an RGBA buffer frames are composited
// onto with the 4-bit blend table. Games that render on the CPU draw frames
// here each tick and upload the result once (see Surface.Image).
type Surface struct {
	pix  []uint8
	w, h int
}

// NewSurface creates a surface of the reference screen size (320×240).
func NewSurface() *Surface {
	return NewSurfaceSize(DotWidth, DotHeight)
}

// NewSurfaceSize creates a surface of an arbitrary size in dots.
func NewSurfaceSize(w, h int) *Surface {
	return &Surface{pix: make([]uint8, w*h*4), w: w, h: h}
}

// Size returns the surface dimensions in dots.
func (s *Surface) Size() (w, h int) {
	return s.w, s.h
}

// Clear fills the whole surface with an opaque color.
func (s *Surface) Clear(c Color) {
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3] = c.R, c.G, c.B, 0xFF
	}
}

// DrawFrame composites the frame's tile grid onto the surface with its
// top-left corner at the given dot position, blending each opaque dot by
// the frame's alpha level. Dots outside the surface are clipped.
func (s *Surface) DrawFrame(f *Frame, at DotPoint) {
	a := f.Alpha()
	if a.Transparent() {
		return
	}
	for _, pt := range f.Tiles() {
		base := at.Add(pt.Pos.Dot().Vec())
		for y := 0; y < TileSize; y++ {
			sy := base.Y + y
			if sy < 0 || sy >= s.h {
				continue
			}
			for x := 0; x < TileSize; x++ {
				sx := base.X + x
				if sx < 0 || sx >= s.w {
					continue
				}
				d := pt.Tile.At(x, y)
				if !d.Opaque {
					continue
				}
				i := (sy*s.w + sx) * 4
				s.pix[i] = a.Blend(s.pix[i], d.Color.R)
				s.pix[i+1] = a.Blend(s.pix[i+1], d.Color.G)
				s.pix[i+2] = a.Blend(s.pix[i+2], d.Color.B)
				s.pix[i+3] = 0xFF
			}
		}
	}
}

// At returns the composited color at a dot. Out-of-bounds dots are black.
func (s *Surface) At(p DotPoint) Color {
	if p.X < 0 || p.X >= s.w || p.Y < 0 || p.Y >= s.h {
		return Color{}
	}
	i := (p.Y*s.w + p.X) * 4
	return Color{s.pix[i], s.pix[i+1], s.pix[i+2]}
}

// Image wraps the surface's pixels as an *image.RGBA without copying.
// Mutating the surface afterwards mutates the returned image.
func (s *Surface) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    s.pix,
		Stride: s.w * 4,
		Rect:   image.Rect(0, 0, s.w, s.h),
	}
}
