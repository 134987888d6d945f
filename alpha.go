package dotmesh

// The alpha byte of a source pixel is packed: the high nibble is the visible
// alpha (0-15), the low nibble is a collision attribute. The two are
// independent, so sprite authors can mark invisible collision-only regions
// (alpha 0, collision bits set) or visible decoration that never collides
// (alpha set, collision bits 0).
const (
	alphaMask     = 0xF0
	collisionMask = 0x0F
)

// Alpha is a 4-bit visible-opacity level: 0 is fully transparent,
// AlphaOpaque (15) is fully opaque.
type Alpha uint8

// AlphaOpaque is the maximum Alpha value.
const AlphaOpaque Alpha = 0x0F

// alphaBits extracts the visible alpha level from a packed alpha byte.
func alphaBits(b uint8) Alpha {
	return Alpha((b & alphaMask) >> 4)
}

// collisionBits extracts the collision nibble from a packed alpha byte.
// Two pixels collide when their collision nibbles share at least one bit,
// which lets authors assign up to four independent collision channels.
func collisionBits(b uint8) uint8 {
	return b & collisionMask
}

// PackAlpha builds a packed alpha byte from a visible alpha level and a
// collision nibble.
func PackAlpha(a Alpha, collision uint8) uint8 {
	return uint8(a)<<4 | collision&collisionMask
}

// Transparent reports whether the level is fully transparent.
func (a Alpha) Transparent() bool {
	return a == 0
}

// Inv returns the complementary level.
func (a Alpha) Inv() Alpha {
	return AlphaOpaque - a
}

// Byte expands the 4-bit level to a full 0-255 alpha byte.
func (a Alpha) Byte() uint8 {
	return uint8(a) * 17
}

// blendTable[a][v] is v scaled by a/15, rounded to nearest. Precomputed once
// so the per-dot blend on the software surface is two table lookups and an
// add (the original renderer shipped this as a baked constant table).
var blendTable [16][256]uint8

func init() {
	for a := 0; a < 16; a++ {
		for v := 0; v < 256; v++ {
			blendTable[a][v] = uint8((v*a + 7) / 15)
		}
	}
}

// comp scales a single channel value by the alpha level.
func (a Alpha) comp(v uint8) uint8 {
	return blendTable[a][v]
}

// Blend composites a source channel over a destination channel at this
// alpha level.
func (a Alpha) Blend(dst, src uint8) uint8 {
	return a.Inv().comp(dst) + a.comp(src)
}

// MaxAlpha returns the larger of two levels.
func MaxAlpha(a, b Alpha) Alpha {
	if a > b {
		return a
	}
	return b
}
