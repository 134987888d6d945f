package dotmesh

import "testing"

func TestPackAlphaRoundTrip(t *testing.T) {
	tests := []struct {
		a         Alpha
		collision uint8
	}{
		{0, 0},
		{AlphaOpaque, 0x0F},
		{7, 0x01},
		{1, 0x08},
		{AlphaOpaque, 0},
		{0, 0x0F},
	}
	for _, tt := range tests {
		b := PackAlpha(tt.a, tt.collision)
		if got := alphaBits(b); got != tt.a {
			t.Errorf("alphaBits(PackAlpha(%d, %#x)) = %d, want %d", tt.a, tt.collision, got, tt.a)
		}
		if got := collisionBits(b); got != tt.collision {
			t.Errorf("collisionBits(PackAlpha(%d, %#x)) = %#x, want %#x", tt.a, tt.collision, got, tt.collision)
		}
	}
}

func TestPackAlphaMasksCollision(t *testing.T) {
	// Collision bits above the low nibble must not leak into the alpha.
	b := PackAlpha(3, 0xFF)
	if got := alphaBits(b); got != 3 {
		t.Errorf("alphaBits = %d, want 3", got)
	}
	if got := collisionBits(b); got != 0x0F {
		t.Errorf("collisionBits = %#x, want 0x0F", got)
	}
}

func TestAlphaInv(t *testing.T) {
	for a := Alpha(0); a <= AlphaOpaque; a++ {
		if got := a.Inv() + a; got != AlphaOpaque {
			t.Errorf("Inv(%d) + %d = %d, want %d", a, a, got, AlphaOpaque)
		}
	}
}

func TestAlphaByte(t *testing.T) {
	if got := AlphaOpaque.Byte(); got != 255 {
		t.Errorf("opaque Byte = %d, want 255", got)
	}
	if got := Alpha(0).Byte(); got != 0 {
		t.Errorf("transparent Byte = %d, want 0", got)
	}
	if got := Alpha(8).Byte(); got != 136 {
		t.Errorf("Alpha(8).Byte = %d, want 136", got)
	}
}

func TestAlphaTransparent(t *testing.T) {
	if !Alpha(0).Transparent() {
		t.Error("Alpha(0) should be transparent")
	}
	if Alpha(1).Transparent() {
		t.Error("Alpha(1) should not be transparent")
	}
}

func TestBlendEndpoints(t *testing.T) {
	// Fully opaque replaces the destination; fully transparent keeps it.
	for _, v := range []uint8{0, 1, 127, 200, 255} {
		if got := AlphaOpaque.Blend(13, v); got != v {
			t.Errorf("opaque Blend(13, %d) = %d, want %d", v, got, v)
		}
		if got := Alpha(0).Blend(v, 13); got != v {
			t.Errorf("transparent Blend(%d, 13) = %d, want %d", v, got, v)
		}
	}
}

func TestBlendMidpoint(t *testing.T) {
	// Alpha 7 and 8 split 255 into its two rounded halves.
	if got := Alpha(7).comp(255); got != 119 {
		t.Errorf("comp(7, 255) = %d, want 119", got)
	}
	if got := Alpha(8).comp(255); got != 136 {
		t.Errorf("comp(8, 255) = %d, want 136", got)
	}
	// Blending white over black at any level gives comp directly.
	for a := Alpha(0); a <= AlphaOpaque; a++ {
		if got, want := a.Blend(0, 255), a.comp(255); got != want {
			t.Errorf("Blend(0, 255) at %d = %d, want %d", a, got, want)
		}
	}
}

func TestBlendNeverOverflows(t *testing.T) {
	// comp(v) + Inv.comp(w) stays in byte range for the extremes that could
	// overflow if the table rounded up on both sides.
	for a := Alpha(0); a <= AlphaOpaque; a++ {
		got := a.Blend(255, 255)
		if got != 255 {
			t.Errorf("Blend(255, 255) at %d = %d, want 255", a, got)
		}
	}
}

func TestMaxAlpha(t *testing.T) {
	if got := MaxAlpha(3, 9); got != 9 {
		t.Errorf("MaxAlpha(3, 9) = %d", got)
	}
	if got := MaxAlpha(9, 3); got != 9 {
		t.Errorf("MaxAlpha(9, 3) = %d", got)
	}
	if got := MaxAlpha(5, 5); got != 5 {
		t.Errorf("MaxAlpha(5, 5) = %d", got)
	}
}
