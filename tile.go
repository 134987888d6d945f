package dotmesh

import "fmt"

// Color is an opaque RGB triple. The dot renderer has no per-pixel alpha
// blending; translucency is a per-frame property (see Frame and Alpha).
type Color struct {
	R, G, B uint8
}

// Dot is a single pixel of a render tile: a color plus an opacity flag.
// A non-opaque dot draws nothing.
type Dot struct {
	Color  Color
	Opaque bool
}

// Tile is a 16×16 block of dots, the base unit of a frame's render grid.
type Tile struct {
	dots [TileSize * TileSize]Dot
}

// At returns the dot at local tile coordinates (x, y).
// Coordinates outside the tile are a programming error and panic.
func (t *Tile) At(x, y int) Dot {
	checkTileCoord(x, y)
	return t.dots[y*TileSize+x]
}

// set stores a dot at local tile coordinates (x, y).
func (t *Tile) set(x, y int, d Dot) {
	checkTileCoord(x, y)
	t.dots[y*TileSize+x] = d
}

// empty reports whether no dot in the tile is opaque.
func (t *Tile) empty() bool {
	for i := range t.dots {
		if t.dots[i].Opaque {
			return false
		}
	}
	return true
}

// checkTileCoord asserts that (x, y) addresses a dot inside a tile. Valid
// inputs can never trip this; it guards against indexing bugs in the
// construction code itself.
func checkTileCoord(x, y int) {
	if x < 0 || x >= TileSize || y < 0 || y >= TileSize {
		panic(fmt.Sprintf("dotmesh: tile coordinate (%d, %d) out of bounds", x, y))
	}
}

// PlacedTile pairs a render tile with its position in the frame's tile grid.
type PlacedTile struct {
	Tile *Tile
	Pos  TilePoint
}
