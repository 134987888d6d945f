package dotmesh

import (
	"fmt"
	"image"
	"io/fs"
	"sync"

	"github.com/lafriks/go-tiled"
)

// StaticCollider is an immobile Collider, typically terrain. It satisfies
// Collider so level geometry and sprites go through the same CheckCollision
// path.
type StaticCollider struct {
	origin DotPoint
	mesh   Mesh
}

// NewStaticCollider places a mesh at a fixed dot position.
func NewStaticCollider(origin DotPoint, mesh Mesh) *StaticCollider {
	return &StaticCollider{origin: origin, mesh: mesh}
}

// Origin returns the collider's fixed top-left corner.
func (c *StaticCollider) Origin() DotPoint { return c.origin }

// Mesh returns the collider's mesh.
func (c *StaticCollider) Mesh() Mesh { return c.mesh }

var (
	fullTileOnce sync.Once
	fullTile     Mesh
)

// fullTileMesh returns a shared mesh covering an entire tile on all
// collision channels.
func fullTileMesh() Mesh {
	fullTileOnce.Do(func() {
		img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
		for i := 3; i < len(img.Pix); i += 4 {
			img.Pix[i] = PackAlpha(AlphaOpaque, 0x0F)
		}
		fullTile, _ = NewMesh(img)
	})
	return fullTile
}

// LoadTileColliders parses a TMX map and returns one StaticCollider per
// occupied tile of the named layer, placed in dot space. Tiles whose tileset
// entry has a true "passable" property are skipped. The map's tile size must
// match TileSize. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadTileColliders(fsys fs.FS, tmxPath, layerName string) ([]*StaticCollider, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("dotmesh: load TMX %s: %w", tmxPath, err)
	}
	if m.TileWidth != TileSize || m.TileHeight != TileSize {
		return nil, fmt.Errorf("dotmesh: map %s has %dx%d tiles, want %dx%d",
			tmxPath, m.TileWidth, m.TileHeight, TileSize, TileSize)
	}

	for _, layer := range m.Layers {
		if layer.Name != layerName {
			continue
		}
		var out []*StaticCollider
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				tile := layer.Tiles[y*m.Width+x]
				if tile.IsNil() {
					continue
				}
				if tt, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if tt.Properties.GetBool("passable") {
						continue
					}
				}
				pos := TilePoint{x, y}.Dot()
				out = append(out, NewStaticCollider(pos, fullTileMesh()))
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("dotmesh: map %s has no layer %q", tmxPath, layerName)
}
