// Package dotmesh is a pixel-perfect 2D sprite collision engine for
// [Ebitengine].
//
// Dotmesh packs a 4-bit collision attribute into the low nibble of every
// alpha byte of a sprite image, builds a quadtree of 16x16 bit masks from
// it, and answers "do these two placed sprites overlap, and where" in a
// handful of word operations. Two pixels collide when their collision
// nibbles share a set bit, so up to four independent collision channels fit
// in one image.
//
// # Quick start
//
// Build a [Frame] from a decoded RGBA image whose alpha bytes were packed
// with [PackAlpha], attach it to a [Sprite], and test:
//
//	hero := dotmesh.NewSprite("hero")
//	hero.AddFrame("idle", dotmesh.NewFrame(heroImg, "idle"))
//	hero.X, hero.Y = 100, 50
//
//	if region, hit := dotmesh.CheckCollision(hero, wall); hit {
//		// region is the bounding box of the first overlapping mask row.
//	}
//
// For many sprites, put them in a [World]: a broad phase (via [resolv])
// proposes candidate pairs each [World.Step] and only those pairs pay for a
// mesh walk. Contacts are delivered to a [ContactSink]; the adapter in
// dotmesh/ecs republishes them as [Donburi] events.
//
// # Meshes
//
// The collision structure is a [Mesh]: either a [MeshLeaf], one 16x16 tile
// of 4-bit nibbles packed into sixteen uint64 rows, or a [MeshNode] holding
// up to four children one power-of-two scale down. Sprites up to 256x256
// dots are supported; [NewMesh] panics above that, since sprite sheets are
// authored assets and an oversized one is a content error.
//
// Collision tests are positioned: every query takes the world origin of
// each mesh, so meshes are immutable and freely shared between sprites.
//
// # Rendering
//
// Collision never looks at pixels, only at mask bits, so rendering is
// separable: [Sprite.Draw] uploads frames to the GPU via Ebitengine, and
// [Surface] composites frames on the CPU with the same 4-bit alpha blend
// the original dot-style screens used. Level geometry can be imported from
// Tiled maps with [LoadTileColliders].
//
// # Animation and ticks
//
// Sprite movement tweens with [TweenMove] (via [gween]); [Scheduler] fires
// game events on a 60Hz tick clock with once, span, and repeating
// schedules.
//
// [Ebitengine]: https://ebitengine.org
// [resolv]: https://github.com/solarlune/resolv
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package dotmesh
