// Package tilekit is a retained tile hierarchy for batched 2D drawing on
// [Ebitengine], modeled on the Flash/OpenFL Tilemap API.
//
// # Tiles, containers and tilemaps
//
// A [Tile] references one region of a shared [Tileset] by id. Its [Matrix]
// is the authority for position, scale and rotation: X, Y, ScaleX, ScaleY
// and Rotation read from and write into it, and the decomposed values are
// cached until the matrix is replaced with SetMatrix.
//
// A [TileContainer] is a Tile with ordered children; a [Tilemap] is the root.
// Tiles without their own tileset use the nearest ancestor's, ending at the
// tilemap.
//
//	tileset := tilekit.NewGridTileset(img, 32, 32)
//	tm := tilekit.NewTilemap(640, 480, tileset)
//
//	group := tilekit.NewTileContainer()
//	group.SetX(100)
//	tm.AddTile(group)
//
//	hero := tilekit.NewTile(5)
//	hero.SetRotation(45)
//	group.AddTile(hero)
//
// # Dirty tracking
//
// Every setter that changes a value marks the tile dirty and notifies its
// parent chain, once per clean to dirty transition. [Tilemap.Draw] clears
// the flags after drawing; [Tilemap.ClearDirty] does so without drawing.
// Editing a shared [Shader] or a matrix in place is invisible to the
// setters; call Invalidate afterwards.
//
// # Bounds
//
// [Tile.Bounds] returns a tile's axis-aligned box in another tile's
// coordinate space, composing world transforms up the parent chain.
// [Tile.HitTestTile] compares two attached tiles this way.
//
// Tweens are provided via [gween]; an ECS bridge for invalidation events
// lives in tilekit/ecs (via [Donburi]).
//
// tilekit is single-threaded: confine mutation to an update phase and
// drawing to a render phase.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tilekit
