// Package ember is the rendering core of a tile-and-sprite virtual display.
//
// Ember composites a large tile grid into a pixel cache, tracks per-tile
// invalidation so only dirty cells are repainted, and arbitrates every draw
// request — sprites, tiles, raw pixel blocks, text — through a bounded
// per-frame sprite budget and a small set of draw-target modes.
//
// # Quick start
//
// Wire an [Engine] over the four chip collaborators, then drive it from a
// frontend. The in-memory chips in this package are enough to get going:
//
//	sprites := ember.NewSpriteBank(8, 8, 256)
//	tiles := ember.NewTileGrid(32, 30)
//	display := ember.NewDisplay(264, 248, 1, 1, 8, 8)
//	fonts := ember.NewFontBank()
//
//	engine := ember.NewEngine(sprites, tiles, display, fonts)
//
//	view := ember.NewView(engine, display, nil)
//	view.OnUpdate = func(dt float64) {
//		engine.Clear()
//		engine.DrawTilemap(0, 0, 0, 0)
//		engine.DrawSprite(1, 64, 64, false, false, ember.DrawModeSprite, 0)
//	}
//	ember.Run(view, ember.RunConfig{Title: "My Game"})
//
// [TermView] is the same loop rendered to a terminal via tcell.
//
// # Draw modes
//
// Every draw call carries a [DrawMode] that selects its destination.
// [DrawModeTilemapCache] paints the tilemap cache directly; every other
// mode queues an immediate draw call on one of the display's compositing
// layers, applied lowest layer first at the end of the frame. Sprite modes
// (SpriteBelow, Sprite, SpriteAbove) consume the per-frame sprite budget;
// over-budget calls are dropped silently.
//
// # The tilemap cache
//
// Tile grid edits (DrawTile, DrawTiles, tile-mode DrawText) only mark cells
// dirty. The [CacheRenderer] repaints dirty cells lazily before any cache
// read, so a reader never observes a stale pixel and an unchanged grid
// costs nothing.
//
// # Pixels
//
// Pixels are color indexes (int). The index -1 ([Transparent]) is never
// painted: merges skip it and out-of-bounds reads return it. Indexes only
// become RGBA at the frontend, through a [Palette].
package ember
