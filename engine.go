package ember

import "fmt"

// defaultSheetColumns is the sprite sheet stride used for block assembly
// when the caller doesn't configure one (a 128px sheet of 8px sprites).
const defaultSheetColumns = 16

// Engine is the draw-call dispatcher: the public draw surface game logic
// talks to. Every call either merges into the tilemap cache or is forwarded
// to the display surface as an immediate draw call, with flips, color
// offsets, and the per-frame sprite budget applied on the way.
//
// All state is per-instance — two engines over two displays never share
// counters or scroll position.
type Engine struct {
	sprites SpriteSource
	tiles   TileSource
	display DisplaySurface
	fonts   FontSource
	cache   *CacheRenderer

	// SheetColumns is the sprite sheet width in sprite cells, used by
	// DrawSpriteBlock to wrap block rows at the sheet edge.
	SheetColumns int

	// MaxSpritesPerFrame caps accepted sprite-mode draw calls per frame.
	// 0 means unlimited. Seeded from the sprite source's MaxSpriteCount.
	MaxSpritesPerFrame int

	scrollX int
	scrollY int
	scroll  *scrollAnim

	currentSprites int
	droppedSprites int
	bgColor        int
	clock          frameClock
	debug          bool

	block []int // scratch for resolving one sprite
}

// NewEngine wires an engine over its four collaborators and creates the
// tilemap cache renderer.
func NewEngine(sprites SpriteSource, tiles TileSource, display DisplaySurface, fonts FontSource) *Engine {
	return &Engine{
		sprites:            sprites,
		tiles:              tiles,
		display:            display,
		fonts:              fonts,
		cache:              NewCacheRenderer(tiles, sprites),
		SheetColumns:       defaultSheetColumns,
		MaxSpritesPerFrame: sprites.MaxSpriteCount(),
		block:              make([]int, sprites.SpriteWidth()*sprites.SpriteHeight()),
	}
}

// Cache exposes the tilemap cache renderer for direct reads.
func (e *Engine) Cache() *CacheRenderer {
	return e.cache
}

// BackgroundColor returns the color index Clear paints with.
func (e *Engine) BackgroundColor() int {
	return e.bgColor
}

// SetBackgroundColor sets the color index Clear paints with.
func (e *Engine) SetBackgroundColor(colorID int) {
	e.bgColor = colorID
}

// Clear schedules a full-screen clear to the background color, applied
// before this frame's draw calls composite.
func (e *Engine) Clear() {
	e.display.Clear(e.bgColor)
}

// ClearArea queues a solid background-color block over the given region on
// the background layer.
func (e *Engine) ClearArea(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	pixels := make([]int, w*h)
	for i := range pixels {
		pixels[i] = e.bgColor
	}
	e.display.NewDrawCall(pixels, x, y, w, h, DrawModeBackground.Layer(), 0)
}

// DrawPixels routes one pixel block: DrawModeTilemapCache merges into the
// cache, every other mode forwards a draw-call record to the display. Flips
// apply to a transient copy — the caller's block is never mutated. Sprite
// modes consume the per-frame budget; at the cap the call is silently
// dropped.
func (e *Engine) DrawPixels(pixels []int, x, y, w, h int, flipH, flipV bool, mode DrawMode, colorOffset int) {
	if len(pixels) == 0 || w <= 0 || h <= 0 {
		return
	}

	if mode.CountsAgainstBudget() && !mode.WritesToCache() {
		if e.MaxSpritesPerFrame > 0 && e.currentSprites >= e.MaxSpritesPerFrame {
			e.droppedSprites++
			return
		}
		e.currentSprites++
	}

	// The display holds draw-call pixels until composite and the cache merge
	// flips in place, so both paths get their own copy.
	src := make([]int, w*h)
	copy(src, pixels)
	if flipH || flipV {
		FlipPixels(src, w, h, flipH, flipV)
	}

	if mode.WritesToCache() {
		e.cache.Merge(src, x, y, w, h, colorOffset)
		return
	}
	e.display.NewDrawCall(src, x, y, w, h, mode.Layer(), colorOffset)
}

// DrawSprite resolves a sprite id and routes it through DrawPixels. An id
// that is negative or past the end of the sprite source is a no-op.
func (e *Engine) DrawSprite(id, x, y int, flipH, flipV bool, mode DrawMode, colorOffset int) {
	if id < 0 {
		return
	}
	e.sprites.ReadSpriteAt(id, e.block)
	e.DrawPixels(e.block, x, y, e.sprites.SpriteWidth(), e.sprites.SpriteHeight(), flipH, flipV, mode, colorOffset)
}

// DrawSprites lays a flat id list out as a grid of gridWidth cells per row
// and draws each cell through the single-sprite path. Cells holding -1 are
// skipped entirely: no draw call, no budget. With onScreen set, cells
// outside the display's visible bounds are skipped the same way — the
// bounds are fetched once for the batch. With useScrollPos set, the batch
// origin shifts by the negated scroll position, also once for the batch.
func (e *Engine) DrawSprites(ids []int, x, y, gridWidth int, flipH, flipV bool, mode DrawMode, colorOffset int, onScreen, useScrollPos bool) {
	if gridWidth < 1 {
		gridWidth = 1
	}
	if useScrollPos {
		x -= e.scrollX
		y -= e.scrollY
	}

	var bounds Rect
	if onScreen {
		bounds = e.display.VisibleBounds()
	}

	sw := e.sprites.SpriteWidth()
	sh := e.sprites.SpriteHeight()

	for i, id := range ids {
		if id < 0 {
			continue
		}
		col, row := CalculatePosition(i, gridWidth)
		dx := x + col*sw
		dy := y + row*sh
		if onScreen && !onScreenLiteral(dx, dy, sw, sh, bounds) {
			continue
		}
		e.DrawSprite(id, dx, dy, flipH, flipV, mode, colorOffset)
	}
}

// onScreenLiteral is the visibility test batched draws clip with. It
// compares raw coordinates against the bounds' width and height, ignoring
// the bounds' origin, matching the long-standing engine behavior that games
// tune against. Zero-origin bounds behave exactly like a Rect intersection.
func onScreenLiteral(x, y, w, h int, bounds Rect) bool {
	return x+w > 0 && x < bounds.Width &&
		y+h > 0 && y < bounds.Height
}

// DrawSpriteBlock assembles the ids of a width x height run of sheet cells
// starting at topLeftID — wrapping rows at the sheet's edge, not the
// destination's — and draws them through DrawSprites.
func (e *Engine) DrawSpriteBlock(topLeftID, x, y, width, height int, flipH, flipV bool, mode DrawMode, colorOffset int, onScreen, useScrollPos bool) {
	if topLeftID < 0 || width < 1 || height < 1 {
		return
	}
	ids := SpriteBlockIDs(topLeftID, width, height, e.SheetColumns)
	e.DrawSprites(ids, x, y, width, flipH, flipV, mode, colorOffset, onScreen, useScrollPos)
}

// DrawTile writes one tile grid cell: sprite id, color offset, and collision
// flag. The write marks the cell dirty, so the change shows up on the next
// cache rebuild. Off-grid cells are a no-op.
func (e *Engine) DrawTile(id, column, row, colorOffset, flag int) {
	if column < 0 || column >= e.tiles.Columns() || row < 0 || row >= e.tiles.Rows() {
		return
	}
	index := CalculateIndex(column, row, e.tiles.Columns())
	e.tiles.UpdateSpriteAt(index, id)
	e.tiles.UpdateTileColorAt(index, colorOffset)
	e.tiles.UpdateFlagAt(index, flag)
}

// DrawTiles writes a flat id list into the tile grid as a gridWidth-wide
// block starting at (column, row). Ids of -1 leave their cell untouched.
func (e *Engine) DrawTiles(ids []int, column, row, gridWidth int) {
	if gridWidth < 1 {
		gridWidth = 1
	}
	for i, id := range ids {
		if id < 0 {
			continue
		}
		dc, dr := CalculatePosition(i, gridWidth)
		if column+dc < 0 || column+dc >= e.tiles.Columns() ||
			row+dr < 0 || row+dr >= e.tiles.Rows() {
			continue
		}
		index := CalculateIndex(column+dc, row+dr, e.tiles.Columns())
		e.tiles.UpdateSpriteAt(index, id)
	}
}

// DrawText resolves each character of text to a glyph sprite via the named
// font and issues one draw per character. In DrawModeTile, (x, y) are grid
// coordinates and the cursor advances one cell per character; in every other
// mode they are pixels and the cursor advances by glyph width plus spacing.
// Characters without a glyph resolve to -1 and are skipped by the underlying
// draw. A missing font is the one loud failure: the error propagates and
// nothing is drawn.
func (e *Engine) DrawText(text string, x, y int, mode DrawMode, fontName string, colorOffset, spacing int) error {
	glyphTable, ok := e.fonts.ReadFont(fontName)
	if !ok {
		return fmt.Errorf("ember: font %q not found", fontName)
	}

	ids := GlyphIDs(text, glyphTable, defaultCharOffset)

	if mode == DrawModeTile {
		for i, id := range ids {
			if id < 0 {
				continue
			}
			if x+i >= e.tiles.Columns() || y < 0 || y >= e.tiles.Rows() || x+i < 0 {
				continue
			}
			index := CalculateIndex(x+i, y, e.tiles.Columns())
			e.tiles.UpdateSpriteAt(index, id)
			e.tiles.UpdateTileColorAt(index, colorOffset)
		}
		return nil
	}

	step := e.sprites.SpriteWidth() + spacing
	for i, id := range ids {
		e.DrawSprite(id, x+i*step, y, false, false, mode, colorOffset)
	}
	return nil
}

// DrawTilemap queues a viewport of the tilemap cache at the current scroll
// position onto the display's tile layer at (x, y). columns and rows of 0
// size the viewport to the visible bounds.
func (e *Engine) DrawTilemap(x, y, columns, rows int) {
	e.DrawTilemapOffset(x, y, columns, rows, e.scrollX, e.scrollY)
}

// DrawTilemapOffset is DrawTilemap reading the cache from an explicit pixel
// offset instead of the scroll position.
func (e *Engine) DrawTilemapOffset(x, y, columns, rows, offsetX, offsetY int) {
	bounds := e.display.VisibleBounds()
	tileW := e.sprites.SpriteWidth()
	tileH := e.sprites.SpriteHeight()
	if columns < 1 {
		columns = (bounds.Width + tileW - 1) / tileW
	}
	if rows < 1 {
		rows = (bounds.Height + tileH - 1) / tileH
	}

	w := columns * tileW
	h := rows * tileH
	pixels := e.cache.Pixels(offsetX, offsetY, w, h)
	e.display.NewDrawCall(pixels, x, y, w, h, DrawModeTile.Layer(), 0)
}

// RebuildTilemap invalidates every tile grid cell and rebuilds the cache
// from scratch.
func (e *Engine) RebuildTilemap() {
	e.tiles.InvalidateAll()
	e.cache.Rebuild()
}

// ScrollPosition sets the scroll origin scroll-relative draws subtract.
// Cancels any scroll tween in flight.
func (e *Engine) ScrollPosition(x, y int) {
	e.scrollX = x
	e.scrollY = y
	e.scroll = nil
}

// Scroll returns the current scroll position.
func (e *Engine) Scroll() (x, y int) {
	return e.scrollX, e.scrollY
}

// CurrentSpriteCount returns the number of sprite draws accepted so far this
// frame.
func (e *Engine) CurrentSpriteCount() int {
	return e.currentSprites
}

// SpriteSize returns the fixed sprite dimensions in pixels.
func (e *Engine) SpriteSize() (w, h int) {
	return e.sprites.SpriteWidth(), e.sprites.SpriteHeight()
}

// TilemapSize returns the tile grid dimensions in cells.
func (e *Engine) TilemapSize() (columns, rows int) {
	return e.tiles.Columns(), e.tiles.Rows()
}

// DisplaySize returns the full display dimensions in pixels, overscan
// included.
func (e *Engine) DisplaySize() (w, h int) {
	return e.display.Width(), e.display.Height()
}

// VisibleBounds returns the display's on-screen rectangle.
func (e *Engine) VisibleBounds() Rect {
	return e.display.VisibleBounds()
}

// Tile returns the structured record for one grid cell, reading the three
// layers through the tile source contract. Off-grid cells read as EmptyTile.
func (e *Engine) Tile(column, row int) Tile {
	if column < 0 || column >= e.tiles.Columns() || row < 0 || row >= e.tiles.Rows() {
		return EmptyTile
	}
	index := CalculateIndex(column, row, e.tiles.Columns())
	return Tile{
		SpriteID:    e.tiles.ReadSpriteAt(index),
		ColorOffset: e.tiles.ReadTileColorAt(index),
		Flag:        e.tiles.ReadFlagAt(index),
	}
}

// Flag returns the collision flag at (column, row), -1 off-grid.
func (e *Engine) Flag(column, row int) int {
	if column < 0 || column >= e.tiles.Columns() || row < 0 || row >= e.tiles.Rows() {
		return -1
	}
	return e.tiles.ReadFlagAt(CalculateIndex(column, row, e.tiles.Columns()))
}
