package ember

// The engine core consumes its collaborators through these contracts. The
// in-memory implementations in this package (SpriteBank, TileGrid, Display,
// FontBank) satisfy them, but any chip that honors the semantics can be
// plugged in — a ROM-backed sprite source, a streaming tile grid, a headless
// display for tests.

// SpriteSource stores raw sprite pixel data at a fixed sprite size.
type SpriteSource interface {
	// ReadSpriteAt fills dst with the sprite's pixels, row-major,
	// SpriteWidth()*SpriteHeight() entries. An id that doesn't resolve to a
	// stored sprite fills dst with Transparent.
	ReadSpriteAt(id int, dst []int)
	// SpriteWidth returns the fixed sprite width in pixels.
	SpriteWidth() int
	// SpriteHeight returns the fixed sprite height in pixels.
	SpriteHeight() int
	// MaxSpriteCount returns the per-frame sprite draw budget. 0 means
	// unlimited.
	MaxSpriteCount() int
}

// TileSource stores the background grid as three parallel layers (sprite id,
// color offset, collision flag) plus a dirty-flag layer, all addressable by
// linear index. Writes to the sprite or color layer mark the cell dirty and
// set the grid-wide invalid flag; the cache rebuilder consumes and clears
// both.
type TileSource interface {
	// Columns returns the grid width in cells.
	Columns() int
	// Rows returns the grid height in cells.
	Rows() int

	// ReadSpriteAt returns the sprite id at the linear cell index, -1 when
	// the cell is empty or the index is out of range.
	ReadSpriteAt(index int) int
	// UpdateSpriteAt sets the sprite id at the linear cell index and marks
	// the cell dirty.
	UpdateSpriteAt(index, id int)
	// ReadTileColorAt returns the color offset at the linear cell index.
	ReadTileColorAt(index int) int
	// UpdateTileColorAt sets the color offset at the linear cell index and
	// marks the cell dirty.
	UpdateTileColorAt(index, offset int)
	// ReadFlagAt returns the collision flag at the linear cell index, -1 for
	// none.
	ReadFlagAt(index int) int
	// UpdateFlagAt sets the collision flag. Flags don't affect pixels, so
	// the cell is NOT marked dirty.
	UpdateFlagAt(index, flag int)

	// ReadDirtyAt reports whether the cell changed since the last rebuild.
	ReadDirtyAt(index int) bool

	// Invalid reports whether any cell is dirty.
	Invalid() bool
	// InvalidateAll marks every cell dirty.
	InvalidateAll()
	// ResetValidation clears every dirty flag and the invalid flag in one
	// step.
	ResetValidation()
}

// DisplaySurface accumulates immediate draw calls during the draw phase and
// composites them once per frame in stable per-layer order.
type DisplaySurface interface {
	// NewDrawCall queues one draw-call record. pixels is a transient block
	// the caller will not reuse before the frame is composited.
	NewDrawCall(pixels []int, x, y, w, h, layer, colorOffset int)
	// Clear schedules a full clear to colorID ahead of the queued draw
	// calls at the next composite.
	Clear(colorID int)
	// Width returns the full display width including overscan.
	Width() int
	// Height returns the full display height including overscan.
	Height() int
	// OverscanXPixels returns the horizontal overscan in pixels.
	OverscanXPixels() int
	// OverscanYPixels returns the vertical overscan in pixels.
	OverscanYPixels() int
	// VisibleBounds returns the on-screen rectangle draw batches clip
	// against.
	VisibleBounds() Rect
}

// FontSource maps font names to glyph tables (sprite ids indexed by
// character code minus the font's base offset).
type FontSource interface {
	// ReadFont returns the glyph table for name, or ok=false when the font
	// doesn't exist.
	ReadFont(name string) (glyphs []int, ok bool)
}
