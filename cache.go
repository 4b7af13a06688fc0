package ember

// CacheRenderer keeps a canvas holding the fully composited tile grid,
// rebuilt incrementally from dirty cells. It depends only on the chip
// contracts — never on the Engine — so a rebuild can never reenter the
// dispatcher.
type CacheRenderer struct {
	tiles   TileSource
	sprites SpriteSource

	canvas *Canvas
	block  []int // scratch for one sprite block
}

// NewCacheRenderer creates a renderer over the given tile and sprite
// sources. The cache canvas is sized on the first rebuild.
func NewCacheRenderer(tiles TileSource, sprites SpriteSource) *CacheRenderer {
	return &CacheRenderer{
		tiles:   tiles,
		sprites: sprites,
		canvas:  NewCanvas(0, 0),
		block:   make([]int, sprites.SpriteWidth()*sprites.SpriteHeight()),
	}
}

// Size returns the cache canvas dimensions in pixels.
func (c *CacheRenderer) Size() (w, h int) {
	return c.canvas.Width(), c.canvas.Height()
}

// Rebuild repaints every dirty cell of the tile grid into the cache canvas
// and clears the whole dirty set. When no cell is dirty this is a no-op, so
// calling it twice in a row leaves the canvas byte-for-byte unchanged.
func (c *CacheRenderer) Rebuild() {
	if !c.tiles.Invalid() {
		return
	}

	tileW := c.sprites.SpriteWidth()
	tileH := c.sprites.SpriteHeight()
	columns := c.tiles.Columns()
	totalCells := columns * c.tiles.Rows()

	// Resize when the grid's pixel dimensions changed. Resize clears, which
	// is fine: a dimension change invalidates everything anyway.
	pixelW := tileW * columns
	pixelH := tileH * c.tiles.Rows()
	if pixelW != c.canvas.Width() || pixelH != c.canvas.Height() {
		c.canvas.Resize(pixelW, pixelH)
	}

	for index := 0; index < totalCells; index++ {
		if !c.tiles.ReadDirtyAt(index) {
			continue
		}

		col, row := CalculatePosition(index, columns)
		x := col * tileW
		y := row * tileH

		id := c.tiles.ReadSpriteAt(index)
		if id < 0 {
			// Empty cell: erase whatever the cell held before.
			for i := range c.block {
				c.block[i] = Transparent
			}
			c.canvas.MergePixels(x, y, tileW, tileH, c.block, 0, false)
			continue
		}

		c.sprites.ReadSpriteAt(id, c.block)
		c.canvas.MergePixels(x, y, tileW, tileH, c.block, c.tiles.ReadTileColorAt(index), false)
	}

	c.tiles.ResetValidation()
}

// ReadPixels fills dst with the w*h cache region at (x, y), rebuilding first
// if any cell is dirty. A reader never observes a stale tile pixel.
func (c *CacheRenderer) ReadPixels(dst []int, x, y, w, h int) {
	c.Rebuild()
	c.canvas.ReadPixels(dst, x, y, w, h)
}

// Pixels returns a freshly allocated copy of the w*h cache region at (x, y),
// rebuilding first if dirty.
func (c *CacheRenderer) Pixels(x, y, w, h int) []int {
	c.Rebuild()
	return c.canvas.CopyPixels(x, y, w, h)
}

// Merge paints a pixel block directly into the cache, bypassing the tile
// grid. The rebuild runs first so direct paint lands on a consistent base
// instead of being overwritten by a later rebuild of stale cells.
// Transparent source pixels are skipped.
func (c *CacheRenderer) Merge(src []int, x, y, w, h, colorOffset int) {
	c.Rebuild()
	c.canvas.MergePixels(x, y, w, h, src, colorOffset, true)
}
