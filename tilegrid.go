package ember

// TileGrid is the in-memory TileSource: three parallel int layers plus a
// dirty-flag layer, all row-major with len == columns*rows.
type TileGrid struct {
	columns int
	rows    int

	spriteIDs    []int
	colorOffsets []int
	flags        []int
	dirty        []bool

	invalid bool
}

// NewTileGrid creates a grid of empty cells (sprite -1, flag -1). The whole
// grid starts invalid so the first rebuild paints every cell.
func NewTileGrid(columns, rows int) *TileGrid {
	g := &TileGrid{}
	g.Resize(columns, rows)
	return g
}

// Resize reallocates all layers to the new dimensions, resets every cell to
// empty, and invalidates the grid. Negative dimensions are clamped to zero.
func (g *TileGrid) Resize(columns, rows int) {
	if columns < 0 {
		columns = 0
	}
	if rows < 0 {
		rows = 0
	}
	total := columns * rows
	g.columns = columns
	g.rows = rows
	g.spriteIDs = make([]int, total)
	g.colorOffsets = make([]int, total)
	g.flags = make([]int, total)
	g.dirty = make([]bool, total)
	for i := 0; i < total; i++ {
		g.spriteIDs[i] = -1
		g.flags[i] = -1
	}
	g.InvalidateAll()
}

// Columns returns the grid width in cells.
func (g *TileGrid) Columns() int {
	return g.columns
}

// Rows returns the grid height in cells.
func (g *TileGrid) Rows() int {
	return g.rows
}

// inRange reports whether index addresses a cell.
func (g *TileGrid) inRange(index int) bool {
	return index >= 0 && index < len(g.spriteIDs)
}

// ReadSpriteAt returns the sprite id at the linear index, -1 when out of
// range or empty.
func (g *TileGrid) ReadSpriteAt(index int) int {
	if !g.inRange(index) {
		return -1
	}
	return g.spriteIDs[index]
}

// UpdateSpriteAt sets the sprite id at the linear index and marks the cell
// dirty. Out-of-range writes are dropped.
func (g *TileGrid) UpdateSpriteAt(index, id int) {
	if !g.inRange(index) {
		return
	}
	g.spriteIDs[index] = id
	g.markDirty(index)
}

// ReadTileColorAt returns the color offset at the linear index.
func (g *TileGrid) ReadTileColorAt(index int) int {
	if !g.inRange(index) {
		return 0
	}
	return g.colorOffsets[index]
}

// UpdateTileColorAt sets the color offset at the linear index and marks the
// cell dirty.
func (g *TileGrid) UpdateTileColorAt(index, offset int) {
	if !g.inRange(index) {
		return
	}
	g.colorOffsets[index] = offset
	g.markDirty(index)
}

// ReadFlagAt returns the collision flag at the linear index, -1 when out of
// range.
func (g *TileGrid) ReadFlagAt(index int) int {
	if !g.inRange(index) {
		return -1
	}
	return g.flags[index]
}

// UpdateFlagAt sets the collision flag. Flags carry no pixels, so the cell
// stays clean.
func (g *TileGrid) UpdateFlagAt(index, flag int) {
	if !g.inRange(index) {
		return
	}
	g.flags[index] = flag
}

// ReadDirtyAt reports whether the cell changed since the last rebuild.
func (g *TileGrid) ReadDirtyAt(index int) bool {
	return g.inRange(index) && g.dirty[index]
}

// Invalid reports whether any cell is dirty.
func (g *TileGrid) Invalid() bool {
	return g.invalid
}

// InvalidateAll marks every cell dirty.
func (g *TileGrid) InvalidateAll() {
	for i := range g.dirty {
		g.dirty[i] = true
	}
	g.invalid = true
}

// ResetValidation clears the whole dirty set in one step. No cell can be
// observed dirty twice without an intervening write.
func (g *TileGrid) ResetValidation() {
	for i := range g.dirty {
		g.dirty[i] = false
	}
	g.invalid = false
}

func (g *TileGrid) markDirty(index int) {
	g.dirty[index] = true
	g.invalid = true
}

// Tile returns the cell at (column, row) as a structured record. Off-grid
// positions read as EmptyTile.
func (g *TileGrid) Tile(column, row int) Tile {
	if column < 0 || column >= g.columns || row < 0 || row >= g.rows {
		return EmptyTile
	}
	index := CalculateIndex(column, row, g.columns)
	return Tile{
		SpriteID:    g.spriteIDs[index],
		ColorOffset: g.colorOffsets[index],
		Flag:        g.flags[index],
	}
}

// SetTile writes the cell at (column, row) whole, marking it dirty when the
// sprite id or color offset changed. Off-grid writes are dropped.
func (g *TileGrid) SetTile(column, row int, tile Tile) {
	if column < 0 || column >= g.columns || row < 0 || row >= g.rows {
		return
	}
	index := CalculateIndex(column, row, g.columns)
	if g.spriteIDs[index] != tile.SpriteID || g.colorOffsets[index] != tile.ColorOffset {
		g.markDirty(index)
	}
	g.spriteIDs[index] = tile.SpriteID
	g.colorOffsets[index] = tile.ColorOffset
	g.flags[index] = tile.Flag
}
