package ember

// CalculateIndex converts a (x, y) grid position into a linear row-major
// index for a grid of the given width.
func CalculateIndex(x, y, width int) int {
	return x + y*width
}

// CalculatePosition is the inverse of CalculateIndex.
func CalculatePosition(index, width int) (x, y int) {
	return index % width, index / width
}

// SpriteBlockIDs assembles the row-major list of sprite ids covering a
// blockWidth x blockHeight rectangle of sheet cells whose top-left cell is
// topLeftID. Rows wrap at the sprite sheet's row boundary (sheetColumns), not
// at the destination grid's, so a block that crosses the right edge of the
// sheet continues on the same sheet row.
func SpriteBlockIDs(topLeftID, blockWidth, blockHeight, sheetColumns int) []int {
	total := blockWidth * blockHeight
	ids := make([]int, total)

	startCol, startRow := CalculatePosition(topLeftID, sheetColumns)
	for i := 0; i < total; i++ {
		col := startCol + i%blockWidth
		row := startRow + i/blockWidth
		// Wrap within the same sheet row rather than spilling into the next.
		ids[i] = CalculateIndex(col%sheetColumns, row, sheetColumns)
	}
	return ids
}

// GlyphIDs converts text into sprite ids using a font's glyph table. Each
// character code minus charOffset indexes fontMap; characters that fall
// outside the table resolve to -1 and render as empty.
func GlyphIDs(text string, fontMap []int, charOffset int) []int {
	ids := make([]int, len(text))
	for i := 0; i < len(text); i++ {
		idx := int(text[i]) - charOffset
		if idx < 0 || idx >= len(fontMap) {
			ids[i] = -1
			continue
		}
		ids[i] = fontMap[idx]
	}
	return ids
}
