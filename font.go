package ember

// defaultCharOffset is the code of the first mappable character (space).
// Glyph tables index character codes relative to it.
const defaultCharOffset = 32

// FontBank is the in-memory FontSource: named glyph tables mapping character
// codes (minus CharOffset) to sprite ids.
type FontBank struct {
	fonts map[string][]int

	// CharOffset is subtracted from each character code before indexing a
	// glyph table. Defaults to 32 (space).
	CharOffset int
}

// NewFontBank creates an empty font bank with the default character offset.
func NewFontBank() *FontBank {
	return &FontBank{
		fonts:      make(map[string][]int),
		CharOffset: defaultCharOffset,
	}
}

// AddFont registers a glyph table under the given name, replacing any
// existing table.
func (f *FontBank) AddFont(name string, glyphs []int) {
	f.fonts[name] = glyphs
}

// ReadFont returns the glyph table for name, or ok=false when the font was
// never registered.
func (f *FontBank) ReadFont(name string) ([]int, bool) {
	glyphs, ok := f.fonts[name]
	return glyphs, ok
}

// CalculateTextWidth returns the pixel width of a single line of text drawn
// with glyphs of the given width and spacing between characters.
func CalculateTextWidth(text string, glyphWidth, spacing int) int {
	if len(text) == 0 {
		return 0
	}
	return len(text)*(glyphWidth+spacing) - spacing
}

// CalculateTextHeight returns the pixel height of text drawn with glyphs of
// the given height: one glyph row per newline-separated line.
func CalculateTextHeight(text string, glyphHeight int) int {
	if len(text) == 0 {
		return 0
	}
	lines := 1
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines++
		}
	}
	return lines * glyphHeight
}
