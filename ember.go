package ember

// Transparent is the sentinel color index for pixels that are never painted.
// Sprite and tile data use it for holes; merges skip it; out-of-bounds reads
// return it.
const Transparent = -1

// Rect is an axis-aligned rectangle in pixel coordinates. The coordinate
// system has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the right and bottom edges are outside (half-open).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// DrawMode selects the destination of a draw call: either the tilemap cache
// or one of the display's compositing layers.
type DrawMode int

const (
	DrawModeTilemapCache DrawMode = iota // write into the tilemap cache canvas
	DrawModeBackground                   // layer 0: backdrop clears
	DrawModeSpriteBelow                  // layer 1: sprites under the tilemap
	DrawModeTile                         // layer 2: the composited tilemap
	DrawModeSprite                       // layer 3: standard sprites
	DrawModeUI                           // layer 4: screen-space UI
	DrawModeSpriteAbove                  // layer 5: sprites over the UI
)

// Layer returns the display compositing layer for this mode. Lower layers are
// drawn first. DrawModeTilemapCache has no display layer and returns -1.
func (m DrawMode) Layer() int {
	if m == DrawModeTilemapCache {
		return -1
	}
	return int(m) - 1
}

// WritesToCache reports whether draw calls in this mode paint the tilemap
// cache instead of being forwarded to the display.
func (m DrawMode) WritesToCache() bool {
	return m == DrawModeTilemapCache
}

// CountsAgainstBudget reports whether draw calls in this mode consume the
// per-frame sprite budget.
func (m DrawMode) CountsAgainstBudget() bool {
	switch m {
	case DrawModeSpriteBelow, DrawModeSprite, DrawModeSpriteAbove:
		return true
	}
	return false
}

// String returns the mode name for debug output.
func (m DrawMode) String() string {
	switch m {
	case DrawModeTilemapCache:
		return "TilemapCache"
	case DrawModeBackground:
		return "Background"
	case DrawModeSpriteBelow:
		return "SpriteBelow"
	case DrawModeTile:
		return "Tile"
	case DrawModeSprite:
		return "Sprite"
	case DrawModeUI:
		return "UI"
	case DrawModeSpriteAbove:
		return "SpriteAbove"
	}
	return "Unknown"
}

// Tile is one cell of the background grid: the sprite it displays, a color
// offset added to every non-transparent pixel when the cell is painted, and a
// collision flag for game logic.
// Value type — read and written whole through TileGrid accessors.
type Tile struct {
	SpriteID    int // -1 = empty cell
	ColorOffset int
	Flag        int // -1 = no collision
}

// EmptyTile is the zero state of a grid cell.
var EmptyTile = Tile{SpriteID: -1, ColorOffset: 0, Flag: -1}
