package ember

import "testing"

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   int
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"right edge exclusive", 110, 40, false},
		{"bottom edge exclusive", 50, 70, false},
		{"last pixel", 109, 69, true},
		{"outside left", 9, 40, false},
		{"outside above", 50, 19, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%d, %d) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Rect.Intersects ---

func TestRectIntersects(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"fully contained", Rect{20, 20, 10, 10}, true},
		{"containing", Rect{0, 0, 200, 200}, true},
		{"adjacent right", Rect{110, 10, 50, 50}, false},
		{"adjacent bottom", Rect{10, 110, 50, 50}, false},
		{"disjoint", Rect{500, 500, 10, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Intersects(tt.other)
			if got != tt.expect {
				t.Errorf("Rect%v.Intersects(%v) = %v, want %v", base, tt.other, got, tt.expect)
			}
		})
	}
}

// --- DrawMode ---

func TestDrawModeLayers(t *testing.T) {
	tests := []struct {
		mode   DrawMode
		layer  int
		cache  bool
		budget bool
	}{
		{DrawModeTilemapCache, -1, true, false},
		{DrawModeBackground, 0, false, false},
		{DrawModeSpriteBelow, 1, false, true},
		{DrawModeTile, 2, false, false},
		{DrawModeSprite, 3, false, true},
		{DrawModeUI, 4, false, false},
		{DrawModeSpriteAbove, 5, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := tt.mode.Layer(); got != tt.layer {
				t.Errorf("Layer() = %d, want %d", got, tt.layer)
			}
			if got := tt.mode.WritesToCache(); got != tt.cache {
				t.Errorf("WritesToCache() = %v, want %v", got, tt.cache)
			}
			if got := tt.mode.CountsAgainstBudget(); got != tt.budget {
				t.Errorf("CountsAgainstBudget() = %v, want %v", got, tt.budget)
			}
		})
	}
}

func TestDrawModeLayerOrdering(t *testing.T) {
	// Display layers must climb from Background up to SpriteAbove so the
	// composite paints back-to-front.
	modes := []DrawMode{
		DrawModeBackground, DrawModeSpriteBelow, DrawModeTile,
		DrawModeSprite, DrawModeUI, DrawModeSpriteAbove,
	}
	for i := 1; i < len(modes); i++ {
		if modes[i].Layer() <= modes[i-1].Layer() {
			t.Errorf("%v.Layer() = %d not above %v.Layer() = %d",
				modes[i], modes[i].Layer(), modes[i-1], modes[i-1].Layer())
		}
	}
}

// --- Tile ---

func TestEmptyTile(t *testing.T) {
	if EmptyTile.SpriteID != -1 || EmptyTile.Flag != -1 || EmptyTile.ColorOffset != 0 {
		t.Errorf("EmptyTile = %+v, want {-1 0 -1}", EmptyTile)
	}
}
