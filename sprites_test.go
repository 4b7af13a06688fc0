package ember

import "testing"

func TestSpriteBankReadWrite(t *testing.T) {
	b := NewSpriteBank(2, 2, 4)
	b.WriteSpriteAt(2, []int{1, 2, 3, 4})

	dst := make([]int, 4)
	b.ReadSpriteAt(2, dst)
	if !pixelsEqual(dst, []int{1, 2, 3, 4}) {
		t.Errorf("ReadSpriteAt(2) = %v, want [1 2 3 4]", dst)
	}

	// Neighbor untouched.
	b.ReadSpriteAt(1, dst)
	if !pixelsEqual(dst, []int{Transparent, Transparent, Transparent, Transparent}) {
		t.Errorf("ReadSpriteAt(1) = %v, want all Transparent", dst)
	}
}

func TestSpriteBankUnknownIDFillsTransparent(t *testing.T) {
	b := NewSpriteBank(2, 2, 2)
	dst := []int{9, 9, 9, 9}
	b.ReadSpriteAt(-1, dst)
	if !pixelsEqual(dst, []int{Transparent, Transparent, Transparent, Transparent}) {
		t.Errorf("ReadSpriteAt(-1) = %v, want all Transparent", dst)
	}

	dst = []int{9, 9, 9, 9}
	b.ReadSpriteAt(50, dst)
	if !pixelsEqual(dst, []int{Transparent, Transparent, Transparent, Transparent}) {
		t.Errorf("ReadSpriteAt(50) = %v, want all Transparent", dst)
	}
}

func TestSpriteBankGrowsOnWrite(t *testing.T) {
	b := NewSpriteBank(2, 2, 1)
	if b.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", b.Count())
	}
	b.WriteSpriteAt(4, []int{5, 6, 7, 8})
	if b.Count() != 5 {
		t.Errorf("Count() after grow = %d, want 5", b.Count())
	}

	dst := make([]int, 4)
	b.ReadSpriteAt(4, dst)
	if !pixelsEqual(dst, []int{5, 6, 7, 8}) {
		t.Errorf("ReadSpriteAt(4) = %v, want [5 6 7 8]", dst)
	}
	// The gap stays transparent.
	b.ReadSpriteAt(2, dst)
	if !pixelsEqual(dst, []int{Transparent, Transparent, Transparent, Transparent}) {
		t.Errorf("gap sprite = %v, want all Transparent", dst)
	}
}

func TestSpriteBankRejectsBadWrites(t *testing.T) {
	b := NewSpriteBank(2, 2, 2)
	b.WriteSpriteAt(-1, []int{1, 2, 3, 4})
	b.WriteSpriteAt(0, []int{1, 2}) // too short
	dst := make([]int, 4)
	b.ReadSpriteAt(0, dst)
	if !pixelsEqual(dst, []int{Transparent, Transparent, Transparent, Transparent}) {
		t.Errorf("bad write landed: %v", dst)
	}
}

func TestSpriteBankGeometry(t *testing.T) {
	b := NewSpriteBank(8, 8, 16)
	if b.SpriteWidth() != 8 || b.SpriteHeight() != 8 {
		t.Errorf("sprite size = %dx%d, want 8x8", b.SpriteWidth(), b.SpriteHeight())
	}
	if b.MaxSpriteCount() != 0 {
		t.Errorf("MaxSpriteCount() = %d, want 0 (unlimited)", b.MaxSpriteCount())
	}
	b.MaxSprites = 64
	if b.MaxSpriteCount() != 64 {
		t.Errorf("MaxSpriteCount() = %d, want 64", b.MaxSpriteCount())
	}
}
