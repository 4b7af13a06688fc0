package ember

// SpriteBank is the in-memory SpriteSource: a single backing buffer of
// sprite pixel blocks at a fixed sprite size, addressed by id.
type SpriteBank struct {
	spriteWidth  int
	spriteHeight int
	pixels       []int // all sprites back-to-back, row-major per sprite

	// MaxSprites is the per-frame sprite draw budget handed to the engine.
	// 0 means unlimited.
	MaxSprites int
}

// NewSpriteBank creates a bank for count sprites of the given size, all
// transparent.
func NewSpriteBank(spriteWidth, spriteHeight, count int) *SpriteBank {
	b := &SpriteBank{
		spriteWidth:  spriteWidth,
		spriteHeight: spriteHeight,
		pixels:       make([]int, spriteWidth*spriteHeight*count),
	}
	for i := range b.pixels {
		b.pixels[i] = Transparent
	}
	return b
}

// SpriteWidth returns the fixed sprite width in pixels.
func (b *SpriteBank) SpriteWidth() int {
	return b.spriteWidth
}

// SpriteHeight returns the fixed sprite height in pixels.
func (b *SpriteBank) SpriteHeight() int {
	return b.spriteHeight
}

// MaxSpriteCount returns the per-frame sprite draw budget, 0 = unlimited.
func (b *SpriteBank) MaxSpriteCount() int {
	return b.MaxSprites
}

// Count returns the number of sprites the bank holds.
func (b *SpriteBank) Count() int {
	size := b.spriteWidth * b.spriteHeight
	if size == 0 {
		return 0
	}
	return len(b.pixels) / size
}

// ReadSpriteAt fills dst with the sprite's pixels. Unknown ids fill dst with
// Transparent so callers always get a well-formed block.
func (b *SpriteBank) ReadSpriteAt(id int, dst []int) {
	size := b.spriteWidth * b.spriteHeight
	if size > len(dst) {
		size = len(dst)
	}
	if id < 0 || id >= b.Count() {
		for i := 0; i < size; i++ {
			dst[i] = Transparent
		}
		return
	}
	copy(dst[:size], b.pixels[id*b.spriteWidth*b.spriteHeight:])
}

// WriteSpriteAt replaces the sprite's pixels. The bank grows to fit ids past
// the current count; negative ids and short source blocks are dropped.
func (b *SpriteBank) WriteSpriteAt(id int, src []int) {
	size := b.spriteWidth * b.spriteHeight
	if id < 0 || size == 0 || len(src) < size {
		return
	}
	if need := (id + 1) * size; need > len(b.pixels) {
		grown := make([]int, need)
		copy(grown, b.pixels)
		for i := len(b.pixels); i < need; i++ {
			grown[i] = Transparent
		}
		b.pixels = grown
	}
	copy(b.pixels[id*size:(id+1)*size], src[:size])
}
