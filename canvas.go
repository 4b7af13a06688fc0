package ember

// Canvas is a mutable 2D buffer of color indexes, row-major. The invariant
// len(pixels) == width*height holds at all times; Resize reallocates and
// clears.
type Canvas struct {
	width  int
	height int
	pixels []int
}

// NewCanvas creates a canvas of the given size with every pixel set to the
// transparent sentinel. Negative dimensions are clamped to zero.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Resize reallocates the pixel buffer for the new dimensions and clears it to
// transparent. A resize to the current dimensions still clears.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width = width
	c.height = height
	c.pixels = make([]int, width*height)
	for i := range c.pixels {
		c.pixels[i] = Transparent
	}
}

// Clear fills the whole canvas with the given color index.
func (c *Canvas) Clear(colorID int) {
	for i := range c.pixels {
		c.pixels[i] = colorID
	}
}

// PixelAt returns the color index at (x, y), or Transparent when (x, y) is
// outside the canvas.
func (c *Canvas) PixelAt(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Transparent
	}
	return c.pixels[x+y*c.width]
}

// SetPixelAt writes one color index. Out-of-bounds writes are dropped.
func (c *Canvas) SetPixelAt(x, y, colorID int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[x+y*c.width] = colorID
}

// Pixels returns the backing buffer. The slice MUST NOT be resized by the
// caller; mutation is allowed (the display front buffer is read this way).
func (c *Canvas) Pixels() []int {
	return c.pixels
}

// ReadPixels fills dst with the w*h region at (x, y), row-major. Pixels
// outside the canvas read as Transparent. dst must hold at least w*h entries.
func (c *Canvas) ReadPixels(dst []int, x, y, w, h int) {
	for row := 0; row < h; row++ {
		srcY := y + row
		for col := 0; col < w; col++ {
			dst[col+row*w] = c.PixelAt(x+col, srcY)
		}
	}
}

// CopyPixels returns a freshly allocated copy of the w*h region at (x, y).
// See ReadPixels for the clipping behavior.
func (c *Canvas) CopyPixels(x, y, w, h int) []int {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	dst := make([]int, w*h)
	c.ReadPixels(dst, x, y, w, h)
	return dst
}

// SetPixels overwrites the w*h region at (x, y) with src, ignoring
// transparency. Out-of-bounds destination pixels are clipped.
func (c *Canvas) SetPixels(x, y, w, h int, src []int) {
	c.MergePixels(x, y, w, h, src, 0, false)
}

// MergePixels composites the w*h source block onto the canvas at (x, y).
// Every source pixel not equal to Transparent is written as pixel+colorOffset;
// transparent source pixels leave the destination untouched. Passing
// ignoreTransparent=false writes transparent pixels through as well (an
// opaque copy). Merging the same block twice with the same offset leaves the
// canvas identical to merging once.
//
// This is the sole compositing primitive: tile-cache rebuilds, ad-hoc cache
// writes, and display compositing all go through here.
func (c *Canvas) MergePixels(x, y, w, h int, src []int, colorOffset int, ignoreTransparent bool) {
	total := w * h
	if total > len(src) {
		total = len(src)
	}
	for i := 0; i < total; i++ {
		pixel := src[i]
		if ignoreTransparent && pixel == Transparent {
			continue
		}
		if pixel != Transparent {
			pixel += colorOffset
		}
		c.SetPixelAt(x+i%w, y+i/w, pixel)
	}
}

// FlipPixels reverses a w*h pixel block in place: flipH mirrors each row,
// flipV reverses the row order. Applying the same flip twice restores the
// block bit-for-bit. The block is expected to be a transient copy — stored
// sprite data is never flipped in place by the engine.
func FlipPixels(pixels []int, w, h int, flipH, flipV bool) {
	if flipH {
		for row := 0; row < h; row++ {
			base := row * w
			for i, j := base, base+w-1; i < j; i, j = i+1, j-1 {
				pixels[i], pixels[j] = pixels[j], pixels[i]
			}
		}
	}
	if flipV {
		for top, bottom := 0, h-1; top < bottom; top, bottom = top+1, bottom-1 {
			a := top * w
			b := bottom * w
			for col := 0; col < w; col++ {
				pixels[a+col], pixels[b+col] = pixels[b+col], pixels[a+col]
			}
		}
	}
}
