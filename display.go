package ember

// drawCall is one queued draw instruction. Calls accumulate during the draw
// phase and are composited once per frame in (layer, sequence) order.
type drawCall struct {
	pixels      []int
	x, y        int
	width       int
	height      int
	layer       int
	colorOffset int
	sequence    int // issue order within the frame, for stable sorting
}

// Display is the in-memory DisplaySurface: a draw-call accumulator over a
// front canvas. Overscan extends the buffer past the visible area on the
// right and bottom edges.
type Display struct {
	front *Canvas

	overscanX int // overscan in tile columns
	overscanY int // overscan in tile rows
	tileW     int
	tileH     int

	calls   []drawCall
	sortBuf []drawCall

	clearPending bool
	clearColor   int
}

const defaultCallCap = 256

// NewDisplay creates a display whose full buffer is width x height pixels,
// with the given overscan (in tile cells of size tileW x tileH) hidden at
// the right and bottom.
func NewDisplay(width, height, overscanX, overscanY, tileW, tileH int) *Display {
	return &Display{
		front:     NewCanvas(width, height),
		overscanX: overscanX,
		overscanY: overscanY,
		tileW:     tileW,
		tileH:     tileH,
		calls:     make([]drawCall, 0, defaultCallCap),
	}
}

// Width returns the full buffer width, overscan included.
func (d *Display) Width() int {
	return d.front.Width()
}

// Height returns the full buffer height, overscan included.
func (d *Display) Height() int {
	return d.front.Height()
}

// OverscanXPixels returns the hidden horizontal margin in pixels.
func (d *Display) OverscanXPixels() int {
	return d.overscanX * d.tileW
}

// OverscanYPixels returns the hidden vertical margin in pixels.
func (d *Display) OverscanYPixels() int {
	return d.overscanY * d.tileH
}

// VisibleBounds returns the on-screen rectangle: the full buffer minus
// overscan.
func (d *Display) VisibleBounds() Rect {
	return Rect{
		X:      0,
		Y:      0,
		Width:  d.Width() - d.OverscanXPixels(),
		Height: d.Height() - d.OverscanYPixels(),
	}
}

// Clear schedules a full clear to the given color at the next Composite,
// before any queued draw call is applied.
func (d *Display) Clear(colorID int) {
	d.clearPending = true
	d.clearColor = colorID
}

// NewDrawCall queues one draw call. pixels must not be reused by the caller
// before the frame is composited; the engine hands over a transient copy.
func (d *Display) NewDrawCall(pixels []int, x, y, w, h, layer, colorOffset int) {
	d.calls = append(d.calls, drawCall{
		pixels:      pixels,
		x:           x,
		y:           y,
		width:       w,
		height:      h,
		layer:       layer,
		colorOffset: colorOffset,
		sequence:    len(d.calls),
	})
}

// QueuedCalls returns the number of draw calls waiting for the next
// Composite.
func (d *Display) QueuedCalls() int {
	return len(d.calls)
}

// Composite applies the pending clear and every queued draw call to the
// front canvas — lower layers first, issue order within a layer — then
// resets the queue. No queued state survives into the next frame.
func (d *Display) Composite() {
	if d.clearPending {
		d.front.Clear(d.clearColor)
		d.clearPending = false
	}

	d.sortCalls()
	for i := range d.calls {
		call := &d.calls[i]
		d.front.MergePixels(call.x, call.y, call.width, call.height, call.pixels, call.colorOffset, true)
	}
	d.calls = d.calls[:0]
}

// FrontBuffer returns the composited canvas. Valid between Composite calls;
// frontends read it to present a frame.
func (d *Display) FrontBuffer() *Canvas {
	return d.front
}

// callLessOrEqual orders draw calls by layer, then issue order. Using <= on
// sequence keeps the sort stable.
func callLessOrEqual(a, b drawCall) bool {
	if a.layer != b.layer {
		return a.layer < b.layer
	}
	return a.sequence <= b.sequence
}

// sortCalls sorts d.calls in place with a bottom-up merge sort, using
// d.sortBuf as scratch. Zero allocations once the scratch buffer reaches its
// high-water mark.
func (d *Display) sortCalls() {
	n := len(d.calls)
	if n <= 1 {
		return
	}
	if cap(d.sortBuf) < n {
		d.sortBuf = make([]drawCall, n)
	}
	d.sortBuf = d.sortBuf[:n]

	a := d.calls
	b := d.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := lo + width
			if mid > n {
				mid = n
			}
			hi := lo + 2*width
			if hi > n {
				hi = n
			}
			mergeCalls(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(d.calls, d.sortBuf)
	}
}

// mergeCalls merges the sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeCalls(src, dst []drawCall, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if callLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
