package ember

import (
	"github.com/gdamore/tcell/v2"
)

// halfBlock is the upper-half-block rune: one terminal cell carries two
// pixel rows, the top via the foreground color and the bottom via the
// background color.
const halfBlock = '▀'

// TermView renders composited frames to a terminal screen. It is a thin
// sibling of View for headless machines and debugging sessions: same engine,
// same display, just truecolor half-block cells instead of a window.
type TermView struct {
	Engine  *Engine
	Display *Display
	Palette Palette

	screen tcell.Screen
}

// NewTermView creates a terminal view over an initialized tcell screen. A
// nil palette falls back to DefaultPalette.
func NewTermView(screen tcell.Screen, engine *Engine, display *Display, palette Palette) *TermView {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &TermView{
		Engine:  engine,
		Display: display,
		Palette: palette,
		screen:  screen,
	}
}

// Step runs one frame headlessly: StartFrame, the caller's draw phase, the
// display composite, then a terminal render.
func (t *TermView) Step(dt float64, drawPhase func()) {
	t.Engine.StartFrame(dt)
	if drawPhase != nil {
		drawPhase()
	}
	t.Display.Composite()
	t.RenderFrame()
}

// RenderFrame paints the display's visible bounds onto the terminal, two
// pixel rows per terminal row, and flushes the screen.
func (t *TermView) RenderFrame() {
	front := t.Display.FrontBuffer()
	bounds := t.Display.VisibleBounds()

	for y := 0; y < bounds.Height; y += 2 {
		for x := 0; x < bounds.Width; x++ {
			top := t.cellColor(front.PixelAt(x, y))
			bottom := t.cellColor(front.PixelAt(x, y+1))
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			t.screen.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

// cellColor converts one color index through the palette. Unresolvable
// indexes render black rather than magenta: terminals are usually a debug
// surface and a screaming mask color helps less than a stable backdrop.
func (t *TermView) cellColor(index int) tcell.Color {
	if index < 0 || index >= len(t.Palette) {
		return tcell.ColorBlack
	}
	c := t.Palette[index]
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
