package ember

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Palette maps color indexes to RGBA for presentation. The engine core never
// touches it — indexes stay indexes until a frontend converts a composited
// frame.
type Palette []color.RGBA

// DefaultPalette returns a 16-color palette loosely spanning dark-to-light
// with primaries, enough to get pixels on screen before a game loads its own.
func DefaultPalette() Palette {
	return Palette{
		{0x00, 0x00, 0x00, 0xFF}, // black
		{0x1D, 0x2B, 0x53, 0xFF}, // navy
		{0x7E, 0x25, 0x53, 0xFF}, // plum
		{0x00, 0x87, 0x51, 0xFF}, // green
		{0xAB, 0x52, 0x36, 0xFF}, // brown
		{0x5F, 0x57, 0x4F, 0xFF}, // dark gray
		{0xC2, 0xC3, 0xC7, 0xFF}, // light gray
		{0xFF, 0xF1, 0xE8, 0xFF}, // white
		{0xFF, 0x00, 0x4D, 0xFF}, // red
		{0xFF, 0xA3, 0x00, 0xFF}, // orange
		{0xFF, 0xEC, 0x27, 0xFF}, // yellow
		{0x00, 0xE4, 0x36, 0xFF}, // lime
		{0x29, 0xAD, 0xFF, 0xFF}, // blue
		{0x83, 0x76, 0x9C, 0xFF}, // lavender
		{0xFF, 0x77, 0xA8, 0xFF}, // pink
		{0xFF, 0xCC, 0xAA, 0xFF}, // peach
	}
}

// maskColor is painted for indexes the palette can't resolve — the same
// "obviously wrong" magenta convention atlases use for missing regions.
var maskColor = color.RGBA{0xFF, 0x00, 0xFF, 0xFF}

// View adapts an Engine and its Display to ebiten.Game. Update drives the
// frame lifecycle (counter reset, game callback, composite); Draw converts
// the composited front buffer through the palette and presents it scaled to
// the window with overscan cropped.
type View struct {
	Engine  *Engine
	Display *Display
	Palette Palette

	// OnUpdate is the game logic callback, invoked once per tick after
	// StartFrame. Issue draw calls from here.
	OnUpdate func(dt float64)

	// ShowFPS overlays the engine's FPS reading in the top-left corner.
	ShowFPS bool

	offscreen *ebiten.Image
	rgba      []byte
	drawOpts  ebiten.DrawImageOptions
}

// NewView creates a view over an engine and display with the given palette.
// A nil palette falls back to DefaultPalette.
func NewView(engine *Engine, display *Display, palette Palette) *View {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &View{
		Engine:  engine,
		Display: display,
		Palette: palette,
	}
}

// Update runs one frame: StartFrame, the game callback, then the display
// composite. Implements ebiten.Game.
func (v *View) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	v.Engine.StartFrame(dt)
	if v.OnUpdate != nil {
		v.OnUpdate(dt)
	}
	v.Display.Composite()
	return nil
}

// Draw presents the front buffer. Implements ebiten.Game.
func (v *View) Draw(screen *ebiten.Image) {
	front := v.Display.FrontBuffer()
	fullW := front.Width()
	fullH := front.Height()
	if fullW == 0 || fullH == 0 {
		return
	}

	if v.offscreen == nil || v.offscreen.Bounds().Dx() != fullW || v.offscreen.Bounds().Dy() != fullH {
		v.offscreen = ebiten.NewImage(fullW, fullH)
		v.rgba = make([]byte, fullW*fullH*4)
	}

	v.fillRGBA(front.Pixels())
	v.offscreen.WritePixels(v.rgba)

	// Crop overscan: only the visible bounds reach the window.
	bounds := v.Display.VisibleBounds()
	src := v.offscreen.SubImage(image.Rect(0, 0, bounds.Width, bounds.Height)).(*ebiten.Image)

	// Scale to fit while preserving aspect ratio, centered, nearest filter.
	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	nativeW := float64(bounds.Width)
	nativeH := float64(bounds.Height)

	scale := float64(screenW) / nativeW
	if s := float64(screenH) / nativeH; s < scale {
		scale = s
	}
	offsetX := (float64(screenW) - nativeW*scale) / 2
	offsetY := (float64(screenH) - nativeH*scale) / 2

	v.drawOpts = ebiten.DrawImageOptions{}
	v.drawOpts.GeoM.Scale(scale, scale)
	v.drawOpts.GeoM.Translate(offsetX, offsetY)
	v.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(src, &v.drawOpts)

	if v.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", v.Engine.FPS(), ebiten.ActualTPS()))
	}
}

// Layout returns the window size so Draw controls scaling itself.
// Implements ebiten.Game.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// fillRGBA converts color indexes into the RGBA scratch buffer through the
// palette. Unresolvable indexes paint the magenta mask color.
func (v *View) fillRGBA(pixels []int) {
	for i, p := range pixels {
		c := maskColor
		if p >= 0 && p < len(v.Palette) {
			c = v.Palette[p]
		}
		base := i * 4
		v.rgba[base+0] = c.R
		v.rgba[base+1] = c.G
		v.rgba[base+2] = c.B
		v.rgba[base+3] = c.A
	}
}

// RunConfig configures the Run window harness.
type RunConfig struct {
	Title  string
	Width  int // window width in screen pixels; 0 = 2x the visible bounds
	Height int // window height in screen pixels; 0 = 2x the visible bounds
}

// Run opens a window and drives the view's game loop until the window
// closes. For full control, implement ebiten.Game yourself and call the
// View's Update/Draw directly.
func Run(view *View, config RunConfig) error {
	w, h := config.Width, config.Height
	if w == 0 || h == 0 {
		bounds := view.Display.VisibleBounds()
		w = bounds.Width * 2
		h = bounds.Height * 2
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(config.Title)
	if err := ebiten.RunGame(view); err != nil {
		return fmt.Errorf("ember: run: %w", err)
	}
	return nil
}
