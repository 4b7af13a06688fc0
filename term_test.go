package ember

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTermView(t *testing.T) (*TermView, *Engine, *SpriteBank, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 20)

	sprites := NewSpriteBank(2, 2, 8)
	tiles := NewTileGrid(4, 4)
	display := NewDisplay(10, 10, 1, 1, 2, 2)
	engine := NewEngine(sprites, tiles, display, NewFontBank())
	view := NewTermView(screen, engine, display, nil)
	return view, engine, sprites, screen
}

func TestTermViewRendersHalfBlocks(t *testing.T) {
	view, engine, sprites, screen := newSimTermView(t)
	sprites.WriteSpriteAt(0, solidSprite(2, 2, 8)) // red in the default palette

	view.Step(1.0/60, func() {
		engine.DrawSprite(0, 0, 0, false, false, DrawModeSprite, 0)
	})

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != halfBlock {
		t.Fatalf("cell rune = %q, want %q", mainc, halfBlock)
	}
	fg, bg, _ := style.Decompose()
	red := tcell.NewRGBColor(0xFF, 0x00, 0x4D)
	if fg != red {
		t.Errorf("foreground = %v, want %v", fg, red)
	}
	// The sprite is 2x2, so the bottom pixel row of the first terminal row
	// is red as well.
	if bg != red {
		t.Errorf("background = %v, want %v", bg, red)
	}
}

func TestTermViewUnresolvableIndexIsBlack(t *testing.T) {
	view, engine, _, screen := newSimTermView(t)

	view.Step(1.0/60, func() {
		engine.DrawPixels([]int{99, 99, 99, 99}, 0, 0, 2, 2, false, false, DrawModeUI, 0)
	})

	_, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if fg != tcell.ColorBlack || bg != tcell.ColorBlack {
		t.Errorf("out-of-palette index = fg %v bg %v, want black", fg, bg)
	}
}

func TestTermViewStepDrivesFrameLifecycle(t *testing.T) {
	view, engine, sprites, _ := newSimTermView(t)
	sprites.WriteSpriteAt(0, solidSprite(2, 2, 1))
	engine.MaxSpritesPerFrame = 4

	view.Step(1.0/60, func() {
		engine.DrawSprite(0, 0, 0, false, false, DrawModeSprite, 0)
		engine.DrawSprite(0, 2, 0, false, false, DrawModeSprite, 0)
	})
	if got := engine.CurrentSpriteCount(); got != 2 {
		t.Errorf("CurrentSpriteCount() = %d, want 2", got)
	}
	if got := view.Display.QueuedCalls(); got != 0 {
		t.Errorf("QueuedCalls() = %d after Step, want 0 (composited)", got)
	}

	// The next Step resets the counter before the draw phase runs.
	view.Step(1.0/60, func() {
		if got := engine.CurrentSpriteCount(); got != 0 {
			t.Errorf("counter = %d inside new frame, want 0", got)
		}
	})
	if got := engine.FrameCount(); got != 2 {
		t.Errorf("FrameCount() = %d, want 2", got)
	}
}

func TestTermViewCoversVisibleBoundsOnly(t *testing.T) {
	view, engine, _, screen := newSimTermView(t)

	// Paint the overscan column: it must never reach the terminal.
	view.Step(1.0/60, func() {
		engine.DrawPixels([]int{8}, 9, 0, 1, 1, false, false, DrawModeUI, 0)
	})

	// Visible bounds are 8x8, so columns 0..7 and rows 0..3 hold half
	// blocks; column 8 stays untouched.
	mainc, _, _, _ := screen.GetContent(7, 3)
	if mainc != halfBlock {
		t.Errorf("cell (7,3) rune = %q, want %q", mainc, halfBlock)
	}
	mainc, _, _, _ = screen.GetContent(8, 0)
	if mainc == halfBlock {
		t.Error("overscan column rendered to the terminal")
	}
}
