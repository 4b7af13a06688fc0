package ember

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fpsInterval is how often the FPS reading refreshes, in seconds. The
// accumulator resets on this fixed cadence, not every frame.
const fpsInterval = 0.5

// frameClock tracks frame count and a periodically-refreshed FPS reading.
type frameClock struct {
	frames int // total frames since creation

	accumTime   float64 // seconds since the last FPS refresh
	accumFrames int     // frames since the last FPS refresh
	fps         float64
}

// update advances the clock by one frame of dt seconds.
func (c *frameClock) update(dt float64) {
	c.frames++
	c.accumFrames++
	c.accumTime += dt
	if c.accumTime >= fpsInterval {
		c.fps = float64(c.accumFrames) / c.accumTime
		c.accumTime = 0
		c.accumFrames = 0
	}
}

// scrollAnim holds active scroll tweens for X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// StartFrame begins a new frame: the accepted-sprite counter resets to zero,
// the frame clock advances by dt seconds, and any scroll tween moves one
// step. Call once per frame, before issuing draw calls.
func (e *Engine) StartFrame(dt float64) {
	e.debugLog(debugStats{frame: e.clock.frames, accepted: e.currentSprites, dropped: e.droppedSprites})
	e.currentSprites = 0
	e.droppedSprites = 0
	e.clock.update(dt)
	e.updateScroll(float32(dt))
}

// FrameCount returns the number of frames started since the engine was
// created.
func (e *Engine) FrameCount() int {
	return e.clock.frames
}

// FPS returns the frame rate measured over the last refresh interval.
func (e *Engine) FPS() float64 {
	return e.clock.fps
}

// ScrollTo tweens the scroll position to (x, y) over duration seconds with
// the given easing. The tween advances in StartFrame; a direct
// ScrollPosition call cancels it.
func (e *Engine) ScrollTo(x, y int, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		e.ScrollPosition(x, y)
		return
	}
	e.scroll = &scrollAnim{
		tweenX: gween.New(float32(e.scrollX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(e.scrollY), float32(y), duration, easeFn),
	}
}

// updateScroll advances the active scroll tween, if any.
func (e *Engine) updateScroll(dt float32) {
	anim := e.scroll
	if anim == nil {
		return
	}

	if !anim.doneX {
		x, done := anim.tweenX.Update(dt)
		e.scrollX = int(math.Round(float64(x)))
		anim.doneX = done
	}
	if !anim.doneY {
		y, done := anim.tweenY.Update(dt)
		e.scrollY = int(math.Round(float64(y)))
		anim.doneY = done
	}
	if anim.doneX && anim.doneY {
		e.scroll = nil
	}
}
