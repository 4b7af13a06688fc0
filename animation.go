package ember

// Animation steps through a sprite id sequence on a fixed cadence. Create one
// with NewAnimation and call Update(dt) each frame; SpriteID returns the frame
// to hand DrawSprite. A non-looping animation holds its last frame and sets
// Done.
//
// There is no global animation manager — callers drive Update themselves.
type Animation struct {
	// Frames is the sprite id sequence, played in order. A -1 entry is a
	// hidden frame: DrawSprite skips it.
	Frames []int

	// FrameTime is the seconds each frame stays on screen.
	FrameTime float64

	// Loop restarts the sequence at the end instead of holding the last frame.
	Loop bool

	// Done is set when a non-looping animation has played out.
	Done bool

	elapsed float64
	index   int
}

// NewAnimation creates an animation playing frames at the given rate in
// frames per second. A rate of 0 or below holds the first frame forever.
func NewAnimation(frames []int, fps float64, loop bool) *Animation {
	a := &Animation{Frames: frames, Loop: loop}
	if fps > 0 {
		a.FrameTime = 1 / fps
	}
	return a
}

// Update advances the animation by dt seconds, stepping as many frames as
// the elapsed time covers.
func (a *Animation) Update(dt float64) {
	if a.Done || a.FrameTime <= 0 || len(a.Frames) == 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameTime {
		a.elapsed -= a.FrameTime
		a.index++
		if a.index < len(a.Frames) {
			continue
		}
		if a.Loop {
			a.index = 0
			continue
		}
		a.index = len(a.Frames) - 1
		a.Done = true
		return
	}
}

// SpriteID returns the sprite id of the current frame, -1 when the animation
// holds no frames.
func (a *Animation) SpriteID() int {
	if len(a.Frames) == 0 {
		return -1
	}
	return a.Frames[a.index]
}

// Reset rewinds to the first frame and clears Done.
func (a *Animation) Reset() {
	a.elapsed = 0
	a.index = 0
	a.Done = false
}
