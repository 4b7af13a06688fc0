package ember

import (
	"fmt"
	"os"
)

// debugStats holds the per-frame draw counters the debug log reports.
// Only populated when the engine is in debug mode.
type debugStats struct {
	frame    int
	accepted int
	dropped  int
}

// SetDebug toggles per-frame draw statistics on stderr. Each StartFrame
// logs the previous frame's accepted and dropped sprite counts, so a
// silently-exhausted sprite budget shows up somewhere.
func (e *Engine) SetDebug(enabled bool) {
	e.debug = enabled
}

// DroppedSpriteCount returns the number of sprite draws rejected by the
// budget so far this frame.
func (e *Engine) DroppedSpriteCount() int {
	return e.droppedSprites
}

// debugLog prints one frame's draw statistics to stderr.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[ember] frame %d | sprites: %d accepted | %d dropped | budget %d\n",
		stats.frame, stats.accepted, stats.dropped, e.MaxSpritesPerFrame)
}
