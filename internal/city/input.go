package city

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Input watches for any activity that should dismiss the saver. Pointer
// motion only counts after the startup grace period, and the first observed
// position is treated as the baseline rather than as movement.
type Input struct {
	started     float64
	havePointer bool
	prevCursorX float64
	prevCursorY float64

	keyHit   bool
	mouseHit bool
}

func NewInput(window *glfw.Window, now float64) *Input {
	in := &Input{started: now}
	window.SetKeyCallback(func(_ *glfw.Window, _ glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Press {
			in.keyHit = true
		}
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, _ glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Press {
			in.mouseHit = true
		}
	})
	return in
}

// ShouldExit polls the dismissal conditions: any key, any button, or cursor
// motion past a small jitter threshold once the grace window has elapsed.
func (in *Input) ShouldExit(window *glfw.Window, now float64) bool {
	if in.keyHit || in.mouseHit {
		return true
	}

	cx, cy := window.GetCursorPos()
	if !in.havePointer {
		in.havePointer = true
		in.prevCursorX, in.prevCursorY = cx, cy
		return false
	}
	moved := math.Hypot(cx-in.prevCursorX, cy-in.prevCursorY) > 2.0
	in.prevCursorX, in.prevCursorY = cx, cy

	if now-in.started < MotionGraceSeconds {
		return false
	}
	return moved
}
