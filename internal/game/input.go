package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Input tracks per-frame key/button edges and the mouse delta for look
// control. The cursor is captured while playing and released in menus.
type Input struct {
	prevMouse   map[glfw.MouseButton]bool
	prevKeys    map[glfw.Key]bool
	prevCursorX float64
	prevCursorY float64
	haveCursor  bool
	captured    bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// SetCaptured toggles cursor capture. The first delta after capturing is
// discarded so the view doesn't jump.
func (in *Input) SetCaptured(window *glfw.Window, captured bool) {
	if in.captured == captured {
		return
	}
	in.captured = captured
	in.haveCursor = false
	if captured {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// MouseDelta returns the cursor movement since the previous call.
func (in *Input) MouseDelta(window *glfw.Window) (float64, float64) {
	cx, cy := window.GetCursorPos()
	if !in.haveCursor {
		in.prevCursorX, in.prevCursorY = cx, cy
		in.haveCursor = true
		return 0, 0
	}
	dx := cx - in.prevCursorX
	dy := cy - in.prevCursorY
	in.prevCursorX, in.prevCursorY = cx, cy
	return dx, dy
}

// MoveInput reads WASD plus sprint into a movement intent.
func MoveInput(window *glfw.Window) PlayerInput {
	var in PlayerInput
	if window.GetKey(glfw.KeyW) == glfw.Press {
		in.Forward += 1
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		in.Forward -= 1
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		in.Strafe += 1
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		in.Strafe -= 1
	}
	in.Sprint = window.GetKey(glfw.KeyLeftShift) == glfw.Press
	return in
}
