package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestJustPressedIsOneFrameEdge(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if !im.JustPressed(ActionPause) {
		t.Fatal("press event did not set the edge flag")
	}
	if !im.IsActive(ActionPause) {
		t.Fatal("press event did not set the held state")
	}

	im.PostUpdate()
	if im.JustPressed(ActionPause) {
		t.Fatal("edge flag survived PostUpdate")
	}
	if !im.IsActive(ActionPause) {
		t.Fatal("held state must persist while the key is down")
	}

	im.HandleKeyEvent(glfw.KeySpace, glfw.Release)
	if !im.JustReleased(ActionPause) {
		t.Fatal("release event did not set the release edge")
	}
	im.PostUpdate()
	if im.IsActive(ActionPause) {
		t.Fatal("held state survived the release")
	}
}

func TestRepeatDoesNotRetrigger(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyF, glfw.Press)
	im.PostUpdate()

	im.HandleKeyEvent(glfw.KeyF, glfw.Repeat)
	if im.JustPressed(ActionFlatten) {
		t.Fatal("key repeat must not look like a fresh press")
	}
	if !im.IsActive(ActionFlatten) {
		t.Fatal("key repeat must keep the action held")
	}
}

func TestEscapeAndQBothQuit(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	if !im.JustPressed(ActionQuit) {
		t.Fatal("escape did not map to quit")
	}
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Release)
	im.PostUpdate()

	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	if !im.JustPressed(ActionQuit) {
		t.Fatal("q did not map to quit")
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		if im.JustPressed(a) {
			t.Fatalf("unbound key triggered action %d", a)
		}
	}
}

func TestMouseButtonEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	if !im.JustPressed(ActionMouseLeft) {
		t.Fatal("left press did not register")
	}

	im.PostUpdate()
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Release)
	if !im.JustReleased(ActionMouseLeft) {
		t.Fatal("left release did not register")
	}
	if im.IsActive(ActionMouseLeft) {
		t.Fatal("left button still held after release")
	}
}
