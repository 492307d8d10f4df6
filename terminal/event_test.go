package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestTranslateMouseEdges verifies press/release derivation from tcell's
// stateless button masks across a press-drag-release sequence
func TestTranslateMouseEdges(t *testing.T) {
	term := &Terminal{}

	steps := []struct {
		buttons    tcell.ButtonMask
		x, y       int
		wantBtn    MouseButton
		wantAction MouseAction
	}{
		{tcell.ButtonNone, 1, 1, MouseBtnNone, MouseActionMove},  // hover
		{tcell.Button1, 1, 1, MouseBtnLeft, MouseActionPress},    // press edge
		{tcell.Button1, 5, 2, MouseBtnLeft, MouseActionMove},     // drag
		{tcell.Button1, 9, 3, MouseBtnLeft, MouseActionMove},     // drag
		{tcell.ButtonNone, 9, 3, MouseBtnLeft, MouseActionRelease}, // release edge
		{tcell.ButtonNone, 9, 4, MouseBtnNone, MouseActionMove},  // hover again
	}

	for i, s := range steps {
		ev := term.translateMouse(tcell.NewEventMouse(s.x, s.y, s.buttons, 0))
		if ev.Type != EventMouse {
			t.Fatalf("step %d: type = %v, want EventMouse", i, ev.Type)
		}
		if ev.MouseBtn != s.wantBtn || ev.MouseAction != s.wantAction {
			t.Errorf("step %d: got (%v, %v), want (%v, %v)",
				i, ev.MouseBtn, ev.MouseAction, s.wantBtn, s.wantAction)
		}
		if ev.MouseX != s.x || ev.MouseY != s.y {
			t.Errorf("step %d: position (%d, %d), want (%d, %d)",
				i, ev.MouseX, ev.MouseY, s.x, s.y)
		}
	}
}

// TestTranslateMouseWheel verifies wheel events map to wheel presses
func TestTranslateMouseWheel(t *testing.T) {
	term := &Terminal{}

	up := term.translateMouse(tcell.NewEventMouse(0, 0, tcell.WheelUp, 0))
	if up.MouseBtn != MouseBtnWheelUp || up.MouseAction != MouseActionPress {
		t.Errorf("wheel up = (%v, %v)", up.MouseBtn, up.MouseAction)
	}

	// Clear the wheel bit from previous state before scrolling down
	term.prevButtons = 0
	down := term.translateMouse(tcell.NewEventMouse(0, 0, tcell.WheelDown, 0))
	if down.MouseBtn != MouseBtnWheelDown || down.MouseAction != MouseActionPress {
		t.Errorf("wheel down = (%v, %v)", down.MouseBtn, down.MouseAction)
	}
}
