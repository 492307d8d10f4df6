// Package terminal wraps tcell with the minimal surface the shelf needs:
// lifecycle, normalized input events, and synthetic timer wakes.
package terminal

import (
	"io"

	"github.com/gdamore/tcell/v2"
)

// Terminal owns the tcell screen and input normalization state
type Terminal struct {
	screen tcell.Screen

	// Previous button mask, for deriving press/release from tcell's
	// stateless button reports
	prevButtons tcell.ButtonMask
}

// New creates an uninitialized terminal
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init enters the alternate screen, enables mouse reporting (click and
// motion, needed for drag tracking), and hides the cursor
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents, tcell.MouseMotionEvents)
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

// Fini restores the terminal state. Safe to call multiple times
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Screen exposes the underlying tcell screen for rendering
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns current terminal dimensions
func (t *Terminal) Size() (width, height int) {
	return t.screen.Size()
}

// Show flushes pending drawing to the terminal
func (t *Terminal) Show() {
	t.screen.Show()
}

// PollEvent blocks until the next input event, normalized
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return Event{Type: EventClosed}
		case *tcell.EventResize:
			w, h := tev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventInterrupt:
			return Event{Type: EventWake}
		case *tcell.EventKey:
			return t.translateKey(tev)
		case *tcell.EventMouse:
			return t.translateMouse(tev)
		}
		// Unhandled tcell event (paste, focus); keep polling
	}
}

// Wake injects a synthetic wake event into the poll loop
// Safe to call from timer goroutines; used to observe the activation delay
// without blocking the event loop
func (t *Terminal) Wake() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (t *Terminal) translateKey(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey}
	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
	case tcell.KeyEnter:
		out.Key = KeyEnter
	case tcell.KeyEscape:
		out.Key = KeyEsc
	case tcell.KeyTab:
		out.Key = KeyTab
	case tcell.KeyUp:
		out.Key = KeyUp
	case tcell.KeyDown:
		out.Key = KeyDown
	case tcell.KeyLeft:
		out.Key = KeyLeft
	case tcell.KeyRight:
		out.Key = KeyRight
	case tcell.KeyCtrlC:
		return Event{Type: EventClosed}
	default:
		out.Key = KeyNone
	}
	return out
}

// translateMouse derives press/release/move from consecutive button masks
// tcell reports the held mask per event, not edges
func (t *Terminal) translateMouse(ev *tcell.EventMouse) Event {
	x, y := ev.Position()
	buttons := ev.Buttons()
	out := Event{Type: EventMouse, MouseX: x, MouseY: y}

	pressed := buttons &^ t.prevButtons
	released := t.prevButtons &^ buttons
	t.prevButtons = buttons

	switch {
	case buttons&tcell.WheelUp != 0:
		out.MouseBtn = MouseBtnWheelUp
		out.MouseAction = MouseActionPress
	case buttons&tcell.WheelDown != 0:
		out.MouseBtn = MouseBtnWheelDown
		out.MouseAction = MouseActionPress
	case pressed&tcell.Button1 != 0:
		out.MouseBtn = MouseBtnLeft
		out.MouseAction = MouseActionPress
	case released&tcell.Button1 != 0:
		out.MouseBtn = MouseBtnLeft
		out.MouseAction = MouseActionRelease
	case pressed&tcell.Button2 != 0:
		out.MouseBtn = MouseBtnRight
		out.MouseAction = MouseActionPress
	case released&tcell.Button2 != 0:
		out.MouseBtn = MouseBtnRight
		out.MouseAction = MouseActionRelease
	case buttons&tcell.Button1 != 0:
		out.MouseBtn = MouseBtnLeft
		out.MouseAction = MouseActionMove // Drag motion
	default:
		out.MouseBtn = MouseBtnNone
		out.MouseAction = MouseActionMove // Hover motion
	}
	return out
}

// EmergencyReset writes raw escape sequences restoring a sane terminal
// Used from panic handlers where the screen object may be unusable
func EmergencyReset(w io.Writer) {
	// Exit alternate screen, show cursor, disable mouse reporting, reset SGR
	_, _ = w.Write([]byte("\x1b[?1049l\x1b[?25h\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l\x1b[0m"))
}
