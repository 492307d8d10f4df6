package terminal

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventMouse
	EventWake   // Scheduled timer wake (activation delay)
	EventClosed // Screen torn down
)

// Key identifies non-rune keys the shelf reacts to
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyEsc
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// MouseButton identifies the pressed button
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction classifies a mouse event relative to the previous one
// Motion with a held button arrives as MouseActionMove with the button set
type MouseAction uint8

const (
	MouseActionMove MouseAction = iota
	MouseActionPress
	MouseActionRelease
)

// Event represents a terminal input event
type Event struct {
	Type EventType
	Key  Key
	Rune rune

	Width  int // For EventResize
	Height int // For EventResize

	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}
