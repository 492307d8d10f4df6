// Package ui renders the shelf and feeds terminal input into the drag
// engine. It owns no collection state: every frame is drawn from a fresh
// store snapshot, and all session state lives in the gesture controller.
package ui

import (
	"fmt"
	"time"

	"github.com/lixenwraith/dropdeck/audio"
	"github.com/lixenwraith/dropdeck/clock"
	"github.com/lixenwraith/dropdeck/constants"
	"github.com/lixenwraith/dropdeck/events"
	"github.com/lixenwraith/dropdeck/gesture"
	"github.com/lixenwraith/dropdeck/item"
	"github.com/lixenwraith/dropdeck/notify"
	"github.com/lixenwraith/dropdeck/region"
	"github.com/lixenwraith/dropdeck/terminal"
)

// Shelf drives the interactive session: one instance per run
type Shelf struct {
	term   *terminal.Terminal
	clk    clock.Clock
	store  *item.Store
	ctrl   *gesture.Controller
	queue  *events.Queue
	router *events.Router[*Shelf]
	toasts *notify.Toasts
	player *audio.Player

	// targets holds folder drop regions; sources holds every item box for
	// press hit-testing. Both rebuilt each frame from the layout
	targets *region.Index
	sources *region.Index

	placements []Placement
	width      int
	height     int

	focusID  string
	hoverID  string
	dragging bool
	status   string
	envelope []float64

	wake *time.Timer
	quit bool
}

// Options configures a shelf session
type Options struct {
	Gesture gesture.Config
	Player  *audio.Player // nil disables the audio strip
}

// NewShelf wires the engine together around the seeded store
func NewShelf(term *terminal.Terminal, clk clock.Clock, store *item.Store, opts Options) *Shelf {
	s := &Shelf{
		term:    term,
		clk:     clk,
		store:   store,
		queue:   events.NewQueue(),
		toasts:  notify.NewToasts(clk),
		player:  opts.Player,
		targets: region.NewIndex(),
		sources: region.NewIndex(),
		status:  "drag a file onto a folder, or press space to pick up",
	}
	s.ctrl = gesture.NewController(opts.Gesture, clk, store, s.targets, s.queue, s.toasts)
	s.router = events.NewRouter[*Shelf](s.queue)
	s.router.Register(&sessionEvents{})

	if s.player != nil {
		s.envelope = audio.Envelope(audio.DemoTrack(), constants.WaveformBuckets)
	}

	s.width, s.height = term.Size()
	return s
}

// Run processes events until quit. All input, dispatch and rendering run
// on this single goroutine; timer wakes arrive as synthetic events
func (s *Shelf) Run() {
	if s.player != nil {
		s.player.Start()
		defer s.player.Stop()
	}

	for !s.quit {
		s.render()
		ev := s.term.PollEvent()
		s.handleEvent(ev)
		s.router.DispatchAll(s)
	}
}

func (s *Shelf) handleEvent(ev terminal.Event) {
	switch ev.Type {
	case terminal.EventClosed:
		s.quit = true
	case terminal.EventResize:
		s.width, s.height = ev.Width, ev.Height
		s.term.Screen().Sync()
	case terminal.EventWake:
		s.ctrl.Tick()
	case terminal.EventMouse:
		s.handleMouse(ev)
	case terminal.EventKey:
		s.handleKey(ev)
	}
}

func (s *Shelf) handleMouse(ev terminal.Event) {
	switch {
	case ev.MouseBtn == terminal.MouseBtnLeft && ev.MouseAction == terminal.MouseActionPress:
		if id, ok := s.sources.Locate(ev.MouseX, ev.MouseY); ok {
			s.focusID = id
			s.ctrl.PointerDown(ev.MouseX, ev.MouseY, id)
			s.scheduleWake()
		}
	case ev.MouseBtn == terminal.MouseBtnLeft && ev.MouseAction == terminal.MouseActionRelease:
		s.ctrl.PointerUp(ev.MouseX, ev.MouseY)
	case ev.MouseAction == terminal.MouseActionMove:
		s.ctrl.PointerMove(ev.MouseX, ev.MouseY)
	case ev.MouseBtn == terminal.MouseBtnRight && ev.MouseAction == terminal.MouseActionPress:
		s.ctrl.Cancel()
	}
}

func (s *Shelf) handleKey(ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyEsc:
		s.ctrl.Cancel()
	case terminal.KeyTab, terminal.KeyRight, terminal.KeyDown:
		s.moveFocus(1)
	case terminal.KeyLeft, terminal.KeyUp:
		s.moveFocus(-1)
	case terminal.KeyEnter:
		s.describeFocus()
	case terminal.KeyRune:
		s.handleRune(ev.Rune)
	}
}

func (s *Shelf) handleRune(r rune) {
	switch r {
	case 'q':
		s.quit = true
	case ' ':
		s.spaceAction()
	case 'p':
		if s.player != nil {
			if s.player.Toggle() {
				s.status = "playing"
			} else {
				s.status = "paused"
			}
		}
	case '+', '=':
		if s.player != nil {
			s.status = fmt.Sprintf("volume %+.2f", s.player.VolumeUp())
		}
	case '-', '_':
		if s.player != nil {
			s.status = fmt.Sprintf("volume %+.2f", s.player.VolumeDown())
		}
	case '[':
		if s.player != nil {
			s.player.SeekBy(-time.Second)
		}
	case ']':
		if s.player != nil {
			s.player.SeekBy(time.Second)
		}
	}
}

// spaceAction is the keyboard drag path: pick up the focused file, or drop
// the current drag at the focused box
func (s *Shelf) spaceAction() {
	switch s.ctrl.State() {
	case gesture.StateIdle:
		if p, ok := FindPlacement(s.placements, s.focusID); ok {
			x, y := Center(p.Rect)
			s.ctrl.PickUp(x, y, p.Item.ID)
		}
	case gesture.StateDragging:
		s.ctrl.Drop()
	}
}

// moveFocus steps through the current layout order; during a keyboard drag
// the virtual pointer follows the focused box so hover tracking works
// through the normal pointer path
func (s *Shelf) moveFocus(delta int) {
	if len(s.placements) == 0 {
		return
	}
	idx := 0
	for i, p := range s.placements {
		if p.Item.ID == s.focusID {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(s.placements)) % len(s.placements)
	s.focusID = s.placements[idx].Item.ID

	if s.ctrl.State() == gesture.StateDragging {
		x, y := Center(s.placements[idx].Rect)
		s.ctrl.PointerMove(x, y)
	}
}

// describeFocus puts the focused item's detail on the status line
func (s *Shelf) describeFocus() {
	it, ok := s.store.Lookup(s.focusID)
	if !ok {
		return
	}
	if it.Kind == item.KindFile {
		s.status = fmt.Sprintf("file %q", it.Name)
		return
	}
	c := s.store.Snapshot()
	if idx := c.TopLevel(it.ID); idx >= 0 {
		s.status = fmt.Sprintf("folder %q: %s", it.Name, s.contentsLabel(c.Items[idx]))
	}
}

// contentsLabel resolves a folder's bare content ids to display names
func (s *Shelf) contentsLabel(folder item.Item) string {
	if len(folder.Contents) == 0 {
		return "empty"
	}
	label := ""
	for i, id := range folder.Contents {
		name := id
		if it, ok := s.store.Lookup(id); ok {
			name = it.Name
		}
		if i > 0 {
			label += ", "
		}
		label += name
	}
	return label
}

// scheduleWake arms a timer for the activation delay so a stationary hold
// promotes to a drag without waiting for the next input event
func (s *Shelf) scheduleWake() {
	remaining := s.ctrl.Remaining()
	if remaining <= 0 {
		return
	}
	if s.wake != nil {
		s.wake.Stop()
	}
	s.wake = time.AfterFunc(remaining+time.Millisecond, s.term.Wake)
}

// sessionEvents mirrors engine events into shelf display state
type sessionEvents struct{}

func (h *sessionEvents) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventDragStarted,
		events.EventDragHover,
		events.EventDragEnded,
		events.EventItemClicked,
		events.EventRelocated,
	}
}

func (h *sessionEvents) HandleEvent(ctx *Shelf, ev events.Event) {
	switch ev.Type {
	case events.EventDragStarted:
		ctx.dragging = true
		if p, ok := ev.Payload.(*events.DragStartedPayload); ok {
			ctx.status = fmt.Sprintf("dragging %q", p.Item.Name)
		}
	case events.EventDragHover:
		ctx.hoverID = ""
		if p, ok := ev.Payload.(*events.DragHoverPayload); ok {
			ctx.hoverID = p.FolderID
		}
	case events.EventDragEnded:
		ctx.dragging = false
		ctx.hoverID = ""
	case events.EventItemClicked:
		if p, ok := ev.Payload.(*events.ItemClickedPayload); ok {
			ctx.focusID = p.Item.ID
			ctx.status = fmt.Sprintf("selected %q", p.Item.Name)
		}
	case events.EventRelocated:
		if p, ok := ev.Payload.(*events.RelocatedPayload); ok {
			ctx.status = fmt.Sprintf("%s → %s", p.FileName, p.FolderName)
		}
	}
}
