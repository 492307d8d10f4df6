package gesture

import (
	"fmt"
	"time"

	"github.com/lixenwraith/dropdeck/clock"
	"github.com/lixenwraith/dropdeck/events"
	"github.com/lixenwraith/dropdeck/item"
	"github.com/lixenwraith/dropdeck/notify"
	"github.com/lixenwraith/dropdeck/region"
)

// State is the controller's drag session state
type State uint8

const (
	// StateIdle has no session; clicks dispatch normally
	StateIdle State = iota

	// StateArmed has the pointer down on an item with activation pending;
	// a release here replays as a normal click
	StateArmed

	// StateDragging has an activated session; click handling is suppressed
	// through and including the terminating release
	StateDragging
)

// String returns the state name for debugging
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	}
	return "unknown"
}

// Controller orchestrates a drag session: it arms the gate on press,
// promotes to a drag on activation, tracks the hovered folder through the
// region index, and on release validates and commits the relocation
//
// All methods run on the single UI event loop; at most one session exists.
// Every failure path discards the session and returns to StateIdle with the
// store untouched
type Controller struct {
	clk   clock.Clock
	gate  *Gate
	store *item.Store
	index *region.Index
	queue *events.Queue
	sink  notify.Sink

	state   State
	subject item.Item
	hoverID string
	lastX   int
	lastY   int
}

// NewController wires the drag engine together
func NewController(cfg Config, clk clock.Clock, store *item.Store, index *region.Index, queue *events.Queue, sink notify.Sink) *Controller {
	if sink == nil {
		sink = notify.Discard
	}
	return &Controller{
		clk:   clk,
		gate:  NewGate(clk, cfg),
		store: store,
		index: index,
		queue: queue,
		sink:  sink,
	}
}

// State returns the current session state
func (c *Controller) State() State {
	return c.state
}

// Subject returns the dragged item while a session exists
func (c *Controller) Subject() (item.Item, bool) {
	if c.state == StateIdle {
		return item.Item{}, false
	}
	return c.subject, true
}

// Hover returns the folder id currently under the pointer during a drag
func (c *Controller) Hover() (string, bool) {
	if c.state != StateDragging || c.hoverID == "" {
		return "", false
	}
	return c.hoverID, true
}

// Pointer returns the last observed pointer cell
func (c *Controller) Pointer() (x, y int) {
	return c.lastX, c.lastY
}

// Remaining proxies the gate's time left to activation, for wake scheduling
func (c *Controller) Remaining() time.Duration {
	return c.gate.Remaining()
}

// PointerDown arms a session on the item with the given id
// Unknown ids are dropped: a press on a stale or malformed source is a no-op
func (c *Controller) PointerDown(x, y int, id string) {
	if c.state != StateIdle {
		return
	}
	subject, ok := c.store.Lookup(id)
	if !ok {
		return
	}
	c.subject = subject
	c.lastX, c.lastY = x, y
	c.gate.Press(x, y)
	c.state = StateArmed
}

// PointerMove feeds a pointer position to the active session
// Armed sessions may activate (tolerance exceeded or delay elapsed);
// dragging sessions recompute the hovered folder on every move
func (c *Controller) PointerMove(x, y int) {
	c.lastX, c.lastY = x, y
	switch c.state {
	case StateArmed:
		if c.gate.Move(x, y) {
			c.beginDrag(x, y)
		}
	case StateDragging:
		c.updateHover(x, y)
	}
}

// Tick checks the activation delay on a timer wake
// Promotes a stationary armed press to a drag once the delay elapses
func (c *Controller) Tick() {
	if c.state == StateArmed && c.gate.Poll() {
		c.beginDrag(c.lastX, c.lastY)
	}
}

// PointerUp closes the session at the final pointer position
//
// Armed: replay as a normal click. Dragging: take the final tracker result,
// validate, commit through the store on success, notify the sink, and
// always emit EventDragEnded. Rejection and store failure discard silently
func (c *Controller) PointerUp(x, y int) {
	c.lastX, c.lastY = x, y
	switch c.state {
	case StateArmed:
		if c.gate.Release() {
			c.push(events.EventItemClicked, &events.ItemClickedPayload{Item: c.subject})
		}
		c.reset()

	case StateDragging:
		c.gate.Release()
		c.commit(x, y)
		c.push(events.EventDragEnded, nil)
		c.reset()
	}
}

// Cancel aborts the session with no mutation
// Safe in any state; a cancelled armed press does not replay as a click
func (c *Controller) Cancel() {
	if c.state == StateDragging {
		c.push(events.EventDragEnded, nil)
	}
	c.gate.Release()
	c.reset()
}

// PickUp starts a keyboard drag on the item with the given id, bypassing
// the timing thresholds entirely
func (c *Controller) PickUp(x, y int, id string) {
	if c.state != StateIdle {
		return
	}
	subject, ok := c.store.Lookup(id)
	if !ok {
		return
	}
	c.subject = subject
	c.lastX, c.lastY = x, y
	c.gate.ForceActivate()
	c.beginDrag(x, y)
}

// Drop releases a keyboard drag at the current pointer cell
func (c *Controller) Drop() {
	if c.state != StateDragging {
		return
	}
	c.PointerUp(c.lastX, c.lastY)
}

// beginDrag transitions Armed -> Dragging and surfaces the initial hover
func (c *Controller) beginDrag(x, y int) {
	c.state = StateDragging
	c.push(events.EventDragStarted, &events.DragStartedPayload{Item: c.subject})
	c.updateHover(x, y)
}

// updateHover recomputes the hovered folder and surfaces the result
func (c *Controller) updateHover(x, y int) {
	id, ok := c.index.Locate(x, y)
	if !ok {
		id = ""
	}
	c.hoverID = id
	c.push(events.EventDragHover, &events.DragHoverPayload{FolderID: id})
}

// commit validates the final (subject, hovered) pair and applies the
// relocation; every rejection or failure leaves the store untouched
func (c *Controller) commit(x, y int) {
	var hovered *item.Item
	if id, ok := c.index.Locate(x, y); ok {
		if it, found := c.store.Lookup(id); found {
			hovered = &it
		}
	}

	if verdict := item.Validate(&c.subject, hovered); !verdict.Allowed() {
		return
	}

	if _, err := c.store.Relocate(c.subject.ID, hovered.ID); err != nil {
		// Stale session against a moved shelf; observed as no change
		return
	}

	c.push(events.EventRelocated, &events.RelocatedPayload{
		FileID:     c.subject.ID,
		FileName:   c.subject.Name,
		FolderID:   hovered.ID,
		FolderName: hovered.Name,
	})
	c.sink.Notify(fmt.Sprintf("Moved %q to %q", c.subject.Name, hovered.Name))
}

// reset returns the controller to Idle with no session
func (c *Controller) reset() {
	c.state = StateIdle
	c.subject = item.Item{}
	c.hoverID = ""
}

// push enqueues an event stamped with the controller's clock
func (c *Controller) push(t events.EventType, payload any) {
	c.queue.Push(events.Event{Type: t, Payload: payload, Timestamp: c.clk.Now()})
}
