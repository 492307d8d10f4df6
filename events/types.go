package events

import (
	"time"
)

// EventType represents the type of shelf event
type EventType int

const (
	// EventDragStarted signals a press crossed the activation threshold
	// Trigger: gesture controller entering Dragging
	// Consumer: UI (drag overlay, pickup sound) | Payload: *DragStartedPayload
	EventDragStarted EventType = iota

	// EventDragHover reports the folder currently under the pointer
	// Trigger: every pointer move during an active drag
	// Consumer: UI (target highlight) | Payload: *DragHoverPayload
	EventDragHover

	// EventDragEnded signals the drag session closed, mutation or not
	// Trigger: release or cancel while Dragging; always fires exactly once
	// Consumer: UI (clear overlay/highlight) | Payload: nil
	EventDragEnded

	// EventItemClicked signals a genuine click: press and release without
	// activation. Never fires for the release that ends a drag
	// Consumer: UI (selection, detail panel) | Payload: *ItemClickedPayload
	EventItemClicked

	// EventRelocated signals a committed relocation
	// Trigger: successful store mutation on drop
	// Consumer: UI (status line, drop sound) | Payload: *RelocatedPayload
	EventRelocated
)

// Event is a queued shelf event
type Event struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
