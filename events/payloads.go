package events

import (
	"github.com/lixenwraith/dropdeck/item"
)

// DragStartedPayload carries the drag session's subject
type DragStartedPayload struct {
	Item item.Item
}

// DragHoverPayload reports the folder under the pointer, empty for none
type DragHoverPayload struct {
	FolderID string
}

// ItemClickedPayload carries the clicked item
type ItemClickedPayload struct {
	Item item.Item
}

// RelocatedPayload describes a committed relocation
type RelocatedPayload struct {
	FileID     string
	FileName   string
	FolderID   string
	FolderName string
}
