package item

// Verdict is the outcome of validating a proposed drop
// Rejections are normal control flow, not errors: the drag session simply
// ends with no mutation
type Verdict uint8

const (
	// VerdictAllowed permits the relocation: a file dropped on a folder
	VerdictAllowed Verdict = iota

	// VerdictNoTarget rejects a drop with nothing under the pointer
	VerdictNoTarget

	// VerdictIncompatibleTypes rejects every other pairing: file on file,
	// folder on anything, an item on itself, or a missing dragged item
	VerdictIncompatibleTypes
)

// String returns the verdict name for messages and debugging
func (v Verdict) String() string {
	switch v {
	case VerdictAllowed:
		return "allowed"
	case VerdictNoTarget:
		return "no target"
	case VerdictIncompatibleTypes:
		return "incompatible types"
	}
	return "unknown"
}

// Allowed reports whether the verdict permits the relocation
func (v Verdict) Allowed() bool {
	return v == VerdictAllowed
}

// Validate decides whether dropping dragged onto hovered is a legal move
// Pure function over the two records; nil hovered means the pointer was over
// empty space. Only file-onto-folder is allowed
func Validate(dragged, hovered *Item) Verdict {
	if hovered == nil {
		return VerdictNoTarget
	}
	if dragged == nil {
		return VerdictIncompatibleTypes
	}
	if dragged.ID == hovered.ID {
		return VerdictIncompatibleTypes
	}

	switch dragged.Kind {
	case KindFile:
		switch hovered.Kind {
		case KindFolder:
			return VerdictAllowed
		case KindFile:
			return VerdictIncompatibleTypes
		}
	case KindFolder:
		// Folders are not relocatable, regardless of target
		return VerdictIncompatibleTypes
	}
	return VerdictIncompatibleTypes
}
