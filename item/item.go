package item

// Kind is the discriminant of the Item union
// Every Item is exactly one of file or folder; code switching on Kind must
// handle both arms explicitly
type Kind uint8

const (
	// KindFile is a movable leaf item
	KindFile Kind = iota

	// KindFolder holds files; folders never nest inside other folders
	KindFolder
)

// String returns the lowercase kind name for messages and debugging
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindFolder:
		return "folder"
	}
	return "unknown"
}

// Item is a tagged union over the two shelf variants
// Files carry ID and Name only. Folders additionally carry Contents, the
// ordered ids of files moved into them (append order of relocation)
type Item struct {
	ID       string
	Name     string
	Kind     Kind
	Contents []string // Folder only, nil for files
}

// File constructs a file item
func File(id, name string) Item {
	return Item{ID: id, Name: name, Kind: KindFile}
}

// Folder constructs an empty folder item
func Folder(id, name string) Item {
	return Item{ID: id, Name: name, Kind: KindFolder, Contents: []string{}}
}

// Clone returns a deep copy, detaching the Contents backing array
func (it Item) Clone() Item {
	out := it
	if it.Contents != nil {
		out.Contents = make([]string, len(it.Contents))
		copy(out.Contents, it.Contents)
	}
	return out
}
