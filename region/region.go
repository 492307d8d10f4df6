// Package region provides rectangular hit regions and the registry the
// drag engine queries to find the drop target under the pointer.
package region

// Rect is a rectangular area in screen cells
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell (x, y) falls inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// entry pairs a registered id with its current bounds
type entry struct {
	id   string
	rect Rect
}

// Index holds the currently registered drop regions in registration order
// Later registrations are treated as topmost when regions overlap
//
// Rendering re-registers regions every frame, so an Index is rebuilt rather
// than incrementally patched; Locate is a pure scan over current entries
type Index struct {
	entries []entry
}

// NewIndex creates an empty region index
func NewIndex() *Index {
	return &Index{entries: make([]entry, 0, 16)}
}

// Register adds a region with the given id and bounds
// Re-registering an id replaces its bounds and promotes it to topmost
func (ix *Index) Register(id string, r Rect) {
	for i, e := range ix.entries {
		if e.id == id {
			ix.entries = append(ix.entries[:i], ix.entries[i+1:]...)
			break
		}
	}
	ix.entries = append(ix.entries, entry{id: id, rect: r})
}

// Clear drops all registrations
func (ix *Index) Clear() {
	ix.entries = ix.entries[:0]
}

// Len returns the number of registered regions
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Locate returns the id of the topmost region containing (x, y)
// Exactly one id is ever reported; ties between overlapping regions resolve
// to the most recently registered. ok is false over empty space
func (ix *Index) Locate(x, y int) (id string, ok bool) {
	for i := len(ix.entries) - 1; i >= 0; i-- {
		if ix.entries[i].rect.Contains(x, y) {
			return ix.entries[i].id, true
		}
	}
	return "", false
}
