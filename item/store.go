package item

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned by Relocate when the file is not currently a
// top-level file or the target is not an existing folder
// Callers treat it as a silent no-op: the shelf simply does not change
var ErrNotFound = errors.New("item not found")

// Store is the authoritative in-memory shelf
//
// The gesture controller is the only writer, on the UI event loop; the mutex
// serializes against any parallel reader so a Snapshot never observes a
// half-applied relocation
//
// Relocated files live on in byID so folder contents (bare ids) stay
// resolvable to full records after the top-level entry is removed
type Store struct {
	mu    sync.Mutex
	state Collection
	byID  map[string]Item
}

// NewStore seeds a store from the given items
// Seeding is the only way items enter the store; there is no create or
// delete after construction
func NewStore(items ...Item) *Store {
	s := &Store{
		state: Collection{Items: make([]Item, 0, len(items))},
		byID:  make(map[string]Item, len(items)),
	}
	for _, it := range items {
		s.state.Items = append(s.state.Items, it.Clone())
		s.byID[it.ID] = it.Clone()
	}
	return s
}

// Snapshot returns a deep copy of the current collection
func (s *Store) Snapshot() Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Lookup resolves any seeded id to its full item record, whether the item
// is still at top level or already inside a folder
func (s *Store) Lookup(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.byID[id]
	if !ok {
		return Item{}, false
	}
	return it.Clone(), true
}

// Relocate moves a top-level file into a folder's contents, atomically
//
// Fails with ErrNotFound, touching nothing, when fileID is not currently a
// top-level file or folderID is not an existing folder. On success the file's
// top-level entry is removed and its id appended to the folder's contents
func (s *Store) Relocate(fileID, folderID string) (Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.state.TopLevel(fileID)
	if src < 0 || s.state.Items[src].Kind != KindFile {
		return Collection{}, fmt.Errorf("relocate %q: %w", fileID, ErrNotFound)
	}

	dst := s.state.TopLevel(folderID)
	if dst < 0 || s.state.Items[dst].Kind != KindFolder {
		return Collection{}, fmt.Errorf("relocate into %q: %w", folderID, ErrNotFound)
	}

	// Both ends validated; apply both halves of the move
	s.state.Items = append(s.state.Items[:src], s.state.Items[src+1:]...)
	if src < dst {
		dst--
	}
	folder := &s.state.Items[dst]
	folder.Contents = append(folder.Contents, fileID)

	return s.state.Clone(), nil
}
