package item

import "fmt"

// Collection is the shelf state: the ordered top-level items plus the
// containment relation implied by each folder's Contents
type Collection struct {
	Items []Item
}

// Clone returns a deep copy safe to hand to readers
func (c Collection) Clone() Collection {
	out := Collection{Items: make([]Item, len(c.Items))}
	for i, it := range c.Items {
		out.Items[i] = it.Clone()
	}
	return out
}

// TopLevel returns the index of the top-level item with the given id, or -1
func (c Collection) TopLevel(id string) int {
	for i, it := range c.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Check verifies the structural invariants of a collection:
//
//  1. ids are globally unique across top-level items and folder contents
//  2. every file id appears in exactly one place, top level or one folder
//  3. folders never appear inside a folder's contents
//
// Returns nil when all hold. Mutations in this package keep Check passing;
// the exported form exists so tests can assert it after every operation
func Check(c Collection) error {
	seen := make(map[string]string, len(c.Items))
	folders := make(map[string]bool, len(c.Items))

	for _, it := range c.Items {
		if it.ID == "" {
			return fmt.Errorf("top-level %s %q has empty id", it.Kind, it.Name)
		}
		if prev, dup := seen[it.ID]; dup {
			return fmt.Errorf("id %q appears at top level and in %s", it.ID, prev)
		}
		seen[it.ID] = "top level"
		if it.Kind == KindFolder {
			folders[it.ID] = true
		}
		if it.Kind == KindFile && it.Contents != nil {
			return fmt.Errorf("file %q carries contents", it.ID)
		}
	}

	for _, it := range c.Items {
		if it.Kind != KindFolder {
			continue
		}
		for _, id := range it.Contents {
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("id %q appears in folder %q and in %s", id, it.ID, prev)
			}
			seen[id] = fmt.Sprintf("folder %q", it.ID)
			if folders[id] {
				return fmt.Errorf("folder %q nested inside folder %q", id, it.ID)
			}
		}
	}

	return nil
}
