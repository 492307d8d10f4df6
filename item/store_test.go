package item

import (
	"errors"
	"reflect"
	"testing"
)

func seedStore() *Store {
	return NewStore(
		File("file-1", "Document.pdf"),
		File("file-2", "Image.jpg"),
		Folder("folder-1", "Work"),
		Folder("folder-2", "Personal"),
	)
}

// seedIDs are the file ids the partition law is asserted over
var seedIDs = []string{"file-1", "file-2"}

// assertPartition verifies every seeded file id appears in exactly one of
// {top-level list, some folder's contents}
func assertPartition(t *testing.T, c Collection) {
	t.Helper()
	if err := Check(c); err != nil {
		t.Fatalf("invariant violation: %v", err)
	}
	for _, id := range seedIDs {
		places := 0
		for _, it := range c.Items {
			if it.ID == id {
				places++
			}
			for _, cid := range it.Contents {
				if cid == id {
					places++
				}
			}
		}
		if places != 1 {
			t.Errorf("file %q referenced from %d places, want exactly 1", id, places)
		}
	}
}

// TestRelocateMovesFileIntoFolder covers the basic successful move
func TestRelocateMovesFileIntoFolder(t *testing.T) {
	s := seedStore()

	c, err := s.Relocate("file-1", "folder-1")
	if err != nil {
		t.Fatalf("Relocate failed: %v", err)
	}

	if idx := c.TopLevel("file-1"); idx != -1 {
		t.Errorf("file-1 still at top level index %d", idx)
	}
	folder := c.Items[c.TopLevel("folder-1")]
	if !reflect.DeepEqual(folder.Contents, []string{"file-1"}) {
		t.Errorf("folder-1 contents = %v, want [file-1]", folder.Contents)
	}
	assertPartition(t, c)
}

// TestRelocatePreservesAppendOrder verifies contents keep relocation order
func TestRelocatePreservesAppendOrder(t *testing.T) {
	s := seedStore()

	if _, err := s.Relocate("file-2", "folder-1"); err != nil {
		t.Fatalf("first relocate: %v", err)
	}
	c, err := s.Relocate("file-1", "folder-1")
	if err != nil {
		t.Fatalf("second relocate: %v", err)
	}

	folder := c.Items[c.TopLevel("folder-1")]
	if !reflect.DeepEqual(folder.Contents, []string{"file-2", "file-1"}) {
		t.Errorf("contents = %v, want [file-2 file-1]", folder.Contents)
	}
	assertPartition(t, c)
}

// TestRelocateNotFound covers every failure arm and asserts no mutation
func TestRelocateNotFound(t *testing.T) {
	tests := []struct {
		name     string
		fileID   string
		folderID string
	}{
		{"unknown file", "file-9", "folder-1"},
		{"unknown folder", "file-1", "folder-9"},
		{"folder as source", "folder-1", "folder-2"},
		{"file as target", "file-1", "file-2"},
		{"already relocated file", "file-1", "folder-1"},
		{"empty ids", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seedStore()
			if tt.name == "already relocated file" {
				if _, err := s.Relocate("file-1", "folder-2"); err != nil {
					t.Fatalf("setup relocate: %v", err)
				}
			}
			before := s.Snapshot()

			_, err := s.Relocate(tt.fileID, tt.folderID)
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("err = %v, want ErrNotFound", err)
			}

			after := s.Snapshot()
			if !reflect.DeepEqual(before, after) {
				t.Errorf("store mutated on failed relocate:\nbefore %+v\nafter  %+v", before, after)
			}
			assertPartition(t, after)
		})
	}
}

// TestLookupSurvivesRelocation verifies the side lookup keeps full records
// for files whose top-level entry is gone
func TestLookupSurvivesRelocation(t *testing.T) {
	s := seedStore()
	if _, err := s.Relocate("file-1", "folder-1"); err != nil {
		t.Fatalf("Relocate: %v", err)
	}

	it, ok := s.Lookup("file-1")
	if !ok {
		t.Fatal("Lookup(file-1) failed after relocation")
	}
	if it.Name != "Document.pdf" || it.Kind != KindFile {
		t.Errorf("Lookup returned %+v, want Document.pdf file", it)
	}
}

// TestSnapshotIsolation verifies mutating a snapshot never touches the store
func TestSnapshotIsolation(t *testing.T) {
	s := seedStore()

	c := s.Snapshot()
	c.Items[0].Name = "mutated"
	c.Items = c.Items[:1]

	fresh := s.Snapshot()
	if len(fresh.Items) != 4 || fresh.Items[0].Name != "Document.pdf" {
		t.Errorf("snapshot mutation leaked into store: %+v", fresh.Items)
	}
}

// TestCheckDetectsCorruption exercises the invariant checker on bad states
func TestCheckDetectsCorruption(t *testing.T) {
	tests := []struct {
		name string
		c    Collection
	}{
		{"duplicate top-level id", Collection{Items: []Item{
			File("a", "A"), File("a", "B"),
		}}},
		{"id at top level and in folder", Collection{Items: []Item{
			File("a", "A"),
			{ID: "f", Name: "F", Kind: KindFolder, Contents: []string{"a"}},
		}}},
		{"id in two folders", Collection{Items: []Item{
			{ID: "f1", Name: "F1", Kind: KindFolder, Contents: []string{"a"}},
			{ID: "f2", Name: "F2", Kind: KindFolder, Contents: []string{"a"}},
		}}},
		{"nested folder", Collection{Items: []Item{
			{ID: "f1", Name: "F1", Kind: KindFolder, Contents: []string{"f2"}},
			Folder("f2", "F2"),
		}}},
		{"file with contents", Collection{Items: []Item{
			{ID: "a", Name: "A", Kind: KindFile, Contents: []string{"b"}},
		}}},
		{"empty id", Collection{Items: []Item{File("", "A")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Check(tt.c); err == nil {
				t.Error("Check accepted corrupted collection")
			}
		})
	}

	if err := Check(seedStore().Snapshot()); err != nil {
		t.Errorf("Check rejected valid seed: %v", err)
	}
}
