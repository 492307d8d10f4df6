package ui

import (
	"testing"

	"github.com/lixenwraith/dropdeck/constants"
	"github.com/lixenwraith/dropdeck/item"
)

func testCollection() item.Collection {
	return item.Collection{Items: []item.Item{
		item.File("file-1", "Document.pdf"),
		item.File("file-2", "Image.jpg"),
		item.Folder("folder-1", "Work"),
		item.Folder("folder-2", "Personal"),
	}}
}

// TestLayoutWraps verifies grid flow wraps at the screen width
func TestLayoutWraps(t *testing.T) {
	c := testCollection()

	// Width fits exactly two boxes per row
	width := 2*constants.ShelfMarginX + 2*constants.ItemBoxWidth + constants.ItemGapX
	ps := Layout(c, width)
	if len(ps) != 4 {
		t.Fatalf("len(placements) = %d, want 4", len(ps))
	}

	if ps[0].Rect.Y != ps[1].Rect.Y {
		t.Error("first two items not on the same row")
	}
	if ps[2].Rect.Y <= ps[1].Rect.Y {
		t.Error("third item did not wrap to a new row")
	}
	if ps[0].Rect.X != ps[2].Rect.X {
		t.Error("rows do not start at the same column")
	}
}

// TestLayoutNoOverlap verifies no two boxes share a cell
func TestLayoutNoOverlap(t *testing.T) {
	ps := Layout(testCollection(), 80)
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			a, b := ps[i].Rect, ps[j].Rect
			if a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H {
				t.Errorf("placements %d and %d overlap: %+v %+v", i, j, a, b)
			}
		}
	}
}

// TestLayoutNarrowScreen verifies a degenerate width still yields one column
func TestLayoutNarrowScreen(t *testing.T) {
	ps := Layout(testCollection(), 5)
	if len(ps) != 4 {
		t.Fatalf("len(placements) = %d, want 4", len(ps))
	}
	for i := 1; i < len(ps); i++ {
		if ps[i].Rect.X != ps[0].Rect.X {
			t.Error("narrow layout is not a single column")
		}
		if ps[i].Rect.Y <= ps[i-1].Rect.Y {
			t.Error("single column rows not strictly descending")
		}
	}
}

// TestFindPlacement covers the id lookup
func TestFindPlacement(t *testing.T) {
	ps := Layout(testCollection(), 80)

	p, ok := FindPlacement(ps, "folder-2")
	if !ok || p.Item.Name != "Personal" {
		t.Errorf("FindPlacement(folder-2) = %+v, %v", p, ok)
	}
	if _, ok := FindPlacement(ps, "ghost"); ok {
		t.Error("FindPlacement found a nonexistent id")
	}
}

// TestCenterInsideRect verifies the keyboard anchor lands inside the box
func TestCenterInsideRect(t *testing.T) {
	ps := Layout(testCollection(), 80)
	for _, p := range ps {
		x, y := Center(p.Rect)
		if !p.Rect.Contains(x, y) {
			t.Errorf("center (%d, %d) outside rect %+v", x, y, p.Rect)
		}
	}
}
