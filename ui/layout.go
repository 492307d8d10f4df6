package ui

import (
	"github.com/lixenwraith/dropdeck/constants"
	"github.com/lixenwraith/dropdeck/item"
	"github.com/lixenwraith/dropdeck/region"
)

// Placement is one item box positioned on the shelf
type Placement struct {
	Item item.Item
	Rect region.Rect
}

// Layout flows the top-level items into a grid of fixed-size boxes,
// wrapping at the given screen width. Pure function of (collection, width),
// recomputed per frame so relocations reflow immediately
func Layout(c item.Collection, width int) []Placement {
	cell := constants.ItemBoxWidth + constants.ItemGapX
	perRow := (width - 2*constants.ShelfMarginX + constants.ItemGapX) / cell
	if perRow < 1 {
		perRow = 1
	}

	out := make([]Placement, 0, len(c.Items))
	for i, it := range c.Items {
		col := i % perRow
		row := i / perRow
		out = append(out, Placement{
			Item: it,
			Rect: region.Rect{
				X: constants.ShelfMarginX + col*cell,
				Y: constants.ShelfMarginY + row*(constants.ItemBoxHeight+constants.ItemGapY),
				W: constants.ItemBoxWidth,
				H: constants.ItemBoxHeight,
			},
		})
	}
	return out
}

// FindPlacement returns the placement of the item with the given id
func FindPlacement(ps []Placement, id string) (Placement, bool) {
	for _, p := range ps {
		if p.Item.ID == id {
			return p, true
		}
	}
	return Placement{}, false
}

// Center returns the middle cell of a rect, the anchor for keyboard drags
func Center(r region.Rect) (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}
