package constants

import "time"

// UI Layout Constants
const (
	// ItemBoxWidth is the width of an item box on the shelf, borders included
	ItemBoxWidth = 18

	// ItemBoxHeight is the height of an item box, borders included
	ItemBoxHeight = 3

	// ItemGapX is the horizontal spacing between item boxes
	ItemGapX = 2

	// ItemGapY is the vertical spacing between item boxes
	ItemGapY = 1

	// ShelfMarginX is the left/right margin of the shelf area
	ShelfMarginX = 2

	// ShelfMarginY is the top margin of the shelf area
	ShelfMarginY = 2
)

// UI Timing Constants
const (
	// ToastTimeout is how long a notification stays visible
	ToastTimeout = 3 * time.Second
)

// Waveform Strip Constants
const (
	// WaveformHeight is the height of the audio strip above the status bar
	WaveformHeight = 3

	// WaveformBuckets is the number of amplitude buckets rendered per strip
	// Wider terminals reuse buckets; narrower ones truncate
	WaveformBuckets = 240
)
