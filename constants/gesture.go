package constants

import "time"

// Drag Activation Thresholds
const (
	// ActivationDelay is how long the pointer must stay pressed before a
	// stationary press is promoted to a drag
	ActivationDelay = 250 * time.Millisecond

	// ActivationTolerance is the movement (in cells) a pressed pointer may
	// travel and still count as a click; exceeding it promotes to a drag
	// immediately, before ActivationDelay elapses
	ActivationTolerance = 5
)
