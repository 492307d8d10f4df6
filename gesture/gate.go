package gesture

import (
	"time"

	"github.com/lixenwraith/dropdeck/clock"
	"github.com/lixenwraith/dropdeck/constants"
)

// Config holds the activation thresholds, fixed at construction
type Config struct {
	// Delay is the hold time before a stationary press becomes a drag
	Delay time.Duration

	// Tolerance is the movement (cells) allowed during Delay; exceeding it
	// activates the drag immediately instead of cancelling it
	Tolerance int
}

// DefaultConfig returns the stock thresholds
func DefaultConfig() Config {
	return Config{
		Delay:     constants.ActivationDelay,
		Tolerance: constants.ActivationTolerance,
	}
}

// Gate disambiguates a click from a drag on a single contact session
//
// A session runs from Press to Release. The gate activates at most once per
// session, at the first of:
//   - elapsed time reaching Delay while movement stayed within Tolerance
//   - movement exceeding Tolerance before Delay (a deliberate drag)
//   - ForceActivate (keyboard path, no timing constraints)
//
// Release before activation classifies the session as a plain click.
// The gate never blocks: Move and Poll sample the injected clock, so the
// "timer" is just the next event or scheduled wake observing elapsed time
type Gate struct {
	clk clock.Clock
	cfg Config

	pressed   bool
	activated bool
	originX   int
	originY   int
	pressedAt time.Time
}

// NewGate creates a gate with the given thresholds
func NewGate(clk clock.Clock, cfg Config) *Gate {
	return &Gate{clk: clk, cfg: cfg}
}

// Press opens a contact session at the initial contact cell
// A press during an open session is ignored
func (g *Gate) Press(x, y int) {
	if g.pressed {
		return
	}
	g.pressed = true
	g.activated = false
	g.originX = x
	g.originY = y
	g.pressedAt = g.clk.Now()
}

// Move feeds a pointer position; returns true if activation fires now
func (g *Gate) Move(x, y int) bool {
	if !g.pressed || g.activated {
		return false
	}
	if g.exceeded(x, y) {
		g.activated = true
		return true
	}
	return g.Poll()
}

// Poll checks the time threshold; returns true if activation fires now
// Call on timer wakes so a stationary hold activates without a move event
func (g *Gate) Poll() bool {
	if !g.pressed || g.activated {
		return false
	}
	if g.clk.Now().Sub(g.pressedAt) >= g.cfg.Delay {
		g.activated = true
		return true
	}
	return false
}

// ForceActivate opens and activates a session immediately (keyboard path)
// Returns false if a session is already active
func (g *Gate) ForceActivate() bool {
	if g.pressed && g.activated {
		return false
	}
	g.pressed = true
	g.activated = true
	return true
}

// Release closes the session; returns true if it was a plain click,
// meaning contact ended before any activation fired
func (g *Gate) Release() (click bool) {
	click = g.pressed && !g.activated
	g.pressed = false
	g.activated = false
	return click
}

// Remaining returns the time left until the delay threshold, for
// scheduling a wake; zero when no session is pending activation
func (g *Gate) Remaining() time.Duration {
	if !g.pressed || g.activated {
		return 0
	}
	left := g.cfg.Delay - g.clk.Now().Sub(g.pressedAt)
	if left < 0 {
		return 0
	}
	return left
}

// exceeded reports whether (x, y) moved out of tolerance from the origin
func (g *Gate) exceeded(x, y int) bool {
	dx := x - g.originX
	dy := y - g.originY
	return dx*dx+dy*dy > g.cfg.Tolerance*g.cfg.Tolerance
}
