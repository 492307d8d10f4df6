package notify

import (
	"sync"
	"time"

	"github.com/lixenwraith/dropdeck/clock"
	"github.com/lixenwraith/dropdeck/constants"
)

// Severity defines message type for styling
type Severity uint8

const (
	SeverityInfo    Severity = iota // Default, neutral
	SeveritySuccess                 // Positive, committed relocation
	SeverityWarning                 // Caution
)

// Toast is a transient message with its expiry deadline
type Toast struct {
	Message  string
	Severity Severity
	Deadline time.Time
}

// Toasts holds the currently visible toast, replacing it on each push
// Expiry is clock-driven: Active re-checks the deadline on every call, so
// the holder needs no timer goroutine
type Toasts struct {
	mu      sync.Mutex
	clk     clock.Clock
	timeout time.Duration
	current Toast
	present bool
}

// NewToasts creates a toast holder with the default visibility window
func NewToasts(clk clock.Clock) *Toasts {
	return &Toasts{
		clk:     clk,
		timeout: constants.ToastTimeout,
	}
}

// SetTimeout overrides the visibility window
func (t *Toasts) SetTimeout(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timeout = d
}

// Notify implements Sink with SeveritySuccess
// Relocation messages are the engine's only sink traffic
func (t *Toasts) Notify(message string) {
	t.Push(message, SeveritySuccess)
}

// Push replaces the visible toast
func (t *Toasts) Push(message string, severity Severity) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = Toast{
		Message:  message,
		Severity: severity,
		Deadline: t.clk.Now().Add(t.timeout),
	}
	t.present = true
}

// Active returns the visible toast, expiring it lazily
func (t *Toasts) Active() (Toast, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.present {
		return Toast{}, false
	}
	if !t.clk.Now().Before(t.current.Deadline) {
		t.present = false
		return Toast{}, false
	}
	return t.current, true
}

// Clear removes the visible toast immediately
func (t *Toasts) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.present = false
}
