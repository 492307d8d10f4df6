// Package notify delivers human-readable descriptions of completed
// relocations to a transient display.
package notify

// Sink receives notification messages
// The drag engine only depends on this interface; how long a message stays
// visible is the display's policy, not the engine's
type Sink interface {
	Notify(message string)
}

// SinkFunc adapts a plain function to the Sink interface
type SinkFunc func(message string)

// Notify implements Sink
func (f SinkFunc) Notify(message string) {
	f(message)
}

// Discard is a Sink that drops every message
var Discard Sink = SinkFunc(func(string) {})
