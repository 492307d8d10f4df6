package events

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/dropdeck/constants"
)

// TestQueueBasic tests basic push and consume operations
func TestQueueBasic(t *testing.T) {
	q := NewQueue()

	q.Push(Event{Type: EventDragStarted, Payload: "a", Timestamp: time.Now()})
	q.Push(Event{Type: EventDragHover, Payload: "b", Timestamp: time.Now()})
	q.Push(Event{Type: EventDragEnded, Payload: "c", Timestamp: time.Now()})

	evs := q.Consume()
	if len(evs) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(evs))
	}

	// Verify events are in FIFO order
	if evs[0].Type != EventDragStarted || evs[0].Payload != "a" {
		t.Errorf("Event 1 mismatch: got type=%v, payload=%v", evs[0].Type, evs[0].Payload)
	}
	if evs[1].Type != EventDragHover || evs[1].Payload != "b" {
		t.Errorf("Event 2 mismatch: got type=%v, payload=%v", evs[1].Type, evs[1].Payload)
	}
	if evs[2].Type != EventDragEnded || evs[2].Payload != "c" {
		t.Errorf("Event 3 mismatch: got type=%v, payload=%v", evs[2].Type, evs[2].Payload)
	}

	if evs2 := q.Consume(); len(evs2) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(evs2))
	}
}

// TestQueueConcurrent tests concurrent push operations from multiple goroutines
func TestQueueConcurrent(t *testing.T) {
	q := NewQueue()
	numGoroutines := 10
	eventsPerGoroutine := 10
	totalEvents := numGoroutines * eventsPerGoroutine

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				q.Push(Event{
					Type:      EventDragHover,
					Payload:   goroutineID*100 + j,
					Timestamp: time.Now(),
				})
			}
		}(i)
	}

	wg.Wait()

	evs := q.Consume()
	if len(evs) != totalEvents {
		t.Errorf("Expected %d events, got %d", totalEvents, len(evs))
	}

	seen := make(map[int]bool)
	for _, ev := range evs {
		payload := ev.Payload.(int)
		if seen[payload] {
			t.Errorf("Duplicate payload found: %d", payload)
		}
		seen[payload] = true
	}

	if q.Len() != 0 {
		t.Errorf("Expected queue to be empty, got length %d", q.Len())
	}
}

// TestQueueOverflow tests behavior when pushing more events than buffer size
func TestQueueOverflow(t *testing.T) {
	q := NewQueue()
	total := constants.EventQueueSize + 50

	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventDragHover, Payload: i})
	}

	evs := q.Consume()
	if len(evs) > constants.EventQueueSize {
		t.Fatalf("Consumed %d events, more than capacity %d", len(evs), constants.EventQueueSize)
	}

	// Oldest events are dropped; the newest must survive
	last := evs[len(evs)-1].Payload.(int)
	if last != total-1 {
		t.Errorf("Last event payload = %d, want %d", last, total-1)
	}
}
