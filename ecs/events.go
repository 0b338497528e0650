package ecs

import "github.com/milk9111/gridworld/common"

// Event is a generic world event payload.
type Event struct {
	Type string
	Data any
}

const EventTypeTile = "tile"

// TileEventKind identifies tile map edits.
type TileEventKind string

const (
	TilePlaced  TileEventKind = "placed"
	TileRemoved TileEventKind = "removed"
)

// TileEvent is emitted whenever the tile map changes after startup.
type TileEvent struct {
	Cell common.GridPos
	Kind TileEventKind
}

// EventQueue is a simple FIFO queue. Anything not drained by the end of a
// frame is dropped.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
