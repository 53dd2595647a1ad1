package arena

import "github.com/milk9111/arenaduel/component"

// EventQueue is a simple FIFO of combat events.
type EventQueue struct {
	items []component.CombatEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt component.CombatEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns the queued events without clearing them.
func (q *EventQueue) Items() []component.CombatEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := make([]component.CombatEvent, len(q.items))
	copy(out, q.items)
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
