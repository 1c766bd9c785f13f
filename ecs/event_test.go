package ecs

import "testing"

type pingEvent struct{}

func (pingEvent) Type() EventType { return "ping" }

func TestEventManager_SubscribeEmitUnsubscribe(t *testing.T) {
	em := NewEventManager()

	var a, b int
	idA := em.Subscribe("ping", func(Event) { a++ })
	em.Subscribe("ping", func(Event) { b++ })

	em.Emit(pingEvent{})
	if a != 1 || b != 1 {
		t.Fatalf("expected both handlers called once, got %d and %d", a, b)
	}

	em.Unsubscribe("ping", idA)
	em.Emit(pingEvent{})
	if a != 1 || b != 2 {
		t.Fatalf("expected only the remaining handler to run, got %d and %d", a, b)
	}
}

func TestEventManager_UnsubscribeLastAndUnknown(t *testing.T) {
	em := NewEventManager()
	calls := 0
	id := em.Subscribe("ping", func(Event) { calls++ })
	em.Unsubscribe("ping", id)
	em.Unsubscribe("missing", id)

	em.Emit(pingEvent{})
	if calls != 0 {
		t.Errorf("expected removed handler not to run, got %d calls", calls)
	}
	if _, ok := em.subscribers["ping"]; ok {
		t.Error("expected the event type to be dropped with its last handler")
	}
}
