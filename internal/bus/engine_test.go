package bus

import (
	"context"
	"testing"
)

func TestEngineDispatchOrder(t *testing.T) {
	engine := NewEngine(8)

	var got []int
	engine.Register(EventRawSnapshot, func(e Event) {
		got = append(got, e.Data.(int))
	})

	for i := 0; i < 5; i++ {
		if err := engine.TryPublish(Event{Type: EventRawSnapshot, Data: i}); err != nil {
			t.Fatalf("publish %d: %v", i, err)
		}
	}
	engine.Close()
	engine.Run(context.Background())

	if len(got) != 5 {
		t.Fatalf("dispatched %d events, want 5", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("out of order at %d: got %d", i, v)
		}
	}
}

func TestEngineQueueFull(t *testing.T) {
	engine := NewEngine(1)

	if err := engine.TryPublish(Event{Type: EventLog, Data: "a"}); err != nil {
		t.Fatalf("first publish: %v", err)
	}
	if err := engine.TryPublish(Event{Type: EventLog, Data: "b"}); err != ErrQueueFull {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
}

func TestEngineClosedRejectsPublish(t *testing.T) {
	engine := NewEngine(1)
	engine.Close()

	if err := engine.TryPublish(Event{Type: EventLog, Data: "a"}); err != ErrQueueClosed {
		t.Fatalf("expected ErrQueueClosed, got %v", err)
	}
}

func TestEngineUnregisteredTypeIsIgnored(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.TryPublish(Event{Type: EventContract, Data: struct{}{}}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	engine.Close()
	engine.Run(context.Background())
}
