package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDispatcher_PublishSubscribe(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var seen []Event
	d.Subscribe(EventBookingCreated, func(_ context.Context, event Event) error {
		seen = append(seen, event)
		return nil
	})

	event := Event{ID: "e1", Type: EventBookingCreated, Timestamp: time.Now()}
	if err := d.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if len(seen) != 1 || seen[0].ID != "e1" {
		t.Fatalf("handler not invoked: %+v", seen)
	}

	// other event types do not reach this handler
	if err := d.Publish(context.Background(), Event{ID: "e2", Type: EventContactSubmitted}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("handler received foreign event type")
	}
}

func TestDispatcher_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var delivered int
	d.Subscribe(EventContactReplied, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventContactReplied, func(context.Context, Event) error {
		delivered++
		return nil
	})

	if err := d.Publish(context.Background(), Event{ID: "e1", Type: EventContactReplied}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if delivered != 1 {
		t.Fatalf("second handler not invoked after first errored")
	}
}
