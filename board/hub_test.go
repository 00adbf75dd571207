package board

import (
	"encoding/json"
	"testing"
	"time"

	"zaoan/models"
)

func TestHubRegisterPublishUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// fake POS screen
	client := &Client{
		ID:   "test-screen",
		Send: make(chan []byte, 10),
	}
	hub.register <- client

	order := &models.Order{ID: 1, Status: models.StatusNew}
	hub.Publish(Event{Action: "order_created", Order: order, Timestamp: 42})

	select {
	case got := <-client.Send:
		var ev Event
		if err := json.Unmarshal(got, &ev); err != nil {
			t.Fatalf("broadcast is not JSON: %v", err)
		}
		if ev.Action != "order_created" || ev.Order == nil || ev.Order.ID != 1 {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for broadcast")
	}

	hub.unregister <- client
	if _, ok := <-client.Send; ok {
		t.Fatal("send channel should be closed after unregister")
	}
}

func TestHubPublishFillsTimestamp(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{ID: "ts-screen", Send: make(chan []byte, 10)}
	hub.register <- client

	hub.Publish(Event{Action: "status_changed", Counts: map[string]int{"new": 1}})

	select {
	case got := <-client.Send:
		var ev Event
		if err := json.Unmarshal(got, &ev); err != nil {
			t.Fatalf("broadcast is not JSON: %v", err)
		}
		if ev.Timestamp == 0 {
			t.Fatal("publish should stamp events without a timestamp")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for broadcast")
	}
}

func TestHubPublishAfterStopDoesNotBlock(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	done := make(chan struct{})
	go func() {
		hub.Publish(Event{Action: "order_created"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("publish blocked after hub stop")
	}
}
