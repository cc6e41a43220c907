package spotrate

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "admin1",
	}

	hub.register <- client

	update := RateUpdate{Event: "price-fix", ProductID: "p1", Price: 250.5, Timestamp: time.Now().Unix()}
	data, _ := json.Marshal(update)
	hub.broadcast <- broadcastMsg{Room: "admin1", Data: data}

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestHubRoomIsolation(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	inRoom := &Client{Send: make(chan []byte, 10), Room: "admin1"}
	otherRoom := &Client{Send: make(chan []byte, 10), Room: "admin2"}
	hub.register <- inRoom
	hub.register <- otherRoom

	hub.Broadcast("admin1", RateUpdate{Event: "spread-update", AdminID: "admin1", Spread: 1.5})

	select {
	case <-inRoom.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("subscriber in target room received nothing")
	}

	select {
	case msg := <-otherRoom.Send:
		t.Fatalf("subscriber in another room received %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHubBroadcastToAllRooms(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	a := &Client{Send: make(chan []byte, 10), Room: "admin1"}
	b := &Client{Send: make(chan []byte, 10), Room: "admin2"}
	hub.register <- a
	hub.register <- b

	// empty room targets every subscriber, as a price fix does
	hub.Broadcast("", RateUpdate{Event: "price-fix", ProductID: "p1", Price: 300})

	for _, c := range []*Client{a, b} {
		select {
		case <-c.Send:
		case <-time.After(1 * time.Second):
			t.Fatal("subscriber missed the all-rooms broadcast")
		}
	}
}

func TestBroadcastPriceFixWithoutHub(t *testing.T) {
	// must not panic when no hub is running
	prev := Live
	Live = nil
	defer func() { Live = prev }()

	BroadcastPriceFix("p1", 100)
}
