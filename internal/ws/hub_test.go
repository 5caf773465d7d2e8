package ws

import (
	"encoding/json"
	"testing"

	"github.com/89089599151/designer-clicker-bot/internal/domain"
)

func TestHubPublishUnlock(t *testing.T) {
	hub := NewHub()
	c := &Client{TgID: 7, hub: hub, send: make(chan []byte, 1)}
	hub.register(c)

	hub.PublishUnlock(7, domain.AchievementDef{Code: "clicks_100", Title: "Разминка"})

	select {
	case data := <-c.send:
		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if ev.Type != EventUnlock {
			t.Fatalf("expected %s, got %s", EventUnlock, ev.Type)
		}
	default:
		t.Fatal("expected event in send channel")
	}
}

func TestHubPublishWrongPlayer(t *testing.T) {
	hub := NewHub()
	c := &Client{TgID: 7, hub: hub, send: make(chan []byte, 1)}
	hub.register(c)

	hub.PublishProgress(8, map[string]int{"progress": 10})

	if len(c.send) != 0 {
		t.Fatal("event delivered to wrong player")
	}
}

func TestHubSlowConsumerDoesNotBlock(t *testing.T) {
	hub := NewHub()
	c := &Client{TgID: 7, hub: hub, send: make(chan []byte)} // unbuffered, never read
	hub.register(c)

	done := make(chan struct{})
	go func() {
		hub.PublishProgress(7, map[string]int{"progress": 10})
		close(done)
	}()

	select {
	case <-done:
	default:
		// publish runs synchronously, give the goroutine a tick
		<-done
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	c := &Client{TgID: 7, hub: hub, send: make(chan []byte, 1)}
	hub.register(c)
	hub.unregister(c)

	hub.PublishProgress(7, map[string]int{"progress": 10})
	if len(c.send) != 0 {
		t.Fatal("event delivered after unregister")
	}
}
