package realtime

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestClient() *Client {
	return &Client{
		ID:     uuid.New().String(),
		UserID: uuid.New(),
		Send:   make(chan []byte, 16),
	}
}

func recvEnvelope(t *testing.T, cl *Client) Envelope {
	t.Helper()
	select {
	case raw := <-cl.Send:
		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("bad frame: %v", err)
		}
		return env
	case <-time.After(time.Second):
		t.Fatal("no frame delivered")
		return Envelope{}
	}
}

func TestSubscribeDeliversInitialSnapshot(t *testing.T) {
	hub := NewHub(func(topic string) (interface{}, error) {
		return map[string]string{"topic": topic}, nil
	})
	cl := newTestClient()

	hub.Subscribe(cl, "gigs")

	env := recvEnvelope(t, cl)
	if env.Type != "snapshot" || env.Topic != "gigs" {
		t.Errorf("got %+v, want snapshot for gigs", env)
	}
}

func TestPublishReachesAllSubscribers(t *testing.T) {
	version := 0
	hub := NewHub(func(topic string) (interface{}, error) {
		return version, nil
	})
	a := newTestClient()
	b := newTestClient()

	hub.Subscribe(a, "gigs")
	hub.Subscribe(b, "gigs")
	recvEnvelope(t, a)
	recvEnvelope(t, b)

	version = 1
	hub.Publish("gigs")

	for _, cl := range []*Client{a, b} {
		env := recvEnvelope(t, cl)
		if env.Data != float64(1) {
			t.Errorf("got data %v, want 1", env.Data)
		}
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub(func(topic string) (interface{}, error) {
		return "x", nil
	})
	cl := newTestClient()

	hub.Subscribe(cl, "gigs")
	recvEnvelope(t, cl)

	hub.Unsubscribe(cl, "gigs")
	hub.Publish("gigs")

	select {
	case raw := <-cl.Send:
		t.Errorf("received frame after unsubscribe: %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestTopicsAreIndependent(t *testing.T) {
	hub := NewHub(func(topic string) (interface{}, error) {
		return topic, nil
	})
	cl := newTestClient()

	hub.Subscribe(cl, "gigs")
	recvEnvelope(t, cl)

	hub.Publish("notifications:someone-else")

	select {
	case raw := <-cl.Send:
		t.Errorf("received frame for a topic never subscribed to: %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSnapshotErrorDeliversNothing(t *testing.T) {
	hub := NewHub(func(topic string) (interface{}, error) {
		return nil, fmt.Errorf("boom")
	})
	cl := newTestClient()

	hub.Subscribe(cl, "gigs")

	select {
	case raw := <-cl.Send:
		t.Errorf("received frame despite snapshot error: %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnregisterDropsSubscriptions(t *testing.T) {
	hub := NewHub(func(topic string) (interface{}, error) {
		return "x", nil
	})
	go hub.Run()

	cl := newTestClient()
	hub.RegisterClient(cl)
	hub.Subscribe(cl, "gigs")
	recvEnvelope(t, cl)

	hub.UnregisterClient(cl)

	// wait for the run loop to process the unregister and close Send
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-cl.Send:
			if !ok {
				hub.Publish("gigs") // must not panic on a gone client
				return
			}
		case <-deadline:
			t.Fatal("Send channel never closed")
		}
	}
}
