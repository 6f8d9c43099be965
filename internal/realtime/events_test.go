package realtime

import (
	"testing"
	"time"
)

func TestEventsPublishWithoutRedis(t *testing.T) {
	hub := NewHub(func(topic string) (interface{}, error) {
		return topic, nil
	})
	events := NewEvents(hub, nil)

	cl := newTestClient()
	hub.Subscribe(cl, "gigs")
	recvEnvelope(t, cl)

	events.Publish("gigs", "gig:whatever")

	env := recvEnvelope(t, cl)
	if env.Topic != "gigs" {
		t.Errorf("got topic %s, want gigs", env.Topic)
	}

	// no subscription on gig:whatever, so nothing else arrives
	select {
	case raw := <-cl.Send:
		t.Errorf("unexpected extra frame: %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}
