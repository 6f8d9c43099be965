package realtime

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const eventChannel = "campusgig:events"

// Events is the write-side entry point for change propagation: a write path
// publishes the topics it touched, the local hub re-snapshots them for its
// subscribers, and Redis relays the topic names to peer instances so their
// hubs do the same.
type Events struct {
	Hub        *Hub
	RDB        *redis.Client
	instanceID string
}

func NewEvents(hub *Hub, rdb *redis.Client) *Events {
	return &Events{Hub: hub, RDB: rdb, instanceID: uuid.New().String()}
}

// Publish fans the changed topics out locally and to peer instances.
// Fire and forget: a Redis failure is logged, local delivery already happened.
func (e *Events) Publish(topics ...string) {
	for _, topic := range topics {
		e.Hub.Publish(topic)
		if e.RDB == nil {
			continue
		}
		if err := e.RDB.Publish(context.Background(), eventChannel, e.instanceID+"|"+topic).Err(); err != nil {
			log.Printf("Error publishing event %s to redis: %v", topic, err)
		}
	}
}

// RunBridge relays topic events published by other instances into the local
// hub. Messages carrying our own instance id are skipped; those were already
// delivered locally by Publish.
func (e *Events) RunBridge(ctx context.Context) {
	if e.RDB == nil {
		return
	}
	sub := e.RDB.Subscribe(ctx, eventChannel)
	defer sub.Close()

	for msg := range sub.Channel() {
		id, topic, ok := strings.Cut(msg.Payload, "|")
		if !ok || id == e.instanceID {
			continue
		}
		e.Hub.Publish(topic)
	}
}
