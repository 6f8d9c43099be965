package realtime

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
)

type Client struct {
	ID     string
	UserID uuid.UUID
	Conn   *WebSocketConn
	Send   chan []byte
}

// SnapshotFunc resolves a topic to its current state. The hub calls it once
// per delivery and fans the result out to every subscriber of that topic.
type SnapshotFunc func(topic string) (interface{}, error)

// Envelope is the frame pushed to subscribers: the topic plus a full
// point-in-time snapshot of its data.
type Envelope struct {
	Type  string      `json:"type"`
	Topic string      `json:"topic"`
	Data  interface{} `json:"data"`
}

// Hub tracks connected clients and their topic subscriptions. A subscriber
// gets a snapshot immediately on subscribe and a fresh one every time the
// topic is published; unsubscribing stops delivery at once. Subscriptions on
// different topics are independent: no ordering is guaranteed across topics.
type Hub struct {
	clients    map[string]*Client
	topics     map[string]map[string]*Client
	register   chan *Client
	unregister chan *Client
	snapshot   SnapshotFunc
	mu         sync.RWMutex
}

func NewHub(snapshot SnapshotFunc) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		topics:     make(map[string]map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		snapshot:   snapshot,
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// Subscribe attaches the client to a topic and delivers the initial snapshot.
func (h *Hub) Subscribe(client *Client, topic string) {
	h.mu.Lock()
	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[string]*Client)
		h.topics[topic] = subs
	}
	subs[client.ID] = client
	h.mu.Unlock()

	h.deliverTo(client, topic)
}

// Unsubscribe detaches the client from a topic. No further snapshots for
// that topic reach the client, even if the data changes afterward.
func (h *Hub) Unsubscribe(client *Client, topic string) {
	h.mu.Lock()
	if subs, ok := h.topics[topic]; ok {
		delete(subs, client.ID)
		if len(subs) == 0 {
			delete(h.topics, topic)
		}
	}
	h.mu.Unlock()
}

// Publish re-snapshots the topic and pushes it to every current subscriber.
func (h *Hub) Publish(topic string) {
	h.mu.RLock()
	subs := make([]*Client, 0, len(h.topics[topic]))
	for _, cl := range h.topics[topic] {
		subs = append(subs, cl)
	}
	h.mu.RUnlock()

	if len(subs) == 0 {
		return
	}

	payload, ok := h.frame(topic)
	if !ok {
		return
	}
	for _, cl := range subs {
		select {
		case cl.Send <- payload:
		default:
			// slow consumer, drop this frame rather than block the hub
		}
	}
}

func (h *Hub) deliverTo(client *Client, topic string) {
	payload, ok := h.frame(topic)
	if !ok {
		return
	}
	select {
	case client.Send <- payload:
	default:
	}
}

func (h *Hub) frame(topic string) ([]byte, bool) {
	data, err := h.snapshot(topic)
	if err != nil {
		log.Printf("snapshot failed for topic %s: %v", topic, err)
		return nil, false
	}
	payload, err := json.Marshal(Envelope{Type: "snapshot", Topic: topic, Data: data})
	if err != nil {
		log.Printf("Error marshaling snapshot for topic %s: %v", topic, err)
		return nil, false
	}
	return payload, true
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			log.Printf("Client registered: %s (UserID: %s)", client.ID, client.UserID)

		case client := <-h.unregister:
			h.mu.Lock()
			if old, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				for topic, subs := range h.topics {
					delete(subs, client.ID)
					if len(subs) == 0 {
						delete(h.topics, topic)
					}
				}
				close(old.Send)
				log.Printf("Client unregistered: %s", client.ID)
			}
			h.mu.Unlock()
		}
	}
}
