package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/raulniraj/CampusGig/internal/middleware"
	"github.com/raulniraj/CampusGig/internal/realtime"
	"github.com/raulniraj/CampusGig/internal/utils"
)

type WSHandler struct {
	Hub       *realtime.Hub
	JWTSecret string
}

func NewWSHandler(hub *realtime.Hub, secret string) *WSHandler {
	return &WSHandler{Hub: hub, JWTSecret: secret}
}

type wsRequest struct {
	Action string `json:"action"` // subscribe | unsubscribe | pong
	Topic  string `json:"topic"`
}

// canSubscribe keeps private feeds private: the notification topic belongs to
// exactly one user, and a chat topic requires the caller to be one of the two
// participants its id was derived from. Gig topics are public.
func canSubscribe(userID uuid.UUID, topic string) bool {
	switch {
	case strings.HasPrefix(topic, "notifications:"):
		return strings.TrimPrefix(topic, "notifications:") == userID.String()
	case strings.HasPrefix(topic, "chat:"):
		return utils.ThreadHasParticipant(strings.TrimPrefix(topic, "chat:"), userID)
	default:
		return true
	}
}

// Serve handles one WebSocket connection. Auth rides in the token query
// param since the cookie middleware does not run on upgraded connections.
func (h *WSHandler) Serve(c *websocket.Conn) {
	token := c.Query("token")
	if token == "" {
		token = c.Cookies(middleware.CookieName)
	}
	claims, err := utils.ParseJWT(h.JWTSecret, token)
	if err != nil {
		log.Println("WebSocket: invalid token:", err)
		c.Close()
		return
	}
	userUUID, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.Println("WebSocket: invalid uid in token:", err)
		c.Close()
		return
	}

	client := &realtime.Client{
		ID:     uuid.New().String(),
		UserID: userUUID,
		Conn:   realtime.NewWebSocketConn(c),
		Send:   make(chan []byte, 256),
	}

	h.Hub.RegisterClient(client)
	defer func() {
		h.Hub.UnregisterClient(client)
		log.Printf("WebSocket: user %s disconnected\n", userUUID)
	}()

	// pump snapshots from the hub to the socket
	go func() {
		for msg := range client.Send {
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Println("WebSocket write error:", err)
				return
			}
		}
	}()

	for {
		var req wsRequest
		if err := c.ReadJSON(&req); err != nil {
			log.Printf("WebSocket read error for user %s: %v\n", userUUID, err)
			break
		}

		switch req.Action {
		case "subscribe":
			if req.Topic == "" || !canSubscribe(userUUID, req.Topic) {
				continue
			}
			h.Hub.Subscribe(client, req.Topic)
		case "unsubscribe":
			h.Hub.Unsubscribe(client, req.Topic)
		case "pong":
			// keep-alive, nothing to do
		}
	}
}
