package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raulniraj/CampusGig/internal/models"
	"github.com/raulniraj/CampusGig/internal/realtime"
	"github.com/raulniraj/CampusGig/internal/utils"
)

type ChatHandler struct {
	DB     *gorm.DB
	Events *realtime.Events
}

func NewChatHandler(db *gorm.DB, events *realtime.Events) *ChatHandler {
	return &ChatHandler{DB: db, Events: events}
}

// threadWith derives the thread id between the caller and a peer. Identity is
// pure: (A,B) and (B,A) land on the same thread.
func threadWith(c *fiber.Ctx) (uuid.UUID, string, error) {
	userUUID, err := getUserUUID(c)
	if err != nil {
		return uuid.Nil, "", fiber.ErrUnauthorized
	}
	peerID, err := uuid.Parse(c.Params("peerId"))
	if err != nil {
		return uuid.Nil, "", fiber.NewError(fiber.StatusBadRequest, "Invalid peer ID")
	}
	return userUUID, utils.ThreadID(userUUID, peerID), nil
}

// GetMessages returns the thread's messages oldest-first. Any caller who can
// name a peer can read the thread; like the rest of chat, gating stronger
// than participant identity is left to the frontend.
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	_, threadID, err := threadWith(c)
	if err != nil {
		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(fiber.Map{"success": false, "message": e.Message})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var messages []models.ChatMessage
	if err := h.DB.
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		log.Println("Error fetching messages:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch messages"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"thread_id": threadID,
			"messages":  messages,
		},
	})
}

type SendMessageReq struct {
	Text string `json:"text"`
}

// SendMessage appends one immutable message to the thread and pushes the
// thread topic to both live views.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	userUUID, threadID, err := threadWith(c)
	if err != nil {
		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(fiber.Map{"success": false, "message": e.Message})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var req SendMessageReq
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Text is required",
		})
	}

	var sender models.User
	if err := h.DB.First(&sender, "id = ?", userUUID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	msg := models.ChatMessage{
		ID:         uuid.New(),
		ThreadID:   threadID,
		SenderID:   userUUID,
		SenderName: sender.Name,
		Text:       req.Text,
	}

	if err := h.DB.Create(&msg).Error; err != nil {
		log.Println("Error creating message:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to send message"})
	}

	h.Events.Publish(realtime.TopicChat(threadID))

	return c.JSON(fiber.Map{"success": true, "data": msg})
}
