package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/raulniraj/CampusGig/internal/models"
	"github.com/raulniraj/CampusGig/internal/services/assist"
)

type AssistantHandler struct {
	DB           *gorm.DB
	Assist       *assist.AssistService
	SupportEmail string
}

func NewAssistantHandler(db *gorm.DB, svc *assist.AssistService, supportEmail string) *AssistantHandler {
	return &AssistantHandler{DB: db, Assist: svc, SupportEmail: supportEmail}
}

type ImproveReq struct {
	Text string `json:"text"`
}

// ImproveProfile runs the career-coach phrasing helper. A failed call is a
// transient message; nothing is stored either way.
func (h *AssistantHandler) ImproveProfile(c *fiber.Ctx) error {
	if _, err := getUserUUID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var req ImproveReq
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Text is required",
		})
	}

	out, err := h.Assist.Generate(assist.CoachPrompt(req.Text))
	if err != nil {
		log.Println("Assistant error:", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"message": "The assistant is unavailable right now, try again later",
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"text": out}})
}

type AskReq struct {
	Question string `json:"question"`
}

// AskSupport answers a question against the chatbot knowledge base: every
// entry is concatenated into the prompt, and the model is told to defer to
// the support address when the base has no answer.
func (h *AssistantHandler) AskSupport(c *fiber.Ctx) error {
	var req AskReq
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Question is required",
		})
	}

	var entries []models.KnowledgeEntry
	if err := h.DB.Order("created_at ASC").Find(&entries).Error; err != nil {
		log.Println("Error fetching knowledge base:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load knowledge base"})
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.Topic)
		sb.WriteString(": ")
		sb.WriteString(e.Content)
		sb.WriteString("\n")
	}

	out, err := h.Assist.Generate(assist.SupportPrompt(req.Question, sb.String(), h.SupportEmail))
	if err != nil {
		log.Println("Chatbot error:", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"message": "The assistant is unavailable right now, try again later",
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"answer": out}})
}
