package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raulniraj/CampusGig/internal/models"
	"github.com/raulniraj/CampusGig/internal/services/notify"
)

type NotificationHandler struct {
	DB     *gorm.DB
	Notify *notify.Dispatcher
}

func NewNotificationHandler(db *gorm.DB, dispatcher *notify.Dispatcher) *NotificationHandler {
	return &NotificationHandler{DB: db, Notify: dispatcher}
}

// List returns the caller's notifications, newest-first. This is the initial
// load; updates flow through the notifications ws topic.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userUUID, err := getUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var notifs []models.Notification
	if err := h.DB.
		Where("user_id = ?", userUUID).
		Order("created_at DESC").
		Find(&notifs).Error; err != nil {
		log.Println("Error fetching notifications:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch notifications"})
	}

	return c.JSON(fiber.Map{"success": true, "data": notifs})
}

// UnreadCount returns how many of the caller's notifications are unread.
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	userUUID, err := getUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var count int64
	if err := h.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = false", userUUID).
		Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to count notifications"})
	}

	return c.JSON(fiber.Map{"success": true, "data": count})
}

// MarkRead flips one notification to read. The only mutation notifications
// ever get.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userUUID, err := getUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid notification ID",
		})
	}

	if err := h.Notify.MarkRead(userUUID, notifID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Notification not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to mark as read"})
	}

	return c.JSON(fiber.Map{"success": true})
}
