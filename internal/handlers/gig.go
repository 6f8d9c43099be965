package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raulniraj/CampusGig/internal/models"
	"github.com/raulniraj/CampusGig/internal/services/gigflow"
)

type GigHandler struct {
	DB   *gorm.DB
	Flow *gigflow.Service
}

func NewGigHandler(db *gorm.DB, flow *gigflow.Service) *GigHandler {
	return &GigHandler{DB: db, Flow: flow}
}

// flowError maps lifecycle errors onto HTTP responses. Precondition failures
// are expected (two callers racing) and come back as 4xx, not 500.
func flowError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gigflow.ErrNotGigOwner),
		errors.Is(err, gigflow.ErrNotProposalAuthor),
		errors.Is(err, gigflow.ErrNotStudent),
		errors.Is(err, gigflow.ErrNotClient):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": err.Error()})
	case errors.Is(err, gigflow.ErrGigNotOpen),
		errors.Is(err, gigflow.ErrProposalNotPending),
		errors.Is(err, gigflow.ErrDuplicateProposal),
		errors.Is(err, gigflow.ErrProfileIncomplete):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Not found"})
	default:
		log.Println("gig lifecycle error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Something went wrong"})
	}
}

// ListPublic returns open gigs newest-first. The q and skill params are
// plain substring filters, no ranking.
func (h *GigHandler) ListPublic(c *fiber.Ctx) error {
	q := h.DB.
		Where("status = ?", models.GigStatusOpen).
		Order("posted_at DESC")

	if term := strings.TrimSpace(c.Query("q")); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if skill := strings.TrimSpace(c.Query("skill")); skill != "" {
		q = q.Where("LOWER(skills::text) LIKE ?", "%"+strings.ToLower(skill)+"%")
	}

	var gigs []models.Gig
	if err := q.Find(&gigs).Error; err != nil {
		log.Println("Error fetching gigs:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch gigs"})
	}

	return c.JSON(fiber.Map{"success": true, "data": gigs})
}

// GetDetail returns one gig with its proposals, newest-first. The detail page
// watches both through independent subscriptions; this is the initial load.
func (h *GigHandler) GetDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid gig ID",
		})
	}

	var gig models.Gig
	if err := h.DB.
		Preload("Proposals", func(db *gorm.DB) *gorm.DB {
			return db.Order("submitted_at DESC")
		}).
		First(&gig, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Gig not found",
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": gig})
}

// Create posts a new open gig for the calling client.
func (h *GigHandler) Create(c *fiber.Ctx) error {
	userUUID, err := getUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var in gigflow.GigInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid body",
		})
	}

	var client models.User
	if err := h.DB.First(&client, "id = ?", userUUID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	gig, err := h.Flow.PostGig(&client, in)
	if err != nil {
		if isValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		return flowError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": gig})
}

// isValidationErr reports whether the flow rejected the input itself. Only
// those messages are safe to echo in a 400; precondition sentinels and store
// failures go through flowError instead.
func isValidationErr(err error) bool {
	var v gigflow.ValidationError
	return errors.As(err, &v)
}

// Update edits an open gig owned by the caller.
func (h *GigHandler) Update(c *fiber.Ctx) error {
	userUUID, err := getUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	gigID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid gig ID",
		})
	}

	var in gigflow.GigInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid body",
		})
	}

	gig, err := h.Flow.EditGig(userUUID, gigID, in)
	if err != nil {
		if isValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		return flowError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": gig})
}

// ListMine returns the calling client's own gigs, newest-first.
func (h *GigHandler) ListMine(c *fiber.Ctx) error {
	userUUID, err := getUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var gigs []models.Gig
	if err := h.DB.
		Preload("Proposals", func(db *gorm.DB) *gorm.DB {
			return db.Order("submitted_at DESC")
		}).
		Where("client_id = ?", userUUID).
		Order("posted_at DESC").
		Find(&gigs).Error; err != nil {
		log.Println("Error fetching own gigs:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch gigs"})
	}

	return c.JSON(fiber.Map{"success": true, "data": gigs})
}
