package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raulniraj/CampusGig/internal/models"
	"github.com/raulniraj/CampusGig/internal/services/gigflow"
)

type ProposalHandler struct {
	DB   *gorm.DB
	Flow *gigflow.Service
}

func NewProposalHandler(db *gorm.DB, flow *gigflow.Service) *ProposalHandler {
	return &ProposalHandler{DB: db, Flow: flow}
}

// Submit creates a pending proposal on an open gig. Blocked before any write
// when the student's profile is incomplete, so the frontend can show the
// profile-completion prompt instead of the form.
func (h *ProposalHandler) Submit(c *fiber.Ctx) error {
	userUUID, err := getUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	gigID, err := uuid.Parse(c.Params("gigId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid gig ID",
		})
	}

	var in gigflow.ProposalInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid body",
		})
	}

	var student models.User
	if err := h.DB.First(&student, "id = ?", userUUID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	proposal, err := h.Flow.SubmitProposal(&student, gigID, in)
	if err != nil {
		if isValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		return flowError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": proposal})
}

// Update edits a pending proposal authored by the caller.
func (h *ProposalHandler) Update(c *fiber.Ctx) error {
	userUUID, err := getUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	proposalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid proposal ID",
		})
	}

	var in gigflow.ProposalInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid body",
		})
	}

	proposal, err := h.Flow.EditProposal(userUUID, proposalID, in)
	if err != nil {
		if isValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		return flowError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": proposal})
}

// Accept runs the acceptance transition: notification, gig to in-progress,
// proposal to accepted.
func (h *ProposalHandler) Accept(c *fiber.Ctx) error {
	userUUID, err := getUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	proposalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid proposal ID",
		})
	}

	gig, proposal, err := h.Flow.AcceptProposal(userUUID, proposalID)
	if err != nil {
		return flowError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"gig":      gig,
			"proposal": proposal,
		},
	})
}

// ListMine returns the calling student's own proposals, newest-first, each
// with its gig so the dashboard can show current gig status.
func (h *ProposalHandler) ListMine(c *fiber.Ctx) error {
	userUUID, err := getUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var proposals []models.Proposal
	if err := h.DB.
		Preload("Gig").
		Where("student_id = ?", userUUID).
		Order("submitted_at DESC").
		Find(&proposals).Error; err != nil {
		log.Println("Error fetching own proposals:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch proposals"})
	}

	return c.JSON(fiber.Map{"success": true, "data": proposals})
}
