package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/raulniraj/CampusGig/internal/models"
)

type ProfileHandler struct {
	DB *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{DB: db}
}

type UpdateProfileReq struct {
	Name       string                   `json:"name"`
	Bio        string                   `json:"bio"`
	Skills     []string                 `json:"skills"`
	Portfolio  string                   `json:"portfolio"`
	Phone      string                   `json:"phone"`
	Experience []models.ExperienceEntry `json:"experience"`
	Education  []models.EducationEntry  `json:"education"`
}

func toJSON(v interface{}) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

// UpdateProfile overwrites the editable profile fields. Last write wins;
// email and role never change here.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userUUID, err := getUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var req UpdateProfileReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid body",
		})
	}

	var u models.User
	if err := h.DB.First(&u, "id = ?", userUUID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		u.Name = name
	}
	u.Bio = strings.TrimSpace(req.Bio)
	u.Portfolio = strings.TrimSpace(req.Portfolio)
	u.Phone = strings.TrimSpace(req.Phone)
	if req.Skills == nil {
		req.Skills = []string{}
	}
	u.Skills = toJSON(req.Skills)
	if req.Experience == nil {
		req.Experience = []models.ExperienceEntry{}
	}
	u.Experience = toJSON(req.Experience)
	if req.Education == nil {
		req.Education = []models.EducationEntry{}
	}
	u.Education = toJSON(req.Education)

	if err := h.DB.Save(&u).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save profile",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    u,
	})
}

// GetStudent returns a student's public profile.
func (h *ProfileHandler) GetStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student ID",
		})
	}

	var u models.User
	if err := h.DB.First(&u, "id = ? AND role = ?", id, models.RoleStudent).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Student not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":         u.ID,
			"name":       u.Name,
			"bio":        u.Bio,
			"skills":     u.Skills,
			"portfolio":  u.Portfolio,
			"experience": u.Experience,
			"education":  u.Education,
			"created_at": u.CreatedAt,
		},
	})
}
