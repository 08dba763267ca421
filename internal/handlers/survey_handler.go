package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saeid-a/NutriGuide/internal/middleware"
	"github.com/saeid-a/NutriGuide/internal/services"
	"go.uber.org/zap"
)

type SurveyHandler struct {
	profileService *services.ProfileService
	log            *zap.Logger
}

func NewSurveyHandler(profileService *services.ProfileService, log *zap.Logger) *SurveyHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SurveyHandler{profileService: profileService, log: log}
}

type surveyRequest struct {
	CurrentSurveyStep *int  `json:"current_survey_step"`
	SurveyCompleted   *bool `json:"survey_completed"`
}

// UpdateProgress records how far the user got through the survey. An omitted
// survey_completed keeps the stored value.
func (h *SurveyHandler) UpdateProgress(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req surveyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateSurveyRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	p, err := h.profileService.UpdateSurveyProgress(c.Context(), userID, *req.CurrentSurveyStep, req.SurveyCompleted)
	if err != nil {
		h.log.Error("update survey progress failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update survey progress"})
	}

	return c.JSON(fiber.Map{
		"profile":          p,
		"survey_completed": p.SurveyCompleted,
	})
}
