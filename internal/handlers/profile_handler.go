package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/saeid-a/NutriGuide/internal/middleware"
	"github.com/saeid-a/NutriGuide/internal/models"
	"github.com/saeid-a/NutriGuide/internal/profile"
	"github.com/saeid-a/NutriGuide/internal/repository"
	"github.com/saeid-a/NutriGuide/internal/services"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	calc           profile.Calculator
	log            *zap.Logger
}

func NewProfileHandler(profileService *services.ProfileService, calc profile.Calculator, log *zap.Logger) *ProfileHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileHandler{
		profileService: profileService,
		calc:           calc,
		log:            log,
	}
}

func (h *ProfileHandler) GetUserProfile(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	p, err := h.profileService.GetUserProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		h.log.Error("fetch profile failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	return c.JSON(h.profileResponse(p))
}

// UpdateUserProfile applies a partial update. Only keys present with a
// non-null value are written; legacy enum tokens, scalar list values and 0/1
// booleans are accepted and stored in canonical form.
func (h *ProfileHandler) UpdateUserProfile(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	raw, err := profile.DecodeRaw(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	reconciled, issues := profile.Reconcile(raw)
	if len(issues) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": issues[0].Error()})
	}

	req := buildUpdateInput(raw, reconciled)
	if validationErr := validateUserProfileUpdateRequest(req, time.Now()); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	p, err := h.profileService.UpdateUserProfile(c.Context(), userID, req)
	if err != nil {
		h.log.Error("update profile failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(h.profileResponse(p))
}

func (h *ProfileHandler) profileResponse(p *models.UserProfile) fiber.Map {
	derived := profile.NewForm(*p, h.calc).Derived()
	return fiber.Map{
		"profile": p,
		"derived": fiber.Map{
			"age":           derived.Age,
			"estimated_bmr": derived.EstimatedBMR,
			"bmr_valid":     derived.BMRValid,
			"warnings":      derived.Warnings,
		},
	}
}

func buildUpdateInput(raw map[string]any, p models.UserProfile) repository.UpdateUserProfileInput {
	var req repository.UpdateUserProfileInput
	has := func(field string) bool { return profile.HasField(raw, field) }

	if has("name") {
		req.Name = &p.Name
	}
	if has("email") {
		req.Email = &p.Email
	}
	if has("date_of_birth") && p.DateOfBirth != nil {
		dob := p.DateOfBirth.Time
		req.DateOfBirth = &dob
	}
	if has("ethnicity") {
		req.Ethnicity = &p.Ethnicity
	}
	if has("other_health_concerns") {
		req.OtherHealthConcerns = &p.OtherHealthConcerns
	}
	if has("specific_goals") {
		req.SpecificGoals = &p.SpecificGoals
	}

	req.HeightCm = p.HeightCm
	req.WeightKg = p.WeightKg
	req.Gender = p.Gender
	req.TypicalDiet = p.TypicalDiet
	req.MealsPerDay = p.MealsPerDay
	req.CookingFrequency = p.CookingFrequency
	req.FavoriteFoods = p.FavoriteFoods
	req.DislikedFoods = p.DislikedFoods
	req.BMRMeasured = p.BMRMeasured
	req.BMRValue = p.BMRValue
	req.HasDiabetes = p.HasDiabetes
	req.DiabetesDiagnosis = p.DiabetesDiagnosis
	req.TakesMedication = p.TakesMedication
	req.Medications = p.Medications
	req.IsPregnantOrNursing = p.IsPregnantOrNursing
	req.PhysicalActivityLevel = p.PhysicalActivityLevel
	req.CurrentSurveyStep = p.CurrentSurveyStep
	req.SurveyCompleted = p.SurveyCompleted

	req.FoodAllergies = p.FoodAllergies
	req.DietaryPreferences = p.DietaryPreferences
	req.FavoriteCuisines = p.FavoriteCuisines
	req.BloodSugarGoals = p.BloodSugarGoals

	return req
}
