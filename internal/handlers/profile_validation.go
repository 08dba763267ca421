package handlers

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/saeid-a/NutriGuide/internal/profile"
	"github.com/saeid-a/NutriGuide/internal/repository"
)

const (
	maxNameLength = 200
	maxHeightCm   = 300
	maxWeightKg   = 700
	minMealsDay   = 1
	maxMealsDay   = 12
)

var (
	allowedGenders            = allowed(profile.Genders())
	allowedActivityLevels     = allowed(profile.ActivityLevels())
	allowedCookingFrequencies = allowed(profile.CookingFrequencies())
)

func allowed(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

func validateUserProfileUpdateRequest(req repository.UpdateUserProfileInput, now time.Time) string {
	if req.Name != nil && len(strings.TrimSpace(*req.Name)) > maxNameLength {
		return fmt.Sprintf("name must be at most %d characters", maxNameLength)
	}
	if req.Email != nil && *req.Email != "" {
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			return "email must be a valid address"
		}
	}
	if req.DateOfBirth != nil && req.DateOfBirth.After(now) {
		return "date_of_birth must not be in the future"
	}
	if req.HeightCm != nil && (*req.HeightCm <= 0 || *req.HeightCm > maxHeightCm) {
		return fmt.Sprintf("height_cm must be greater than 0 and at most %d", maxHeightCm)
	}
	if req.WeightKg != nil && (*req.WeightKg <= 0 || *req.WeightKg > maxWeightKg) {
		return fmt.Sprintf("weight_kg must be greater than 0 and at most %d", maxWeightKg)
	}
	if req.Gender != nil {
		if err := validateOneOf("gender", *req.Gender, allowedGenders, profile.Genders()); err != "" {
			return err
		}
	}
	if req.PhysicalActivityLevel != nil {
		if err := validateOneOf("physical_activity_level", *req.PhysicalActivityLevel, allowedActivityLevels, profile.ActivityLevels()); err != "" {
			return err
		}
	}
	if req.CookingFrequency != nil {
		if err := validateOneOf("cooking_frequency", *req.CookingFrequency, allowedCookingFrequencies, profile.CookingFrequencies()); err != "" {
			return err
		}
	}
	if req.MealsPerDay != nil && (*req.MealsPerDay < minMealsDay || *req.MealsPerDay > maxMealsDay) {
		return fmt.Sprintf("meals_per_day must be between %d and %d", minMealsDay, maxMealsDay)
	}
	if req.BMRValue != nil && *req.BMRValue <= 0 {
		return "bmr_value must be greater than 0"
	}
	if req.CurrentSurveyStep != nil && *req.CurrentSurveyStep < 0 {
		return "current_survey_step must be 0 or greater"
	}
	lists := []struct {
		field  string
		values []string
	}{
		{"food_allergies", req.FoodAllergies},
		{"dietary_preferences", req.DietaryPreferences},
		{"favorite_cuisines", req.FavoriteCuisines},
		{"blood_sugar_goals", req.BloodSugarGoals},
	}
	for _, list := range lists {
		if err := validateListItems(list.field, list.values); err != "" {
			return err
		}
	}
	return ""
}

func validateSurveyRequest(req surveyRequest) string {
	if req.CurrentSurveyStep == nil {
		return "current_survey_step is required"
	}
	if *req.CurrentSurveyStep < 0 {
		return "current_survey_step must be 0 or greater"
	}
	return ""
}

func validateOneOf(field, value string, set map[string]struct{}, ordered []string) string {
	if _, ok := set[value]; !ok {
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(ordered, ", "))
	}
	return ""
}

func validateListItems(field string, values []string) string {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return field + " must not contain empty values"
		}
	}
	return ""
}
