package client

import (
	"time"

	"github.com/saeid-a/NutriGuide/internal/models"
	"github.com/saeid-a/NutriGuide/internal/profile"
)

// MockProfile is served in development when the API cannot be used.
func MockProfile() models.UserProfile {
	dob := models.NewDate(1990, time.June, 15)
	height := 170.0
	weight := 70.0
	gender := profile.GenderFemale
	diet := "Balanced"
	meals := 3
	cooking := profile.CookingOnceDaily
	activity := profile.ActivityModeratelyActive
	measured := false
	hasDiabetes := true
	diagnosis := "Prediabetes"
	takesMedication := false
	pregnant := false
	step := 5
	completed := true
	favorite := "Salmon, lentil soup"
	disliked := "Okra"

	return models.UserProfile{
		ID:                    1,
		Name:                  "Demo User",
		Email:                 "demo@example.com",
		DateOfBirth:           &dob,
		HeightCm:              &height,
		WeightKg:              &weight,
		Gender:                &gender,
		Ethnicity:             "Asian",
		TypicalDiet:           &diet,
		FoodAllergies:         []string{"Peanuts"},
		DietaryPreferences:    []string{"Low carb"},
		MealsPerDay:           &meals,
		CookingFrequency:      &cooking,
		FavoriteCuisines:      []string{"Japanese"},
		FavoriteFoods:         &favorite,
		DislikedFoods:         &disliked,
		BMRMeasured:           &measured,
		HasDiabetes:           &hasDiabetes,
		DiabetesDiagnosis:     &diagnosis,
		TakesMedication:       &takesMedication,
		IsPregnantOrNursing:   &pregnant,
		PhysicalActivityLevel: &activity,
		BloodSugarGoals:       []string{"Reduce post-meal spikes"},
		SpecificGoals:         "Lose 5 kg over six months",
		CurrentSurveyStep:     &step,
		SurveyCompleted:       &completed,
	}
}
