package models

import "time"

// UserProfile is the canonical profile record. Height and weight are always
// metric; list fields are nil when unset; pointer booleans are tri-state.
type UserProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	DateOfBirth *Date    `json:"date_of_birth"`
	HeightCm    *float64 `json:"height_cm"`
	WeightKg    *float64 `json:"weight_kg"`
	Gender      *string  `json:"gender"`
	Ethnicity   string   `json:"ethnicity"`

	TypicalDiet        *string  `json:"typical_diet"`
	FoodAllergies      []string `json:"food_allergies"`
	DietaryPreferences []string `json:"dietary_preferences"`
	MealsPerDay        *int     `json:"meals_per_day"`
	CookingFrequency   *string  `json:"cooking_frequency"`
	FavoriteCuisines   []string `json:"favorite_cuisines"`
	FavoriteFoods      *string  `json:"favorite_foods"`
	DislikedFoods      *string  `json:"disliked_foods"`

	BMRMeasured           *bool   `json:"bmr_measured"`
	BMRValue              *int    `json:"bmr_value"`
	HasDiabetes           *bool   `json:"has_diabetes"`
	DiabetesDiagnosis     *string `json:"diabetes_diagnosis"`
	TakesMedication       *bool   `json:"takes_medication"`
	Medications           *string `json:"medications"`
	IsPregnantOrNursing   *bool   `json:"is_pregnant_or_nursing"`
	PhysicalActivityLevel *string `json:"physical_activity_level"`

	OtherHealthConcerns string   `json:"other_health_concerns"`
	BloodSugarGoals     []string `json:"blood_sugar_goals"`
	SpecificGoals       string   `json:"specific_goals"`

	CurrentSurveyStep *int  `json:"current_survey_step"`
	SurveyCompleted   *bool `json:"survey_completed"`

	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Clone returns a deep copy so edits on the copy never alias the original.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.DateOfBirth = clonePtr(p.DateOfBirth)
	out.HeightCm = clonePtr(p.HeightCm)
	out.WeightKg = clonePtr(p.WeightKg)
	out.Gender = clonePtr(p.Gender)
	out.TypicalDiet = clonePtr(p.TypicalDiet)
	out.FoodAllergies = cloneList(p.FoodAllergies)
	out.DietaryPreferences = cloneList(p.DietaryPreferences)
	out.MealsPerDay = clonePtr(p.MealsPerDay)
	out.CookingFrequency = clonePtr(p.CookingFrequency)
	out.FavoriteCuisines = cloneList(p.FavoriteCuisines)
	out.FavoriteFoods = clonePtr(p.FavoriteFoods)
	out.DislikedFoods = clonePtr(p.DislikedFoods)
	out.BMRMeasured = clonePtr(p.BMRMeasured)
	out.BMRValue = clonePtr(p.BMRValue)
	out.HasDiabetes = clonePtr(p.HasDiabetes)
	out.DiabetesDiagnosis = clonePtr(p.DiabetesDiagnosis)
	out.TakesMedication = clonePtr(p.TakesMedication)
	out.Medications = clonePtr(p.Medications)
	out.IsPregnantOrNursing = clonePtr(p.IsPregnantOrNursing)
	out.PhysicalActivityLevel = clonePtr(p.PhysicalActivityLevel)
	out.BloodSugarGoals = cloneList(p.BloodSugarGoals)
	out.CurrentSurveyStep = clonePtr(p.CurrentSurveyStep)
	out.SurveyCompleted = clonePtr(p.SurveyCompleted)
	out.UpdatedAt = clonePtr(p.UpdatedAt)
	return out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneList(v []string) []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}
