package profile

import (
	"github.com/saeid-a/NutriGuide/internal/models"
)

// Edit changes one aspect of a profile copy.
type Edit func(p *models.UserProfile)

// Apply returns a new record with edits applied in order; p is left untouched.
func Apply(p models.UserProfile, edits ...Edit) models.UserProfile {
	out := p.Clone()
	for _, edit := range edits {
		edit(&out)
	}
	return out
}

func WithName(name string) Edit {
	return func(p *models.UserProfile) { p.Name = name }
}

func WithEmail(email string) Edit {
	return func(p *models.UserProfile) { p.Email = email }
}

func WithDateOfBirth(d *models.Date) Edit {
	return func(p *models.UserProfile) { p.DateOfBirth = d }
}

// WithHeightCm sets the canonical height. A non-positive value clears it.
func WithHeightCm(cm float64) Edit {
	return func(p *models.UserProfile) { p.HeightCm = positive(cm) }
}

// WithWeightKg sets the canonical weight. A non-positive value clears it.
func WithWeightKg(kg float64) Edit {
	return func(p *models.UserProfile) { p.WeightKg = positive(kg) }
}

func WithGender(gender string) Edit {
	return func(p *models.UserProfile) { p.Gender = optional(gender) }
}

func WithEthnicity(ethnicity string) Edit {
	return func(p *models.UserProfile) { p.Ethnicity = ethnicity }
}

func WithActivityLevel(level string) Edit {
	return func(p *models.UserProfile) {
		p.PhysicalActivityLevel = optional(NormalizeActivityLevel(level))
	}
}

func WithCookingFrequency(freq string) Edit {
	return func(p *models.UserProfile) {
		p.CookingFrequency = optional(NormalizeCookingFrequency(freq))
	}
}

func WithTypicalDiet(diet string) Edit {
	return func(p *models.UserProfile) { p.TypicalDiet = optional(diet) }
}

func WithMealsPerDay(n *int) Edit {
	return func(p *models.UserProfile) { p.MealsPerDay = n }
}

func WithBMRMeasured(v *bool) Edit {
	return func(p *models.UserProfile) { p.BMRMeasured = v }
}

func WithBMRValue(v *int) Edit {
	return func(p *models.UserProfile) { p.BMRValue = v }
}

func WithHasDiabetes(v *bool) Edit {
	return func(p *models.UserProfile) { p.HasDiabetes = v }
}

func WithTakesMedication(v *bool) Edit {
	return func(p *models.UserProfile) { p.TakesMedication = v }
}

func WithPregnantOrNursing(v *bool) Edit {
	return func(p *models.UserProfile) { p.IsPregnantOrNursing = v }
}

func WithSurveyProgress(step int, completed bool) Edit {
	return func(p *models.UserProfile) {
		p.CurrentSurveyStep = &step
		p.SurveyCompleted = &completed
	}
}

// List field names accepted by WithFirstListItem.
const (
	FieldFoodAllergies      = "food_allergies"
	FieldDietaryPreferences = "dietary_preferences"
	FieldFavoriteCuisines   = "favorite_cuisines"
	FieldBloodSugarGoals    = "blood_sugar_goals"
)

// WithFirstListItem replaces the first element of a list field, keeping the
// rest. The form edits these fields through a single select, so only the first
// element is ever user-visible; an empty value removes that element. Unknown
// field names leave the record unchanged.
func WithFirstListItem(field, value string) Edit {
	return func(p *models.UserProfile) {
		list := listField(p, field)
		if list == nil {
			return
		}
		current := *list
		var rest []string
		if len(current) > 1 {
			rest = append(rest, current[1:]...)
		}
		switch {
		case value != "":
			*list = append([]string{value}, rest...)
		case len(rest) > 0:
			*list = rest
		case current != nil:
			*list = []string{}
		}
	}
}

func listField(p *models.UserProfile, field string) *[]string {
	switch field {
	case FieldFoodAllergies:
		return &p.FoodAllergies
	case FieldDietaryPreferences:
		return &p.DietaryPreferences
	case FieldFavoriteCuisines:
		return &p.FavoriteCuisines
	case FieldBloodSugarGoals:
		return &p.BloodSugarGoals
	default:
		return nil
	}
}

// FirstListItem is the value shown by the single select of a list field.
func FirstListItem(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func positive(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}
