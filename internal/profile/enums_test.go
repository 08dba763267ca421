package profile

import (
	"reflect"
	"testing"

	"github.com/saeid-a/NutriGuide/internal/models"
)

func TestNormalizeActivityLevel(t *testing.T) {
	cases := map[string]string{
		"SEDENTARY":         ActivitySedentary,
		"LIGHTLY_ACTIVE":    ActivityLightlyActive,
		"MODERATELY_ACTIVE": ActivityModeratelyActive,
		"VERY_ACTIVE":       ActivityVeryActive,
		"Sedentary":         ActivitySedentary,
		"Very active":       ActivityVeryActive,
		"sedentary":         "sedentary",
		"EXTREMELY_ACTIVE":  "EXTREMELY_ACTIVE",
		"":                  "",
	}
	for in, want := range cases {
		if got := NormalizeActivityLevel(in); got != want {
			t.Fatalf("NormalizeActivityLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeCookingFrequency(t *testing.T) {
	cases := map[string]string{
		"MULTIPLE_DAILY":        CookingMultipleDaily,
		"ONCE_DAILY":            CookingOnceDaily,
		"MULTIPLE_WEEKLY":       CookingMultipleWeekly,
		"ONCE_WEEKLY":           CookingOnceWeekly,
		"RARELY":                CookingRarely,
		"Multiple times a week": CookingMultipleWeekly,
		"NEVER":                 "NEVER",
	}
	for in, want := range cases {
		if got := NormalizeCookingFrequency(in); got != want {
			t.Fatalf("NormalizeCookingFrequency(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizationIsIdempotent(t *testing.T) {
	inputs := []string{"whatever", "Daily-ish", "lightly_active"}
	for token := range activityLevelLabels {
		inputs = append(inputs, token)
	}
	for token := range cookingFrequencyLabels {
		inputs = append(inputs, token)
	}

	for _, in := range inputs {
		once := NormalizeActivityLevel(in)
		if twice := NormalizeActivityLevel(once); twice != once {
			t.Fatalf("activity level %q: %q then %q", in, once, twice)
		}
		once = NormalizeCookingFrequency(in)
		if twice := NormalizeCookingFrequency(once); twice != once {
			t.Fatalf("cooking frequency %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeProfileReturnsCopy(t *testing.T) {
	level := "VERY_ACTIVE"
	freq := "RARELY"
	in := models.UserProfile{PhysicalActivityLevel: &level, CookingFrequency: &freq}

	out := Normalize(in)
	if *out.PhysicalActivityLevel != ActivityVeryActive || *out.CookingFrequency != CookingRarely {
		t.Fatalf("unexpected normalized values: %q %q", *out.PhysicalActivityLevel, *out.CookingFrequency)
	}
	if level != "VERY_ACTIVE" {
		t.Fatal("expected input record to be left untouched")
	}
	if again := Normalize(out); !reflect.DeepEqual(again, out) {
		t.Fatalf("expected Normalize to be idempotent, got %+v", again)
	}
}

func TestNormalizeRawCoercesScalarLists(t *testing.T) {
	raw := map[string]any{
		"food_allergies":          "Peanuts",
		"dietaryPreferences":      "Vegan",
		"favorite_cuisines":       []any{"Thai"},
		"blood_sugar_goals":       nil,
		"physical_activity_level": "SEDENTARY",
		"cooking_frequency":       "Once a day",
	}

	out := NormalizeRaw(raw)

	if got := out["food_allergies"]; !reflect.DeepEqual(got, []any{"Peanuts"}) {
		t.Fatalf("food_allergies = %#v", got)
	}
	if got := out["dietaryPreferences"]; !reflect.DeepEqual(got, []any{"Vegan"}) {
		t.Fatalf("dietaryPreferences = %#v", got)
	}
	if got := out["favorite_cuisines"]; !reflect.DeepEqual(got, []any{"Thai"}) {
		t.Fatalf("favorite_cuisines = %#v", got)
	}
	if got, ok := out["blood_sugar_goals"]; !ok || got != nil {
		t.Fatalf("expected null list to stay null, got %#v", got)
	}
	if out["physical_activity_level"] != ActivitySedentary {
		t.Fatalf("physical_activity_level = %#v", out["physical_activity_level"])
	}
	if raw["food_allergies"] != "Peanuts" {
		t.Fatal("expected input map to be left untouched")
	}
}
