package profile

import "github.com/saeid-a/NutriGuide/internal/models"

const (
	GenderMale           = "Male"
	GenderFemale         = "Female"
	GenderNonBinary      = "Non-binary"
	GenderOther          = "Other"
	GenderPreferNotToSay = "Prefer not to say"
)

const (
	ActivitySedentary        = "Sedentary"
	ActivityLightlyActive    = "Lightly active"
	ActivityModeratelyActive = "Moderately active"
	ActivityVeryActive       = "Very active"
)

const (
	CookingMultipleDaily  = "Multiple times a day"
	CookingOnceDaily      = "Once a day"
	CookingMultipleWeekly = "Multiple times a week"
	CookingOnceWeekly     = "Once a week"
	CookingRarely         = "Rarely"
)

var genders = []string{GenderMale, GenderFemale, GenderNonBinary, GenderOther, GenderPreferNotToSay}

var activityLevels = []string{
	ActivitySedentary,
	ActivityLightlyActive,
	ActivityModeratelyActive,
	ActivityVeryActive,
}

var cookingFrequencies = []string{
	CookingMultipleDaily,
	CookingOnceDaily,
	CookingMultipleWeekly,
	CookingOnceWeekly,
	CookingRarely,
}

var activityLevelLabels = map[string]string{
	"SEDENTARY":         ActivitySedentary,
	"LIGHTLY_ACTIVE":    ActivityLightlyActive,
	"MODERATELY_ACTIVE": ActivityModeratelyActive,
	"VERY_ACTIVE":       ActivityVeryActive,

	ActivitySedentary:        ActivitySedentary,
	ActivityLightlyActive:    ActivityLightlyActive,
	ActivityModeratelyActive: ActivityModeratelyActive,
	ActivityVeryActive:       ActivityVeryActive,
}

var cookingFrequencyLabels = map[string]string{
	"MULTIPLE_DAILY":  CookingMultipleDaily,
	"ONCE_DAILY":      CookingOnceDaily,
	"MULTIPLE_WEEKLY": CookingMultipleWeekly,
	"ONCE_WEEKLY":     CookingOnceWeekly,
	"RARELY":          CookingRarely,

	CookingMultipleDaily:  CookingMultipleDaily,
	CookingOnceDaily:      CookingOnceDaily,
	CookingMultipleWeekly: CookingMultipleWeekly,
	CookingOnceWeekly:     CookingOnceWeekly,
	CookingRarely:         CookingRarely,
}

func Genders() []string            { return append([]string(nil), genders...) }
func ActivityLevels() []string     { return append([]string(nil), activityLevels...) }
func CookingFrequencies() []string { return append([]string(nil), cookingFrequencies...) }

// NormalizeActivityLevel maps legacy tokens such as "LIGHTLY_ACTIVE" to their
// label. Labels and unknown values are returned unchanged.
func NormalizeActivityLevel(value string) string {
	return lookupLabel(activityLevelLabels, value)
}

// NormalizeCookingFrequency maps legacy tokens such as "ONCE_WEEKLY" to their
// label. Labels and unknown values are returned unchanged.
func NormalizeCookingFrequency(value string) string {
	return lookupLabel(cookingFrequencyLabels, value)
}

func lookupLabel(table map[string]string, value string) string {
	if label, ok := table[value]; ok {
		return label
	}
	return value
}

// Normalize returns a copy of p with categorical fields in label form.
// Normalize(Normalize(p)) == Normalize(p).
func Normalize(p models.UserProfile) models.UserProfile {
	out := p.Clone()
	if out.PhysicalActivityLevel != nil {
		v := NormalizeActivityLevel(*out.PhysicalActivityLevel)
		out.PhysicalActivityLevel = &v
	}
	if out.CookingFrequency != nil {
		v := NormalizeCookingFrequency(*out.CookingFrequency)
		out.CookingFrequency = &v
	}
	return out
}

// Wire keys of the list-typed fields, including the camelCase spelling some
// backend versions still send.
var listFieldKeys = [][]string{
	{"food_allergies", "foodAllergies"},
	{"dietary_preferences", "dietaryPreferences"},
	{"favorite_cuisines", "favoriteCuisines"},
	{"blood_sugar_goals", "bloodSugarGoals"},
}

// NormalizeRaw is the untyped counterpart of Normalize. It returns a shallow
// copy of raw with legacy enum tokens replaced and truthy scalar values of the
// list fields wrapped in a single-element list. Null or absent values, and
// JSON-encoded list strings, are left for Reconcile.
func NormalizeRaw(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	for _, key := range []string{"physical_activity_level", "physicalActivityLevel"} {
		if s, ok := out[key].(string); ok {
			out[key] = NormalizeActivityLevel(s)
		}
	}
	for _, key := range []string{"cooking_frequency", "cookingFrequency"} {
		if s, ok := out[key].(string); ok {
			out[key] = NormalizeCookingFrequency(s)
		}
	}
	for _, keys := range listFieldKeys {
		for _, key := range keys {
			v, ok := out[key]
			if !ok || v == nil {
				continue
			}
			if _, isList := v.([]any); isList {
				continue
			}
			if _, isList := v.([]string); isList {
				continue
			}
			if s, isString := v.(string); isString && looksLikeJSONList(s) {
				continue
			}
			if truthy(v) {
				out[key] = []any{v}
			}
		}
	}
	return out
}
