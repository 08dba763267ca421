package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/saeid-a/NutriGuide/internal/models"
)

// DecodeRaw decodes a profile response body into an untyped record. Numbers
// are kept as json.Number and an optional {"profile": {...}} envelope is
// unwrapped.
func DecodeRaw(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode profile payload: %w", err)
	}
	if raw == nil {
		return map[string]any{}, nil
	}
	if inner, ok := raw["profile"].(map[string]any); ok {
		return inner, nil
	}
	return raw, nil
}

// Reconcile maps an untyped record onto the canonical profile. Every field has
// an explicit absent path and an explicit malformed path; malformed values are
// replaced with the field default and reported in issues. Reconcile never
// fails.
func Reconcile(raw map[string]any) (models.UserProfile, []*MalformedFieldError) {
	r := &reconciler{raw: NormalizeRaw(raw)}

	p := models.UserProfile{
		ID:    r.id("id"),
		Name:  r.str("name"),
		Email: r.str("email"),

		DateOfBirth: r.date("date_of_birth", "dateOfBirth"),
		HeightCm:    r.optFloat("height_cm", "heightCm"),
		WeightKg:    r.optFloat("weight_kg", "weightKg"),
		Gender:      r.optChoice("gender"),
		Ethnicity:   r.str("ethnicity"),

		TypicalDiet:        r.optChoice("typical_diet", "typicalDiet"),
		FoodAllergies:      r.list("food_allergies", "foodAllergies"),
		DietaryPreferences: r.list("dietary_preferences", "dietaryPreferences"),
		MealsPerDay:        r.optInt("meals_per_day", "mealsPerDay"),
		CookingFrequency:   r.optChoice("cooking_frequency", "cookingFrequency"),
		FavoriteCuisines:   r.list("favorite_cuisines", "favoriteCuisines"),
		FavoriteFoods:      r.optStr("favorite_foods", "favoriteFoods"),
		DislikedFoods:      r.optStr("disliked_foods", "dislikedFoods"),

		BMRMeasured:           r.triBool("bmr_measured", "bmrMeasured"),
		BMRValue:              r.optInt("bmr_value", "bmrValue"),
		HasDiabetes:           r.triBool("has_diabetes", "hasDiabetes"),
		DiabetesDiagnosis:     r.optChoice("diabetes_diagnosis", "diabetesDiagnosis"),
		TakesMedication:       r.triBool("takes_medication", "takesMedication"),
		Medications:           r.optStr("medications"),
		IsPregnantOrNursing:   r.triBool("is_pregnant_or_nursing", "isPregnantOrNursing"),
		PhysicalActivityLevel: r.optChoice("physical_activity_level", "physicalActivityLevel"),

		OtherHealthConcerns: r.str("other_health_concerns", "otherHealthConcerns"),
		BloodSugarGoals:     r.list("blood_sugar_goals", "bloodSugarGoals"),
		SpecificGoals:       r.str("specific_goals", "specificGoals"),

		CurrentSurveyStep: r.optInt("current_survey_step", "currentSurveyStep"),
		SurveyCompleted:   r.triBool("survey_completed", "surveyCompleted"),
	}

	return Normalize(p), r.issues
}

type reconciler struct {
	raw    map[string]any
	issues []*MalformedFieldError
}

// lookup returns the first non-null value among keys.
func (r *reconciler) lookup(keys ...string) (string, any, bool) {
	for _, k := range keys {
		if v, ok := r.raw[k]; ok && v != nil {
			return k, v, true
		}
	}
	return keys[0], nil, false
}

func (r *reconciler) malformed(field string, value any, reason string) {
	r.issues = append(r.issues, &MalformedFieldError{Field: field, Value: value, Reason: reason})
}

func (r *reconciler) str(keys ...string) string {
	v := r.optStr(keys...)
	if v == nil {
		return ""
	}
	return *v
}

func (r *reconciler) optStr(keys ...string) *string {
	key, v, ok := r.lookup(keys...)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case string:
		return &t
	case json.Number:
		s := t.String()
		return &s
	default:
		r.malformed(key, v, "expected a string")
		return nil
	}
}

// optChoice reads a field whose value comes from a fixed set of options. A
// blank value means no option was picked.
func (r *reconciler) optChoice(keys ...string) *string {
	v := r.optStr(keys...)
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}

func (r *reconciler) optFloat(keys ...string) *float64 {
	key, v, ok := r.lookup(keys...)
	if !ok {
		return nil
	}
	f, ok := toFloat(v)
	if !ok {
		r.malformed(key, v, "expected a number")
		return nil
	}
	return &f
}

func (r *reconciler) optInt(keys ...string) *int {
	key, v, ok := r.lookup(keys...)
	if !ok {
		return nil
	}
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) {
		r.malformed(key, v, "expected an integer")
		return nil
	}
	n := int(f)
	return &n
}

func (r *reconciler) id(keys ...string) int64 {
	key, v, ok := r.lookup(keys...)
	if !ok {
		return 0
	}
	if n, isNum := v.(json.Number); isNum {
		if i, err := n.Int64(); err == nil {
			return i
		}
	}
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) {
		r.malformed(key, v, "expected an integer")
		return 0
	}
	return int64(f)
}

// triBool keeps explicit true/false, coerces 0/1 transports, and leaves every
// other value unset rather than false.
func (r *reconciler) triBool(keys ...string) *bool {
	key, v, ok := r.lookup(keys...)
	if !ok {
		return nil
	}
	var b bool
	switch t := v.(type) {
	case bool:
		b = t
	case json.Number, float64, int, int64:
		f, _ := toFloat(t)
		switch f {
		case 0:
			b = false
		case 1:
			b = true
		default:
			r.malformed(key, v, "expected a boolean or 0/1")
			return nil
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1":
			b = true
		case "false", "0":
			b = false
		case "":
			return nil
		default:
			r.malformed(key, v, "expected a boolean or 0/1")
			return nil
		}
	default:
		r.malformed(key, v, "expected a boolean or 0/1")
		return nil
	}
	return &b
}

// list accepts a structured list, a JSON-encoded list, or a bare scalar. A
// JSON string that does not parse yields an empty list.
func (r *reconciler) list(keys ...string) []string {
	key, v, ok := r.lookup(keys...)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case []string:
		return append([]string{}, t...)
	case []any:
		return r.listItems(key, t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		if !looksLikeJSONList(s) {
			return []string{t}
		}
		dec := json.NewDecoder(strings.NewReader(s))
		dec.UseNumber()
		var items []any
		if err := dec.Decode(&items); err != nil {
			r.malformed(key, v, "invalid JSON list: "+err.Error())
			return []string{}
		}
		if items == nil {
			return nil
		}
		return r.listItems(key, items)
	default:
		if !truthy(v) {
			return nil
		}
		if s, ok := scalarString(v); ok {
			return []string{s}
		}
		r.malformed(key, v, "expected a list")
		return []string{}
	}
}

func (r *reconciler) listItems(key string, items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := scalarString(item)
		if !ok {
			r.malformed(key, item, "expected list items to be strings")
			continue
		}
		out = append(out, s)
	}
	return out
}

func (r *reconciler) date(keys ...string) *models.Date {
	key, v, ok := r.lookup(keys...)
	if !ok {
		return nil
	}
	s, isString := v.(string)
	if !isString {
		r.malformed(key, v, "expected a date string")
		return nil
	}
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		r.malformed(key, v, err.Error())
		return nil
	}
	return &d
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	default:
		return "", false
	}
}

func looksLikeJSONList(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "[")
}

// truthy mirrors what the form treated as "has a value": non-empty strings,
// non-zero numbers, true, and any composite value.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}

// HasField reports whether raw carries a non-null value for the wire field,
// in either its snake_case or camelCase spelling.
func HasField(raw map[string]any, field string) bool {
	for _, key := range []string{field, camelCase(field)} {
		if v, ok := raw[key]; ok && v != nil {
			return true
		}
	}
	return false
}

func camelCase(field string) string {
	parts := strings.Split(field, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
