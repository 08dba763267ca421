package profile

import (
	"strconv"

	"github.com/saeid-a/NutriGuide/internal/models"
)

type HeightUnit string

const (
	HeightCm     HeightUnit = "cm"
	HeightFeetIn HeightUnit = "ft"
)

type WeightUnit string

const (
	WeightKg  WeightUnit = "kg"
	WeightLbs WeightUnit = "lbs"
)

// Form is the editing state behind the profile page: the canonical record plus
// view-only inputs. Unit toggles and imperial text fields live here and never
// reach the record; only converted metric values are written into it.
type Form struct {
	profile models.UserProfile

	HeightUnit HeightUnit
	WeightUnit WeightUnit
	Feet       string
	Inches     string
	Pounds     string

	// DisplayCountry preselects the country selector; see MapEthnicityToCountry.
	DisplayCountry string

	calc Calculator
}

// NewForm binds a reconciled record to a fresh form in metric units.
func NewForm(p models.UserProfile, calc Calculator) *Form {
	f := &Form{
		profile:    Normalize(p),
		HeightUnit: HeightCm,
		WeightUnit: WeightKg,
		calc:       calc,
	}
	f.syncImperial()
	f.DisplayCountry = MapEthnicityToCountry(f.profile.Ethnicity)
	return f
}

// Profile returns a copy of the canonical record as currently edited.
func (f *Form) Profile() models.UserProfile {
	return f.profile.Clone()
}

func (f *Form) Apply(edits ...Edit) {
	f.profile = Apply(f.profile, edits...)
	f.syncImperial()
}

// SetHeightImperial converts feet/inches input into the canonical height.
func (f *Form) SetHeightImperial(feet, inches string) {
	f.Feet, f.Inches = feet, inches
	f.profile = Apply(f.profile, WithHeightCm(FeetInchesToCm(feet, inches)))
}

func (f *Form) SetHeightMetric(cm float64) {
	f.Apply(WithHeightCm(cm))
}

// SetWeightImperial converts pounds input into the canonical weight.
func (f *Form) SetWeightImperial(pounds string) {
	f.Pounds = pounds
	f.profile = Apply(f.profile, WithWeightKg(LbsToKg(pounds)))
}

func (f *Form) SetWeightMetric(kg float64) {
	f.Apply(WithWeightKg(kg))
}

func (f *Form) ToggleHeightUnit() {
	if f.HeightUnit == HeightCm {
		f.HeightUnit = HeightFeetIn
	} else {
		f.HeightUnit = HeightCm
	}
	f.syncImperial()
}

func (f *Form) ToggleWeightUnit() {
	if f.WeightUnit == WeightKg {
		f.WeightUnit = WeightLbs
	} else {
		f.WeightUnit = WeightKg
	}
	f.syncImperial()
}

// SetCountry records a country picked in the selector. The selector writes the
// ethnicity field; the reverse mapping only ever feeds DisplayCountry.
func (f *Form) SetCountry(country string) {
	f.DisplayCountry = country
	f.profile = Apply(f.profile, WithEthnicity(country))
}

func (f *Form) syncImperial() {
	if f.profile.HeightCm != nil {
		feet, inches := CmToFeetInches(*f.profile.HeightCm)
		f.Feet, f.Inches = strconv.Itoa(feet), strconv.Itoa(inches)
	} else {
		f.Feet, f.Inches = "", ""
	}
	if f.profile.WeightKg != nil {
		f.Pounds = strconv.FormatFloat(KgToLbs(*f.profile.WeightKg), 'f', -1, 64)
	} else {
		f.Pounds = ""
	}
}

// Derived holds values computed from the record for display.
type Derived struct {
	Age          *int
	EstimatedBMR *float64
	BMRValid     bool
	Warnings     []string
}

// Derived recomputes age and the BMR estimate. Missing inputs are an expected
// state and only produce a warning.
func (f *Form) Derived() Derived {
	var d Derived
	if f.profile.DateOfBirth != nil && !f.profile.DateOfBirth.IsZero() {
		age := f.calc.Age(f.profile.DateOfBirth.Time)
		d.Age = &age
	}
	check := f.calc.CheckBMR(f.profile)
	d.EstimatedBMR = check.Estimated
	d.BMRValid = check.Valid
	if check.Warning != "" {
		d.Warnings = append(d.Warnings, check.Warning)
	}
	return d
}

// Submission is the record to send back to the API.
func (f *Form) Submission() models.UserProfile {
	return Normalize(f.profile)
}
