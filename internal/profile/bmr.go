package profile

import (
	"fmt"
	"math"
	"time"

	"github.com/saeid-a/NutriGuide/internal/models"
)

// BMRTolerance is the widest gap, in kcal/day, between an entered BMR and the
// estimate that still counts as plausible.
const BMRTolerance = 300

// Coefficients of the revised Harris-Benedict equation:
// Base + Weight*kg + Height*cm - Age*years.
type Coefficients struct {
	Base   float64
	Weight float64
	Height float64
	Age    float64
}

var (
	MaleCoefficients   = Coefficients{Base: 88.362, Weight: 13.397, Height: 4.799, Age: 5.677}
	FemaleCoefficients = Coefficients{Base: 447.593, Weight: 9.247, Height: 3.098, Age: 4.330}
)

// CoefficientPolicy picks the coefficient set for a gender label.
type CoefficientPolicy interface {
	Coefficients(gender string) Coefficients
}

type CoefficientPolicyFunc func(gender string) Coefficients

func (f CoefficientPolicyFunc) Coefficients(gender string) Coefficients {
	return f(gender)
}

// HarrisBenedictPolicy uses the male set for "Male" and the female set for
// every other label, including non-binary and undisclosed genders.
var HarrisBenedictPolicy CoefficientPolicy = CoefficientPolicyFunc(func(gender string) Coefficients {
	if gender == GenderMale {
		return MaleCoefficients
	}
	return FemaleCoefficients
})

// AveragedPolicy keeps the sex-specific sets for "Male" and "Female" and uses
// the midpoint of both for any other label.
var AveragedPolicy CoefficientPolicy = CoefficientPolicyFunc(func(gender string) Coefficients {
	switch gender {
	case GenderMale:
		return MaleCoefficients
	case GenderFemale:
		return FemaleCoefficients
	default:
		return Coefficients{
			Base:   (MaleCoefficients.Base + FemaleCoefficients.Base) / 2,
			Weight: (MaleCoefficients.Weight + FemaleCoefficients.Weight) / 2,
			Height: (MaleCoefficients.Height + FemaleCoefficients.Height) / 2,
			Age:    (MaleCoefficients.Age + FemaleCoefficients.Age) / 2,
		}
	}
})

// PolicyByName resolves the policy names accepted in configuration.
func PolicyByName(name string) (CoefficientPolicy, error) {
	switch name {
	case "", "harris-benedict":
		return HarrisBenedictPolicy, nil
	case "averaged":
		return AveragedPolicy, nil
	default:
		return nil, fmt.Errorf("unknown bmr policy %q", name)
	}
}

// Calculator derives age and BMR. The zero value uses HarrisBenedictPolicy and
// the wall clock.
type Calculator struct {
	Policy CoefficientPolicy
	Now    func() time.Time
}

func (c Calculator) policy() CoefficientPolicy {
	if c.Policy == nil {
		return HarrisBenedictPolicy
	}
	return c.Policy
}

func (c Calculator) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// CalculateAge returns whole years since dateOfBirth as of today.
func CalculateAge(dateOfBirth time.Time) int {
	return AgeAt(dateOfBirth, time.Now())
}

// AgeAt returns whole years between dateOfBirth and now, not counting the
// current year until the birthday has passed.
func AgeAt(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		age--
	}
	return age
}

// CalculateBMR applies the default policy.
func CalculateBMR(weightKg, heightCm float64, ageYears int, gender string) float64 {
	return Calculator{}.BMR(weightKg, heightCm, ageYears, gender)
}

func (c Calculator) BMR(weightKg, heightCm float64, ageYears int, gender string) float64 {
	k := c.policy().Coefficients(gender)
	return k.Base + k.Weight*weightKg + k.Height*heightCm - k.Age*float64(ageYears)
}

func (c Calculator) Age(dateOfBirth time.Time) int {
	return AgeAt(dateOfBirth, c.now())
}

// HasBMRInputs reports whether weight, height, date of birth and gender are
// all present.
func HasBMRInputs(p models.UserProfile) bool {
	return p.WeightKg != nil && p.HeightCm != nil && p.DateOfBirth != nil &&
		!p.DateOfBirth.IsZero() && p.Gender != nil && *p.Gender != ""
}

// Estimate returns the BMR estimate for p, or ok=false when any input is
// missing.
func (c Calculator) Estimate(p models.UserProfile) (bmr float64, ok bool) {
	if !HasBMRInputs(p) {
		return 0, false
	}
	age := c.Age(p.DateOfBirth.Time)
	return c.BMR(*p.WeightKg, *p.HeightCm, age, *p.Gender), true
}

// ValidateBMR reports whether entered is within BMRTolerance of calculated.
func ValidateBMR(entered int, calculated float64) bool {
	return math.Abs(float64(entered)-calculated) <= BMRTolerance
}

// BMRCheck is advisory: a failed check produces a warning but the entered
// value is still kept on the record.
type BMRCheck struct {
	Estimated *float64
	Valid     bool
	Warning   string
}

const (
	WarningIncompleteBMRInputs = "Add your weight, height, date of birth and gender to estimate your BMR."
	WarningBMROutOfRange       = "The BMR you entered differs from our estimate by more than 300 kcal. Please double-check it."
)

func (c Calculator) CheckBMR(p models.UserProfile) BMRCheck {
	estimate, ok := c.Estimate(p)
	if !ok {
		return BMRCheck{Valid: true, Warning: WarningIncompleteBMRInputs}
	}
	check := BMRCheck{Estimated: &estimate, Valid: true}
	if p.BMRValue == nil {
		return check
	}
	if !ValidateBMR(*p.BMRValue, estimate) {
		check.Valid = false
		check.Warning = WarningBMROutOfRange
	}
	return check
}
