package profile

import (
	"math"
	"testing"
	"time"

	"github.com/saeid-a/NutriGuide/internal/models"
)

func TestAgeAtBirthdayBoundary(t *testing.T) {
	now := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		dob  time.Time
		want int
	}{
		{name: "anniversary_today", dob: time.Date(1996, time.October, 16, 0, 0, 0, 0, time.UTC), want: 30},
		{name: "anniversary_tomorrow", dob: time.Date(1996, time.October, 17, 0, 0, 0, 0, time.UTC), want: 29},
		{name: "birthday_passed", dob: time.Date(1996, time.March, 1, 0, 0, 0, 0, time.UTC), want: 30},
		{name: "later_month", dob: time.Date(1996, time.December, 1, 0, 0, 0, 0, time.UTC), want: 29},
		{name: "born_today", dob: now, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AgeAt(tc.dob, now); got != tc.want {
				t.Fatalf("AgeAt = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCalculateAgeUsesToday(t *testing.T) {
	today := time.Now()
	if today.Month() == time.February && today.Day() == 29 {
		t.Skip("anniversary arithmetic is ambiguous on leap days")
	}
	dob := today.AddDate(-25, 0, 0)
	if got := CalculateAge(dob); got != 25 {
		t.Fatalf("CalculateAge = %d, want 25", got)
	}
	dayAfter := dob.AddDate(0, 0, 1)
	if got := CalculateAge(dayAfter); got != 24 {
		t.Fatalf("CalculateAge one day before anniversary = %d, want 24", got)
	}
}

func TestCalculateBMR(t *testing.T) {
	male := CalculateBMR(70, 170, 30, GenderMale)
	wantMale := 88.362 + 13.397*70 + 4.799*170 - 5.677*30
	if math.Abs(male-wantMale) > 0.005 {
		t.Fatalf("male BMR = %.3f, want %.3f", male, wantMale)
	}
	if math.Abs(male-1671.672) > 0.005 {
		t.Fatalf("male BMR = %.3f, want 1671.672", male)
	}

	female := CalculateBMR(70, 170, 30, GenderFemale)
	wantFemale := 447.593 + 9.247*70 + 3.098*170 - 4.330*30
	if math.Abs(female-wantFemale) > 0.005 {
		t.Fatalf("female BMR = %.3f, want %.3f", female, wantFemale)
	}
	if female == male {
		t.Fatal("expected male and female coefficients to differ")
	}
}

func TestHarrisBenedictPolicyFoldsOtherGendersIntoFemale(t *testing.T) {
	female := CalculateBMR(80, 180, 40, GenderFemale)
	for _, gender := range []string{GenderNonBinary, GenderOther, GenderPreferNotToSay, "male"} {
		if got := CalculateBMR(80, 180, 40, gender); got != female {
			t.Fatalf("%q: BMR = %.3f, want female %.3f", gender, got, female)
		}
	}
}

func TestAveragedPolicy(t *testing.T) {
	calc := Calculator{Policy: AveragedPolicy}
	male := calc.BMR(80, 180, 40, GenderMale)
	female := calc.BMR(80, 180, 40, GenderFemale)
	other := calc.BMR(80, 180, 40, GenderNonBinary)

	if male != CalculateBMR(80, 180, 40, GenderMale) {
		t.Fatalf("averaged policy changed male result: %.3f", male)
	}
	if math.Abs(other-(male+female)/2) > 1e-9 {
		t.Fatalf("non-binary BMR = %.3f, want midpoint %.3f", other, (male+female)/2)
	}
}

func TestPolicyByName(t *testing.T) {
	if _, err := PolicyByName("averaged"); err != nil {
		t.Fatalf("PolicyByName(averaged): %v", err)
	}
	if _, err := PolicyByName(""); err != nil {
		t.Fatalf("PolicyByName(empty): %v", err)
	}
	if _, err := PolicyByName("mifflin"); err == nil {
		t.Fatal("expected unknown policy to fail")
	}
}

func TestValidateBMR(t *testing.T) {
	if !ValidateBMR(1700, 1672) {
		t.Fatal("expected 1700 vs 1672 to be within tolerance")
	}
	if ValidateBMR(2100, 1672) {
		t.Fatal("expected 2100 vs 1672 to exceed tolerance")
	}
	if !ValidateBMR(1972, 1672) {
		t.Fatal("expected an exact 300 kcal gap to be accepted")
	}
	if ValidateBMR(1371, 1672) {
		t.Fatal("expected 301 kcal below the estimate to be rejected")
	}
}

func fixedCalculator() Calculator {
	return Calculator{Now: func() time.Time {
		return time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)
	}}
}

func completeProfile() models.UserProfile {
	dob := models.NewDate(1996, time.October, 16)
	height := 170.0
	weight := 70.0
	gender := GenderMale
	return models.UserProfile{
		DateOfBirth: &dob,
		HeightCm:    &height,
		WeightKg:    &weight,
		Gender:      &gender,
	}
}

func TestEstimateRequiresAllInputs(t *testing.T) {
	calc := fixedCalculator()

	bmr, ok := calc.Estimate(completeProfile())
	if !ok {
		t.Fatal("expected complete profile to produce an estimate")
	}
	if math.Abs(bmr-1671.672) > 0.005 {
		t.Fatalf("estimate = %.3f, want 1671.672", bmr)
	}

	missing := []func(p *models.UserProfile){
		func(p *models.UserProfile) { p.WeightKg = nil },
		func(p *models.UserProfile) { p.HeightCm = nil },
		func(p *models.UserProfile) { p.DateOfBirth = nil },
		func(p *models.UserProfile) { p.Gender = nil },
	}
	for i, drop := range missing {
		p := completeProfile()
		drop(&p)
		if _, ok := calc.Estimate(p); ok {
			t.Fatalf("case %d: expected estimate to be skipped", i)
		}
	}
}

func TestCheckBMRIsAdvisory(t *testing.T) {
	calc := fixedCalculator()

	p := completeProfile()
	far := 2100
	p.BMRValue = &far
	check := calc.CheckBMR(p)
	if check.Valid || check.Warning != WarningBMROutOfRange {
		t.Fatalf("expected out-of-range warning, got %+v", check)
	}
	if p.BMRValue == nil || *p.BMRValue != 2100 {
		t.Fatal("expected entered BMR to be left on the record")
	}

	near := 1700
	p.BMRValue = &near
	if check := calc.CheckBMR(p); !check.Valid || check.Warning != "" {
		t.Fatalf("expected valid check, got %+v", check)
	}

	incomplete := calc.CheckBMR(models.UserProfile{BMRValue: &near})
	if incomplete.Estimated != nil || incomplete.Warning != WarningIncompleteBMRInputs {
		t.Fatalf("expected incomplete-input warning, got %+v", incomplete)
	}
}
