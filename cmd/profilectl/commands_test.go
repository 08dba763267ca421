package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saeid-a/NutriGuide/internal/client"
	"github.com/saeid-a/NutriGuide/internal/profile"
	"github.com/saeid-a/NutriGuide/pkg/utils"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvertCommands(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{args: []string{"convert", "height", "--feet", "5", "--inches", "10"}, want: "178 cm\n"},
		{args: []string{"convert", "height", "--cm", "178"}, want: "5 ft 10 in\n"},
		{args: []string{"convert", "weight", "--lbs", "150"}, want: "68 kg\n"},
		{args: []string{"convert", "weight", "--kg", "68"}, want: "150 lbs\n"},
	}
	for _, tc := range cases {
		out, _, err := execute(t, "", tc.args...)
		if err != nil {
			t.Fatalf("%v: %v", tc.args, err)
		}
		if out != tc.want {
			t.Fatalf("%v = %q, want %q", tc.args, out, tc.want)
		}
	}
}

func TestBMRCommand(t *testing.T) {
	out, _, err := execute(t, "", "bmr", "--weight", "70", "--height", "170", "--dob", "1990-05-05", "--gender", "Male", "--entered", "100")
	if err != nil {
		t.Fatalf("bmr: %v", err)
	}

	var got bmrOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	want := profile.CalculateBMR(70, 170, got.Age, profile.GenderMale)
	if got.EstimatedBMR != want {
		t.Fatalf("estimated_bmr = %v, want %v", got.EstimatedBMR, want)
	}
	if got.Valid == nil || *got.Valid {
		t.Fatalf("expected entered value to be out of range, got %v", got.Valid)
	}
	if got.Policy != "harris-benedict" || got.Tolerance != profile.BMRTolerance {
		t.Fatalf("unexpected policy block: %+v", got)
	}
}

func TestBMRCommandRejectsBadInput(t *testing.T) {
	cases := [][]string{
		{"bmr", "--weight", "70", "--height", "170"},
		{"bmr", "--weight", "0", "--height", "170", "--dob", "1990-05-05"},
		{"bmr", "--weight", "70", "--height", "170", "--dob", "05/05/1990"},
		{"bmr", "--weight", "70", "--height", "170", "--dob", "1990-05-05", "--policy", "unknown"},
	}
	for _, args := range cases {
		if _, _, err := execute(t, "", args...); err == nil {
			t.Fatalf("%v: expected an error", args)
		}
	}
}

func TestTokenCommand(t *testing.T) {
	out, _, err := execute(t, "", "token", "--user-id", "12", "--secret", "cli-secret")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	claims, err := utils.ValidateToken(strings.TrimSpace(out), "cli-secret")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "12" {
		t.Fatalf("user id = %q", claims.UserID)
	}
}

func newAPIServer(t *testing.T, status int, body string, seen *[]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			data, _ := io.ReadAll(r.Body)
			*seen = append(*seen, r.Method+" "+string(data))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestShowCommand(t *testing.T) {
	srv := newAPIServer(t, http.StatusOK, `{"profile":{
		"id": 3,
		"ethnicity": "Asian",
		"height_cm": 170,
		"weight_kg": 70,
		"gender": "Male",
		"date_of_birth": "1990-01-01",
		"physical_activity_level": "VERY_ACTIVE"
	}}`, nil)
	t.Setenv("API_BASE_URL", srv.URL)
	t.Setenv(tokenEnv, "tok")
	t.Setenv("APP_ENV", "production")

	out, _, err := execute(t, "", "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}

	var got showOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if got.DisplayCountry != "China" || got.Profile.Ethnicity != "Asian" {
		t.Fatalf("display_country = %q, ethnicity = %q", got.DisplayCountry, got.Profile.Ethnicity)
	}
	if got.HeightFeet != "5" || got.HeightInches != "7" || got.WeightLbs != "154" {
		t.Fatalf("imperial values = %s ft %s in %s lbs", got.HeightFeet, got.HeightInches, got.WeightLbs)
	}
	if got.EstimatedBMR == nil || !got.BMRValid {
		t.Fatalf("expected a BMR estimate, got %+v", got)
	}
	if *got.Profile.PhysicalActivityLevel != profile.ActivityVeryActive {
		t.Fatalf("physical_activity_level = %q", *got.Profile.PhysicalActivityLevel)
	}
}

func TestShowCommandReportsFriendlyError(t *testing.T) {
	srv := newAPIServer(t, http.StatusUnauthorized, `{"error":"Invalid or expired token"}`, nil)
	t.Setenv("API_BASE_URL", srv.URL)
	t.Setenv(tokenEnv, "expired")
	t.Setenv("APP_ENV", "production")

	_, stderr, err := execute(t, "", "show")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(stderr, client.UserMessage(client.ErrUnauthenticated)) {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestSubmitCommandSendsSelectedFields(t *testing.T) {
	var seen []string
	srv := newAPIServer(t, http.StatusOK, `{"profile":{"id":3,"weight_kg":72}}`, &seen)
	t.Setenv("API_BASE_URL", srv.URL)
	t.Setenv(tokenEnv, "tok")
	t.Setenv("APP_ENV", "production")

	out, _, err := execute(t, `{"weight_kg": 72, "name": "ignored"}`, "submit", "--field", "weight_kg")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(seen) != 1 || seen[0] != `PUT {"weight_kg":72}` {
		t.Fatalf("unexpected requests: %q", seen)
	}
	if !strings.Contains(out, `"weight_kg": 72`) {
		t.Fatalf("output = %q", out)
	}
}
