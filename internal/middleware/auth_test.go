package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/saeid-a/NutriGuide/pkg/utils"
)

func newAuthApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/me", AuthRequired(secret), func(c *fiber.Ctx) error {
		id, ok := UserID(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(strconv.FormatInt(id, 10))
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	secret := "test-secret"
	valid, err := utils.GenerateToken("42", "user", secret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	badSubject, err := utils.GenerateToken("abc", "user", secret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	cases := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "wrong_scheme", header: "Basic " + valid, status: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "non_numeric_subject", header: "Bearer " + badSubject, status: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + valid, status: http.StatusOK},
		{name: "lowercase_scheme", header: "bearer " + valid, status: http.StatusOK},
	}

	app := newAuthApp(secret)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.StatusCode)
			}
			if tc.status == http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != "42" {
					t.Fatalf("expected user id 42, got %q", body)
				}
			}
		})
	}
}
