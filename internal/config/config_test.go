package config

import (
	"testing"
	"time"
)

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected missing JWT_SECRET to fail")
	}

	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PROFILE_CACHE_TTL", "90s")
	t.Setenv("API_BASE_URL", "http://localhost:8080/")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ProfileCacheTTL != 90*time.Second {
		t.Fatalf("ProfileCacheTTL = %v", cfg.ProfileCacheTTL)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
}

func TestMockFallbackOnlyInDevelopment(t *testing.T) {
	cases := []struct {
		appEnv    string
		allowMock string
		want      bool
	}{
		{appEnv: "dev", allowMock: "", want: true},
		{appEnv: "local", allowMock: "true", want: true},
		{appEnv: "development", allowMock: "off", want: false},
		{appEnv: "production", allowMock: "true", want: false},
		{appEnv: "staging", allowMock: "", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.appEnv+"_"+tc.allowMock, func(t *testing.T) {
			t.Setenv("APP_ENV", tc.appEnv)
			t.Setenv("ALLOW_MOCK_PROFILE", tc.allowMock)
			t.Setenv("API_BASE_URL", "http://api.test")

			cfg, err := LoadClientConfig()
			if err != nil {
				t.Fatalf("LoadClientConfig: %v", err)
			}
			if got := cfg.MockFallbackEnabled(); got != tc.want {
				t.Fatalf("MockFallbackEnabled() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGetEnvDurationFallsBackOnGarbage(t *testing.T) {
	t.Setenv("PROFILE_CACHE_TTL", "soon")
	if got := getEnvDuration("PROFILE_CACHE_TTL", time.Minute); got != time.Minute {
		t.Fatalf("getEnvDuration = %v", got)
	}
}
