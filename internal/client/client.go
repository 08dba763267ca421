package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/saeid-a/NutriGuide/internal/models"
	"github.com/saeid-a/NutriGuide/internal/profile"
	"go.uber.org/zap"
)

const (
	ProfilePath     = "/api/user/profile"
	maxResponseSize = 1 << 20
	maxReasonLength = 200
)

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenProvider
	// MockFallback serves MockProfile instead of failing a fetch. Only
	// development configurations may enable it.
	MockFallback bool
	Logger       *zap.Logger
}

// Client loads and saves the signed-in user's profile through the profile
// API. It holds no profile state of its own.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokens       TokenProvider
	mockFallback bool
	log          *zap.Logger
}

func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	tokens := opts.Tokens
	if tokens == nil {
		tokens = StaticToken("")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		httpClient:   httpClient,
		tokens:       tokens,
		mockFallback: opts.MockFallback,
		log:          log,
	}
}

// FetchProfile loads the current user's profile and reconciles it into the
// canonical shape.
func (c *Client) FetchProfile(ctx context.Context) (models.UserProfile, error) {
	token, err := c.token(ctx)
	if err != nil {
		return c.fallback(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ProfilePath, nil)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		return c.fallback(err)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return c.fallback(fmt.Errorf("fetch profile: %w (status %d)", ErrUnauthenticated, status))
	case status < http.StatusOK || status >= http.StatusMultipleChoices:
		return c.fallback(fmt.Errorf("fetch profile: %w (status %d: %s)", ErrDataUnavailable, status, errorReason(body)))
	}

	p, err := c.reconcile(body)
	if err != nil {
		return c.fallback(err)
	}
	return p, nil
}

// Submit sends the full record. The record is normalized first; p itself is
// not modified.
func (c *Client) Submit(ctx context.Context, p models.UserProfile) (models.UserProfile, error) {
	payload, err := json.Marshal(profile.Normalize(p))
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("encode profile: %w", err)
	}
	return c.put(ctx, payload)
}

// SubmitFields sends only the named wire fields of p, for example
// "weight_kg" or "food_allergies".
func (c *Client) SubmitFields(ctx context.Context, p models.UserProfile, fields ...string) (models.UserProfile, error) {
	full, err := json.Marshal(profile.Normalize(p))
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("encode profile: %w", err)
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(full, &all); err != nil {
		return models.UserProfile{}, fmt.Errorf("encode profile: %w", err)
	}

	partial := make(map[string]json.RawMessage, len(fields))
	for _, field := range fields {
		v, ok := all[field]
		if !ok || field == "id" || field == "updated_at" {
			return models.UserProfile{}, fmt.Errorf("unknown profile field %q", field)
		}
		partial[field] = v
	}
	if len(partial) == 0 {
		return models.UserProfile{}, fmt.Errorf("no profile fields to submit")
	}

	payload, err := json.Marshal(partial)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("encode profile: %w", err)
	}
	return c.put(ctx, payload)
}

func (c *Client) put(ctx context.Context, payload []byte) (models.UserProfile, error) {
	token, err := c.token(ctx)
	if err != nil {
		return models.UserProfile{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+ProfilePath, bytes.NewReader(payload))
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("build profile update: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		return models.UserProfile{}, err
	}

	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		rejected := &UpdateRejectedError{Status: status, Reason: errorReason(body)}
		c.log.Info("profile update rejected", zap.Int("status", status), zap.String("reason", rejected.Reason))
		return models.UserProfile{}, rejected
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return models.UserProfile{}, fmt.Errorf("update profile: %w (status %d)", ErrUnauthenticated, status)
	case status < http.StatusOK || status >= http.StatusMultipleChoices:
		return models.UserProfile{}, fmt.Errorf("update profile: %w (status %d: %s)", ErrDataUnavailable, status, errorReason(body))
	}

	return c.reconcile(body)
}

// token rejects the request before dispatch when no credential is present.
func (c *Client) token(ctx context.Context) (string, error) {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if strings.TrimSpace(token) == "" {
		return "", ErrUnauthenticated
	}
	return token, nil
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, ErrDataUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return 0, nil, fmt.Errorf("read %s response: %w: %w", req.URL.Path, ErrDataUnavailable, err)
	}
	return resp.StatusCode, body, nil
}

func (c *Client) reconcile(body []byte) (models.UserProfile, error) {
	raw, err := profile.DecodeRaw(body)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	p, issues := profile.Reconcile(raw)
	for _, issue := range issues {
		c.log.Warn("profile field replaced with default",
			zap.String("field", issue.Field),
			zap.String("reason", issue.Reason),
		)
	}
	return p, nil
}

func (c *Client) fallback(err error) (models.UserProfile, error) {
	if c.mockFallback && (errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrDataUnavailable)) {
		c.log.Warn("serving mock profile", zap.Error(err))
		return MockProfile(), nil
	}
	return models.UserProfile{}, err
}

// errorReason extracts the API's {"error": "..."} message, falling back to a
// short excerpt of the body.
func errorReason(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"error", "message"} {
			if s, ok := payload[key].(string); ok && s != "" {
				return s
			}
		}
		if errs, ok := payload["errors"].(map[string]any); ok {
			parts := make([]string, 0, len(errs))
			for field, msg := range errs {
				parts = append(parts, fmt.Sprintf("%s: %v", field, msg))
			}
			sort.Strings(parts)
			return strings.Join(parts, "; ")
		}
		return ""
	}
	return excerpt(strings.TrimSpace(string(body)), maxReasonLength)
}

// excerpt cuts s to at most n bytes without splitting a UTF-8 sequence.
func excerpt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
