package client

import (
	"context"
	"os"
	"strings"
)

// TokenProvider supplies the bearer token of the current session. An empty
// token with a nil error means the user is signed out.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) AccessToken(ctx context.Context) (string, error) {
	return f(ctx)
}

type StaticToken string

func (t StaticToken) AccessToken(context.Context) (string, error) {
	return string(t), nil
}

// EnvToken reads the token from an environment variable on every call.
type EnvToken string

func (e EnvToken) AccessToken(context.Context) (string, error) {
	return strings.TrimSpace(os.Getenv(string(e))), nil
}
