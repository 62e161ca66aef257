package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/minimax/internal"
	"github.com/lk16/flippy/minimax/internal/config"
	"github.com/lk16/flippy/minimax/internal/search"
	"github.com/lk16/flippy/minimax/internal/services"
	"github.com/stretchr/testify/require"
)

const TestToken = "test-token"

// TestConfig returns the server configuration used by NewTestApp.
func TestConfig() *config.ServerConfig {
	return &config.ServerConfig{
		ServerHost:        "localhost",
		ServerPort:        "3000",
		BasicAuthUsername: "test-user",
		BasicAuthPassword: "test-pass",
		Token:             TestToken,
		MaxDepth:          search.MaxDepth,
	}
}

// NewTestApp builds an app without external services.
func NewTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return NewTestAppWithConfig(t, TestConfig())
}

// NewTestAppWithConfig builds an app with cfg and without external services.
func NewTestAppWithConfig(t *testing.T, cfg *config.ServerConfig) *fiber.App {
	t.Helper()
	return internal.BuildApp(cfg, &services.Services{})
}

// Request sends a request to app and returns the response.
// The payload is encoded as JSON unless it is a string, which is sent as is.
func Request(t *testing.T, app *fiber.App, method, path, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	switch payload := payload.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(payload)
	default:
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
		body = &buf
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("x-token", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

// DecodeJSON decodes the response body into a T.
func DecodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var value T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&value))
	return value
}
