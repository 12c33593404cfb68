package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/user"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrNotFound, fiber.StatusNotFound},
		{fmt.Errorf("wrapped: %w", domain.ErrNotFound), fiber.StatusNotFound},
		{user.ErrUserNotFound, fiber.StatusNotFound},
		{domain.ErrAlreadyExists, fiber.StatusConflict},
		{domain.Invalid("ticker", "required"), fiber.StatusBadRequest},
		{user.ErrUserUnauthorized, fiber.StatusUnauthorized},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized},
		{domain.ErrForbidden, fiber.StatusForbidden},
		{domain.ErrUpstreamRateLimited, fiber.StatusTooManyRequests},
		{fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ErrorToStatusCode(tc.err), tc.err.Error())
	}
}

func problem(t *testing.T, resp *http.Response) ProblemDetails {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))
	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	return pd
}

func TestProblemDetailsJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Not found", domain.ErrNotFound)
	})
	app.Get("/explicit", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Forbidden", nil, "not yours", fiber.StatusForbidden)
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Internal Server Error", errors.New("dsn=secret"))
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Bad", nil)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	pd := problem(t, resp)
	assert.Equal(t, "resource not found", pd.Detail)
	assert.Equal(t, "/missing", pd.Instance)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/explicit", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "not yours", problem(t, resp).Detail)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/internal", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, problem(t, resp).Detail, "secret")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/plain", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProblemDetailsJSONLogsServerErrors(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	app := fiber.New()
	app.Get("/internal", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Failed to load", errors.New("db down"))
	})
	app.Get("/client", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Not found", domain.ErrNotFound)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/internal", nil))
	require.NoError(t, err)
	assert.Equal(t, "An unexpected error occurred", problem(t, resp).Detail)
	assert.Contains(t, buf.String(), "Failed to load")
	assert.Contains(t, buf.String(), "db down")

	buf.Reset()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/client", nil))
	require.NoError(t, err)
	_ = problem(t, resp)
	assert.Empty(t, buf.String())
}

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Count int    `json:"count" validate:"gte=1"`
}

func TestBindAndValidate(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		in, err := BindAndValidate[sample](c)
		if in == nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "ok", in)
	})

	tests := []struct {
		desc string
		body string
		want int
	}{
		{"valid", `{"name":"abc","count":2}`, fiber.StatusCreated},
		{"malformed", `{"name":`, fiber.StatusBadRequest},
		{"wrong type", `{"name":12}`, fiber.StatusBadRequest},
		{"rule broken", `{"name":"toolong","count":0}`, fiber.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"toolong","count":0}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	pd := problem(t, resp)
	fields, ok := pd.Errors.([]any)
	require.True(t, ok)
	assert.Len(t, fields, 2)
}

func TestQueryHelpers(t *testing.T) {
	app := fiber.New()
	app.Get("/:id", func(c *fiber.Ctx) error {
		if _, err := ParamUUID(c, "id"); err != nil {
			return ProblemDetailsJSON(c, "Invalid ID", err)
		}
		n, err := QueryInt(c, "dias", 365)
		if err != nil {
			return ProblemDetailsJSON(c, "Invalid query", err)
		}
		d, err := QueryDate(c, "desde")
		if err != nil {
			return ProblemDetailsJSON(c, "Invalid query", err)
		}
		return c.JSON(fiber.Map{"dias": n, "desde": d})
	})

	tests := []struct {
		path string
		want int
	}{
		{"/not-a-uuid", fiber.StatusBadRequest},
		{"/3f2b3c9e-6f1e-4d2a-9a51-2f0d2c9a7e11", fiber.StatusOK},
		{"/3f2b3c9e-6f1e-4d2a-9a51-2f0d2c9a7e11?dias=x", fiber.StatusBadRequest},
		{"/3f2b3c9e-6f1e-4d2a-9a51-2f0d2c9a7e11?desde=2024-13-01", fiber.StatusBadRequest},
		{"/3f2b3c9e-6f1e-4d2a-9a51-2f0d2c9a7e11?dias=30&desde=2024-01-01", fiber.StatusOK},
	}
	for _, tc := range tests {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, tc.want, resp.StatusCode, tc.path)
	}
}

func TestRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimiter(&config.RateLimit{MaxRequests: 5, Window: time.Second}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := range 6 {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
		if i < 5 {
			assert.Equal(t, fiber.StatusOK, resp.StatusCode, "request %d", i+1)
		} else {
			assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode, "request %d", i+1)
		}
	}

	time.Sleep(1100 * time.Millisecond)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
