// Package apptest builds the complete application over an in-memory
// database.
package apptest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"diet-diary/cmd/config"
	"diet-diary/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	*fiber.App
	DB *gorm.DB
}

func New(t *testing.T) *App {
	t.Helper()
	return NewWithLogger(t, zap.NewNop())
}

// NewWithLogger builds the application logging to logger.
func NewWithLogger(t *testing.T, logger *zap.Logger) *App {
	t.Helper()
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("RATE_LIMIT_MAX", "0")
	t.Setenv("ACCESS_LOG_FILE", "")

	db := testutil.NewTestDB(t)
	app, err := config.NewApp(db, logger)
	require.NoError(t, err)
	return &App{App: app, DB: db}
}

// Do sends values as the query string for GET and DELETE and as a
// url-encoded body otherwise. It returns the status and the raw body.
func (a *App) Do(t *testing.T, method, path string, values url.Values) (int, string) {
	t.Helper()

	var req *http.Request
	switch method {
	case http.MethodGet, http.MethodDelete:
		req = httptest.NewRequest(method, path+"?"+values.Encode(), nil)
	default:
		req = httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	return a.send(t, req)
}

// DoJSON sends body as a JSON document.
func (a *App) DoJSON(t *testing.T, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return a.send(t, req)
}

func (a *App) send(t *testing.T, req *http.Request) (int, string) {
	t.Helper()
	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

// ID decodes body as an object and returns the numeric field key.
func ID(t *testing.T, body, key string) uint {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &m), body)
	v, ok := m[key].(float64)
	require.True(t, ok, "no %q in %s", key, body)
	return uint(v)
}
