package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"userapi/internal/config"
	"userapi/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupE2EApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := &config.Config{
		Port:        "8080",
		LogLevel:    "INFO",
		DatabaseURL: "sqlite:///:memory:",
		CORSOrigins: "*",
		Env:         "test",
	}
	srv := NewServerWithDeps(cfg, db)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	srv.SetupRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

// Full lifecycle of a single user through the HTTP surface.
func TestUserLifecycle(t *testing.T) {
	app := setupE2EApp(t)

	// Create
	resp, body := doJSON(t, app, http.MethodPost, "/users", `{"username":"john","email":"john@x.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["user_id"])

	// Read it back
	resp, body = doJSON(t, app, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]any)
	assert.Equal(t, "john", user["username"])
	assert.Equal(t, "john@x.com", user["email"])
	createdAt := user["created_at"]

	// Partial update changes only the supplied field
	resp, _ = doJSON(t, app, http.MethodPut, "/users/1", `{"full_name":"John Doe"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user = body["user"].(map[string]any)
	assert.Equal(t, "John Doe", user["full_name"])
	assert.Equal(t, "john", user["username"])
	assert.Equal(t, "john@x.com", user["email"])
	assert.Equal(t, createdAt, user["created_at"])

	// List contains exactly the one user
	resp, body = doJSON(t, app, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["count"])

	// Delete, then every further access is a 404
	resp, _ = doJSON(t, app, http.MethodDelete, "/users/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	resp, _ = doJSON(t, app, http.MethodDelete, "/users/1", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDuplicateUserLeavesCountUnchanged(t *testing.T) {
	app := setupE2EApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/users", `{"username":"john","email":"john@x.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/users", `{"username":"john","email":"second@x.com"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Username or email already exists", body["error"])

	resp, body = doJSON(t, app, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["count"])
}

func TestListUsersOrderedByID(t *testing.T) {
	app := setupE2EApp(t)

	for _, payload := range []string{
		`{"username":"charlie","email":"charlie@x.com"}`,
		`{"username":"alice","email":"alice@x.com"}`,
		`{"username":"bob","email":"bob@x.com"}`,
	} {
		resp, _ := doJSON(t, app, http.MethodPost, "/users", payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(3), body["count"])

	users := body["users"].([]any)
	var lastID float64
	for _, u := range users {
		id := u.(map[string]any)["id"].(float64)
		assert.Greater(t, id, lastID)
		lastID = id
	}
}

func TestUpdateEmptyBodyRejected(t *testing.T) {
	app := setupE2EApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/users", `{"username":"john","email":"john@x.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPut, "/users/1", `{}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No data provided", body["error"])
}
