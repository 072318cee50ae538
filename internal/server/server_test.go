package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"ripple/internal/cache"
	"ripple/internal/config"
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// setupTestApp builds a fully-routed Fiber app backed by an in-memory
// database and no Redis.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	// Each test gets a fresh database; make sure no cache entries from a
	// previous test leak across.
	cache.SetClient(nil)

	cfg := &config.Config{
		JWTSecret: "test_secret",
		Port:      "0",
		Env:       "test",
	}

	srv, err := NewServerWithDeps(cfg, setupTestDB(t), nil)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestMetricsEndpoint(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/metrics", "", nil)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnauthorizedEnvelope(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/user/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

// signupUser registers an account and returns its auth token.
func signupUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/user/signup", "", map[string]string{
		"username": username,
		"email":    fmt.Sprintf("%s@example.com", username),
		"password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	token, ok := body["token"].(string)
	require.True(t, ok, "signup response should carry a token")
	return token
}

// createPost creates a post with the given text and returns its id.
func createPost(t *testing.T, app *fiber.App, token, text string) uint {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/post/create", token, map[string]string{
		"text": text,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	post, ok := body["post"].(map[string]any)
	require.True(t, ok)
	return uint(post["id"].(float64))
}
