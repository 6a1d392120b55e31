package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"ngoserver/config"
	"ngoserver/db"
	"ngoserver/mail"
	"ngoserver/middleware"
	"ngoserver/models"
)

const testSecret = "routes-test-secret"

type fakeSender struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeSender) SendContactNotification(ctx context.Context, name, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, email)
	return nil
}

type testEnv struct {
	app    *fiber.App
	sender *fakeSender
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	return setupWithConfig(t, func(cfg *config.Config) {})
}

func setupWithConfig(t *testing.T, mutate func(cfg *config.Config)) *testEnv {
	t.Helper()

	// Each test gets its own shared-cache memory database so state never
	// leaks between tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	require.NoError(t, db.InitDatabase(dsn))

	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	mutate(cfg)

	sender := &fakeSender{}
	notifier := mail.NewNotifier(sender, 8, time.Second)
	t.Cleanup(notifier.Close)

	app := fiber.New()
	SetupRoutes(app, cfg, notifier)
	return &testEnv{app: app, sender: sender}
}

func bearerToken(t *testing.T, role string) string {
	t.Helper()
	claims := &middleware.Claims{
		UserID: 1,
		Email:  role + "@example.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func doRequest(t *testing.T, app *fiber.App, method, path, auth string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func createCategory(t *testing.T, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Description: "test category"}
	require.NoError(t, db.DB.Create(&category).Error)
	return category
}

func createNews(t *testing.T, name string, categoryID uint) models.News {
	t.Helper()
	news := models.News{Name: name, Content: "content", Image: "image", CategoryID: categoryID}
	require.NoError(t, db.DB.Create(&news).Error)
	return news
}

func createUser(t *testing.T, email, role string) models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "irrelevant", Role: role}
	require.NoError(t, db.DB.Create(&user).Error)
	return user
}
