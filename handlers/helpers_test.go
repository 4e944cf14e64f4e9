package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/taskflow/taskflow-api/app"
	"github.com/taskflow/taskflow-api/auth"
	"github.com/taskflow/taskflow-api/config"
	"github.com/taskflow/taskflow-api/store"
)

// envelope mirrors handlers.Response for decoding in tests.
type envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
	Errors  []string       `json:"errors"`
	Count   *int           `json:"count"`
}

func newTestApp() *fiber.App {
	cfg := &config.Config{Port: "3000", CORSOrigin: "*"}
	users := store.NewMemoryUserStore()
	tasks := store.NewMemoryTaskStore()
	creds := auth.NewCredentialService("test-secret", time.Hour)
	return app.New(cfg, users, tasks, creds)
}

// request performs a JSON request against the app and decodes the envelope.
func request(t *testing.T, a *fiber.App, method, path, token string, body any) (int, envelope, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("io.ReadAll() error = %v", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal envelope %s: %v", raw, err)
	}
	return resp.StatusCode, env, string(raw)
}

// registerUser registers a user and returns its token and id.
func registerUser(t *testing.T, a *fiber.App, username, email string) (token, id string) {
	t.Helper()

	status, env, raw := request(t, a, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": username,
		"email":    email,
		"password": "password123",
	})
	if status != http.StatusCreated {
		t.Fatalf("register %s: status = %d, body = %s", username, status, raw)
	}

	token, _ = env.Data["token"].(string)
	user, _ := env.Data["user"].(map[string]any)
	id, _ = user["id"].(string)
	if token == "" || id == "" {
		t.Fatalf("register %s: missing token or id in %s", username, raw)
	}
	return token, id
}

// createTask creates a task and returns the serialized task object.
func createTask(t *testing.T, a *fiber.App, token string, payload map[string]any) map[string]any {
	t.Helper()

	status, env, raw := request(t, a, http.MethodPost, "/api/tasks", token, payload)
	if status != http.StatusCreated {
		t.Fatalf("create task: status = %d, body = %s", status, raw)
	}
	task, _ := env.Data["task"].(map[string]any)
	if task == nil {
		t.Fatalf("create task: no task in %s", raw)
	}
	return task
}
