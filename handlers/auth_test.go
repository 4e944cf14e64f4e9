package handlers_test

import (
	"net/http"
	"strings"
	"testing"
)

func TestRegister(t *testing.T) {
	a := newTestApp()

	status, env, raw := request(t, a, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	})

	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", status, raw)
	}
	if !env.Success || env.Message != "Usuario registrado exitosamente" {
		t.Errorf("envelope = %+v", env)
	}
	user, _ := env.Data["user"].(map[string]any)
	if user["username"] != "testuser" || user["email"] != "test@example.com" {
		t.Errorf("user payload = %v", user)
	}
	if env.Data["token"] == "" {
		t.Error("token missing from response")
	}
	if strings.Contains(raw, "password") {
		t.Errorf("response leaks a password field: %s", raw)
	}
}

func TestRegisterValidation(t *testing.T) {
	a := newTestApp()

	tests := []struct {
		name    string
		payload map[string]any
		wantErr string
	}{
		{
			name:    "missing username",
			payload: map[string]any{"email": "test@example.com", "password": "password123"},
			wantErr: "El nombre de usuario es obligatorio",
		},
		{
			name:    "invalid email",
			payload: map[string]any{"username": "testuser", "email": "invalid", "password": "password123"},
			wantErr: "Debe proporcionar un email válido",
		},
		{
			name:    "short password",
			payload: map[string]any{"username": "testuser", "email": "test@example.com", "password": "123"},
			wantErr: "La contraseña debe tener al menos 6 caracteres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env, raw := request(t, a, http.MethodPost, "/api/auth/register", "", tt.payload)
			if status != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%s)", status, raw)
			}
			if env.Message != "Error de validación" {
				t.Errorf("message = %q", env.Message)
			}
			found := false
			for _, msg := range env.Errors {
				if msg == tt.wantErr {
					found = true
				}
			}
			if !found {
				t.Errorf("errors = %v, want to include %q", env.Errors, tt.wantErr)
			}
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	a := newTestApp()
	registerUser(t, a, "testuser", "test@example.com")

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"same username", map[string]any{"username": "testuser", "email": "other@example.com", "password": "password123"}},
		{"same email", map[string]any{"username": "otheruser", "email": "test@example.com", "password": "password123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env, _ := request(t, a, http.MethodPost, "/api/auth/register", "", tt.payload)
			if status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
			if env.Message != "El usuario o email ya está registrado" {
				t.Errorf("message = %q", env.Message)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	a := newTestApp()
	registerUser(t, a, "testuser", "test@example.com")

	status, env, _ := request(t, a, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "test@example.com",
		"password": "password123",
	})
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if env.Message != "Login exitoso" {
		t.Errorf("message = %q", env.Message)
	}
	if token, _ := env.Data["token"].(string); token == "" {
		t.Error("token missing from response")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	a := newTestApp()
	registerUser(t, a, "testuser", "test@example.com")

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"wrong password", map[string]any{"email": "test@example.com", "password": "wrongpassword"}},
		{"unknown email", map[string]any{"email": "ghost@example.com", "password": "password123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env, _ := request(t, a, http.MethodPost, "/api/auth/login", "", tt.payload)
			if status != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", status)
			}
			if env.Message != "Credenciales inválidas" {
				t.Errorf("message = %q", env.Message)
			}
		})
	}
}

func TestMe(t *testing.T) {
	a := newTestApp()
	token, id := registerUser(t, a, "testuser", "test@example.com")

	status, env, raw := request(t, a, http.MethodGet, "/api/auth/me", token, nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", status, raw)
	}
	user, _ := env.Data["user"].(map[string]any)
	if user["id"] != id || user["username"] != "testuser" {
		t.Errorf("user = %v", user)
	}
	if user["createdAt"] == nil {
		t.Error("createdAt missing")
	}
	if strings.Contains(raw, "password") {
		t.Errorf("response leaks a password field: %s", raw)
	}

	status, _, _ = request(t, a, http.MethodGet, "/api/auth/me", "", nil)
	if status != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", status)
	}
}

func TestUnknownRoute(t *testing.T) {
	a := newTestApp()

	status, env, _ := request(t, a, http.MethodGet, "/api/nope", "", nil)
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	if env.Success || env.Message != "Ruta no encontrada" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestWelcome(t *testing.T) {
	a := newTestApp()

	status, _, raw := request(t, a, http.MethodGet, "/", "", nil)
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if !strings.Contains(raw, "Bienvenido a TaskFlow API") {
		t.Errorf("body = %s", raw)
	}
}
