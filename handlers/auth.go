package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/taskflow/taskflow-api/auth"
	"github.com/taskflow/taskflow-api/models"
	"github.com/taskflow/taskflow-api/store"
	"github.com/taskflow/taskflow-api/validators"
)

// AuthHandler serves registration, login and the current-user lookup.
type AuthHandler struct {
	users store.UserStore
	creds *auth.CredentialService
}

func NewAuthHandler(users store.UserStore, creds *auth.CredentialService) *AuthHandler {
	return &AuthHandler{users: users, creds: creds}
}

// Register godoc
// @Summary Registrar nuevo usuario
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body validators.RegisterRequest true "Datos de registro"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req validators.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if errs := validators.Validate(&req); errs != nil {
		return failValidation(c, errs)
	}

	exists, err := h.users.Exists(c.Context(), req.Username, req.Email)
	if err != nil {
		return internalError(c, err, "Error al registrar usuario")
	}
	if exists {
		return fail(c, fiber.StatusBadRequest, "El usuario o email ya está registrado")
	}

	hashed, err := h.creds.HashPassword(req.Password)
	if err != nil {
		return internalError(c, err, "Error al registrar usuario")
	}

	user := &models.User{
		ID:       models.NewID(),
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	if err := h.users.Create(c.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			return fail(c, fiber.StatusBadRequest, "El usuario o email ya está registrado")
		}
		return internalError(c, err, "Error al registrar usuario")
	}

	token, err := h.creds.IssueToken(user.ID)
	if err != nil {
		return internalError(c, err, "Error al registrar usuario")
	}

	return ok(c, fiber.StatusCreated, "Usuario registrado exitosamente", fiber.Map{
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
		"token": token,
	})
}

// Login godoc
// @Summary Iniciar sesión
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body validators.LoginRequest true "Credenciales"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 401 {object} handlers.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req validators.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if errs := validators.Validate(&req); errs != nil {
		return failValidation(c, errs)
	}

	user, err := h.users.FindByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return internalError(c, err, "Error al iniciar sesión")
	}

	if !h.creds.VerifyPassword(req.Password, user.Password) {
		return fail(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	token, err := h.creds.IssueToken(user.ID)
	if err != nil {
		return internalError(c, err, "Error al iniciar sesión")
	}

	return ok(c, fiber.StatusOK, "Login exitoso", fiber.Map{
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
		"token": token,
	})
}

// Me godoc
// @Summary Obtener usuario actual
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response
// @Failure 401 {object} handlers.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals(auth.UserIDKey).(string)

	user, err := h.users.FindByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Token for an account that no longer exists.
			return fail(c, fiber.StatusUnauthorized, "No autorizado")
		}
		return internalError(c, err, "Error al obtener usuario")
	}

	return ok(c, fiber.StatusOK, "", fiber.Map{
		"user": fiber.Map{
			"id":        user.ID,
			"username":  user.Username,
			"email":     user.Email,
			"createdAt": user.CreatedAt,
		},
	})
}
