package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/taskflow/taskflow-api/auth"
	"github.com/taskflow/taskflow-api/models"
	"github.com/taskflow/taskflow-api/store"
	"github.com/taskflow/taskflow-api/validators"
)

// TaskHandler serves the task CRUD endpoints. Every operation is scoped to
// the authenticated user: listings filter by owner, and reads, updates and
// deletes require an ownership match.
type TaskHandler struct {
	tasks store.TaskStore
}

func NewTaskHandler(tasks store.TaskStore) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Create godoc
// @Summary Crear una nueva tarea
// @Tags Tareas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body validators.TaskRequest true "Datos de la tarea"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 401 {object} handlers.Response
// @Router /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req validators.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	// Trim before validating so padding cannot sneak a too-short title past
	// the length rules.
	req.Normalize()
	if errs := validators.Validate(&req); errs != nil {
		return failValidation(c, errs)
	}

	userID, _ := c.Locals(auth.UserIDKey).(string)

	// The owner is always the authenticated user; any owner value in the
	// payload is ignored.
	task := &models.Task{
		ID:       models.NewID(),
		Title:    req.Title,
		Status:   models.StatusPending,
		Priority: models.PriorityMedium,
		UserID:   userID,
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	models.ApplyCompletion(task, time.Now())

	if err := h.tasks.Create(c.Context(), task); err != nil {
		return internalError(c, err, "Error al crear tarea")
	}

	return ok(c, fiber.StatusCreated, "Tarea creada exitosamente", fiber.Map{"task": task})
}

// List godoc
// @Summary Obtener todas las tareas del usuario
// @Tags Tareas
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filtrar por estado" Enums(pendiente, en_progreso, completada)
// @Param priority query string false "Filtrar por prioridad" Enums(baja, media, alta)
// @Param sortBy query string false "Campo para ordenar (ej. -createdAt, title)"
// @Success 200 {object} handlers.Response
// @Failure 401 {object} handlers.Response
// @Router /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals(auth.UserIDKey).(string)

	filter := store.TaskFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		SortBy:   c.Query("sortBy", "-createdAt"),
	}

	tasks, err := h.tasks.List(c.Context(), userID, filter)
	if err != nil {
		return internalError(c, err, "Error al obtener tareas")
	}

	count := len(tasks)
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Count:   &count,
		Data:    fiber.Map{"tasks": tasks},
	})
}

// GetByID godoc
// @Summary Obtener tarea por ID
// @Tags Tareas
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la tarea"
// @Success 200 {object} handlers.Response
// @Failure 401 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /api/tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	task, err := h.loadOwnedTask(c, "No autorizado para ver esta tarea")
	if err != nil {
		return err
	}
	if task == nil {
		return nil // response already written
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"task": task})
}

// Update godoc
// @Summary Actualizar tarea
// @Tags Tareas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la tarea"
// @Param payload body validators.TaskRequest true "Datos de la tarea"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 401 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /api/tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var req validators.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	req.Normalize()
	if errs := validators.Validate(&req); errs != nil {
		return failValidation(c, errs)
	}

	task, err := h.loadOwnedTask(c, "No autorizado para actualizar esta tarea")
	if err != nil {
		return err
	}
	if task == nil {
		return nil
	}

	// Merge: absent fields keep the stored value. The owner never changes.
	task.Title = req.Title
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	models.ApplyCompletion(task, time.Now())

	if err := h.tasks.Update(c.Context(), task); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Tarea no encontrada")
		}
		return internalError(c, err, "Error al actualizar tarea")
	}

	return ok(c, fiber.StatusOK, "Tarea actualizada exitosamente", fiber.Map{"task": task})
}

// Delete godoc
// @Summary Eliminar tarea
// @Tags Tareas
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la tarea"
// @Success 200 {object} handlers.Response
// @Failure 401 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	task, err := h.loadOwnedTask(c, "No autorizado para eliminar esta tarea")
	if err != nil {
		return err
	}
	if task == nil {
		return nil
	}

	if err := h.tasks.Delete(c.Context(), task.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Tarea no encontrada")
		}
		return internalError(c, err, "Error al eliminar tarea")
	}

	return ok(c, fiber.StatusOK, "Tarea eliminada exitosamente", fiber.Map{})
}

// loadOwnedTask resolves the :id parameter and enforces the ownership match.
// A nil task with nil error means the failure response was already written.
// Unknown and malformed ids are both reported as not found; ownership
// mismatch is reported as an authorization failure so that foreign task ids
// reveal nothing about existing resources.
func (h *TaskHandler) loadOwnedTask(c *fiber.Ctx, denyMessage string) (*models.Task, error) {
	task, err := h.tasks.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fail(c, fiber.StatusNotFound, "Tarea no encontrada")
		}
		return nil, internalError(c, err, "Error al obtener tarea")
	}

	userID, _ := c.Locals(auth.UserIDKey).(string)
	if task.UserID != userID {
		return nil, fail(c, fiber.StatusUnauthorized, denyMessage)
	}
	return task, nil
}
