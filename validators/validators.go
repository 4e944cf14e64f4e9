package validators

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TaskRequest is the payload for task creation and update. Pointer fields
// distinguish "absent" from "zero": on update, absent fields keep the stored
// value.
type TaskRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Status      *string    `json:"status" validate:"omitempty,oneof=pendiente en_progreso completada"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=baja media alta"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty,futuredate"`
}

// Normalize strips surrounding whitespace so the length rules apply to the
// value that gets stored, not to its padding. Callers run it before Validate.
func (r *TaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		r.Description = &trimmed
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// futuredate: the value must not be earlier than the validation instant.
	_ = v.RegisterValidation("futuredate", func(fl validator.FieldLevel) bool {
		date, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return !date.Before(time.Now())
	})

	return v
}

// User-facing messages keyed by "field:tag".
var messages = map[string]string{
	"username:required":  "El nombre de usuario es obligatorio",
	"username:min":       "El nombre de usuario debe tener al menos 3 caracteres",
	"username:max":       "El nombre de usuario no puede tener más de 50 caracteres",
	"email:required":     "El email es obligatorio",
	"email:email":        "Debe proporcionar un email válido",
	"password:required":  "La contraseña es obligatoria",
	"password:min":       "La contraseña debe tener al menos 6 caracteres",
	"title:required":     "El título es obligatorio",
	"title:min":          "El título debe tener al menos 3 caracteres",
	"title:max":          "El título no puede tener más de 100 caracteres",
	"description:max":    "La descripción no puede tener más de 500 caracteres",
	"status:oneof":       "El estado debe ser: pendiente, en_progreso o completada",
	"priority:oneof":     "La prioridad debe ser: baja, media o alta",
	"dueDate:futuredate": "La fecha de vencimiento no puede ser en el pasado",
}

// Validate checks the full request struct and returns the ordered list of
// field messages, or nil when the payload is valid. It never panics and never
// hides failures behind a single opaque error.
func Validate(req any) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{"Error de validación"}
	}

	msgs := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if msg, ok := messages[fe.Field()+":"+fe.Tag()]; ok {
			msgs = append(msgs, msg)
		} else {
			msgs = append(msgs, "El campo "+fe.Field()+" no es válido")
		}
	}
	return msgs
}
