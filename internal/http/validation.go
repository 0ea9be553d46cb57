package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"activities-service/internal/service"
)

// NewValidator собирает валидатор с дополнительным правилом notblank.
func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	return validate
}

// validateParticipantQuery проверяет наличие имени активности и email.
// Формат email не проверяется: это непрозрачная строка.
func (h *Handler) validateParticipantQuery(q participantQuery) error {
	err := h.validate.Struct(q)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return service.ErrBadRequest("invalid request")
	}

	field := strings.ToLower(verrs[0].Field())
	if field == "activity" {
		return service.ErrBadRequest("activity name is required")
	}
	return service.ErrBadRequest(fmt.Sprintf("%s is required", field))
}
