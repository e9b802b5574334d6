package httperror

import (
	"errors"
	"net/http"

	"github.com/envelope-zero/onboarding/internal/wizard"
)

type Error struct {
	Message string       `json:"error" example:"there is no onboarding session matching your query"`
	Fields  []FieldError `json:"fields,omitempty"` // Invalid fields of a draft. Only set for validation errors
}

type FieldError struct {
	Field   string `json:"field" example:"organization.name"`
	Message string `json:"message" example:"is required"`
}

func New(e error) Error {
	err := Error{
		Message: e.Error(),
	}

	var validationErr *wizard.ValidationError
	if errors.As(e, &validationErr) {
		for _, f := range validationErr.Fields {
			err.Fields = append(err.Fields, FieldError{Field: f.Field, Message: f.Message})
		}
	}

	return err
}

// Status returns the HTTP status code for an error.
func Status(err error) int {
	for _, s := range statuses {
		for _, target := range s.errors {
			if errors.Is(err, target) {
				return s.status
			}
		}
	}

	return http.StatusInternalServerError
}
