package httperror

import (
	"net/http"

	"github.com/envelope-zero/onboarding/internal/httputil"
	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/envelope-zero/onboarding/internal/wizard"
)

var statuses = []struct {
	status int
	errors []error
}{
	{
		http.StatusBadRequest,
		[]error{
			httputil.ErrInvalidBody,
			httputil.ErrRequestBodyEmpty,
			httputil.ErrInvalidUUID,
			httputil.ErrInvalidQueryString,
			wizard.ErrValidation,
			models.ErrIDInUse,
			models.ErrDepartmentNameNotUnique,
			models.ErrCategoryNameNotUnique,
			models.ErrReferenceNotFound,
		},
	},
	{
		http.StatusNotFound,
		[]error{
			models.ErrResourceNotFound,
			wizard.ErrSessionNotFound,
		},
	},
	{
		http.StatusConflict,
		[]error{
			wizard.ErrAlreadySubmitted,
			wizard.ErrNotReviewing,
			wizard.ErrNoActiveDepartment,
		},
	},
	{
		http.StatusInternalServerError,
		[]error{
			models.ErrGeneral,
		},
	},
}
