package wizard

import "errors"

var (
	ErrAlreadySubmitted   = errors.New("this wizard step has already been submitted")
	ErrNotReviewing       = errors.New("the draft can only be changed before the organization is submitted")
	ErrNoActiveDepartment = errors.New("there is no department setup in progress")
	ErrSessionNotFound    = errors.New("there is no onboarding session matching your query")
	ErrValidation         = errors.New("validation failed")
)
