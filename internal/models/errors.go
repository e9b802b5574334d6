package models

import (
	"errors"
)

var (
	ErrGeneral                 = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound        = errors.New("there is no")
	ErrReferenceNotFound       = errors.New("a resource ID you specified does not reference an existing resource")
	ErrIDInUse                 = errors.New("the ID you specified is already in use")
	ErrDepartmentNameNotUnique = errors.New("the department name must be unique for the organization")
	ErrCategoryNameNotUnique   = errors.New("the budget category name must be unique for the organization")
)
