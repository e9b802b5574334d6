package v1

import (
	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// getModelByID returns the resource of type T with the specified ID.
//
// When no resource exists, the error wraps models.ErrResourceNotFound.
func getModelByID[T any](id uuid.UUID, preload ...string) (T, error) {
	var resource T

	q := models.DB
	for _, p := range preload {
		q = q.Preload(p)
	}

	err := q.First(&resource, "id = ?", id).Error
	return resource, err
}

// matchName keeps the resources whose name matches the glob pattern.
// An empty pattern matches everything.
func matchName[T any](resources []T, pattern string, name func(T) string) []T {
	if pattern == "" {
		return resources
	}

	return slices.DeleteFunc(resources, func(r T) bool {
		return !glob.Glob(pattern, name(r))
	})
}

// paginate returns the page of resources starting at offset. A negative
// limit returns all remaining resources.
func paginate[T any](resources []T, offset uint, limit int) []T {
	if int(offset) >= len(resources) {
		return []T{}
	}

	resources = resources[offset:]
	if limit >= 0 && limit < len(resources) {
		resources = resources[:limit]
	}

	return resources
}

// resultLimit returns the limit from the query or the default of 50.
func resultLimit(setFields []string, value int) int {
	if slices.Contains(setFields, "Limit") {
		return value
	}

	return 50
}
