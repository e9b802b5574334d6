package wizard

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// FieldError describes one invalid or missing field of a draft.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every problem found in a draft. It is returned
// before anything is committed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s %s", f.Field, f.Message))
	}

	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(msgs, "; "))
}

// Is makes errors.Is(err, ErrValidation) true for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.add(field, "is required")
	}
}

func (e *ValidationError) notNegative(field string, value decimal.Decimal) {
	if value.IsNegative() {
		e.add(field, "must not be negative")
	}
}

// unique flags an ID that another entry of the draft already uses.
// Nil IDs are generated at commit time and never collide.
func (e *ValidationError) unique(seen map[uuid.UUID]bool, field string, id uuid.UUID, message string) {
	if id == uuid.Nil {
		return
	}

	if seen[id] {
		e.add(field, message)
	}
	seen[id] = true
}

func (e *ValidationError) err() error {
	if len(e.Fields) == 0 {
		return nil
	}

	return e
}

// ValidateOrganization checks that the draft can be committed.
func ValidateOrganization(d OrganizationDraft) error {
	v := &ValidationError{}

	if d.Organization.Name == nil {
		v.add("organization.name", "is required")
	} else {
		v.required("organization.name", *d.Organization.Name)
	}

	if d.Organization.LeaderName == nil {
		v.add("organization.leaderName", "is required")
	} else {
		v.required("organization.leaderName", *d.Organization.LeaderName)
	}

	if d.Organization.TotalBudget == nil {
		v.add("organization.totalBudget", "is required")
	} else {
		v.notNegative("organization.totalBudget", *d.Organization.TotalBudget)
	}

	if d.Organization.Currency != "" {
		if _, err := currency.ParseISO(d.Organization.Currency); err != nil {
			v.add("organization.currency", "is not a valid ISO 4217 currency code")
		}
	}

	categories := make(map[string]bool)
	categoryIDs := make(map[uuid.UUID]bool)
	for i, c := range d.BudgetCategories {
		v.unique(categoryIDs, fmt.Sprintf("budgetCategories[%d].id", i), c.ID, "is used by another budget category")

		field := fmt.Sprintf("budgetCategories[%d].name", i)
		v.required(field, c.Name)

		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name != "" && categories[name] {
			v.add(field, "is used by another budget category")
		}
		categories[name] = true
	}

	departments := make(map[string]bool)
	departmentIDs := make(map[uuid.UUID]bool)
	for i, dept := range d.Departments {
		field := fmt.Sprintf("departments[%d]", i)
		v.unique(departmentIDs, field+".id", dept.ID, "is used by another department")
		v.required(field+".name", dept.Name)
		v.notNegative(field+".totalBudget", dept.TotalBudget)

		name := strings.ToLower(strings.TrimSpace(dept.Name))
		if name != "" && departments[name] {
			v.add(field+".name", "is used by another department")
		}
		departments[name] = true
	}

	return v.err()
}

// ValidateDepartment checks that the department draft can be committed.
func ValidateDepartment(r *DepartmentReview) error {
	v := &ValidationError{}

	if r.DepartmentID == uuid.Nil {
		v.add("departmentId", "is required")
	}

	managerIDs := make(map[uuid.UUID]bool)
	for i, m := range r.Draft.Managers {
		v.unique(managerIDs, fmt.Sprintf("managers[%d].id", i), m.ID, "is used by another manager")
		v.required(fmt.Sprintf("managers[%d].name", i), m.Name)
	}

	teamIDs := make(map[uuid.UUID]bool)
	for i, t := range r.Draft.Teams {
		field := fmt.Sprintf("teams[%d]", i)
		v.unique(teamIDs, field+".id", t.ID, "is used by another team")
		v.required(field+".name", t.Name)

		if t.ManagerID == uuid.Nil {
			v.add(field+".managerId", "is required")
		}

		if t.Budget != nil {
			v.notNegative(field+".budget.totalAmount", t.Budget.TotalAmount)
		}
	}

	return v.err()
}
