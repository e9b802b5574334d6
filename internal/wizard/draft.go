package wizard

import (
	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrganizationDetails holds the organization fields collected by the
// first wizard step. Nil fields have not been filled in.
type OrganizationDetails struct {
	Name        *string
	LeaderName  *string
	TotalBudget *decimal.Decimal
	Currency    string
}

// CategoryDraft is a budget category that has not been committed.
type CategoryDraft struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// DepartmentEntry is a department as entered in the organization wizard.
type DepartmentEntry struct {
	ID                 uuid.UUID
	Name               string
	DepartmentHeadName string
	TotalBudget        decimal.Decimal
}

// OrganizationDraft is everything the organization wizard collected.
type OrganizationDraft struct {
	Organization     OrganizationDetails
	BudgetCategories []CategoryDraft
	Departments      []DepartmentEntry
}

func (d DepartmentEntry) model(organizationID uuid.UUID) models.Department {
	return models.Department{
		DefaultModel:       models.DefaultModel{ID: d.ID},
		Name:               d.Name,
		DepartmentHeadName: d.DepartmentHeadName,
		TotalBudget:        d.TotalBudget,
		OrganizationID:     organizationID,
	}
}

func (c CategoryDraft) model(organizationID uuid.UUID) models.BudgetCategory {
	return models.BudgetCategory{
		DefaultModel:   models.DefaultModel{ID: c.ID},
		Name:           c.Name,
		Description:    c.Description,
		OrganizationID: organizationID,
	}
}

// BudgetDraft is a team budget before it has been assigned an ID.
type BudgetDraft struct {
	TotalAmount decimal.Decimal
}

// TeamDraft is a team as entered in the department wizard. Teams
// without a Budget are not committed.
type TeamDraft struct {
	ID        uuid.UUID
	Name      string
	ManagerID uuid.UUID
	Budget    *BudgetDraft
}

// ManagerDraft is a manager as entered in the department wizard.
type ManagerDraft struct {
	ID   uuid.UUID
	Name string
}

// DepartmentDraft is everything the department wizard collected.
type DepartmentDraft struct {
	Teams    []TeamDraft
	Managers []ManagerDraft
}

func (m ManagerDraft) model() models.Manager {
	return models.Manager{
		DefaultModel: models.DefaultModel{ID: m.ID},
		Name:         m.Name,
	}
}

func (t TeamDraft) model(departmentID uuid.UUID, budget *models.Budget) models.Team {
	return models.Team{
		DefaultModel: models.DefaultModel{ID: t.ID},
		Name:         t.Name,
		ManagerID:    t.ManagerID,
		DepartmentID: departmentID,
		Budget:       budget,
		BudgetID:     &budget.ID,
	}
}
