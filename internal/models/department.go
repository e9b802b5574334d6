package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Department is a part of an organization with its own budget ceiling.
type Department struct {
	DefaultModel
	Name               string          `json:"name" example:"Engineering" gorm:"uniqueIndex:department_organization_name"`
	DepartmentHeadName string          `json:"departmentHeadName" example:"Ada Lovelace"`
	TotalBudget        decimal.Decimal `json:"totalBudget" example:"60000" gorm:"type:DECIMAL(20,8)"`
	Organization       Organization    `json:"-"`
	OrganizationID     uuid.UUID       `json:"organizationId" example:"3b1ea324-d438-4419-882a-2fc91d71772f" gorm:"uniqueIndex:department_organization_name"`
}

func (d *Department) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	d.DepartmentHeadName = strings.TrimSpace(d.DepartmentHeadName)

	return nil
}

// Manager leads one or more teams.
type Manager struct {
	DefaultModel
	Name string `json:"name" example:"Grace Hopper"`
}

func (m *Manager) BeforeSave(_ *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	return nil
}

// Team belongs to a department and is led by a manager. Only teams
// with a budget are ever committed.
type Team struct {
	DefaultModel
	Name         string     `json:"name" example:"Platform"`
	Manager      Manager    `json:"-"`
	ManagerID    uuid.UUID  `json:"managerId" example:"5b9a2d6e-3c1f-4d8e-9a7b-0c1d2e3f4444" gorm:"index"`
	Department   Department `json:"-"`
	DepartmentID uuid.UUID  `json:"departmentId" example:"0f0e3cbe-8e25-4a7b-b3c8-6c1e1f0b2222" gorm:"index"`
	Budget       *Budget    `json:"budget"`
	BudgetID     *uuid.UUID `json:"budgetId" example:"7a6b5c4d-3e2f-4a1b-9c8d-7e6f5a4b5555"`
}

func (t *Team) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	return nil
}

// Budget is the amount of money allocated to a team.
type Budget struct {
	DefaultModel
	TotalAmount decimal.Decimal `json:"totalAmount" example:"4000" gorm:"type:DECIMAL(20,8)"`
}
