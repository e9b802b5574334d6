package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Organization is the root of an onboarding. Departments and budget
// categories reference it.
type Organization struct {
	DefaultModel
	Name             string           `json:"name" example:"Acme"`
	LeaderName       string           `json:"leaderName" example:"Road Runner"`
	TotalBudget      decimal.Decimal  `json:"totalBudget" example:"100000" gorm:"type:DECIMAL(20,8)"`
	Currency         string           `json:"currency" example:"USD"` // ISO 4217 code, may be empty
	BudgetCategories []BudgetCategory `json:"budgetCategories"`
}

func (o *Organization) BeforeSave(_ *gorm.DB) error {
	o.Name = strings.TrimSpace(o.Name)
	o.LeaderName = strings.TrimSpace(o.LeaderName)
	o.Currency = strings.ToUpper(strings.TrimSpace(o.Currency))

	return nil
}

// BudgetCategory is a spending category defined for an organization.
type BudgetCategory struct {
	DefaultModel
	Name           string    `json:"name" example:"Travel" gorm:"uniqueIndex:budget_category_organization_name"`
	Description    string    `json:"description" example:"Flights and hotels"`
	OrganizationID uuid.UUID `json:"organizationId" example:"3b1ea324-d438-4419-882a-2fc91d71772f" gorm:"uniqueIndex:budget_category_organization_name"`
}

func (c *BudgetCategory) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	return nil
}
