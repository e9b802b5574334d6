// Package store persists committed onboarding records.
package store

import (
	"github.com/envelope-zero/onboarding/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the budget store the wizards commit to. Every add appends one
// record; records are never updated or deleted through it.
//
// Adds accept caller supplied IDs. A record without an ID is assigned
// one when it is committed.
type Store interface {
	AddOrganization(*models.Organization) error
	AddDepartment(*models.Department) error
	AddTeam(*models.Team) error
	AddManager(*models.Manager) error
	AddBudget(*models.Budget) error

	// Transaction runs fn with a Store whose adds are committed together.
	// When fn returns an error, none of them are.
	Transaction(fn func(Store) error) error
}

// Gorm is a Store backed by a gorm database.
type Gorm struct {
	db *gorm.DB
}

var _ Store = (*Gorm)(nil)

func New(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// AddOrganization commits the organization together with its budget categories.
//
// The categories are created explicitly since gorm upserts associations,
// which would move an existing category with the same ID.
func (s *Gorm) AddOrganization(o *models.Organization) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(o).Error; err != nil {
			return err
		}

		if len(o.BudgetCategories) == 0 {
			return nil
		}

		for i := range o.BudgetCategories {
			o.BudgetCategories[i].OrganizationID = o.ID
		}

		return tx.Create(&o.BudgetCategories).Error
	})
}

func (s *Gorm) AddDepartment(d *models.Department) error {
	return s.db.Omit(clause.Associations).Create(d).Error
}

// AddTeam commits the team only. Its budget must have been committed before.
func (s *Gorm) AddTeam(t *models.Team) error {
	if t.Budget != nil {
		t.BudgetID = &t.Budget.ID
	}

	return s.db.Omit(clause.Associations).Create(t).Error
}

func (s *Gorm) AddManager(m *models.Manager) error {
	return s.db.Create(m).Error
}

func (s *Gorm) AddBudget(b *models.Budget) error {
	return s.db.Create(b).Error
}

func (s *Gorm) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Gorm{db: tx})
	})
}
