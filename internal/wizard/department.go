package wizard

import (
	"fmt"

	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/envelope-zero/onboarding/internal/store"
	ez_uuid "github.com/envelope-zero/onboarding/internal/uuid"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DepartmentReview is the last step of the department wizard.
type DepartmentReview struct {
	DepartmentID     uuid.UUID
	DepartmentBudget decimal.Decimal
	Draft            DepartmentDraft

	// OnBack is called when the user returns to the previous step.
	OnBack func()

	// OnComplete is called after all records have been committed.
	OnComplete func() error

	store     store.Store
	newID     ez_uuid.Generator
	submitted bool
}

func NewDepartmentReview(s store.Store, newID ez_uuid.Generator, departmentID uuid.UUID, budget decimal.Decimal) *DepartmentReview {
	if newID == nil {
		newID = ez_uuid.Default
	}

	return &DepartmentReview{
		DepartmentID:     departmentID,
		DepartmentBudget: budget,
		store:            s,
		newID:            newID,
	}
}

// Summary returns the allocation overview for the current draft.
func (r *DepartmentReview) Summary() DepartmentSummary {
	return SummarizeDepartment(r.DepartmentBudget, r.Draft)
}

func (r *DepartmentReview) Validate() error {
	return ValidateDepartment(r)
}

// Submitted reports whether the draft has been committed.
func (r *DepartmentReview) Submitted() bool {
	return r.submitted
}

func (r *DepartmentReview) Back() {
	if r.OnBack != nil {
		r.OnBack()
	}
}

// Submit commits all managers in draft order, then every team that has a
// budget together with that budget under a fresh ID. Teams without a
// budget are skipped. The commits are atomic: if one fails, none persist
// and OnComplete is not called.
//
// Over-allocation of the department budget does not prevent the submit.
func (r *DepartmentReview) Submit() error {
	if r.submitted {
		return ErrAlreadySubmitted
	}

	if err := r.Validate(); err != nil {
		return err
	}

	err := r.store.Transaction(func(tx store.Store) error {
		for _, m := range r.Draft.Managers {
			manager := m.model()
			if err := tx.AddManager(&manager); err != nil {
				return fmt.Errorf("committing manager %q: %w", m.Name, err)
			}
		}

		for _, t := range r.Draft.Teams {
			if t.Budget == nil {
				log.Debug().Str("department", r.DepartmentID.String()).Str("team", t.Name).Msg("skipping team without budget")
				continue
			}

			budget := models.Budget{
				DefaultModel: models.DefaultModel{ID: r.newID()},
				TotalAmount:  t.Budget.TotalAmount,
			}
			if err := tx.AddBudget(&budget); err != nil {
				return fmt.Errorf("committing budget for team %q: %w", t.Name, err)
			}

			team := t.model(r.DepartmentID, &budget)
			if err := tx.AddTeam(&team); err != nil {
				return fmt.Errorf("committing team %q: %w", t.Name, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.submitted = true

	summary := r.Summary()
	log.Debug().
		Str("department", r.DepartmentID.String()).
		Int("managers", len(r.Draft.Managers)).
		Int("teams", len(r.Draft.Teams)).
		Str("allocated", summary.TotalAllocated.String()).
		Bool("overAllocated", summary.OverAllocated).
		Msg("department committed")

	if r.OnComplete != nil {
		return r.OnComplete()
	}

	return nil
}
