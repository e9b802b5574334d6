package wizard

import (
	"fmt"

	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/envelope-zero/onboarding/internal/store"
	ez_uuid "github.com/envelope-zero/onboarding/internal/uuid"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Phase is the position of an OrganizationReview in the setup cascade.
type Phase int

const (
	Reviewing Phase = iota
	AwaitingDepartment
	Done
)

func (p Phase) String() string {
	switch p {
	case Reviewing:
		return "reviewing"
	case AwaitingDepartment:
		return "awaitingDepartment"
	case Done:
		return "done"
	}

	return fmt.Sprintf("Phase(%d)", int(p))
}

// noActiveDepartment is the department index outside of AwaitingDepartment.
const noActiveDepartment = -1

// State is the phase plus, while awaiting a department, its index.
type State struct {
	Phase      Phase
	Department int
}

// OrganizationReview is the last step of the organization wizard.
//
// Submit moves it from Reviewing to AwaitingDepartment(0). Every close of
// the mounted DepartmentSetupModal commits the next department and
// mounts its modal, until the last one closes and the review is Done.
type OrganizationReview struct {
	// OnBack is called when the user returns to the previous step.
	OnBack func()

	// OnComplete is called once every department has been set up.
	OnComplete func() error

	draft   OrganizationDraft
	store   store.Store
	newID   ez_uuid.Generator
	phase   Phase
	current int

	organizationID uuid.UUID
	departments    []models.Department
	modal          *DepartmentSetupModal
}

func NewOrganizationReview(s store.Store, newID ez_uuid.Generator, draft OrganizationDraft) *OrganizationReview {
	if newID == nil {
		newID = ez_uuid.Default
	}

	return &OrganizationReview{
		draft:   draft,
		store:   s,
		newID:   newID,
		phase:   Reviewing,
		current: noActiveDepartment,
	}
}

func (r *OrganizationReview) State() State {
	return State{Phase: r.phase, Department: r.current}
}

func (r *OrganizationReview) Draft() OrganizationDraft {
	return r.draft
}

// SetDraft replaces the draft. This is only possible before the submit.
func (r *OrganizationReview) SetDraft(d OrganizationDraft) error {
	if r.phase != Reviewing {
		return ErrNotReviewing
	}

	r.draft = d
	return nil
}

// OrganizationID is the ID of the committed organization, uuid.Nil
// before the submit.
func (r *OrganizationReview) OrganizationID() uuid.UUID {
	return r.organizationID
}

// Departments returns the departments with the organization ID attached.
// It is empty before the submit.
func (r *OrganizationReview) Departments() []models.Department {
	return r.departments
}

func (r *OrganizationReview) Summary() OrganizationSummary {
	return SummarizeOrganization(r.draft)
}

func (r *OrganizationReview) Validate() error {
	return ValidateOrganization(r.draft)
}

func (r *OrganizationReview) Back() {
	if r.OnBack != nil {
		r.OnBack()
	}
}

// ActiveModal returns the mounted department modal. It is nil unless the
// review is awaiting a department.
func (r *OrganizationReview) ActiveModal() *DepartmentSetupModal {
	if r.phase != AwaitingDepartment {
		return nil
	}

	return r.modal
}

// Submit commits the organization with its budget categories and the first
// department in one transaction, then mounts the first department's modal.
//
// An organization without departments is Done right away.
func (r *OrganizationReview) Submit() error {
	if r.phase != Reviewing {
		return ErrAlreadySubmitted
	}

	if err := r.Validate(); err != nil {
		return err
	}

	organizationID := r.newID()

	categories := make([]models.BudgetCategory, 0, len(r.draft.BudgetCategories))
	for _, c := range r.draft.BudgetCategories {
		categories = append(categories, c.model(organizationID))
	}

	organization := models.Organization{
		DefaultModel:     models.DefaultModel{ID: organizationID},
		Name:             *r.draft.Organization.Name,
		LeaderName:       *r.draft.Organization.LeaderName,
		TotalBudget:      *r.draft.Organization.TotalBudget,
		Currency:         r.draft.Organization.Currency,
		BudgetCategories: categories,
	}

	departments := make([]models.Department, 0, len(r.draft.Departments))
	for _, d := range r.draft.Departments {
		departments = append(departments, d.model(organizationID))
	}

	err := r.store.Transaction(func(tx store.Store) error {
		if err := tx.AddOrganization(&organization); err != nil {
			return fmt.Errorf("committing organization: %w", err)
		}

		if len(departments) == 0 {
			return nil
		}

		if err := tx.AddDepartment(&departments[0]); err != nil {
			return fmt.Errorf("committing department %q: %w", departments[0].Name, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.organizationID = organizationID
	r.departments = departments

	summary := r.Summary()
	log.Debug().
		Str("organization", organizationID.String()).
		Int("departments", len(departments)).
		Str("remaining", summary.RemainingBudget.String()).
		Bool("overBudget", summary.OverBudget).
		Msg("organization committed")

	if len(departments) == 0 {
		return r.finish()
	}

	r.mount(0)
	return nil
}

// mount shows the modal for the department at index i.
func (r *OrganizationReview) mount(i int) {
	r.phase = AwaitingDepartment
	r.current = i
	r.modal = NewDepartmentSetupModal(r.store, r.newID, r.departments[i], func() error {
		return r.departmentCompleted(i)
	})

	log.Debug().
		Str("organization", r.organizationID.String()).
		Str("department", r.departments[i].ID.String()).
		Int("index", i).
		Msg("department setup started")
}

// departmentCompleted handles the close signal of the modal for department i.
func (r *OrganizationReview) departmentCompleted(i int) error {
	if r.phase != AwaitingDepartment || r.current != i {
		return ErrNoActiveDepartment
	}

	next := i + 1
	if next < len(r.departments) {
		if err := r.store.AddDepartment(&r.departments[next]); err != nil {
			return fmt.Errorf("committing department %q: %w", r.departments[next].Name, err)
		}

		r.mount(next)
		return nil
	}

	return r.finish()
}

func (r *OrganizationReview) finish() error {
	r.phase = Done
	r.current = noActiveDepartment
	r.modal = nil

	log.Debug().Str("organization", r.organizationID.String()).Msg("organization setup complete")

	if r.OnComplete != nil {
		return r.OnComplete()
	}

	return nil
}
