package wizard

import (
	"fmt"

	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/envelope-zero/onboarding/internal/store"
	ez_uuid "github.com/envelope-zero/onboarding/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepartmentSetupModal overlays the department wizard for one department.
// It holds no state of its own; the completion of the wrapped wizard is
// forwarded as the close signal.
type DepartmentSetupModal struct {
	DepartmentID     uuid.UUID
	DepartmentName   string
	DepartmentBudget decimal.Decimal

	wizard  *DepartmentReview
	onClose func() error
}

func NewDepartmentSetupModal(s store.Store, newID ez_uuid.Generator, department models.Department, onClose func() error) *DepartmentSetupModal {
	m := &DepartmentSetupModal{
		DepartmentID:     department.ID,
		DepartmentName:   department.Name,
		DepartmentBudget: department.TotalBudget,
		onClose:          onClose,
	}

	m.wizard = NewDepartmentReview(s, newID, department.ID, department.TotalBudget)
	m.wizard.OnComplete = m.Close

	return m
}

func (m *DepartmentSetupModal) Title() string {
	return fmt.Sprintf("Setup %s", m.DepartmentName)
}

// Wizard returns the department wizard shown in the modal.
func (m *DepartmentSetupModal) Wizard() *DepartmentReview {
	return m.wizard
}

// Submit commits the draft through the wrapped wizard, which closes the
// modal on success.
func (m *DepartmentSetupModal) Submit(draft DepartmentDraft) error {
	if m.wizard.Submitted() {
		return ErrAlreadySubmitted
	}

	m.wizard.Draft = draft
	return m.wizard.Submit()
}

// Close emits the close signal. Closing without submitting dismisses
// the department wizard.
func (m *DepartmentSetupModal) Close() error {
	if m.onClose == nil {
		return nil
	}

	return m.onClose()
}
