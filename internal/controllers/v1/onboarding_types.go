package v1

import (
	"time"

	"github.com/envelope-zero/onboarding/internal/httperror"
	"github.com/envelope-zero/onboarding/internal/wizard"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrganizationEditable contains the organization fields of a draft.
type OrganizationEditable struct {
	Name        *string          `json:"name" example:"Acme"`                               // Name of the organization
	LeaderName  *string          `json:"leaderName" example:"Road Runner"`                  // Name of the organization's leader
	TotalBudget *decimal.Decimal `json:"totalBudget" example:"100000" swaggertype:"string"` // Budget of the whole organization
	Currency    string           `json:"currency" example:"USD"`                            // ISO 4217 currency code. Optional
}

type CategoryEditable struct {
	ID          uuid.UUID `json:"id" example:"2e0b0ad8-3da1-4c18-8d8f-1f2a3c0e1111"` // Optional. Generated when the organization is committed
	Name        string    `json:"name" example:"Travel"`
	Description string    `json:"description" example:"Flights and hotels"`
}

type DepartmentEditable struct {
	ID                 uuid.UUID       `json:"id" example:"0f0e3cbe-8e25-4a7b-b3c8-6c1e1f0b2222"` // Optional. Generated when the department is committed
	Name               string          `json:"name" example:"Engineering"`
	DepartmentHeadName string          `json:"departmentHeadName" example:"Ada Lovelace"`
	TotalBudget        decimal.Decimal `json:"totalBudget" example:"60000" swaggertype:"string"`
}

// OrganizationDraftEditable is everything the organization wizard collects.
type OrganizationDraftEditable struct {
	Organization     OrganizationEditable `json:"organization"`
	BudgetCategories []CategoryEditable   `json:"budgetCategories"`
	Departments      []DepartmentEditable `json:"departments"`
}

func (e OrganizationDraftEditable) draft() wizard.OrganizationDraft {
	d := wizard.OrganizationDraft{
		Organization: wizard.OrganizationDetails{
			Name:        e.Organization.Name,
			LeaderName:  e.Organization.LeaderName,
			TotalBudget: e.Organization.TotalBudget,
			Currency:    e.Organization.Currency,
		},
	}

	for _, c := range e.BudgetCategories {
		d.BudgetCategories = append(d.BudgetCategories, wizard.CategoryDraft{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		})
	}

	for _, dept := range e.Departments {
		d.Departments = append(d.Departments, wizard.DepartmentEntry{
			ID:                 dept.ID,
			Name:               dept.Name,
			DepartmentHeadName: dept.DepartmentHeadName,
			TotalBudget:        dept.TotalBudget,
		})
	}

	return d
}

func newOrganizationDraftEditable(d wizard.OrganizationDraft) OrganizationDraftEditable {
	e := OrganizationDraftEditable{
		Organization: OrganizationEditable{
			Name:        d.Organization.Name,
			LeaderName:  d.Organization.LeaderName,
			TotalBudget: d.Organization.TotalBudget,
			Currency:    d.Organization.Currency,
		},
		BudgetCategories: make([]CategoryEditable, 0, len(d.BudgetCategories)),
		Departments:      make([]DepartmentEditable, 0, len(d.Departments)),
	}

	for _, c := range d.BudgetCategories {
		e.BudgetCategories = append(e.BudgetCategories, CategoryEditable(c))
	}

	for _, dept := range d.Departments {
		e.Departments = append(e.Departments, DepartmentEditable(dept))
	}

	return e
}

type ManagerEditable struct {
	ID   uuid.UUID `json:"id" example:"5b9a2d6e-3c1f-4d8e-9a7b-0c1d2e3f4444"` // Optional. Teams reference managers by this ID
	Name string    `json:"name" example:"Grace Hopper"`
}

type BudgetEditable struct {
	TotalAmount decimal.Decimal `json:"totalAmount" example:"4000" swaggertype:"string"`
}

type TeamEditable struct {
	ID        uuid.UUID       `json:"id" example:"9d7c6b5a-4e3f-4a2b-8c1d-0e9f8a7b3333"` // Optional. Generated when the team is committed
	Name      string          `json:"name" example:"Platform"`
	ManagerID uuid.UUID       `json:"managerId" example:"5b9a2d6e-3c1f-4d8e-9a7b-0c1d2e3f4444"`
	Budget    *BudgetEditable `json:"budget"` // Teams without a budget are not committed
}

// DepartmentDraftEditable is everything the department wizard collects.
type DepartmentDraftEditable struct {
	Teams    []TeamEditable    `json:"teams"`
	Managers []ManagerEditable `json:"managers"`
}

func (e DepartmentDraftEditable) draft() wizard.DepartmentDraft {
	var d wizard.DepartmentDraft

	for _, m := range e.Managers {
		d.Managers = append(d.Managers, wizard.ManagerDraft(m))
	}

	for _, t := range e.Teams {
		team := wizard.TeamDraft{
			ID:        t.ID,
			Name:      t.Name,
			ManagerID: t.ManagerID,
		}

		if t.Budget != nil {
			team.Budget = &wizard.BudgetDraft{TotalAmount: t.Budget.TotalAmount}
		}

		d.Teams = append(d.Teams, team)
	}

	return d
}

type OrganizationSummary struct {
	TotalBudget            decimal.Decimal `json:"totalBudget" example:"100000" swaggertype:"string"`
	TotalDepartmentBudgets decimal.Decimal `json:"totalDepartmentBudgets" example:"110000" swaggertype:"string"`
	RemainingBudget        decimal.Decimal `json:"remainingBudget" example:"-10000" swaggertype:"string"`
	RemainingFormatted     string          `json:"remainingFormatted" example:"USD -10,000.00"` // The remaining budget for display
	OverBudget             bool            `json:"overBudget" example:"true"`                   // The departments exceed the organization budget. This does not block the submit
}

func newOrganizationSummary(s wizard.OrganizationSummary, currency string) OrganizationSummary {
	return OrganizationSummary{
		TotalBudget:            s.TotalBudget,
		TotalDepartmentBudgets: s.TotalDepartmentBudgets,
		RemainingBudget:        s.RemainingBudget,
		RemainingFormatted:     wizard.FormatAmount(s.RemainingBudget, currency),
		OverBudget:             s.OverBudget,
	}
}

// DepartmentSetup is the department modal shown while an onboarding awaits a department.
type DepartmentSetup struct {
	Index            int             `json:"index" example:"0"` // Position of the department in the draft
	DepartmentID     uuid.UUID       `json:"departmentId" example:"0f0e3cbe-8e25-4a7b-b3c8-6c1e1f0b2222"`
	DepartmentName   string          `json:"departmentName" example:"Engineering"`
	Title            string          `json:"title" example:"Setup Engineering"`
	DepartmentBudget decimal.Decimal `json:"departmentBudget" example:"60000" swaggertype:"string"`
	Submitted        bool            `json:"submitted" example:"false"` // Teams have been committed, but the next department could not be
}

func newDepartmentSetup(index int, m *wizard.DepartmentSetupModal) *DepartmentSetup {
	return &DepartmentSetup{
		Index:            index,
		DepartmentID:     m.DepartmentID,
		DepartmentName:   m.DepartmentName,
		Title:            m.Title(),
		DepartmentBudget: m.DepartmentBudget,
		Submitted:        m.Wizard().Submitted(),
	}
}

type TeamLine struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name" example:"Platform"`
	ManagerName string           `json:"managerName" example:"Grace Hopper"`
	Budget      *decimal.Decimal `json:"budget" swaggertype:"string"` // null for teams that will not be committed
}

type DepartmentSummary struct {
	DepartmentBudget   decimal.Decimal        `json:"departmentBudget" example:"10000" swaggertype:"string"`
	TotalAllocated     decimal.Decimal        `json:"totalAllocated" example:"7000" swaggertype:"string"`
	Remaining          decimal.Decimal        `json:"remaining" example:"3000" swaggertype:"string"`
	RemainingFormatted string                 `json:"remainingFormatted" example:"USD 3,000.00"`
	OverAllocated      bool                   `json:"overAllocated" example:"false"`
	Teams              []TeamLine             `json:"teams"`
	Errors             []httperror.FieldError `json:"errors"` // Problems that would prevent the submit
}

func newDepartmentSummary(s wizard.DepartmentSummary, currency string) DepartmentSummary {
	summary := DepartmentSummary{
		DepartmentBudget:   s.DepartmentBudget,
		TotalAllocated:     s.TotalAllocated,
		Remaining:          s.Remaining,
		RemainingFormatted: wizard.FormatAmount(s.Remaining, currency),
		OverAllocated:      s.OverAllocated,
		Teams:              make([]TeamLine, 0, len(s.Teams)),
		Errors:             []httperror.FieldError{},
	}

	for _, t := range s.Teams {
		summary.Teams = append(summary.Teams, TeamLine(t))
	}

	return summary
}

type OnboardingLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/onboardings/1a2b3c4d-0000-4000-8000-000000000000"`
	Submit     string `json:"submit" example:"https://example.com/api/v1/onboardings/1a2b3c4d-0000-4000-8000-000000000000/submit"`
	Department string `json:"department" example:"https://example.com/api/v1/onboardings/1a2b3c4d-0000-4000-8000-000000000000/department"`
}

// Onboarding is an organization wizard session.
type Onboarding struct {
	ID               uuid.UUID                 `json:"id" example:"1a2b3c4d-0000-4000-8000-000000000000"`
	CreatedAt        time.Time                 `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`
	Phase            string                    `json:"phase" example:"awaitingDepartment" enums:"reviewing,awaitingDepartment,done"`
	OrganizationID   *uuid.UUID                `json:"organizationId"` // Set once the organization has been committed
	Departments      []uuid.UUID               `json:"departments"`    // IDs of the departments in setup order. Empty before the submit
	Draft            OrganizationDraftEditable `json:"draft"`
	Summary          OrganizationSummary       `json:"summary"`
	ActiveDepartment *DepartmentSetup          `json:"activeDepartment"` // Only set while awaiting a department
	Links            OnboardingLinks           `json:"links"`
}

func newOnboarding(url string, s *wizard.Session, r *wizard.OrganizationReview) Onboarding {
	self := url + "/v1/onboardings/" + s.ID.String()
	state := r.State()
	draft := r.Draft()

	o := Onboarding{
		ID:          s.ID,
		CreatedAt:   s.CreatedAt,
		Phase:       state.Phase.String(),
		Departments: make([]uuid.UUID, 0, len(r.Departments())),
		Draft:       newOrganizationDraftEditable(draft),
		Summary:     newOrganizationSummary(r.Summary(), draft.Organization.Currency),
		Links: OnboardingLinks{
			Self:       self,
			Submit:     self + "/submit",
			Department: self + "/department",
		},
	}

	if id := r.OrganizationID(); id != uuid.Nil {
		o.OrganizationID = &id
	}

	for _, d := range r.Departments() {
		o.Departments = append(o.Departments, d.ID)
	}

	if m := r.ActiveModal(); m != nil {
		o.ActiveDepartment = newDepartmentSetup(state.Department, m)
	}

	return o
}

type OnboardingResponse struct {
	Data Onboarding `json:"data"` // Data for the onboarding
}

type DepartmentSetupResponse struct {
	Data DepartmentSetup `json:"data"` // The department currently being set up
}

type DepartmentSummaryResponse struct {
	Data DepartmentSummary `json:"data"` // Preview of the department review
}
