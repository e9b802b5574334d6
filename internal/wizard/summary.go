package wizard

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// OrganizationSummary is the budget overview of the organization review.
// A negative RemainingBudget is flagged with OverBudget but never blocks
// the submit.
type OrganizationSummary struct {
	TotalBudget            decimal.Decimal
	TotalDepartmentBudgets decimal.Decimal
	RemainingBudget        decimal.Decimal
	OverBudget             bool
}

// SummarizeOrganization computes the budget overview for a draft.
// A missing organization budget counts as zero.
func SummarizeOrganization(d OrganizationDraft) OrganizationSummary {
	total := decimal.Zero
	if d.Organization.TotalBudget != nil {
		total = *d.Organization.TotalBudget
	}

	departments := decimal.Zero
	for _, dept := range d.Departments {
		departments = departments.Add(dept.TotalBudget)
	}

	remaining := total.Sub(departments)

	return OrganizationSummary{
		TotalBudget:            total,
		TotalDepartmentBudgets: departments,
		RemainingBudget:        remaining,
		OverBudget:             remaining.IsNegative(),
	}
}

// TeamLine is one team in the department review.
type TeamLine struct {
	ID          uuid.UUID
	Name        string
	ManagerName string
	Budget      *decimal.Decimal // nil when the team has no budget and will not be committed
}

// DepartmentSummary is the budget overview of the department review.
// A negative Remaining is flagged with OverAllocated but never blocks
// the submit.
type DepartmentSummary struct {
	DepartmentBudget decimal.Decimal
	TotalAllocated   decimal.Decimal
	Remaining        decimal.Decimal
	OverAllocated    bool
	Teams            []TeamLine
}

// SummarizeDepartment computes the budget overview for a department draft.
// Teams without a budget contribute zero.
func SummarizeDepartment(ceiling decimal.Decimal, d DepartmentDraft) DepartmentSummary {
	allocated := decimal.Zero
	lines := make([]TeamLine, 0, len(d.Teams))

	for _, t := range d.Teams {
		line := TeamLine{
			ID:   t.ID,
			Name: t.Name,
		}

		if i := slices.IndexFunc(d.Managers, func(m ManagerDraft) bool { return m.ID == t.ManagerID }); i >= 0 {
			line.ManagerName = d.Managers[i].Name
		}

		if t.Budget != nil {
			amount := t.Budget.TotalAmount
			line.Budget = &amount
			allocated = allocated.Add(amount)
		}

		lines = append(lines, line)
	}

	remaining := ceiling.Sub(allocated)

	return DepartmentSummary{
		DepartmentBudget: ceiling,
		TotalAllocated:   allocated,
		Remaining:        remaining,
		OverAllocated:    remaining.IsNegative(),
		Teams:            lines,
	}
}
