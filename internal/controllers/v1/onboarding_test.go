package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/envelope-zero/onboarding/internal/controllers/v1"
	"github.com/envelope-zero/onboarding/internal/httperror"
	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/envelope-zero/onboarding/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOnboardingCreate() {
	o := suite.createTestOnboarding(testDraft(60000, 50000))

	assert.NotEqual(suite.T(), uuid.Nil, o.ID)
	assert.Equal(suite.T(), "reviewing", o.Phase)
	assert.Nil(suite.T(), o.OrganizationID)
	assert.Nil(suite.T(), o.ActiveDepartment)
	assert.Empty(suite.T(), o.Departments)
	assert.Equal(suite.T(), "http://example.com/v1/onboardings/"+o.ID.String(), o.Links.Self)

	assert.True(suite.T(), o.Summary.TotalDepartmentBudgets.Equal(decimal.NewFromInt(110000)))
	assert.True(suite.T(), o.Summary.RemainingBudget.Equal(decimal.NewFromInt(-10000)))
	assert.True(suite.T(), o.Summary.OverBudget)
	assert.Equal(suite.T(), "USD -10,000.00", o.Summary.RemainingFormatted)

	// Nothing is committed before the submit
	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Organization{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestOnboardingCreateBadRequest() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Broken JSON", `{ "organization": `},
		{"Wrong type", `{ "departments": "none" }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/onboardings", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestOnboardingGet() {
	o := suite.createTestOnboarding(testDraft(1000))

	got := suite.step(http.MethodGet, o.Links.Self, "", http.StatusOK)
	assert.Equal(suite.T(), o.ID, got.ID)
	assert.Equal(suite.T(), "Acme", *got.Draft.Organization.Name)
	require.Len(suite.T(), got.Draft.Departments, 1)
	assert.Equal(suite.T(), "Engineering", got.Draft.Departments[0].Name)
}

func (suite *TestSuiteStandard) TestOnboardingNotFound() {
	id := uuid.New().String()

	for _, path := range []string{"", "/submit", "/department", "/department/review"} {
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodOptions} {
			r := test.Request(suite.T(), method, "http://example.com/v1/onboardings/"+id+path, `{}`)
			if r.Code == http.StatusMethodNotAllowed {
				continue
			}

			test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
		}
	}
}

func (suite *TestSuiteStandard) TestOnboardingInvalidID() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/onboardings/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestOnboardingOptions() {
	o := suite.createTestOnboarding(testDraft())

	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/v1/onboardings", "OPTIONS, POST"},
		{o.Links.Self, "OPTIONS, GET, PATCH, DELETE"},
		{o.Links.Submit, "OPTIONS, POST"},
		{o.Links.Department, "OPTIONS, GET, POST, DELETE"},
		{o.Links.Department + "/review", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodOptions, tt.path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		assert.Equal(suite.T(), tt.allow, r.Header().Get("allow"), tt.path)
	}
}

func (suite *TestSuiteStandard) TestOnboardingUpdate() {
	o := suite.createTestOnboarding(testDraft(1000))

	draft := testDraft(1000, 2000)
	draft.Organization.Name = ptr("Acme Corporation")

	updated := suite.step(http.MethodPatch, o.Links.Self, draft, http.StatusOK)
	assert.Equal(suite.T(), "Acme Corporation", *updated.Draft.Organization.Name)
	assert.Len(suite.T(), updated.Draft.Departments, 2)
	assert.True(suite.T(), updated.Summary.TotalDepartmentBudgets.Equal(decimal.NewFromInt(3000)))

	suite.step(http.MethodPost, o.Links.Submit, "", http.StatusOK)

	r := test.Request(suite.T(), http.MethodPatch, o.Links.Self, draft)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestOnboardingDelete() {
	o := suite.createTestOnboarding(testDraft())

	r := test.Request(suite.T(), http.MethodDelete, o.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, o.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, o.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOnboardingSubmitValidation() {
	draft := testDraft(100, 200)
	draft.Organization.LeaderName = nil
	draft.Departments[1].TotalBudget = decimal.NewFromInt(-1)

	o := suite.createTestOnboarding(draft)

	r := test.Request(suite.T(), http.MethodPost, o.Links.Submit, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var e httperror.Error
	test.DecodeResponse(suite.T(), &r, &e)
	assert.ElementsMatch(suite.T(), []httperror.FieldError{
		{Field: "organization.leaderName", Message: "is required"},
		{Field: "departments[1].totalBudget", Message: "must not be negative"},
	}, e.Fields)

	got := suite.step(http.MethodGet, o.Links.Self, "", http.StatusOK)
	assert.Equal(suite.T(), "reviewing", got.Phase)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Organization{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestOnboardingDuplicateDepartmentID() {
	draft := testDraft(100, 200)
	draft.Departments[1].ID = draft.Departments[0].ID

	o := suite.createTestOnboarding(draft)

	r := test.Request(suite.T(), http.MethodPost, o.Links.Submit, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var e httperror.Error
	test.DecodeResponse(suite.T(), &r, &e)
	assert.Equal(suite.T(), []httperror.FieldError{
		{Field: "departments[1].id", Message: "is used by another department"},
	}, e.Fields)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Organization{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestOnboardingSubmitTwice() {
	o := suite.createTestOnboarding(testDraft(100))

	suite.step(http.MethodPost, o.Links.Submit, "", http.StatusOK)
	suite.step(http.MethodPost, o.Links.Submit, "", http.StatusConflict)
}

func (suite *TestSuiteStandard) TestOnboardingWithoutDepartments() {
	o := suite.createTestOnboarding(testDraft())

	done := suite.step(http.MethodPost, o.Links.Submit, "", http.StatusOK)
	assert.Equal(suite.T(), "done", done.Phase)
	require.NotNil(suite.T(), done.OrganizationID)
	assert.Nil(suite.T(), done.ActiveDepartment)

	// Finished onboardings are removed
	r := test.Request(suite.T(), http.MethodGet, o.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, o.Links.Department, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOnboardingDepartmentBeforeSubmit() {
	o := suite.createTestOnboarding(testDraft(100))

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		r := test.Request(suite.T(), method, o.Links.Department, testDepartmentDraft())
		test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	}

	r := test.Request(suite.T(), http.MethodPost, o.Links.Department+"/review", testDepartmentDraft())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

// TestOnboardingFlow walks through an onboarding with two departments.
// The first department gets its teams, the second one is dismissed.
func (suite *TestSuiteStandard) TestOnboardingFlow() {
	draft := testDraft(10000, 20000)
	o := suite.createTestOnboarding(draft)

	// Submit the organization
	o = suite.step(http.MethodPost, o.Links.Submit, "", http.StatusOK)
	assert.Equal(suite.T(), "awaitingDepartment", o.Phase)
	require.NotNil(suite.T(), o.OrganizationID)
	assert.Equal(suite.T(), []uuid.UUID{draft.Departments[0].ID, draft.Departments[1].ID}, o.Departments)
	require.NotNil(suite.T(), o.ActiveDepartment)
	assert.Equal(suite.T(), 0, o.ActiveDepartment.Index)
	assert.Equal(suite.T(), "Setup Engineering", o.ActiveDepartment.Title)

	organization, err := getOrganization(*o.OrganizationID)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), organization.BudgetCategories, 1)

	// Only the first department is committed
	var departments int64
	require.Nil(suite.T(), models.DB.Model(&models.Department{}).Count(&departments).Error)
	assert.Equal(suite.T(), int64(1), departments)

	// The department setup
	r := test.Request(suite.T(), http.MethodGet, o.Links.Department, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var setup v1.DepartmentSetupResponse
	test.DecodeResponse(suite.T(), &r, &setup)
	assert.Equal(suite.T(), draft.Departments[0].ID, setup.Data.DepartmentID)
	assert.True(suite.T(), setup.Data.DepartmentBudget.Equal(decimal.NewFromInt(10000)))
	assert.False(suite.T(), setup.Data.Submitted)

	// Preview the department review
	r = test.Request(suite.T(), http.MethodPost, o.Links.Department+"/review", testDepartmentDraft())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var summary v1.DepartmentSummaryResponse
	test.DecodeResponse(suite.T(), &r, &summary)
	assert.True(suite.T(), summary.Data.TotalAllocated.Equal(decimal.NewFromInt(4000)))
	assert.True(suite.T(), summary.Data.Remaining.Equal(decimal.NewFromInt(6000)))
	assert.Equal(suite.T(), "USD 6,000.00", summary.Data.RemainingFormatted)
	assert.False(suite.T(), summary.Data.OverAllocated)
	assert.Empty(suite.T(), summary.Data.Errors)
	require.Len(suite.T(), summary.Data.Teams, 2)
	assert.Equal(suite.T(), "Grace Hopper", summary.Data.Teams[0].ManagerName)
	assert.Nil(suite.T(), summary.Data.Teams[1].Budget)

	// Submit the teams of the first department
	o = suite.step(http.MethodPost, o.Links.Department, testDepartmentDraft(), http.StatusOK)
	assert.Equal(suite.T(), "awaitingDepartment", o.Phase)
	require.NotNil(suite.T(), o.ActiveDepartment)
	assert.Equal(suite.T(), 1, o.ActiveDepartment.Index)
	assert.Equal(suite.T(), "Setup Marketing", o.ActiveDepartment.Title)

	// Dismiss the second department
	o = suite.step(http.MethodDelete, o.Links.Department, "", http.StatusOK)
	assert.Equal(suite.T(), "done", o.Phase)
	assert.Nil(suite.T(), o.ActiveDepartment)

	// Verify the committed records
	require.Nil(suite.T(), models.DB.Model(&models.Department{}).Count(&departments).Error)
	assert.Equal(suite.T(), int64(2), departments)

	var teams []models.Team
	require.Nil(suite.T(), models.DB.Preload("Budget").Find(&teams).Error)
	require.Len(suite.T(), teams, 1, "the team without budget must not be committed")
	assert.Equal(suite.T(), "Platform", teams[0].Name)
	assert.Equal(suite.T(), draft.Departments[0].ID, teams[0].DepartmentID)
	require.NotNil(suite.T(), teams[0].Budget)
	assert.True(suite.T(), teams[0].Budget.TotalAmount.Equal(decimal.NewFromInt(4000)))

	var managers int64
	require.Nil(suite.T(), models.DB.Model(&models.Manager{}).Count(&managers).Error)
	assert.Equal(suite.T(), int64(2), managers)

	// The finished onboarding is removed
	r = test.Request(suite.T(), http.MethodDelete, o.Links.Department, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, o.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOnboardingDepartmentValidation() {
	o := suite.createTestOnboarding(testDraft(1000))
	o = suite.step(http.MethodPost, o.Links.Submit, "", http.StatusOK)

	department := testDepartmentDraft()
	department.Teams[0].ManagerID = uuid.Nil
	department.Teams[0].Budget.TotalAmount = decimal.NewFromInt(-5)

	r := test.Request(suite.T(), http.MethodPost, o.Links.Department+"/review", department)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var summary v1.DepartmentSummaryResponse
	test.DecodeResponse(suite.T(), &r, &summary)
	assert.Len(suite.T(), summary.Data.Errors, 2)

	r = test.Request(suite.T(), http.MethodPost, o.Links.Department, department)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var e httperror.Error
	test.DecodeResponse(suite.T(), &r, &e)
	assert.ElementsMatch(suite.T(), []httperror.FieldError{
		{Field: "teams[0].managerId", Message: "is required"},
		{Field: "teams[0].budget.totalAmount", Message: "must not be negative"},
	}, e.Fields)

	// The department setup is still active and nothing was committed
	got := suite.step(http.MethodGet, o.Links.Self, "", http.StatusOK)
	require.NotNil(suite.T(), got.ActiveDepartment)
	assert.Equal(suite.T(), 0, got.ActiveDepartment.Index)

	var managers int64
	require.Nil(suite.T(), models.DB.Model(&models.Manager{}).Count(&managers).Error)
	assert.Equal(suite.T(), int64(0), managers)
}

func (suite *TestSuiteStandard) TestOnboardingDepartmentOverAllocated() {
	o := suite.createTestOnboarding(testDraft(1000))
	o = suite.step(http.MethodPost, o.Links.Submit, "", http.StatusOK)

	r := test.Request(suite.T(), http.MethodPost, o.Links.Department+"/review", testDepartmentDraft())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var summary v1.DepartmentSummaryResponse
	test.DecodeResponse(suite.T(), &r, &summary)
	assert.True(suite.T(), summary.Data.OverAllocated)
	assert.Equal(suite.T(), "USD -3,000.00", summary.Data.RemainingFormatted)

	// Over-allocation does not block the submit
	done := suite.step(http.MethodPost, o.Links.Department, testDepartmentDraft(), http.StatusOK)
	assert.Equal(suite.T(), "done", done.Phase)

	r = test.Request(suite.T(), http.MethodGet, o.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestOnboardingIDInUse submits two onboardings with the same department
// IDs. The second one is rolled back completely.
func (suite *TestSuiteStandard) TestOnboardingIDInUse() {
	draft := testDraft(1000)

	first := suite.createTestOnboarding(draft)
	suite.step(http.MethodPost, first.Links.Submit, "", http.StatusOK)

	second := suite.createTestOnboarding(draft)
	r := test.Request(suite.T(), http.MethodPost, second.Links.Submit, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	got := suite.step(http.MethodGet, second.Links.Self, "", http.StatusOK)
	assert.Equal(suite.T(), "reviewing", got.Phase)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Organization{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestOnboardingDatabaseClosed() {
	o := suite.createTestOnboarding(testDraft(1000))
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, o.Links.Submit, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	got := suite.step(http.MethodGet, o.Links.Self, "", http.StatusOK)
	assert.Equal(suite.T(), "reviewing", got.Phase)
}

func getOrganization(id uuid.UUID) (models.Organization, error) {
	var o models.Organization
	err := models.DB.Preload("BudgetCategories").First(&o, "id = ?", id).Error
	return o, err
}
