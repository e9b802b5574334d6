package v1_test

import (
	"fmt"
	"net/http"
	"strings"

	v1 "github.com/envelope-zero/onboarding/internal/controllers/v1"
	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/envelope-zero/onboarding/internal/store"
	"github.com/envelope-zero/onboarding/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seed commits two organizations. Acme has two departments and two teams
// in Engineering, one of them with a budget.
type seed struct {
	acme, globex           models.Organization
	engineering, marketing models.Department
	grace, linus           models.Manager
	platform, kernel       models.Team
	budget                 models.Budget
}

func (suite *TestSuiteStandard) seed() seed {
	s := store.New(models.DB)
	var d seed

	d.acme = models.Organization{
		Name:        "Acme",
		LeaderName:  "Road Runner",
		TotalBudget: decimal.NewFromInt(100000),
		Currency:    "USD",
		BudgetCategories: []models.BudgetCategory{
			{Name: "Travel"},
			{Name: "Hardware"},
		},
	}
	d.globex = models.Organization{
		Name:        "Globex",
		LeaderName:  "Hank Scorpio",
		TotalBudget: decimal.NewFromInt(5000),
		Currency:    "EUR",
	}

	require.Nil(suite.T(), s.AddOrganization(&d.acme))
	require.Nil(suite.T(), s.AddOrganization(&d.globex))

	d.engineering = models.Department{Name: "Engineering", DepartmentHeadName: "Ada", TotalBudget: decimal.NewFromInt(60000), OrganizationID: d.acme.ID}
	d.marketing = models.Department{Name: "Marketing", DepartmentHeadName: "Don", TotalBudget: decimal.NewFromInt(20000), OrganizationID: d.acme.ID}
	require.Nil(suite.T(), s.AddDepartment(&d.engineering))
	require.Nil(suite.T(), s.AddDepartment(&d.marketing))

	d.grace = models.Manager{Name: "Grace Hopper"}
	d.linus = models.Manager{Name: "Linus Torvalds"}
	require.Nil(suite.T(), s.AddManager(&d.grace))
	require.Nil(suite.T(), s.AddManager(&d.linus))

	d.budget = models.Budget{TotalAmount: decimal.NewFromInt(4000)}
	require.Nil(suite.T(), s.AddBudget(&d.budget))

	d.platform = models.Team{Name: "Platform", ManagerID: d.grace.ID, DepartmentID: d.engineering.ID, Budget: &d.budget}
	d.kernel = models.Team{Name: "Kernel", ManagerID: d.linus.ID, DepartmentID: d.engineering.ID}
	require.Nil(suite.T(), s.AddTeam(&d.platform))
	require.Nil(suite.T(), s.AddTeam(&d.kernel))

	return d
}

func (suite *TestSuiteStandard) TestOrganizationsGet() {
	d := suite.seed()

	tests := []struct {
		name  string
		query string
		want  []string
		total int64
	}{
		{"All", "", []string{"Acme", "Globex"}, 2},
		{"Glob", "name=Ac*", []string{"Acme"}, 1},
		{"No match", "name=Initech", []string{}, 0},
		{"Limit", "limit=1", []string{"Acme"}, 2},
		{"Offset", "offset=1", []string{"Globex"}, 2},
		{"Offset beyond", "offset=5", []string{}, 2},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/organizations?"+tt.query, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.OrganizationListResponse
		test.DecodeResponse(suite.T(), &r, &response)

		names := make([]string, 0)
		for _, o := range response.Data {
			names = append(names, o.Name)
		}

		assert.Equal(suite.T(), tt.want, names, tt.name)
		assert.Equal(suite.T(), tt.total, response.Pagination.Total, tt.name)
		assert.Equal(suite.T(), len(tt.want), response.Pagination.Count, tt.name)
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/organizations/"+d.acme.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OrganizationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Road Runner", response.Data.LeaderName)
	assert.Equal(suite.T(), "USD 100,000.00", response.Data.FormattedBudget)
	assert.Len(suite.T(), response.Data.BudgetCategories, 2)
	assert.Equal(suite.T(), "http://example.com/v1/departments?organization="+d.acme.ID.String(), response.Data.Links.Departments)
}

func (suite *TestSuiteStandard) TestOrganizationsBadLimit() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/organizations?limit=many", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDepartmentsGet() {
	d := suite.seed()

	tests := []struct {
		query  string
		want   []string
		status int
	}{
		{"", []string{"Engineering", "Marketing"}, http.StatusOK},
		{"organization=" + d.acme.ID.String(), []string{"Engineering", "Marketing"}, http.StatusOK},
		{"organization=" + d.globex.ID.String(), []string{}, http.StatusOK},
		{"organization=" + d.acme.ID.String() + "&name=*ing", []string{"Engineering", "Marketing"}, http.StatusOK},
		{"name=Eng*", []string{"Engineering"}, http.StatusOK},
		{"organization=not-a-uuid", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/departments?"+tt.query, "")
		test.AssertHTTPStatus(suite.T(), &r, tt.status)
		if tt.status != http.StatusOK {
			continue
		}

		var response v1.DepartmentListResponse
		test.DecodeResponse(suite.T(), &r, &response)

		names := make([]string, 0)
		for _, dept := range response.Data {
			names = append(names, dept.Name)
		}
		assert.Equal(suite.T(), tt.want, names, tt.query)
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/departments/"+d.engineering.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DepartmentResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.TotalBudget.Equal(decimal.NewFromInt(60000)))
	assert.Equal(suite.T(), d.acme.ID, response.Data.OrganizationID)
	assert.Equal(suite.T(), "http://example.com/v1/teams?department="+d.engineering.ID.String(), response.Data.Links.Teams)
}

func (suite *TestSuiteStandard) TestTeamsGet() {
	d := suite.seed()

	tests := []struct {
		query  string
		want   []string
		status int
	}{
		{"", []string{"Kernel", "Platform"}, http.StatusOK},
		{"department=" + d.engineering.ID.String(), []string{"Kernel", "Platform"}, http.StatusOK},
		{"department=" + d.marketing.ID.String(), []string{}, http.StatusOK},
		{"manager=" + d.grace.ID.String(), []string{"Platform"}, http.StatusOK},
		{"name=K*", []string{"Kernel"}, http.StatusOK},
		{"manager=nope", nil, http.StatusBadRequest},
		{"department=nope", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/teams?"+tt.query, "")
		test.AssertHTTPStatus(suite.T(), &r, tt.status)
		if tt.status != http.StatusOK {
			continue
		}

		var response v1.TeamListResponse
		test.DecodeResponse(suite.T(), &r, &response)

		names := make([]string, 0)
		for _, t := range response.Data {
			names = append(names, t.Name)
		}
		assert.Equal(suite.T(), tt.want, names, tt.query)
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/teams/"+d.platform.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var platform v1.TeamResponse
	test.DecodeResponse(suite.T(), &r, &platform)
	require.NotNil(suite.T(), platform.Data.BudgetID)
	assert.Equal(suite.T(), d.budget.ID, *platform.Data.BudgetID)
	assert.Equal(suite.T(), "http://example.com/v1/budgets/"+d.budget.ID.String(), platform.Data.Links.Budget)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/teams/"+d.kernel.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var kernel v1.TeamResponse
	test.DecodeResponse(suite.T(), &r, &kernel)
	assert.Nil(suite.T(), kernel.Data.BudgetID)
	assert.Empty(suite.T(), kernel.Data.Links.Budget)
}

func (suite *TestSuiteStandard) TestManagersGet() {
	d := suite.seed()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/managers?name=*Hopper", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.ManagerListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	require.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), d.grace.ID, list.Data[0].ID)
	assert.Equal(suite.T(), "http://example.com/v1/teams?manager="+d.grace.ID.String(), list.Data[0].Links.Teams)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/managers/"+d.linus.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var manager v1.ManagerResponse
	test.DecodeResponse(suite.T(), &r, &manager)
	assert.Equal(suite.T(), "Linus Torvalds", manager.Data.Name)
}

func (suite *TestSuiteStandard) TestBudgetGet() {
	d := suite.seed()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/"+d.budget.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.TotalAmount.Equal(decimal.NewFromInt(4000)))
	assert.Equal(suite.T(), "http://example.com/v1/budgets/"+d.budget.ID.String(), response.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestResourceDetailErrors() {
	for _, resource := range []string{"organizations", "departments", "teams", "managers", "budgets"} {
		for _, method := range []string{http.MethodGet, http.MethodOptions} {
			url := fmt.Sprintf("http://example.com/v1/%s/%s", resource, uuid.New())
			r := test.Request(suite.T(), method, url, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

			r = test.Request(suite.T(), method, fmt.Sprintf("http://example.com/v1/%s/not-a-uuid", resource), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		}
	}
}

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/departments/"+uuid.New().String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	assert.True(suite.T(), strings.Contains(r.Body.String(), "there is no department matching your query"), r.Body.String())
}

func (suite *TestSuiteStandard) TestResourceOptions() {
	d := suite.seed()

	tests := []string{
		"http://example.com/v1/organizations",
		"http://example.com/v1/organizations/" + d.acme.ID.String(),
		"http://example.com/v1/departments",
		"http://example.com/v1/departments/" + d.marketing.ID.String(),
		"http://example.com/v1/teams",
		"http://example.com/v1/teams/" + d.kernel.ID.String(),
		"http://example.com/v1/managers",
		"http://example.com/v1/managers/" + d.grace.ID.String(),
		"http://example.com/v1/budgets/" + d.budget.ID.String(),
	}

	for _, url := range tests {
		r := test.Request(suite.T(), http.MethodOptions, url, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"), url)
	}
}

func (suite *TestSuiteStandard) TestResourcesDatabaseClosed() {
	suite.CloseDB()

	for _, resource := range []string{"organizations", "departments", "teams", "managers"} {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/"+resource, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	}
}
