package models_test

import (
	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDepartmentNameNotUnique() {
	department := suite.createTestDepartment(models.Department{Name: "Engineering"})

	err := models.DB.Create(&models.Department{
		Name:           "Engineering",
		OrganizationID: department.OrganizationID,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrDepartmentNameNotUnique)

	// The same name in another organization is fine
	suite.createTestDepartment(models.Department{Name: "Engineering"})
}

func (suite *TestSuiteStandard) TestDepartmentUnknownOrganization() {
	err := models.DB.Create(&models.Department{
		Name:           "Orphan",
		OrganizationID: uuid.New(),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrReferenceNotFound)
}

func (suite *TestSuiteStandard) TestTeamWithBudget() {
	department := suite.createTestDepartment(models.Department{TotalBudget: decimal.NewFromInt(10000)})
	manager := suite.createTestManager(models.Manager{Name: "  Grace  "})
	assert.Equal(suite.T(), "Grace", manager.Name)

	budget := models.Budget{TotalAmount: decimal.NewFromInt(4000)}
	require.Nil(suite.T(), models.DB.Create(&budget).Error)

	team := models.Team{
		Name:         "Platform",
		ManagerID:    manager.ID,
		DepartmentID: department.ID,
		BudgetID:     &budget.ID,
	}
	require.Nil(suite.T(), models.DB.Create(&team).Error)

	var stored models.Team
	require.Nil(suite.T(), models.DB.Preload("Budget").First(&stored, team.ID).Error)
	require.NotNil(suite.T(), stored.Budget)
	assert.True(suite.T(), stored.Budget.TotalAmount.Equal(decimal.NewFromInt(4000)))
	assert.NotEqual(suite.T(), stored.ID, stored.Budget.ID)
}

func (suite *TestSuiteStandard) TestTeamUnknownManager() {
	department := suite.createTestDepartment(models.Department{})

	err := models.DB.Create(&models.Team{
		Name:         "Ghosts",
		ManagerID:    uuid.New(),
		DepartmentID: department.ID,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrReferenceNotFound)
}
