package v1

import (
	"net/http"

	"github.com/envelope-zero/onboarding/internal/httperror"
	"github.com/envelope-zero/onboarding/internal/httputil"
	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterTeamRoutes registers the routes for teams with
// the RouterGroup that is passed.
func RegisterTeamRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTeamList)
		r.GET("", GetTeams)
	}

	{
		r.OPTIONS("/:id", OptionsTeamDetail)
		r.GET("/:id", GetTeam)
	}
}

type Team struct {
	models.Team
	Links TeamLinks `json:"links"`
}

type TeamLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/teams/9d7c6b5a-4e3f-4a2b-8c1d-0e9f8a7b3333"`
	Department string `json:"department" example:"https://example.com/api/v1/departments/0f0e3cbe-8e25-4a7b-b3c8-6c1e1f0b2222"`
	Manager    string `json:"manager" example:"https://example.com/api/v1/managers/5b9a2d6e-3c1f-4d8e-9a7b-0c1d2e3f4444"`
	Budget     string `json:"budget" example:"https://example.com/api/v1/budgets/7a6b5c4d-3e2f-4a1b-9c8d-7e6f5a4b5555"` // Empty for teams without budget
}

func newTeam(c *gin.Context, t models.Team) Team {
	url := c.GetString(string(models.DBContextURL))

	team := Team{
		Team: t,
		Links: TeamLinks{
			Self:       url + "/v1/teams/" + t.ID.String(),
			Department: url + "/v1/departments/" + t.DepartmentID.String(),
			Manager:    url + "/v1/managers/" + t.ManagerID.String(),
		},
	}

	if t.BudgetID != nil {
		team.Links.Budget = url + "/v1/budgets/" + t.BudgetID.String()
	}

	return team
}

type TeamQueryFilter struct {
	DepartmentID string `form:"department"`                 // ID of the department
	ManagerID    string `form:"manager"`                    // ID of the manager
	Name         string `form:"name" filterField:"false"`   // Glob pattern for the name
	Offset       uint   `form:"offset" filterField:"false"` // The offset of the first team returned. Defaults to 0.
	Limit        int    `form:"limit" filterField:"false"`  // Maximum number of teams to return. Defaults to 50.
}

func (f TeamQueryFilter) model() (models.Team, error) {
	departmentID, err := httputil.UUIDFromString(f.DepartmentID)
	if err != nil {
		return models.Team{}, err
	}

	managerID, err := httputil.UUIDFromString(f.ManagerID)
	if err != nil {
		return models.Team{}, err
	}

	return models.Team{
		DepartmentID: departmentID,
		ManagerID:    managerID,
	}, nil
}

type TeamListResponse struct {
	Data       []Team     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type TeamResponse struct {
	Data Team `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Teams
// @Success		204
// @Router			/v1/teams [options]
func OptionsTeamList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Teams
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/teams/{id} [options]
func OptionsTeamDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidUUID))
		return
	}

	_, err := getModelByID[models.Team](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		List teams
// @Description	Returns a list of committed teams with their budgets, sorted by name
// @Tags			Teams
// @Produce		json
// @Success		200			{object}	TeamListResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			department	query		string	false	"Filter by department ID"
// @Param			manager		query		string	false	"Filter by manager ID"
// @Param			name		query		string	false	"Glob pattern for the name"
// @Param			offset		query		uint	false	"The offset of the first team returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of teams to return. Defaults to 50."
// @Router			/v1/teams [get]
func GetTeams(c *gin.Context) {
	var filter TeamQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidQueryString))
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var teams []models.Team
	err = models.DB.Preload("Budget").Order("name ASC").Where(&model, queryFields...).Find(&teams).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	teams = matchName(teams, filter.Name, func(t models.Team) string { return t.Name })
	total := len(teams)
	limit := resultLimit(setFields, filter.Limit)

	data := make([]Team, 0)
	for _, t := range paginate(teams, filter.Offset, limit) {
		data = append(data, newTeam(c, t))
	}

	c.JSON(http.StatusOK, TeamListResponse{
		Data: data,
		Pagination: Pagination{
			Count:  len(data),
			Total:  int64(total),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get team
// @Description	Returns a specific team with its budget
// @Tags			Teams
// @Produce		json
// @Success		200	{object}	TeamResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/teams/{id} [get]
func GetTeam(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidUUID))
		return
	}

	team, err := getModelByID[models.Team](uri.ID.UUID, "Budget")
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, TeamResponse{Data: newTeam(c, team)})
}
