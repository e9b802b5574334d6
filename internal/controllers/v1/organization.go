package v1

import (
	"net/http"

	"github.com/envelope-zero/onboarding/internal/httperror"
	"github.com/envelope-zero/onboarding/internal/httputil"
	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/envelope-zero/onboarding/internal/wizard"
	"github.com/gin-gonic/gin"
)

// RegisterOrganizationRoutes registers the routes for organizations with
// the RouterGroup that is passed.
func RegisterOrganizationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsOrganizationList)
		r.GET("", GetOrganizations)
	}

	{
		r.OPTIONS("/:id", OptionsOrganizationDetail)
		r.GET("/:id", GetOrganization)
	}
}

type Organization struct {
	models.Organization
	FormattedBudget string            `json:"formattedBudget" example:"USD 100,000.00"` // The total budget for display
	Links           OrganizationLinks `json:"links"`
}

type OrganizationLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/organizations/3b1ea324-d438-4419-882a-2fc91d71772f"`                   // The organization itself
	Departments string `json:"departments" example:"https://example.com/api/v1/departments?organization=3b1ea324-d438-4419-882a-2fc91d71772f"` // Departments of this organization
}

func newOrganization(c *gin.Context, o models.Organization) Organization {
	url := c.GetString(string(models.DBContextURL))

	if o.BudgetCategories == nil {
		o.BudgetCategories = []models.BudgetCategory{}
	}

	return Organization{
		Organization:    o,
		FormattedBudget: wizard.FormatAmount(o.TotalBudget, o.Currency),
		Links: OrganizationLinks{
			Self:        url + "/v1/organizations/" + o.ID.String(),
			Departments: url + "/v1/departments?organization=" + o.ID.String(),
		},
	}
}

type OrganizationQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Glob pattern for the name, e.g. "Acme*"
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first organization returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of organizations to return. Defaults to 50.
}

type OrganizationListResponse struct {
	Data       []Organization `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

type OrganizationResponse struct {
	Data Organization `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Organizations
// @Success		204
// @Router			/v1/organizations [options]
func OptionsOrganizationList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Organizations
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/organizations/{id} [options]
func OptionsOrganizationDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidUUID))
		return
	}

	_, err := getModelByID[models.Organization](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		List organizations
// @Description	Returns a list of committed organizations, sorted by name
// @Tags			Organizations
// @Produce		json
// @Success		200		{object}	OrganizationListResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			name	query		string	false	"Glob pattern for the name"
// @Param			offset	query		uint	false	"The offset of the first organization returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of organizations to return. Defaults to 50."
// @Router			/v1/organizations [get]
func GetOrganizations(c *gin.Context) {
	var filter OrganizationQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidQueryString))
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var organizations []models.Organization
	err := models.DB.Preload("BudgetCategories").Order("name ASC").Find(&organizations).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	organizations = matchName(organizations, filter.Name, func(o models.Organization) string { return o.Name })
	total := len(organizations)
	limit := resultLimit(setFields, filter.Limit)

	data := make([]Organization, 0)
	for _, o := range paginate(organizations, filter.Offset, limit) {
		data = append(data, newOrganization(c, o))
	}

	c.JSON(http.StatusOK, OrganizationListResponse{
		Data: data,
		Pagination: Pagination{
			Count:  len(data),
			Total:  int64(total),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get organization
// @Description	Returns a specific organization with its budget categories
// @Tags			Organizations
// @Produce		json
// @Success		200	{object}	OrganizationResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/organizations/{id} [get]
func GetOrganization(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidUUID))
		return
	}

	organization, err := getModelByID[models.Organization](uri.ID.UUID, "BudgetCategories")
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, OrganizationResponse{Data: newOrganization(c, organization)})
}
