package v1

import (
	"net/http"

	"github.com/envelope-zero/onboarding/internal/httperror"
	"github.com/envelope-zero/onboarding/internal/httputil"
	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterDepartmentRoutes registers the routes for departments with
// the RouterGroup that is passed.
func RegisterDepartmentRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsDepartmentList)
		r.GET("", GetDepartments)
	}

	{
		r.OPTIONS("/:id", OptionsDepartmentDetail)
		r.GET("/:id", GetDepartment)
	}
}

type Department struct {
	models.Department
	Links DepartmentLinks `json:"links"`
}

type DepartmentLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/departments/0f0e3cbe-8e25-4a7b-b3c8-6c1e1f0b2222"`
	Organization string `json:"organization" example:"https://example.com/api/v1/organizations/3b1ea324-d438-4419-882a-2fc91d71772f"`
	Teams        string `json:"teams" example:"https://example.com/api/v1/teams?department=0f0e3cbe-8e25-4a7b-b3c8-6c1e1f0b2222"`
}

func newDepartment(c *gin.Context, d models.Department) Department {
	url := c.GetString(string(models.DBContextURL))

	return Department{
		Department: d,
		Links: DepartmentLinks{
			Self:         url + "/v1/departments/" + d.ID.String(),
			Organization: url + "/v1/organizations/" + d.OrganizationID.String(),
			Teams:        url + "/v1/teams?department=" + d.ID.String(),
		},
	}
}

type DepartmentQueryFilter struct {
	OrganizationID string `form:"organization"`               // ID of the organization
	Name           string `form:"name" filterField:"false"`   // Glob pattern for the name
	Offset         uint   `form:"offset" filterField:"false"` // The offset of the first department returned. Defaults to 0.
	Limit          int    `form:"limit" filterField:"false"`  // Maximum number of departments to return. Defaults to 50.
}

func (f DepartmentQueryFilter) model() (models.Department, error) {
	organizationID, err := httputil.UUIDFromString(f.OrganizationID)
	if err != nil {
		return models.Department{}, err
	}

	return models.Department{
		OrganizationID: organizationID,
	}, nil
}

type DepartmentListResponse struct {
	Data       []Department `json:"data"`
	Pagination Pagination   `json:"pagination"`
}

type DepartmentResponse struct {
	Data Department `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Departments
// @Success		204
// @Router			/v1/departments [options]
func OptionsDepartmentList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Departments
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/departments/{id} [options]
func OptionsDepartmentDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidUUID))
		return
	}

	_, err := getModelByID[models.Department](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		List departments
// @Description	Returns a list of committed departments, sorted by name
// @Tags			Departments
// @Produce		json
// @Success		200				{object}	DepartmentListResponse
// @Failure		400				{object}	httperror.Error
// @Failure		500				{object}	httperror.Error
// @Param			organization	query		string	false	"Filter by organization ID"
// @Param			name			query		string	false	"Glob pattern for the name"
// @Param			offset			query		uint	false	"The offset of the first department returned. Defaults to 0."
// @Param			limit			query		int		false	"Maximum number of departments to return. Defaults to 50."
// @Router			/v1/departments [get]
func GetDepartments(c *gin.Context) {
	var filter DepartmentQueryFilter
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

	var departments []models.Department
	err = models.DB.Order("name ASC").Where(&model, queryFields...).Find(&departments).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	departments = matchName(departments, filter.Name, func(d models.Department) string { return d.Name })
	total := len(departments)
	limit := resultLimit(setFields, filter.Limit)

	data := make([]Department, 0)
	for _, d := range paginate(departments, filter.Offset, limit) {
		data = append(data, newDepartment(c, d))
	}

	c.JSON(http.StatusOK, DepartmentListResponse{
		Data: data,
		Pagination: Pagination{
			Count:  len(data),
			Total:  int64(total),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get department
// @Description	Returns a specific department
// @Tags			Departments
// @Produce		json
// @Success		200	{object}	DepartmentResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/departments/{id} [get]
func GetDepartment(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidUUID))
		return
	}

	department, err := getModelByID[models.Department](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, DepartmentResponse{Data: newDepartment(c, department)})
}
