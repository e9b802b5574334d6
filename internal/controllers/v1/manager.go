package v1

import (
	"net/http"

	"github.com/envelope-zero/onboarding/internal/httperror"
	"github.com/envelope-zero/onboarding/internal/httputil"
	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterManagerRoutes registers the routes for managers with
// the RouterGroup that is passed.
func RegisterManagerRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsManagerList)
		r.GET("", GetManagers)
	}

	{
		r.OPTIONS("/:id", OptionsManagerDetail)
		r.GET("/:id", GetManager)
	}
}

type Manager struct {
	models.Manager
	Links ManagerLinks `json:"links"`
}

type ManagerLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/managers/5b9a2d6e-3c1f-4d8e-9a7b-0c1d2e3f4444"`
	Teams string `json:"teams" example:"https://example.com/api/v1/teams?manager=5b9a2d6e-3c1f-4d8e-9a7b-0c1d2e3f4444"`
}

func newManager(c *gin.Context, m models.Manager) Manager {
	url := c.GetString(string(models.DBContextURL))

	return Manager{
		Manager: m,
		Links: ManagerLinks{
			Self:  url + "/v1/managers/" + m.ID.String(),
			Teams: url + "/v1/teams?manager=" + m.ID.String(),
		},
	}
}

type ManagerQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Glob pattern for the name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first manager returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of managers to return. Defaults to 50.
}

type ManagerListResponse struct {
	Data       []Manager  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type ManagerResponse struct {
	Data Manager `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Managers
// @Success		204
// @Router			/v1/managers [options]
func OptionsManagerList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Managers
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/managers/{id} [options]
func OptionsManagerDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidUUID))
		return
	}

	_, err := getModelByID[models.Manager](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		List managers
// @Description	Returns a list of committed managers, sorted by name
// @Tags			Managers
// @Produce		json
// @Success		200		{object}	ManagerListResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			name	query		string	false	"Glob pattern for the name"
// @Param			offset	query		uint	false	"The offset of the first manager returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of managers to return. Defaults to 50."
// @Router			/v1/managers [get]
func GetManagers(c *gin.Context) {
	var filter ManagerQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidQueryString))
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var managers []models.Manager
	err := models.DB.Order("name ASC").Find(&managers).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	managers = matchName(managers, filter.Name, func(m models.Manager) string { return m.Name })
	total := len(managers)
	limit := resultLimit(setFields, filter.Limit)

	data := make([]Manager, 0)
	for _, m := range paginate(managers, filter.Offset, limit) {
		data = append(data, newManager(c, m))
	}

	c.JSON(http.StatusOK, ManagerListResponse{
		Data: data,
		Pagination: Pagination{
			Count:  len(data),
			Total:  int64(total),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get manager
// @Description	Returns a specific manager
// @Tags			Managers
// @Produce		json
// @Success		200	{object}	ManagerResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/managers/{id} [get]
func GetManager(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidUUID))
		return
	}

	manager, err := getModelByID[models.Manager](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, ManagerResponse{Data: newManager(c, manager)})
}
