package v1

import (
	"net/http"

	"github.com/envelope-zero/onboarding/internal/httperror"
	"github.com/envelope-zero/onboarding/internal/httputil"
	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for team budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", OptionsBudgetDetail)
	r.GET("/:id", GetBudget)
}

type Budget struct {
	models.Budget
	Links BudgetLinks `json:"links"`
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/7a6b5c4d-3e2f-4a1b-9c8d-7e6f5a4b5555"`
}

func newBudget(c *gin.Context, b models.Budget) Budget {
	return Budget{
		Budget: b,
		Links: BudgetLinks{
			Self: c.GetString(string(models.DBContextURL)) + "/v1/budgets/" + b.ID.String(),
		},
	}
}

type BudgetResponse struct {
	Data Budget `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidUUID))
		return
	}

	_, err := getModelByID[models.Budget](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get budget
// @Description	Returns a specific team budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidUUID))
		return
	}

	budget, err := getModelByID[models.Budget](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: newBudget(c, budget)})
}
