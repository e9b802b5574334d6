package v1

import (
	"net/http"

	"github.com/envelope-zero/onboarding/internal/httputil"
	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Onboardings   string `json:"onboardings" example:"https://example.com/api/v1/onboardings"`     // URL of Onboarding collection endpoint
	Organizations string `json:"organizations" example:"https://example.com/api/v1/organizations"` // URL of Organization collection endpoint
	Departments   string `json:"departments" example:"https://example.com/api/v1/departments"`     // URL of Department collection endpoint
	Teams         string `json:"teams" example:"https://example.com/api/v1/teams"`                 // URL of Team collection endpoint
	Managers      string `json:"managers" example:"https://example.com/api/v1/managers"`           // URL of Manager collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Onboardings:   url + "/v1/onboardings",
			Organizations: url + "/v1/organizations",
			Departments:   url + "/v1/departments",
			Teams:         url + "/v1/teams",
			Managers:      url + "/v1/managers",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
