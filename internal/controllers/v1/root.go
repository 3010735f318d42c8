package v1

import (
	"net/http"

	"github.com/NewZealandMax/QRkot-spreadsheets/internal/httputil"
	"github.com/NewZealandMax/QRkot-spreadsheets/internal/models"
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
	CharityProjects string `json:"charityProjects" example:"https://example.com/api/v1/charity-projects"`     // URL of the charity project collection endpoint
	Donations       string `json:"donations" example:"https://example.com/api/v1/donations"`                  // URL of the donation collection endpoint
	ClosedProjects  string `json:"closedProjects" example:"https://example.com/api/v1/reports/closed-projects"` // URL of the closed projects report
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			CharityProjects: url + "/v1/charity-projects",
			Donations:       url + "/v1/donations",
			ClosedProjects:  url + "/v1/reports/closed-projects",
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
