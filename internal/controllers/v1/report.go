package v1

import (
	"net/http"

	"github.com/NewZealandMax/QRkot-spreadsheets/internal/httputil"
	"github.com/NewZealandMax/QRkot-spreadsheets/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/closed-projects", OptionsClosedProjects)
	r.GET("/closed-projects", GetClosedProjects)
}

// ClosedProject is one row of the closed projects report. The duration
// is rendered as a string so that report consumers do not need to
// interpret nanosecond counts.
type ClosedProject struct {
	Name        string `json:"name" example:"New shelter roof"`
	Duration    string `json:"duration" example:"26h15m10s"`
	Description string `json:"description" example:"The roof of the cat shelter needs to be replaced"`
}

type ClosedProjectsResponse struct {
	Data  []ClosedProject `json:"data"`  // Closed projects, fastest funded first
	Error *string         `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/closed-projects [options]
func OptionsClosedProjects(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Closed projects report
// @Description	Returns all fully invested projects ordered by how fast they were funded
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ClosedProjectsResponse
// @Failure		500	{object}	ClosedProjectsResponse
// @Router			/v1/reports/closed-projects [get]
func GetClosedProjects(c *gin.Context) {
	closures, err := models.ClosedProjectsByDuration(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClosedProjectsResponse{
			Error: &e,
		})
		return
	}

	data := make([]ClosedProject, 0, len(closures))
	for _, closure := range closures {
		data = append(data, ClosedProject{
			Name:        closure.Name,
			Duration:    closure.Duration.String(),
			Description: closure.Description,
		})
	}

	c.JSON(http.StatusOK, ClosedProjectsResponse{Data: data})
}
