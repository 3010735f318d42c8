package v1

import (
	"fmt"
	"time"

	"github.com/NewZealandMax/QRkot-spreadsheets/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CharityProjectEditable struct {
	Name        string          `json:"name" example:"New shelter roof"`                                                                 // Name of the project, must be unique
	Description string          `json:"description" example:"The roof of the cat shelter needs to be replaced"`                          // What the project collects funds for
	FullAmount  decimal.Decimal `json:"fullAmount" example:"1500" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The funding target
}

// model returns the database resource for the API representation of the editable fields
func (editable CharityProjectEditable) model() models.CharityProject {
	return models.CharityProject{
		Name:        editable.Name,
		Description: editable.Description,
		Investment: models.Investment{
			FullAmount: editable.FullAmount,
		},
	}
}

type CharityProjectLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/charity-projects/d430d7c3-d14c-4712-9336-ee56965a6673"` // The charity project itself
}

// CharityProject is the API representation of a charity project.
type CharityProject struct {
	models.DefaultModel
	CharityProjectEditable
	InvestedAmount decimal.Decimal `json:"investedAmount" example:"250"`                    // The amount allocated to the project so far
	FullyInvested  bool            `json:"fullyInvested" example:"false"`                   // True once the target is reached
	CloseDate      *time.Time      `json:"closeDate" example:"2022-04-22T21:01:05.058161Z"` // Time the project reached its target
	Links          CharityProjectLinks `json:"links"`
}

// newCharityProject returns the API representation of the resource
func newCharityProject(c *gin.Context, model models.CharityProject) CharityProject {
	url := c.GetString(string(models.ContextURL))

	return CharityProject{
		DefaultModel: model.DefaultModel,
		CharityProjectEditable: CharityProjectEditable{
			Name:        model.Name,
			Description: model.Description,
			FullAmount:  model.FullAmount,
		},
		InvestedAmount: model.InvestedAmount,
		FullyInvested:  model.FullyInvested,
		CloseDate:      model.CloseDate,
		Links: CharityProjectLinks{
			Self: fmt.Sprintf("%s/v1/charity-projects/%s", url, model.ID),
		},
	}
}

type CharityProjectResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *CharityProject `json:"data"`                                                          // The resource
}

type CharityProjectListResponse struct {
	Data       []CharityProject `json:"data"`                                                          // List of resources
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}

type CharityProjectQueryFilter struct {
	Name          string `form:"name" filterField:"false"`    // Filter by name
	FullyInvested bool   `form:"fullyInvested"`               // Is the project fully invested?
	Offset        uint   `form:"offset" filterField:"false"`  // The offset of the first project returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`   // Maximum number of projects to return. Defaults to 50.
}

func (f CharityProjectQueryFilter) model() models.CharityProject {
	return models.CharityProject{
		Investment: models.Investment{
			FullyInvested: f.FullyInvested,
		},
	}
}
