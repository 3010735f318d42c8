package v1

import (
	"fmt"
	"time"

	"github.com/NewZealandMax/QRkot-spreadsheets/internal/models"
	qr_uuid "github.com/NewZealandMax/QRkot-spreadsheets/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DonationEditable struct {
	UserID     uuid.UUID       `json:"userId" example:"d4b82b3c-c2a9-43d5-b649-4c0c30b4713c"`                                                  // The donor contributing the funds
	Comment    string          `json:"comment" example:"For the kittens!" default:""`                                                          // An optional comment
	FullAmount decimal.Decimal `json:"fullAmount" example:"100" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The contributed amount
}

// model returns the database resource for the API representation of the editable fields
func (editable DonationEditable) model() models.Donation {
	return models.Donation{
		UserID:  editable.UserID,
		Comment: editable.Comment,
		Investment: models.Investment{
			FullAmount: editable.FullAmount,
		},
	}
}

type DonationLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/donations/d430d7c3-d14c-4712-9336-ee56965a6673"` // The donation itself
}

// Donation is the API representation of a donation.
type Donation struct {
	models.DefaultModel
	DonationEditable
	InvestedAmount decimal.Decimal `json:"investedAmount" example:"70"`                     // The part of the donation already distributed to projects
	FullyInvested  bool            `json:"fullyInvested" example:"false"`                   // True once the full donation is distributed
	CloseDate      *time.Time      `json:"closeDate" example:"2022-04-22T21:01:05.058161Z"` // Time the donation was fully distributed
	Links          DonationLinks   `json:"links"`
}

// newDonation returns the API representation of the resource
func newDonation(c *gin.Context, model models.Donation) Donation {
	url := c.GetString(string(models.ContextURL))

	return Donation{
		DefaultModel: model.DefaultModel,
		DonationEditable: DonationEditable{
			UserID:     model.UserID,
			Comment:    model.Comment,
			FullAmount: model.FullAmount,
		},
		InvestedAmount: model.InvestedAmount,
		FullyInvested:  model.FullyInvested,
		CloseDate:      model.CloseDate,
		Links: DonationLinks{
			Self: fmt.Sprintf("%s/v1/donations/%s", url, model.ID),
		},
	}
}

type DonationResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Donation `json:"data"`                                                          // The resource
}

type DonationListResponse struct {
	Data       []Donation  `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DonationQueryFilter struct {
	UserID        qr_uuid.UUID `form:"userId"`                     // Filter by the donor
	FullyInvested bool         `form:"fullyInvested"`              // Is the donation fully distributed?
	Offset        uint         `form:"offset" filterField:"false"` // The offset of the first donation returned. Defaults to 0.
	Limit         int          `form:"limit" filterField:"false"`  // Maximum number of donations to return. Defaults to 50.
}

func (f DonationQueryFilter) model() models.Donation {
	return models.Donation{
		UserID: f.UserID.UUID,
		Investment: models.Investment{
			FullyInvested: f.FullyInvested,
		},
	}
}
