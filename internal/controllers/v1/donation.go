package v1

import (
	"net/http"

	"github.com/NewZealandMax/QRkot-spreadsheets/internal/httputil"
	"github.com/NewZealandMax/QRkot-spreadsheets/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func RegisterDonationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsDonations)
		r.GET("", GetDonations)
		r.POST("", CreateDonation)
	}
	{
		r.OPTIONS("/:id", OptionsDonationDetail)
		r.GET("/:id", GetDonation)
		r.DELETE("/:id", DeleteDonation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Donations
// @Success		204
// @Router			/v1/donations [options]
func OptionsDonations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Donations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/donations/{id} [options]
func OptionsDonationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Donation{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create donation
// @Description	Creates a new donation and immediately distributes it to open charity projects
// @Tags			Donations
// @Produce		json
// @Success		201			{object}	DonationResponse
// @Failure		400			{object}	DonationResponse
// @Failure		409			{object}	DonationResponse
// @Failure		500			{object}	DonationResponse
// @Param			donation	body		DonationEditable	true	"Donation"
// @Router			/v1/donations [post]
func CreateDonation(c *gin.Context) {
	var editable DonationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DonationResponse{
			Error: &e,
		})
		return
	}

	donation := editable.model()
	err = models.CreateWithAllocation(models.DB, &donation)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newDonation(c, donation)
	c.JSON(http.StatusCreated, DonationResponse{Data: &apiResource})
}

// @Summary		Get donations
// @Description	Returns a list of donations
// @Tags			Donations
// @Produce		json
// @Success		200	{object}	DonationListResponse
// @Failure		400	{object}	DonationListResponse
// @Failure		500	{object}	DonationListResponse
// @Router			/v1/donations [get]
// @Param			userId			query	string	false	"Filter by the donor"
// @Param			fullyInvested	query	bool	false	"Is the donation fully distributed?"
// @Param			offset			query	uint	false	"The offset of the first donation returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of donations to return. Defaults to 50."
func GetDonations(c *gin.Context) {
	var filter DonationQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DonationListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("created_at ASC, id ASC").
		Where(filter.model(), queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 donations and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var donations []models.Donation
	err := q.Find(&donations).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Donation, 0, len(donations))
	for _, donation := range donations {
		data = append(data, newDonation(c, donation))
	}

	c.JSON(http.StatusOK, DonationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get donation
// @Description	Returns a specific donation
// @Tags			Donations
// @Produce		json
// @Success		200	{object}	DonationResponse
// @Failure		400	{object}	DonationResponse
// @Failure		404	{object}	DonationResponse
// @Router			/v1/donations/{id} [get]
func GetDonation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &e,
		})
		return
	}

	var donation models.Donation
	err = models.DB.First(&donation, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newDonation(c, donation)
	c.JSON(http.StatusOK, DonationResponse{Data: &apiResource})
}

// @Summary		Delete donation
// @Description	Deletes a donation. Donations that were already distributed, even partially, cannot be deleted.
// @Tags			Donations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/donations/{id} [delete]
func DeleteDonation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var donation models.Donation
	err = models.DB.First(&donation, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&donation).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
