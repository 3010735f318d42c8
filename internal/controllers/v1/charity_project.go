package v1

import (
	"net/http"

	"github.com/NewZealandMax/QRkot-spreadsheets/internal/httputil"
	"github.com/NewZealandMax/QRkot-spreadsheets/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func RegisterCharityProjectRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCharityProjects)
		r.GET("", GetCharityProjects)
		r.POST("", CreateCharityProject)
	}
	{
		r.OPTIONS("/:id", OptionsCharityProjectDetail)
		r.GET("/:id", GetCharityProject)
		r.PATCH("/:id", UpdateCharityProject)
		r.DELETE("/:id", DeleteCharityProject)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CharityProjects
// @Success		204
// @Router			/v1/charity-projects [options]
func OptionsCharityProjects(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CharityProjects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/charity-projects/{id} [options]
func OptionsCharityProjectDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.CharityProject{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create charity project
// @Description	Creates a new charity project and immediately allocates open donations to it
// @Tags			CharityProjects
// @Produce		json
// @Success		201		{object}	CharityProjectResponse
// @Failure		400		{object}	CharityProjectResponse
// @Failure		409		{object}	CharityProjectResponse
// @Failure		500		{object}	CharityProjectResponse
// @Param			project	body		CharityProjectEditable	true	"CharityProject"
// @Router			/v1/charity-projects [post]
func CreateCharityProject(c *gin.Context) {
	var editable CharityProjectEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CharityProjectResponse{
			Error: &e,
		})
		return
	}

	project := editable.model()
	err = models.CreateWithAllocation(models.DB, &project)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CharityProjectResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCharityProject(c, project)
	c.JSON(http.StatusCreated, CharityProjectResponse{Data: &apiResource})
}

// @Summary		Get charity projects
// @Description	Returns a list of charity projects
// @Tags			CharityProjects
// @Produce		json
// @Success		200	{object}	CharityProjectListResponse
// @Failure		400	{object}	CharityProjectListResponse
// @Failure		500	{object}	CharityProjectListResponse
// @Router			/v1/charity-projects [get]
// @Param			name			query	string	false	"Filter by name"
// @Param			fullyInvested	query	bool	false	"Is the project fully invested?"
// @Param			offset			query	uint	false	"The offset of the first project returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of projects to return. Defaults to 50."
func GetCharityProjects(c *gin.Context) {
	var filter CharityProjectQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CharityProjectListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("created_at ASC, id ASC").
		Where(filter.model(), queryFields...)

	if slices.Contains(setFields, "Name") {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 projects and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var projects []models.CharityProject
	err := q.Find(&projects).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CharityProjectListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CharityProjectListResponse{
			Error: &e,
		})
		return
	}

	data := make([]CharityProject, 0, len(projects))
	for _, project := range projects {
		data = append(data, newCharityProject(c, project))
	}

	c.JSON(http.StatusOK, CharityProjectListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get charity project
// @Description	Returns a specific charity project
// @Tags			CharityProjects
// @Produce		json
// @Success		200	{object}	CharityProjectResponse
// @Failure		400	{object}	CharityProjectResponse
// @Failure		404	{object}	CharityProjectResponse
// @Router			/v1/charity-projects/{id} [get]
func GetCharityProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CharityProjectResponse{
			Error: &e,
		})
		return
	}

	var project models.CharityProject
	err = models.DB.First(&project, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CharityProjectResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCharityProject(c, project)
	c.JSON(http.StatusOK, CharityProjectResponse{Data: &apiResource})
}

// @Summary		Update charity project
// @Description	Updates an open charity project. Only values to be updated need to be specified.
// @Tags			CharityProjects
// @Accept			json
// @Produce		json
// @Success		200		{object}	CharityProjectResponse
// @Failure		400		{object}	CharityProjectResponse
// @Failure		404		{object}	CharityProjectResponse
// @Param			project	body		CharityProjectEditable	true	"CharityProject"
// @Router			/v1/charity-projects/{id} [patch]
func UpdateCharityProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CharityProjectResponse{
			Error: &e,
		})
		return
	}

	var project models.CharityProject
	err = models.DB.First(&project, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CharityProjectResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CharityProjectEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CharityProjectResponse{
			Error: &e,
		})
		return
	}

	var data CharityProjectEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CharityProjectResponse{
			Error: &e,
		})
		return
	}

	err = project.Update(models.DB, data.model(), updateFields)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CharityProjectResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCharityProject(c, project)
	c.JSON(http.StatusOK, CharityProjectResponse{Data: &apiResource})
}

// @Summary		Delete charity project
// @Description	Deletes a charity project. Projects that already received funds cannot be deleted.
// @Tags			CharityProjects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/charity-projects/{id} [delete]
func DeleteCharityProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var project models.CharityProject
	err = models.DB.First(&project, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&project).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
