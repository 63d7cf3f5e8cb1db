package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thai-story-writer/internal/models"
)

// listTemplates returns the template catalog, optionally filtered by
// the category query parameter.
func (h *Handler) listTemplates(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		templates []*models.Template
		err       error
	)
	if category := c.Query("category"); category != "" {
		templates, err = h.templates.ListByCategory(ctx, category)
	} else {
		templates, err = h.templates.List(ctx)
	}
	if err != nil {
		h.handleRepoError(c, err, "", "Failed to fetch templates")
		return
	}
	if templates == nil {
		templates = []*models.Template{}
	}
	c.JSON(http.StatusOK, templates)
}
