package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thai-story-writer/internal/models"
)

func (h *Handler) listPlotPoints(c *gin.Context) {
	storyID, ok := queryStoryID(c)
	if !ok {
		return
	}

	points, err := h.plotPoints.ListByStory(c.Request.Context(), storyID)
	if err != nil {
		h.handleRepoError(c, err, "", "Failed to fetch plot points")
		return
	}
	if points == nil {
		points = []*models.PlotPoint{}
	}
	c.JSON(http.StatusOK, points)
}

func (h *Handler) createPlotPoint(c *gin.Context) {
	var req createPlotPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.StoryID == 0 || req.Title == "" {
		badRequest(c, "Story ID and title are required")
		return
	}

	id, err := h.plotPoints.Create(c.Request.Context(), &models.PlotPoint{
		StoryID:     req.StoryID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		h.handleRepoError(c, err, "", "Failed to create plot point")
		return
	}
	c.JSON(http.StatusOK, models.CreatedResponse{ID: id, Message: "Plot point created successfully"})
}

func (h *Handler) updatePlotPoint(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch models.PlotPointPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.plotPoints.Update(c.Request.Context(), id, patch); err != nil {
		h.handleRepoError(c, err, "Plot point not found", "Failed to update plot point")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Plot point updated successfully"})
}

func (h *Handler) deletePlotPoint(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.plotPoints.Delete(c.Request.Context(), id); err != nil {
		h.handleRepoError(c, err, "Plot point not found", "Failed to delete plot point")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Plot point deleted successfully"})
}
