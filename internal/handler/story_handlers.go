package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thai-story-writer/internal/models"
)

func (h *Handler) listStories(c *gin.Context) {
	stories, err := h.stories.List(c.Request.Context())
	if err != nil {
		h.handleRepoError(c, err, "", "Failed to fetch stories")
		return
	}
	if stories == nil {
		stories = []*models.Story{}
	}
	c.JSON(http.StatusOK, stories)
}

func (h *Handler) getStory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	story, err := h.stories.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleRepoError(c, err, "Story not found", "Failed to fetch story")
		return
	}
	c.JSON(http.StatusOK, story)
}

func (h *Handler) createStory(c *gin.Context) {
	var req createStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Title == "" {
		badRequest(c, "Title is required")
		return
	}

	id, err := h.stories.Create(c.Request.Context(), &models.Story{
		Title:           req.Title,
		Description:     req.Description,
		Genre:           req.Genre,
		TargetWordCount: req.TargetWordCount,
	})
	if err != nil {
		h.handleRepoError(c, err, "", "Failed to create story")
		return
	}

	storiesCreatedTotal.Inc()
	c.JSON(http.StatusOK, models.CreatedResponse{ID: id, Message: "Story created successfully"})
}

func (h *Handler) updateStory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch models.StoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.stories.Update(c.Request.Context(), id, patch); err != nil {
		h.handleRepoError(c, err, "Story not found", "Failed to update story")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Story updated successfully"})
}

func (h *Handler) deleteStory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.stories.Delete(c.Request.Context(), id); err != nil {
		h.handleRepoError(c, err, "Story not found", "Failed to delete story")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Story deleted successfully"})
}
