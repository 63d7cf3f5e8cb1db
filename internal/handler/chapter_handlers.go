package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thai-story-writer/internal/models"
)

func (h *Handler) listChapters(c *gin.Context) {
	storyID, ok := queryStoryID(c)
	if !ok {
		return
	}

	chapters, err := h.chapters.ListByStory(c.Request.Context(), storyID)
	if err != nil {
		h.handleRepoError(c, err, "", "Failed to fetch chapters")
		return
	}
	if chapters == nil {
		chapters = []*models.Chapter{}
	}
	c.JSON(http.StatusOK, chapters)
}

func (h *Handler) getChapter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	chapter, err := h.chapters.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleRepoError(c, err, "Chapter not found", "Failed to fetch chapter")
		return
	}
	c.JSON(http.StatusOK, chapter)
}

func (h *Handler) createChapter(c *gin.Context) {
	var req createChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.StoryID == 0 || req.Title == "" || req.OrderIndex == nil {
		badRequest(c, "Missing required fields")
		return
	}

	id, err := h.chapters.Create(c.Request.Context(), &models.Chapter{
		StoryID:    req.StoryID,
		Title:      req.Title,
		Content:    req.Content,
		OrderIndex: *req.OrderIndex,
	})
	if err != nil {
		h.handleRepoError(c, err, "", "Failed to create chapter")
		return
	}

	chaptersSavedTotal.Inc()
	c.JSON(http.StatusOK, models.CreatedResponse{ID: id, Message: "Chapter created successfully"})
}

func (h *Handler) updateChapter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch models.ChapterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.chapters.Update(c.Request.Context(), id, patch); err != nil {
		h.handleRepoError(c, err, "Chapter not found", "Failed to update chapter")
		return
	}

	chaptersSavedTotal.Inc()
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Chapter updated successfully"})
}

func (h *Handler) deleteChapter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.chapters.Delete(c.Request.Context(), id); err != nil {
		h.handleRepoError(c, err, "Chapter not found", "Failed to delete chapter")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Chapter deleted successfully"})
}
