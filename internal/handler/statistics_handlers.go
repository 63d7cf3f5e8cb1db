package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"thai-story-writer/internal/models"
)

func (h *Handler) statisticsOverview(c *gin.Context) {
	storyID, ok := queryStoryID(c)
	if !ok {
		return
	}

	stats, err := h.sessions.Overview(c.Request.Context(), storyID)
	if err != nil {
		h.handleRepoError(c, err, "", "Failed to fetch writing statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) listSessions(c *gin.Context) {
	storyID, ok := queryStoryID(c)
	if !ok {
		return
	}

	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			badRequest(c, "Invalid days")
			return
		}
		days = parsed
	}

	sessions, err := h.sessions.ListRecent(c.Request.Context(), storyID, days)
	if err != nil {
		h.handleRepoError(c, err, "", "Failed to fetch writing sessions")
		return
	}
	if sessions == nil {
		sessions = []*models.WritingSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *Handler) recordSession(c *gin.Context) {
	var req recordSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.StoryID == 0 || req.WordsWritten == nil || req.SessionDuration == nil || req.Date == "" {
		badRequest(c, "Missing required fields")
		return
	}

	err := h.sessions.Record(c.Request.Context(), &models.WritingSession{
		StoryID:         req.StoryID,
		WordsWritten:    *req.WordsWritten,
		SessionDuration: *req.SessionDuration,
		Date:            req.Date,
	})
	if err != nil {
		h.handleRepoError(c, err, "", "Failed to record writing session")
		return
	}

	sessionsRecordedTotal.Inc()
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Writing session recorded successfully"})
}
