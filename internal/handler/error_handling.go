package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"thai-story-writer/internal/interfaces"
	"thai-story-writer/internal/models"
)

// handleRepoError maps a repository error onto a response: not-found
// becomes 404 with the given message, anything else a generic 500 so no
// storage detail leaks to the client.
func (h *Handler) handleRepoError(c *gin.Context, err error, notFoundMessage, internalMessage string) {
	if errors.Is(err, interfaces.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, models.ErrorResponse{Error: notFoundMessage})
		return
	}
	h.logger.Error("Repository operation failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: internalMessage})
}

// badRequest sends a 400 with a message.
func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: message})
}

// pathID parses the :id path parameter. On malformed input it responds
// 400 and reports ok=false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// queryStoryID parses the required story_id query parameter.
func queryStoryID(c *gin.Context) (int64, bool) {
	raw := c.Query("story_id")
	if raw == "" {
		badRequest(c, "Story ID is required")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		badRequest(c, "Invalid story_id")
		return 0, false
	}
	return id, true
}
