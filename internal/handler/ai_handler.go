package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"thai-story-writer/internal/service"
)

// aiAssist proxies one writing-assistance request to the AI provider.
// Both the missing-credential and the provider-failure paths return a
// Thai fallback message alongside the error so the UI always has
// something to show.
func (h *Handler) aiAssist(c *gin.Context) {
	var req aiAssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	content, err := h.ai.Assist(c.Request.Context(), req.Type, req.Context, req.Request)
	if err != nil {
		if errors.Is(err, service.ErrAINotConfigured) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, aiAssistErrorResponse{
				Error:   "OpenAI API key not configured",
				Content: service.MsgAINotConfigured,
			})
			return
		}
		h.logger.Error("AI assist failed", zap.String("type", req.Type), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, aiAssistErrorResponse{
			Error:   "Failed to get AI response",
			Content: service.MsgAICallFailed,
		})
		return
	}

	c.JSON(http.StatusOK, aiAssistResponse{Content: content})
}
