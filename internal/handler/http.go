// Package handler exposes the HTTP surface consumed by the editor UI.
// Handlers validate required fields, call the repositories and map
// results onto status codes; everything else lives below them.
package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"thai-story-writer/internal/interfaces"
	"thai-story-writer/internal/service"
)

// Handler bundles the repositories and services behind the HTTP routes.
type Handler struct {
	stories    interfaces.StoryRepository
	chapters   interfaces.ChapterRepository
	characters interfaces.CharacterRepository
	plotPoints interfaces.PlotPointRepository
	sessions   interfaces.SessionRepository
	templates  interfaces.TemplateRepository
	ai         *service.AIService
	logger     *zap.Logger
}

// NewHandler creates the HTTP handler with its dependencies.
func NewHandler(
	stories interfaces.StoryRepository,
	chapters interfaces.ChapterRepository,
	characters interfaces.CharacterRepository,
	plotPoints interfaces.PlotPointRepository,
	sessions interfaces.SessionRepository,
	templates interfaces.TemplateRepository,
	ai *service.AIService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		stories:    stories,
		chapters:   chapters,
		characters: characters,
		plotPoints: plotPoints,
		sessions:   sessions,
		templates:  templates,
		ai:         ai,
		logger:     logger.Named("HTTPHandler"),
	}
}

// RegisterRoutes attaches all application routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	storiesGroup := router.Group("/stories")
	{
		storiesGroup.GET("", h.listStories)
		storiesGroup.POST("", h.createStory)
		storiesGroup.GET("/:id", h.getStory)
		storiesGroup.PUT("/:id", h.updateStory)
		storiesGroup.DELETE("/:id", h.deleteStory)
	}

	chaptersGroup := router.Group("/chapters")
	{
		chaptersGroup.GET("", h.listChapters)
		chaptersGroup.POST("", h.createChapter)
		chaptersGroup.GET("/:id", h.getChapter)
		chaptersGroup.PUT("/:id", h.updateChapter)
		chaptersGroup.DELETE("/:id", h.deleteChapter)
	}

	charactersGroup := router.Group("/characters")
	{
		charactersGroup.GET("", h.listCharacters)
		charactersGroup.POST("", h.createCharacter)
		charactersGroup.PUT("/:id", h.updateCharacter)
		charactersGroup.DELETE("/:id", h.deleteCharacter)
	}

	plotPointsGroup := router.Group("/plotpoints")
	{
		plotPointsGroup.GET("", h.listPlotPoints)
		plotPointsGroup.POST("", h.createPlotPoint)
		plotPointsGroup.PUT("/:id", h.updatePlotPoint)
		plotPointsGroup.DELETE("/:id", h.deletePlotPoint)
	}

	statisticsGroup := router.Group("/statistics")
	{
		statisticsGroup.GET("/overview", h.statisticsOverview)
		statisticsGroup.GET("/sessions", h.listSessions)
		statisticsGroup.POST("/sessions", h.recordSession)
	}

	router.GET("/templates", h.listTemplates)

	router.POST("/ai", h.aiAssist)
}
