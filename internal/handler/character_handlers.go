package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thai-story-writer/internal/models"
)

func (h *Handler) listCharacters(c *gin.Context) {
	storyID, ok := queryStoryID(c)
	if !ok {
		return
	}

	characters, err := h.characters.ListByStory(c.Request.Context(), storyID)
	if err != nil {
		h.handleRepoError(c, err, "", "Failed to fetch characters")
		return
	}
	if characters == nil {
		characters = []*models.Character{}
	}
	c.JSON(http.StatusOK, characters)
}

func (h *Handler) createCharacter(c *gin.Context) {
	var req createCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.StoryID == 0 || req.Name == "" {
		badRequest(c, "Story ID and name are required")
		return
	}

	id, err := h.characters.Create(c.Request.Context(), &models.Character{
		StoryID:     req.StoryID,
		Name:        req.Name,
		Description: req.Description,
		Appearance:  req.Appearance,
		Personality: req.Personality,
		Background:  req.Background,
		Role:        req.Role,
	})
	if err != nil {
		h.handleRepoError(c, err, "", "Failed to create character")
		return
	}
	c.JSON(http.StatusOK, models.CreatedResponse{ID: id, Message: "Character created successfully"})
}

func (h *Handler) updateCharacter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch models.CharacterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.characters.Update(c.Request.Context(), id, patch); err != nil {
		h.handleRepoError(c, err, "Character not found", "Failed to update character")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Character updated successfully"})
}

func (h *Handler) deleteCharacter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.characters.Delete(c.Request.Context(), id); err != nil {
		h.handleRepoError(c, err, "Character not found", "Failed to delete character")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Character deleted successfully"})
}
