package handler

import "thai-story-writer/internal/models"

// --- Request bodies ---

type createStoryRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Genre           string `json:"genre"`
	TargetWordCount int    `json:"target_word_count"`
}

type createChapterRequest struct {
	StoryID    int64  `json:"story_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	OrderIndex *int   `json:"order_index"`
}

type createCharacterRequest struct {
	StoryID     int64                `json:"story_id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Appearance  string               `json:"appearance"`
	Personality string               `json:"personality"`
	Background  string               `json:"background"`
	Role        models.CharacterRole `json:"role"`
}

type createPlotPointRequest struct {
	StoryID     int64                `json:"story_id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Type        models.PlotPointType `json:"type"`
	OrderIndex  int                  `json:"order_index"`
}

type recordSessionRequest struct {
	StoryID         int64  `json:"story_id"`
	WordsWritten    *int   `json:"words_written"`
	SessionDuration *int   `json:"session_duration"`
	Date            string `json:"date"`
}

type aiAssistRequest struct {
	Type    string `json:"type"`
	Context string `json:"context"`
	Request string `json:"request"`
}

// --- Response bodies ---

type aiAssistResponse struct {
	Content string `json:"content"`
}

type aiAssistErrorResponse struct {
	Error   string `json:"error"`
	Content string `json:"content"`
}
