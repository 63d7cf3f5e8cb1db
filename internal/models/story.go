package models

// StoryStatus defines the lifecycle states of a story.
// Matches the TEXT status column in the stories table.
type StoryStatus string

const (
	StoryStatusDraft      StoryStatus = "draft"       // Being planned, nothing published yet
	StoryStatusInProgress StoryStatus = "in-progress" // Actively written
	StoryStatusCompleted  StoryStatus = "completed"   // Finished but not published
	StoryStatusPublished  StoryStatus = "published"   // Published somewhere
)

// Story represents a top-level authored work. It owns chapters,
// characters and plot points (cascade-deleted with the story).
type Story struct {
	ID               int64       `json:"id" db:"id"`
	Title            string      `json:"title" db:"title"`
	Description      string      `json:"description" db:"description"`
	Genre            string      `json:"genre" db:"genre"`
	TargetWordCount  int         `json:"target_word_count" db:"target_word_count"`
	CurrentWordCount int         `json:"current_word_count" db:"current_word_count"` // Sum of chapter word counts, refreshed on chapter writes
	Status           StoryStatus `json:"status" db:"status"`
	CreatedAt        string      `json:"created_at" db:"created_at"`
	UpdatedAt        string      `json:"updated_at" db:"updated_at"`
}

// StoryPatch carries the updatable story fields. Nil means "leave as is".
type StoryPatch struct {
	Title            *string      `json:"title,omitempty"`
	Description      *string      `json:"description,omitempty"`
	Genre            *string      `json:"genre,omitempty"`
	TargetWordCount  *int         `json:"target_word_count,omitempty"`
	CurrentWordCount *int         `json:"current_word_count,omitempty"`
	Status           *StoryStatus `json:"status,omitempty"`
}
