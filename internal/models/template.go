package models

// Template is a read-only narrative template seeded at startup. Not
// linked to any story.
type Template struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Category    string `json:"category" db:"category"`
	Content     string `json:"content" db:"content"`
	CreatedAt   string `json:"created_at" db:"created_at"`
}
