package models

// Chapter is an ordered section of a story's text content.
// WordCount is derived from Content on every content-bearing write and
// is never settable by callers.
type Chapter struct {
	ID         int64  `json:"id" db:"id"`
	StoryID    int64  `json:"story_id" db:"story_id"`
	Title      string `json:"title" db:"title"`
	Content    string `json:"content" db:"content"`
	WordCount  int    `json:"word_count" db:"word_count"`
	OrderIndex int    `json:"order_index" db:"order_index"` // Caller-supplied reading order, gaps allowed after deletes
	CreatedAt  string `json:"created_at" db:"created_at"`
	UpdatedAt  string `json:"updated_at" db:"updated_at"`
}

// ChapterPatch carries the updatable chapter fields. WordCount is
// intentionally absent: the repository recomputes it whenever Content
// is present.
type ChapterPatch struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	OrderIndex *int    `json:"order_index,omitempty"`
}
