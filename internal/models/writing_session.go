package models

// WritingSession is a per-day record of words written and time spent on
// a story. There is at most one row per (story_id, date); recording the
// same date again overwrites the previous values.
type WritingSession struct {
	ID              int64  `json:"id" db:"id"`
	StoryID         int64  `json:"story_id" db:"story_id"`
	WordsWritten    int    `json:"words_written" db:"words_written"`
	SessionDuration int    `json:"session_duration" db:"session_duration"` // Seconds
	Date            string `json:"date" db:"date"`                         // Calendar date, YYYY-MM-DD
	CreatedAt       string `json:"created_at" db:"created_at"`
}

// WritingStats is the all-time aggregate over a story's sessions.
type WritingStats struct {
	TotalWords         int     `json:"total_words" db:"total_words"`
	TotalTime          int     `json:"total_time" db:"total_time"`
	SessionCount       int     `json:"session_count" db:"session_count"`
	AvgWordsPerSession float64 `json:"avg_words_per_session" db:"avg_words_per_session"`
}
