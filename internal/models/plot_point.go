package models

// PlotPointType classifies a narrative beat.
type PlotPointType string

const (
	PlotPointTypeEvent      PlotPointType = "event"
	PlotPointTypeConflict   PlotPointType = "conflict"
	PlotPointTypeResolution PlotPointType = "resolution"
	PlotPointTypeClimax     PlotPointType = "climax"
	PlotPointTypeSetup      PlotPointType = "setup"
)

// PlotPoint is a named narrative beat of a story, ordered independently
// of chapters.
type PlotPoint struct {
	ID          int64         `json:"id" db:"id"`
	StoryID     int64         `json:"story_id" db:"story_id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"`
	Type        PlotPointType `json:"type" db:"type"`
	OrderIndex  int           `json:"order_index" db:"order_index"`
	CreatedAt   string        `json:"created_at" db:"created_at"`
	UpdatedAt   string        `json:"updated_at" db:"updated_at"`
}

// PlotPointPatch carries the updatable plot point fields.
type PlotPointPatch struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Type        *PlotPointType `json:"type,omitempty"`
	OrderIndex  *int           `json:"order_index,omitempty"`
}
