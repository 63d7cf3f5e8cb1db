package models

// CharacterRole defines how a character functions in the story.
type CharacterRole string

const (
	CharacterRoleMain       CharacterRole = "main"
	CharacterRoleSupporting CharacterRole = "supporting"
	CharacterRoleAntagonist CharacterRole = "antagonist"
	CharacterRoleOther      CharacterRole = "other"
)

// Character belongs to exactly one story.
type Character struct {
	ID          int64         `json:"id" db:"id"`
	StoryID     int64         `json:"story_id" db:"story_id"`
	Name        string        `json:"name" db:"name"`
	Description string        `json:"description" db:"description"`
	Appearance  string        `json:"appearance" db:"appearance"`
	Personality string        `json:"personality" db:"personality"`
	Background  string        `json:"background" db:"background"`
	Role        CharacterRole `json:"role" db:"role"`
	CreatedAt   string        `json:"created_at" db:"created_at"`
	UpdatedAt   string        `json:"updated_at" db:"updated_at"`
}

// CharacterPatch carries the updatable character fields.
type CharacterPatch struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Appearance  *string        `json:"appearance,omitempty"`
	Personality *string        `json:"personality,omitempty"`
	Background  *string        `json:"background,omitempty"`
	Role        *CharacterRole `json:"role,omitempty"`
}
