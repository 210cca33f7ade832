package entities

import "time"

const (
	DefaultNoteCategory = "geral"
	DefaultNoteColor    = "default"
)

// Note is a free-form note. Pinned notes sort before unpinned ones; inside
// each group the most recently updated note comes first.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Pinned    bool      `json:"pinned"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
