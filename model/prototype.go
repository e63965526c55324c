package model

import "time"

// Prototype is a generated application mock-up: backend metadata plus the
// HTML payload produced by the AI workflow. IsFavorite is a client-side
// overlay merged in from the local store and is never sent to the backend.
type Prototype struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	HTMLContent     string `json:"html_content,omitempty"`
	UserIdea        string `json:"user_idea,omitempty"`
	ValidationNotes string `json:"validation_notes,omitempty"`
	CreatedAt       int64  `json:"created_at"` // epoch millis
	IsFavorite      bool   `json:"is_favorite"`
}

// CreatedTime returns the creation timestamp as a time.Time in UTC.
func (p Prototype) CreatedTime() time.Time {
	return time.UnixMilli(p.CreatedAt).UTC()
}
