package models

import "time"

// Category classifies a note into one of three fixed buckets.
type Category string

const (
	CategoryPersonal Category = "Personal"
	CategoryWork     Category = "Work"
	CategoryOthers   Category = "Others"
)

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	return c == CategoryPersonal || c == CategoryWork || c == CategoryOthers
}

// Note is a personal text note owned by exactly one user. The owner is fixed
// at creation time and never changes afterwards.
type Note struct {
	// ID is the server-assigned unique identifier of the note.
	ID int64 `json:"id"`

	// Title is the note heading (1-100 characters after trimming).
	Title string `json:"title"`

	// Content is the note body (non-empty after trimming).
	Content string `json:"content"`

	// Category is one of Personal, Work or Others.
	Category Category `json:"category"`

	// UserID references the owning user.
	UserID int64 `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate describes a partial mutation of a note. Only non-nil fields are
// applied; absent fields keep their stored values.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Category *Category
}

// Empty reports whether the update carries no field changes at all.
func (u NoteUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Category == nil
}
