// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/notekeeper/notekeeper/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Unique violations surface as
	// [ErrEmailAlreadyRegistered] or [ErrUsernameAlreadyTaken].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the account with the given email, including
	// the password hash. Returns [ErrUserNotFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByEmailOrUsername reports any account matching either value.
	// Used for pre-registration duplicate checks. Returns [ErrUserNotFound]
	// when neither value is taken.
	FindUserByEmailOrUsername(ctx context.Context, email string, username string) (models.User, error)

	// FindUserByID retrieves the account with the given ID. Returns
	// [ErrUserNotFound] when no account matches.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// GetAllUsers lists every account, newest first.
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// NoteRepository persists and retrieves notes.
type NoteRepository interface {
	// CreateNote inserts a new note owned by note.UserID and returns it
	// with server-assigned fields populated.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetNoteByID retrieves a note regardless of owner. Returns
	// [ErrNoteNotFound] when no note matches. Ownership checks are the
	// caller's responsibility.
	GetNoteByID(ctx context.Context, id int64) (models.Note, error)

	// GetNotesForActor lists notes visible to the actor, newest first.
	// Admins see every note; other roles see only their own. A non-empty
	// category narrows the result set.
	GetNotesForActor(ctx context.Context, actor models.AuthUser, category models.Category) ([]models.Note, error)

	// UpdateNote applies the non-nil fields of update to the note with the
	// given ID and returns the updated record. Returns [ErrNoteNotFound]
	// when no note matches.
	UpdateNote(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes the note with the given ID. Returns
	// [ErrNoteNotFound] when no note matches.
	DeleteNote(ctx context.Context, id int64) error
}
