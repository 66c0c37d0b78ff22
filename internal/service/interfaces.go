// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/notekeeper/notekeeper/models"
)

// AuthService owns the account lifecycle: registration, credential
// verification, JWT issuance and parsing, and account lookups.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// NoteService owns note CRUD with ownership enforcement. Every method takes
// the acting user so the service can apply the role and ownership rules.
type NoteService interface {
	List(ctx context.Context, actor models.AuthUser, category string) ([]models.Note, error)
	Get(ctx context.Context, actor models.AuthUser, id int64) (models.Note, error)
	Create(ctx context.Context, actor models.AuthUser, req models.CreateNoteRequest) (models.Note, error)
	Update(ctx context.Context, actor models.AuthUser, id int64, req models.UpdateNoteRequest) (models.Note, error)
	Delete(ctx context.Context, actor models.AuthUser, id int64) error
}

// AppInfoService reports build metadata and backend readiness.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Ready(ctx context.Context) error
}
