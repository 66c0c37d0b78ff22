// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/notekeeper/notekeeper/internal/logger"
	"github.com/notekeeper/notekeeper/internal/policy"
	"github.com/notekeeper/notekeeper/internal/store"
	"github.com/notekeeper/notekeeper/models"
)

// noteService is the concrete implementation of NoteService. Access-control
// decisions are delegated to the policy package; existence is always checked
// before ownership, so a missing note reads as not-found to any
// authenticated actor.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService over the given repository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// List returns the notes visible to the actor, newest first. Admins see all
// notes, other actors only their own. A non-empty category narrows the
// result; an unknown category is rejected rather than silently matching
// nothing.
func (s *noteService) List(ctx context.Context, actor models.AuthUser, category string) ([]models.Note, error) {
	if decision := policy.Evaluate(policy.ActionReadCollection, actor, 0); !decision.Allowed {
		return nil, ErrAccessDenied
	}

	filter := models.Category(category)
	if category != "" && !filter.Valid() {
		return nil, NewValidationError(MsgCategoryInvalid)
	}

	notes, err := s.noteRepository.GetNotesForActor(ctx, actor, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("actor", actor.ID).Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

// Get returns a single note when the actor owns it or is an admin.
func (s *noteService) Get(ctx context.Context, actor models.AuthUser, id int64) (models.Note, error) {
	note, err := s.fetchAuthorized(ctx, policy.ActionReadItem, actor, id)
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// Create validates the request and persists a new note owned by the actor.
// The owner is always the actor; any owner supplied by the caller is
// ignored. An empty category defaults to Others.
func (s *noteService) Create(ctx context.Context, actor models.AuthUser, req models.CreateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if decision := policy.Evaluate(policy.ActionCreate, actor, 0); !decision.Allowed {
		return models.Note{}, ErrAccessDenied
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return models.Note{}, NewValidationError(MsgTitleContentRequired)
	}
	if utf8.RuneCountInString(title) > titleMaxLen {
		return models.Note{}, NewValidationError(MsgTitleLength)
	}

	category := models.Category(req.Category)
	if req.Category == "" {
		category = models.CategoryOthers
	} else if !category.Valid() {
		return models.Note{}, NewValidationError(MsgCategoryInvalid)
	}

	created, err := s.noteRepository.CreateNote(ctx, models.Note{
		Title:    title,
		Content:  content,
		Category: category,
		UserID:   actor.ID,
	})
	if err != nil {
		log.Err(err).Int64("actor", actor.ID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

// Update applies a partial update to a note the actor owns (or any note, for
// admins). Fields absent from the request keep their stored values. A
// request carrying no fields is a no-op that returns the current record.
func (s *noteService) Update(ctx context.Context, actor models.AuthUser, id int64, req models.UpdateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	existing, err := s.fetchAuthorized(ctx, policy.ActionUpdate, actor, id)
	if err != nil {
		return models.Note{}, err
	}

	update, err := buildNoteUpdate(req)
	if err != nil {
		return models.Note{}, err
	}
	if update.Empty() {
		return existing, nil
	}

	updated, err := s.noteRepository.UpdateNote(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return models.Note{}, err
		}
		log.Err(err).Int64("note", id).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes a note the actor owns (or any note, for admins).
func (s *noteService) Delete(ctx context.Context, actor models.AuthUser, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.fetchAuthorized(ctx, policy.ActionDelete, actor, id); err != nil {
		return err
	}

	if err := s.noteRepository.DeleteNote(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return err
		}
		log.Err(err).Int64("note", id).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}

// fetchAuthorized loads the note and evaluates the item-level policy.
// Existence is checked first: a missing note returns store.ErrNoteNotFound
// before any ownership decision is made.
func (s *noteService) fetchAuthorized(ctx context.Context, action policy.Action, actor models.AuthUser, id int64) (models.Note, error) {
	note, err := s.noteRepository.GetNoteByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return models.Note{}, err
		}
		logger.FromContext(ctx).Err(err).Int64("note", id).Msg("note lookup failed")
		return models.Note{}, fmt.Errorf("note lookup failed: %w", err)
	}

	if decision := policy.Evaluate(action, actor, note.UserID); !decision.Allowed {
		logger.FromContext(ctx).Warn().
			Int64("actor", actor.ID).
			Int64("note", id).
			Int64("owner", note.UserID).
			Msg("access denied")
		return models.Note{}, ErrAccessDenied
	}

	return note, nil
}

func buildNoteUpdate(req models.UpdateNoteRequest) (models.NoteUpdate, error) {
	var update models.NoteUpdate

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return models.NoteUpdate{}, NewValidationError(MsgTitleEmpty)
		}
		if utf8.RuneCountInString(title) > titleMaxLen {
			return models.NoteUpdate{}, NewValidationError(MsgTitleLength)
		}
		update.Title = &title
	}

	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return models.NoteUpdate{}, NewValidationError(MsgContentEmpty)
		}
		update.Content = &content
	}

	if req.Category != nil {
		category := models.Category(*req.Category)
		if !category.Valid() {
			return models.NoteUpdate{}, NewValidationError(MsgCategoryInvalid)
		}
		update.Category = &category
	}

	return update, nil
}
