// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/notekeeper/notekeeper/internal/logger"
	"github.com/notekeeper/notekeeper/models"
)

var noteColumns = []string{"id", "title", "content", "category", "user_id", "created_at", "updated_at"}

// noteRepository is the SQL-backed implementation of [NoteRepository].
// It owns all access to the "notes" table; ownership and role checks happen
// in the service layer, except for the role-scoped listing which is pushed
// down here so non-admin actors never pull other users' rows off the wire.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a new note and returns it with server-assigned fields
// (ID, CreatedAt, UpdatedAt) populated via a RETURNING clause.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(note.TableName()).
		Columns("title", "content", "category", "user_id").
		Values(note.Title, note.Content, note.Category, note.UserID).
		Suffix("RETURNING id, title, content, category, user_id, created_at, updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanNote(row, &created); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// GetNoteByID retrieves a single note regardless of who owns it. Callers
// decide whether the actor may see it.
func (r *noteRepository) GetNoteByID(ctx context.Context, id int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNoteByID").Msg("error building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanNote(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.GetNoteByID").Msg("error scanning note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// GetNotesForActor lists notes visible to the actor, newest first. Admins
// see every note; any other role is restricted to its own rows. A non-empty
// category narrows the result further.
func (r *noteRepository) GetNotesForActor(ctx context.Context, actor models.AuthUser, category models.Category) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		OrderBy("created_at DESC")

	if actor.Role != models.RoleAdmin {
		builder = builder.Where(sq.Eq{"user_id": actor.ID})
	}
	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNotesForActor").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNotesForActor").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err = rows.Scan(&note.ID, &note.Title, &note.Content, &note.Category, &note.UserID, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.GetNotesForActor").Msg("error scanning note rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNotesForActor").Msg("error iterating note rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// UpdateNote applies the non-nil fields of update to the note with the given
// ID, bumps updated_at and returns the updated record.
func (r *noteRepository) UpdateNote(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Update(models.Note{}.TableName()).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, title, content, category, user_id, created_at, updated_at")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanNote(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error updating note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteNote removes the note with the given ID.
func (r *noteRepository) DeleteNote(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error reading rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func scanNote(row *sql.Row, note *models.Note) error {
	return row.Scan(&note.ID, &note.Title, &note.Content, &note.Category, &note.UserID, &note.CreatedAt, &note.UpdatedAt)
}
