// SPDX-License-Identifier: Apache-2.0

package store

import "github.com/notekeeper/notekeeper/internal/logger"

// Storages bundles the database handle and every repository the service
// layer depends on.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewStorages wires all repositories over the provided database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
	}
}
