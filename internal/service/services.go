// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/notekeeper/notekeeper/internal/config"
	"github.com/notekeeper/notekeeper/internal/logger"
	"github.com/notekeeper/notekeeper/internal/store"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	AppInfoService AppInfoService
}

// NewServices wires all services over the given storages and configuration.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(storages.DB, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		NoteService:    NewNoteService(storages.NoteRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
