// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/notekeeper/notekeeper/internal/config"
	"github.com/notekeeper/notekeeper/internal/logger"
)

// Pinger is the slice of the database handle the app-info service needs for
// readiness checks.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type appInfoService struct {
	appVersion string
	db         Pinger

	logger *logger.Logger
}

// NewAppInfoService constructs an AppInfoService reporting the configured
// version and the liveness of the given database handle.
func NewAppInfoService(db Pinger, cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		db:         db,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Ready reports whether the persistence backend answers a ping.
func (s *appInfoService) Ready(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
