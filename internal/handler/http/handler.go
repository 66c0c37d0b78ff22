// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/notekeeper/notekeeper/internal/config"
	"github.com/notekeeper/notekeeper/internal/logger"
	"github.com/notekeeper/notekeeper/internal/service"
)

// Handler owns the REST API surface. It translates HTTP requests into
// service calls and service errors into the JSON error envelope.
type Handler struct {
	services *service.Services

	// refreshRole switches the auth middleware to re-fetch the actor's
	// role from the store on every request instead of trusting the role
	// claim embedded in the token.
	refreshRole bool

	// corsAllowedOrigins is the origin allowlist applied by the CORS
	// middleware. Empty means no cross-origin access.
	corsAllowedOrigins []string

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler over the given services.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		refreshRole:        cfg.Auth.RefreshRole,
		corsAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		logger:             logger,
	}
}
