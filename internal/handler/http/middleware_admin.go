// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/notekeeper/notekeeper/internal/logger"
	"github.com/notekeeper/notekeeper/internal/policy"
	"github.com/notekeeper/notekeeper/internal/service"
	"github.com/notekeeper/notekeeper/internal/utils"
	"github.com/notekeeper/notekeeper/models"
)

// adminOnly guards admin-level routes. It must be mounted after the auth
// middleware; a request arriving without an actor in the context is treated
// as unauthenticated, not as a server bug, so a misordered chain fails
// closed.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authUser, ok := utils.GetAuthUserFromContext(r.Context())
		if !ok {
			utils.WriteJSON(w, models.MessageResponse{Message: msgNoToken}, http.StatusUnauthorized)
			return
		}

		if decision := policy.Evaluate(policy.ActionListAllUsers, authUser, 0); !decision.Allowed {
			logger.FromRequest(r).Warn().
				Int64("id", authUser.ID).
				Str("role", string(authUser.Role)).
				Msg("admin route denied")
			h.writeServiceError(w, r, service.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
