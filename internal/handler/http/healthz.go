package http

import (
	"net/http"

	"github.com/notekeeper/notekeeper/internal/logger"
	"github.com/notekeeper/notekeeper/internal/utils"
	"github.com/notekeeper/notekeeper/models"
)

// healthz reports service readiness. It returns 200 while the persistence
// backend answers pings and 503 otherwise, so load balancers can rotate the
// instance out before requests start failing.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Ready(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("readiness check failed")
		utils.WriteJSON(w, models.MessageResponse{Message: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
}
