// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"

	"github.com/notekeeper/notekeeper/internal/logger"
	"github.com/notekeeper/notekeeper/internal/service"
	"github.com/notekeeper/notekeeper/internal/store"
	"github.com/notekeeper/notekeeper/internal/utils"
	"github.com/notekeeper/notekeeper/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponseMap translates service and store sentinels into the HTTP
// status and the user-facing message of the JSON error envelope. Duplicate
// registrations map to 400 like any other rejected input, not 409.
var errorResponseMap = map[error]errorResponse{
	store.ErrEmailAlreadyRegistered: {http.StatusBadRequest, "Email already registered"},
	store.ErrUsernameAlreadyTaken:   {http.StatusBadRequest, "Username already taken"},

	service.ErrInvalidCredentials: {http.StatusUnauthorized, "Invalid email or password"},
	service.ErrTokenExpired:       {http.StatusUnauthorized, msgTokenExpired},
	service.ErrTokenInvalid:       {http.StatusUnauthorized, msgInvalidToken},

	service.ErrAccessDenied:  {http.StatusForbidden, "Access denied"},
	service.ErrAdminRequired: {http.StatusForbidden, "Access denied. Admin privileges required."},

	store.ErrUserNotFound: {http.StatusNotFound, "User not found"},
	store.ErrNoteNotFound: {http.StatusNotFound, "Note not found"},

	store.ErrBuildingSQLQuery: {http.StatusInternalServerError, msgInternalError},
	store.ErrExecutingQuery:   {http.StatusInternalServerError, msgInternalError},
	store.ErrScanningRow:      {http.StatusInternalServerError, msgInternalError},
	store.ErrScanningRows:     {http.StatusInternalServerError, msgInternalError},
}

// writeServiceError maps err onto the JSON error envelope. Validation
// failures carry their own field-specific message; anything unrecognised
// collapses to a generic 500 so internals never leak to clients.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteJSON(w, models.MessageResponse{Message: validationErr.Message}, http.StatusBadRequest)
		return
	}

	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			utils.WriteJSON(w, models.MessageResponse{Message: resp.message}, resp.status)
			return
		}
	}

	log.Err(err).Msg("unexpected error")
	utils.WriteJSON(w, models.MessageResponse{Message: msgInternalError}, http.StatusInternalServerError)
}
