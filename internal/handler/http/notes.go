// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/notekeeper/notekeeper/internal/logger"
	"github.com/notekeeper/notekeeper/internal/utils"
	"github.com/notekeeper/notekeeper/models"
)

// noteIDFromRequest parses the {id} path parameter. A non-numeric or
// non-positive value is a malformed identifier, reported as 400 rather than
// 404.
func noteIDFromRequest(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) getAllNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUser, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: msgNoToken}, http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.List(ctx, authUser, r.URL.Query().Get("category"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNoteByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUser, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: msgNoToken}, http.StatusUnauthorized)
		return
	}

	id, ok := noteIDFromRequest(r)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidNoteID}, http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.Get(ctx, authUser, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authUser, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: msgNoToken}, http.StatusUnauthorized)
		return
	}

	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	created, err := h.services.NoteService.Create(ctx, authUser, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Info().Int64("id", created.ID).Int64("owner", created.UserID).Msg("note created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authUser, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: msgNoToken}, http.StatusUnauthorized)
		return
	}

	id, ok := noteIDFromRequest(r)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidNoteID}, http.StatusBadRequest)
		return
	}

	var req models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	updated, err := h.services.NoteService.Update(ctx, authUser, id, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUser, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: msgNoToken}, http.StatusUnauthorized)
		return
	}

	id, ok := noteIDFromRequest(r)
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidNoteID}, http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.Delete(ctx, authUser, id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgNoteDeleted}, http.StatusOK)
}
