package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-work-tracker/internal/logger"
	"github.com/MKhiriev/go-work-tracker/internal/store"
	"github.com/MKhiriev/go-work-tracker/internal/utils"
	"github.com/MKhiriev/go-work-tracker/models"
)

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createEntry").Msg("no user id in context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createEntry").Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	entry, err := h.services.EntryService.Create(ctx, userID, req)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("work entry creation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.EntryResponse{
		Message:   "work entry created successfully",
		WorkEntry: entry,
	}, http.StatusCreated)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getEntry").Msg("no user id in context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := entryIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getEntry").Msg("invalid entry id")
		utils.WriteJSONError(w, store.ErrEntryNotFound.Error(), http.StatusNotFound)
		return
	}

	entry, err := h.services.EntryService.Get(ctx, userID, entryID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("entry_id", entryID).Msg("work entry lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.EntryResponse{WorkEntry: entry}, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updateEntry").Msg("no user id in context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := entryIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Msg("invalid entry id")
		utils.WriteJSONError(w, store.ErrEntryNotFound.Error(), http.StatusNotFound)
		return
	}

	var req models.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	entry, err := h.services.EntryService.Update(ctx, userID, entryID, req)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("entry_id", entryID).Msg("work entry update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.EntryResponse{
		Message:   "work entry updated successfully",
		WorkEntry: entry,
	}, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.deleteEntry").Msg("no user id in context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := entryIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteEntry").Msg("invalid entry id")
		utils.WriteJSONError(w, store.ErrEntryNotFound.Error(), http.StatusNotFound)
		return
	}

	if err := h.services.EntryService.Delete(ctx, userID, entryID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("entry_id", entryID).Msg("work entry deletion failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "work entry deleted successfully"}, http.StatusOK)
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.listEntries").Msg("no user id in context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	query := models.ListQuery{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Page:      r.URL.Query().Get("page"),
		PerPage:   r.URL.Query().Get("per_page"),
	}

	page, err := h.services.EntryService.List(ctx, userID, query)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("work entry listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.ListEntriesResponse{
		WorkEntries: page.Entries,
		Pagination:  page.Pagination,
	}, http.StatusOK)
}

// entryIDFromRequest parses the {entryID} url param. A non-numeric id is an
// error: such an entry cannot exist, so callers report it as not found.
func entryIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "entryID"), 10, 64)
}
