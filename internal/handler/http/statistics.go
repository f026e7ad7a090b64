package http

import (
	"net/http"

	"github.com/MKhiriev/go-work-tracker/internal/logger"
	"github.com/MKhiriev/go-work-tracker/internal/utils"
)

func (h *Handler) statistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.statistics").Msg("no user id in context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	stats, err := h.services.EntryService.Statistics(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("statistics calculation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
