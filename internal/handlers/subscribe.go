package handlers

import (
	"net/http"
)

// Subscribe appends a target account to a subscriber's watch list
// @Summary Subscribe to a player
// @Description Append target_id to my_id's watch list and return the full subscription map
// @Tags Subscription
// @Produce json
// @Param my_id query string true "Subscriber Account ID (decimal)"
// @Param target_id query string true "Target Account ID (decimal)"
// @Success 200 {object} map[string][]string "Subscription Map"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /subscribe [get]
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	subscriberID, ok := h.queryParam(r, "my_id")
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Missing or invalid my_id")
		return
	}
	targetID, ok := h.queryParam(r, "target_id")
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Missing or invalid target_id")
		return
	}

	subs := h.service.Subscribe(subscriberID, targetID)
	h.jsonResponse(w, http.StatusOK, subs)
}
