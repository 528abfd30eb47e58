package handlers

import (
	"net/http"
)

// GetLatestMatch returns the performance record of the account's most recent match
// @Summary Latest Match Performance
// @Description Resolve the account's most recent match and return the extracted performance record
// @Tags Match
// @Produce json
// @Param account_id query string true "Account ID (decimal)"
// @Success 200 {object} models.PlayerPerformance "Performance"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Upstream or Extraction Failure"
// @Router /match/latest [get]
func (h *Handler) GetLatestMatch(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.queryParam(r, "account_id")
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Missing or invalid account_id")
		return
	}

	perf, err := h.service.LatestPerformance(r.Context(), accountID)
	if err != nil {
		h.logger.Errorw("Failed to resolve latest performance", "account_id", accountID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.jsonResponse(w, http.StatusOK, perf)
}

// GetLatestMatchSummary returns the latest performance as a chat-ready text block
// @Summary Latest Match Summary
// @Description Same pipeline as /match/latest, rendered as a human-readable summary
// @Tags Match
// @Produce plain
// @Param account_id query string true "Account ID (decimal)"
// @Success 200 {string} string "Summary"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Upstream or Extraction Failure"
// @Router /match/latest/summary [get]
func (h *Handler) GetLatestMatchSummary(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.queryParam(r, "account_id")
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Missing or invalid account_id")
		return
	}

	summary, err := h.service.LatestSummary(r.Context(), accountID)
	if err != nil {
		h.logger.Errorw("Failed to render latest summary", "account_id", accountID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(summary))
}
