package httpadapter

import "net/http"

// handleTrending returns the ranked trending list. Zero candidates is a
// normal response: an empty JSON array, not an error.
func (h *Handler) handleTrending(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.svc.Trending(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ranked)
}
