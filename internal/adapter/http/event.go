package httpadapter

import "net/http"

// handleImpression records one validated impression event against the
// advertisement in the path and returns the updated document. Unknown
// advertisements produce HTTP 404 without any write.
func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	id, ok := h.adID(w, r)
	if !ok {
		return
	}
	ad, err := h.svc.RecordImpression(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ad)
}

// handleClick records one validated click event. The click also counts as
// an impression; both counters on today's bucket grow by one.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	id, ok := h.adID(w, r)
	if !ok {
		return
	}
	ad, err := h.svc.RecordClick(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ad)
}
