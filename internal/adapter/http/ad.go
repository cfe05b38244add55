package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pulse-ads/internal/core/domain"
	"pulse-ads/internal/core/port"
)

// createAdRequest is the payload for POST /ads.
type createAdRequest struct {
	UserID        string     `json:"user_id"`
	Title         string     `json:"title"`
	Budget        float64    `json:"budget"`
	Currency      string     `json:"currency"`
	ScheduleStart *time.Time `json:"schedule_start,omitempty"`
}

// updateAdRequest is the payload for PUT /ads/{id}; absent fields are left
// untouched.
type updateAdRequest struct {
	Title         *string        `json:"title,omitempty"`
	Budget        *float64       `json:"budget,omitempty"`
	Currency      *string        `json:"currency,omitempty"`
	Status        *domain.Status `json:"status,omitempty"`
	ScheduleStart *time.Time     `json:"schedule_start,omitempty"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	in := port.CreateAdInput{
		UserID:   req.UserID,
		Title:    req.Title,
		Budget:   req.Budget,
		Currency: req.Currency,
	}
	if req.ScheduleStart != nil {
		in.ScheduleStart = *req.ScheduleStart
	}
	ad, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, ad)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.adID(w, r)
	if !ok {
		return
	}
	ad, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ad)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")
	offset := queryInt(r, "offset")
	ads, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ads)
}

func (h *Handler) handleListByUser(w http.ResponseWriter, r *http.Request) {
	ads, err := h.svc.ListByUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ads)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.adID(w, r)
	if !ok {
		return
	}
	var req updateAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	ad, err := h.svc.Update(r.Context(), id, port.UpdateAdInput{
		Title:         req.Title,
		Budget:        req.Budget,
		Currency:      req.Currency,
		Status:        req.Status,
		ScheduleStart: req.ScheduleStart,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ad)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.adID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "advertisement deleted"})
}

func (h *Handler) handleDeleteByUser(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.svc.DeleteAllByUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// adID parses the {id} path parameter, answering 400 on garbage.
func (h *Handler) adID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid advertisement id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads an optional non-negative integer query parameter; anything
// unparseable counts as unset.
func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
