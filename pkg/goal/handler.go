package goal

import (
	"encoding/json"
	"net/http"
)

type GoalDTO struct {
	Goal *float64 `json:"goal"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	percent, err := h.service.Get(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(GoalDTO{Goal: percent}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Goal == nil {
		http.Error(w, "goal is required", http.StatusBadRequest)
		return
	}

	if err := h.service.Set(r.Context(), *dto.Goal); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	cleared, err := h.service.Clear(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !cleared {
		http.Error(w, "no goal set", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
