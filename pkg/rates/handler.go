package rates

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/suorite/suorite/pkg/entry"
)

type RateDTO struct {
	Percentage float64 `json:"percentage"`
	Category   string  `json:"category"`
	Warehouse  string  `json:"warehouse"`
	Rate       float64 `json:"rate"`
}

type Handler struct {
	warehouse string
}

// NewHandler builds a rate lookup handler defaulting to the configured site.
func NewHandler(warehouse string) *Handler {
	return &Handler{warehouse: warehouse}
}

func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	percent, err := strconv.ParseFloat(r.URL.Query().Get("percentage"), 64)
	if err != nil {
		http.Error(w, "invalid percentage", http.StatusBadRequest)
		return
	}
	category, err := entry.CategoryFromString(r.URL.Query().Get("category"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	warehouse := r.URL.Query().Get("warehouse")
	if warehouse == "" {
		warehouse = h.warehouse
	}

	dto := RateDTO{
		Percentage: percent,
		Category:   string(category),
		Warehouse:  warehouse,
		Rate:       RateFor(percent, category, warehouse),
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
