package entry

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/suorite/suorite/pkg/calc"
)

// EntryDTO keeps the legacy two-flag wire shape; the flags map onto ShiftKind
// at the boundary (free day wins when both are set).
type EntryDTO struct {
	Performance float64 `json:"performance"`
	Hours       float64 `json:"hours"`
	Overtime    bool    `json:"overtime"`
	FreeDay     bool    `json:"freeDay"`
	StartTime   string  `json:"startTime,omitempty"`
	EndTime     string  `json:"endTime,omitempty"`
}

type DayRecordDTO struct {
	Date     string    `json:"date"`
	Normal   *EntryDTO `json:"normal,omitempty"`
	Forklift *EntryDTO `json:"forklift,omitempty"`
}

type upsertRequestDTO struct {
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Entry    EntryDTO `json:"entry"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	log.Debug("Storing work entry")
	w.Header().Set("Content-Type", "application/json")

	var req upsertRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	date, err := time.Parse(DateFormat, req.Date)
	if err != nil {
		http.Error(w, "invalid date: "+req.Date, http.StatusBadRequest)
		return
	}
	category, err := CategoryFromString(req.Category)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := h.service.Upsert(r.Context(), date, category, DTOToEntry(req.Entry))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(EntryToDTO(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	date, err := time.Parse(DateFormat, mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	record, err := h.service.GetDay(r.Context(), date)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "no entries for date", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(RecordToDTO(record)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	date, err := time.Parse("2006-01", r.URL.Query().Get("month"))
	if err != nil {
		http.Error(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
		return
	}

	records, err := h.service.GetMonth(r.Context(), date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]DayRecordDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, RecordToDTO(record))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) DeleteDay(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(DateFormat, mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	deleted, err := h.service.DeleteDay(r.Context(), date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "no entries for date", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := time.Parse(DateFormat, vars["date"])
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	category, err := CategoryFromString(vars["category"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := h.service.DeleteEntry(r.Context(), date, category)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "no entry for date and category", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CurrentShift reports which shift slot is ongoing right now, used by the
// form to preselect a time picker.
func (h *Handler) CurrentShift(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	response := struct {
		Shift Shift `json:"shift"`
	}{Shift: DetectShift(time.Now())}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func EntryToDTO(e Entry) EntryDTO {
	overtime, freeDay := e.Kind.Flags()
	return EntryDTO{
		Performance: e.Performance,
		Hours:       e.Hours,
		Overtime:    overtime,
		FreeDay:     freeDay,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
	}
}

func DTOToEntry(dto EntryDTO) Entry {
	return Entry{
		Performance: dto.Performance,
		Hours:       dto.Hours,
		Kind:        calc.ShiftKindFromFlags(dto.Overtime, dto.FreeDay),
		StartTime:   dto.StartTime,
		EndTime:     dto.EndTime,
	}
}

func RecordToDTO(record DayRecord) DayRecordDTO {
	dto := DayRecordDTO{Date: record.Date.Format(DateFormat)}
	if record.Normal != nil {
		normal := EntryToDTO(*record.Normal)
		dto.Normal = &normal
	}
	if record.Forklift != nil {
		forklift := EntryToDTO(*record.Forklift)
		dto.Forklift = &forklift
	}
	return dto
}
