package projection

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/suorite/suorite/internal/utils"
	"github.com/suorite/suorite/pkg/entry"
)

// CategorySummaryDTO mirrors what the frontend renders: absolute values with
// two decimals, percentages without decimals.
type CategorySummaryDTO struct {
	DailyRequiredAbsolute     string `json:"dailyRequiredAbsolute"`
	DailyRequiredPercentage   string `json:"dailyRequiredPercentage"`
	CurrentAveragePercentage  string `json:"currentAveragePercentage"`
	MissingDays               int    `json:"missingDays"`
	InstantlyToGoalAbsolute   string `json:"instantlyToGoalAbsolute"`
	InstantlyToGoalPercentage string `json:"instantlyToGoalPercentage"`
	TotalInputHours           string `json:"totalInputHours"`
}

type SummaryDTO struct {
	Period                   string              `json:"period"`
	Normal                   *CategorySummaryDTO `json:"normal"`
	Forklift                 *CategorySummaryDTO `json:"forklift"`
	SharedMissingDays        int                 `json:"sharedMissingDays"`
	OverallAverage           string              `json:"overallAverage"`
	OverallAveragePercentage int                 `json:"overallAveragePercentage"`
}

type Handler struct {
	service SummaryService
	clock   utils.Clock
}

func NewHandler(service SummaryService, clock utils.Clock) *Handler {
	return &Handler{service: service, clock: clock}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	log.Debug("Computing period summary")
	w.Header().Set("Content-Type", "application/json")

	refDate := h.clock.Now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := time.Parse(entry.DateFormat, dateParam)
		if err != nil {
			http.Error(w, "invalid date: "+dateParam, http.StatusBadRequest)
			return
		}
		refDate = parsed
	}

	summary, err := h.service.Summary(r.Context(), refDate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SummaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SummaryToDTO(summary Summary) SummaryDTO {
	return SummaryDTO{
		Period:                   summary.Period.Label,
		Normal:                   categoryToDTO(summary.Normal),
		Forklift:                 categoryToDTO(summary.Forklift),
		SharedMissingDays:        summary.SharedMissingDays,
		OverallAverage:           fmt.Sprintf("%.2f", summary.OverallAverage),
		OverallAveragePercentage: summary.OverallAveragePercentage,
	}
}

func categoryToDTO(cs *CategorySummary) *CategorySummaryDTO {
	if cs == nil {
		return nil
	}
	return &CategorySummaryDTO{
		DailyRequiredAbsolute:     fmt.Sprintf("%.2f", cs.Projection.DailyRequiredAbsolute),
		DailyRequiredPercentage:   fmt.Sprintf("%.0f", cs.Projection.DailyRequiredPercentage),
		CurrentAveragePercentage:  fmt.Sprintf("%.0f", cs.Projection.CurrentAveragePercentage),
		MissingDays:               cs.Aggregate.MissingDays,
		InstantlyToGoalAbsolute:   fmt.Sprintf("%.2f", cs.Projection.InstantlyToGoalAbsolute),
		InstantlyToGoalPercentage: fmt.Sprintf("%.0f", cs.Projection.InstantlyToGoalPercentage),
		TotalInputHours:           fmt.Sprintf("%.2f", cs.Aggregate.PaidHours),
	}
}
