package projection

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/suorite/suorite/pkg/calc"
	"github.com/suorite/suorite/pkg/entry"
	"github.com/suorite/suorite/pkg/goal"
	"github.com/suorite/suorite/pkg/period"
)

// CategorySummary pairs a category's period totals with its goal projection.
type CategorySummary struct {
	Aggregate  Aggregate
	Projection Projection
}

// Summary is the full period view the frontend renders: per-category
// remaining-work data (nil while no goal is saved), the shared missing-day
// count, and the legacy overall average figures.
type Summary struct {
	Period            period.Period
	Normal            *CategorySummary
	Forklift          *CategorySummary
	SharedMissingDays int
	OverallAverage    float64
	// OverallAveragePercentage maps OverallAverage onto the legacy linear
	// scale, not the per-entry effective-hours percentage.
	OverallAveragePercentage int
}

type SummaryService interface {
	// Summary recomputes the period view from scratch for the period
	// containing refDate.
	Summary(ctx context.Context, refDate time.Time) (Summary, error)
}

type SummaryServiceImpl struct {
	entries    entry.Service
	goals      goal.Service
	aggregator Aggregator
}

func NewSummaryService(entries entry.Service, goals goal.Service, aggregator Aggregator) *SummaryServiceImpl {
	return &SummaryServiceImpl{
		entries:    entries,
		goals:      goals,
		aggregator: aggregator,
	}
}

func (s *SummaryServiceImpl) Summary(ctx context.Context, refDate time.Time) (Summary, error) {
	p := period.ForDate(refDate)
	log.Debugf("computing summary for %s of %d-%02d", p.Label, p.Year, p.Month)

	records, err := s.entries.GetMonth(ctx, refDate)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load entries: %w", err)
	}
	goalPercent, err := s.goals.Get(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load goal: %w", err)
	}

	normalAgg := s.aggregator.Aggregate(records, p, entry.CategoryNormal, refDate)
	forkliftAgg := s.aggregator.Aggregate(records, p, entry.CategoryForklift, refDate)

	overallAverage := OverallAverage(records, p)
	summary := Summary{
		Period: p,
		// The missing-day count is shift-based and identical for both
		// categories; expose it once.
		SharedMissingDays:        normalAgg.MissingDays,
		OverallAverage:           overallAverage,
		OverallAveragePercentage: calc.LinearPercentage(overallAverage),
	}

	// No saved goal means no projection, not an error.
	if goalPercent != nil {
		summary.Normal = &CategorySummary{
			Aggregate:  normalAgg,
			Projection: Project(normalAgg, *goalPercent, calc.DefaultEffective),
		}
		summary.Forklift = &CategorySummary{
			Aggregate:  forkliftAgg,
			Projection: Project(forkliftAgg, *goalPercent, calc.DefaultEffective),
		}
	}

	return summary, nil
}
