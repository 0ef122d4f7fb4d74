package app

import (
	"database/sql"

	"github.com/suorite/suorite/internal/config"
	"github.com/suorite/suorite/internal/utils"
	"github.com/suorite/suorite/pkg/calc"
	"github.com/suorite/suorite/pkg/entry"
	"github.com/suorite/suorite/pkg/goal"
	"github.com/suorite/suorite/pkg/projection"
	"github.com/suorite/suorite/pkg/rates"
	"github.com/suorite/suorite/pkg/tally"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EntryRepo    entry.Repository
	EntryService entry.Service
	EntryHandler *entry.Handler

	GoalRepo    goal.Repository
	GoalService goal.Service
	GoalHandler *goal.Handler

	SummaryService projection.SummaryService
	SummaryHandler *projection.Handler

	RatesHandler *rates.Handler

	TallyRepo    tally.Repository
	TallyService tally.Service
	TallyHandler *tally.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) (*Dependencies, error) {
	policy, err := calc.PolicyFromName(cfg.Calc.BreakPolicy)
	if err != nil {
		return nil, err
	}
	window, err := projection.WindowFromName(cfg.Calc.MissingDays)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{}
	deps.Clock = &utils.SystemClock{}

	deps.EntryRepo = entry.NewRepository(db)
	deps.EntryService = entry.NewService(deps.EntryRepo)
	deps.EntryHandler = entry.NewHandler(deps.EntryService)

	deps.GoalRepo = goal.NewRepository(db)
	deps.GoalService = goal.NewService(deps.GoalRepo)
	deps.GoalHandler = goal.NewHandler(deps.GoalService)

	aggregator := projection.Aggregator{
		Policy:       policy,
		Window:       window,
		MajorityRule: cfg.Calc.MajorityRule,
	}
	deps.SummaryService = projection.NewSummaryService(deps.EntryService, deps.GoalService, aggregator)
	deps.SummaryHandler = projection.NewHandler(deps.SummaryService, deps.Clock)

	deps.RatesHandler = rates.NewHandler(cfg.Rates.Warehouse)

	deps.TallyRepo = tally.NewRepository(db)
	deps.TallyService = tally.NewService(deps.TallyRepo)
	deps.TallyHandler = tally.NewHandler(deps.TallyService)

	return deps, nil
}
