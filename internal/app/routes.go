package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Work entries
	r.HandleFunc("/api/entry", deps.EntryHandler.Upsert).Methods("POST")
	r.HandleFunc("/api/entry", deps.EntryHandler.GetMonth).Queries("month", "{month}").Methods("GET")
	r.HandleFunc("/api/entry/{date}", deps.EntryHandler.GetDay).Methods("GET")
	r.HandleFunc("/api/entry/{date}", deps.EntryHandler.DeleteDay).Methods("DELETE")
	r.HandleFunc("/api/entry/{date}/{category}", deps.EntryHandler.DeleteEntry).Methods("DELETE")
	r.HandleFunc("/api/shift/current", deps.EntryHandler.CurrentShift).Methods("GET")

	// Goal
	r.HandleFunc("/api/goal", deps.GoalHandler.Get).Methods("GET")
	r.HandleFunc("/api/goal", deps.GoalHandler.Set).Methods("PUT")
	r.HandleFunc("/api/goal", deps.GoalHandler.Clear).Methods("DELETE")

	// Period summary and projection
	r.HandleFunc("/api/summary", deps.SummaryHandler.GetSummary).Methods("GET")

	// Euro rates
	r.HandleFunc("/api/rate", deps.RatesHandler.GetRate).Queries("percentage", "{percentage}").Methods("GET")

	// Side tally
	r.HandleFunc("/api/tally", deps.TallyHandler.GetTotal).Methods("GET")
	r.HandleFunc("/api/tally", deps.TallyHandler.Add).Methods("POST")
	r.HandleFunc("/api/tally", deps.TallyHandler.Reset).Methods("DELETE")
}
