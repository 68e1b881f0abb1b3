package handler

import (
	"net/http"
	"time"

	"github.com/tripledger/tripledger/internal/calendar"
)

// GetCalendar handles GET /calendar.
// Query parameters:
//
//	view     month (default), week, or day
//	date     reference date as "2006-01-02"; defaults to today
//	trip_id  optional trip restriction
//	category optional category filter; "all" or absent means no filter
func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	view := calendar.ViewMonth
	if raw := q.Get("view"); raw != "" {
		view = calendar.View(raw)
	}

	ref := time.Now().UTC()
	if raw := q.Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequest(w, "date must be formatted as YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	tripID, ok := queryUUID(w, r, "trip_id")
	if !ok {
		return
	}

	page, err := s.svcs.Calendar.View(r.Context(), tripID, view, ref, q.Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, page)
}
