package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/traivel/internal/domain"
)

const dayNotFound = "Day not found"

// ListDays handles GET /api/v1/itineraries/{id}/days.
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	days, err := s.days.ListByItinerary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err, itineraryNotFound)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

// CreateDay handles POST /api/v1/itineraries/{id}/days.
// A missing itinerary is reported before the body is read.
func (s *Server) CreateDay(w http.ResponseWriter, r *http.Request) {
	itineraryID := chi.URLParam(r, "id")
	if err := s.days.RequireItinerary(r.Context(), itineraryID); err != nil {
		s.fail(w, r, err, itineraryNotFound)
		return
	}
	var in domain.DayInput
	if !decodeJSON(w, r, &in) {
		return
	}
	created, err := s.days.Create(r.Context(), itineraryID, in)
	if err != nil {
		s.fail(w, r, err, itineraryNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetNextDay handles GET /api/v1/itineraries/{id}/days/next[?date=YYYY-MM-DD].
func (s *Server) GetNextDay(w http.ResponseWriter, r *http.Request) {
	var date *openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, false, "date", r.URL.Query(), &date); err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	next, err := s.days.Next(r.Context(), chi.URLParam(r, "id"), date)
	if err != nil {
		s.fail(w, r, err, itineraryNotFound)
		return
	}
	writeJSON(w, http.StatusOK, next)
}

// GetDay handles GET /api/v1/days/{id}.
func (s *Server) GetDay(w http.ResponseWriter, r *http.Request) {
	day, err := s.days.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err, dayNotFound)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

// UpdateDay handles PUT /api/v1/days/{id}.
func (s *Server) UpdateDay(w http.ResponseWriter, r *http.Request) {
	var in domain.DayInput
	if !decodeJSON(w, r, &in) {
		return
	}
	updated, err := s.days.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		s.fail(w, r, err, dayNotFound)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteDay handles DELETE /api/v1/days/{id}.
func (s *Server) DeleteDay(w http.ResponseWriter, r *http.Request) {
	if err := s.days.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err, dayNotFound)
		return
	}
	writeJSON(w, http.StatusOK, deletedBody{Deleted: true})
}
