package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/traivel/internal/domain"
)

const activityNotFound = "Activity not found"

// ListActivities handles GET /api/v1/days/{id}/activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	acts, err := s.activities.ListByDay(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err, dayNotFound)
		return
	}
	writeJSON(w, http.StatusOK, acts)
}

// CreateActivity handles POST /api/v1/days/{id}/activities.
// A missing day is reported before the body is read.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	dayID := chi.URLParam(r, "id")
	if err := s.activities.RequireDay(r.Context(), dayID); err != nil {
		s.fail(w, r, err, dayNotFound)
		return
	}
	var in domain.ActivityInput
	if !decodeJSON(w, r, &in) {
		return
	}
	created, err := s.activities.Create(r.Context(), dayID, in)
	if err != nil {
		s.fail(w, r, err, dayNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetActivity handles GET /api/v1/activities/{id}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	act, err := s.activities.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err, activityNotFound)
		return
	}
	writeJSON(w, http.StatusOK, act)
}

// UpdateActivity handles PUT /api/v1/activities/{id}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var in domain.ActivityInput
	if !decodeJSON(w, r, &in) {
		return
	}
	updated, err := s.activities.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		s.fail(w, r, err, activityNotFound)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteActivity handles DELETE /api/v1/activities/{id}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := s.activities.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err, activityNotFound)
		return
	}
	writeJSON(w, http.StatusOK, deletedBody{Deleted: true})
}
