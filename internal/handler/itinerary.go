package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/traivel/internal/domain"
)

const itineraryNotFound = "Itinerary not found"

// ListItineraries handles GET /api/v1/itineraries.
func (s *Server) ListItineraries(w http.ResponseWriter, r *http.Request) {
	its, err := s.itineraries.List(r.Context())
	if err != nil {
		s.fail(w, r, err, itineraryNotFound)
		return
	}
	writeJSON(w, http.StatusOK, its)
}

// CreateItinerary handles POST /api/v1/itineraries.
func (s *Server) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var in domain.ItineraryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	created, err := s.itineraries.Create(r.Context(), in)
	if err != nil {
		s.fail(w, r, err, itineraryNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// CreateFullItinerary handles POST /api/v1/itineraries/full.
func (s *Server) CreateFullItinerary(w http.ResponseWriter, r *http.Request) {
	var in domain.FullItineraryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	agg, err := s.itineraries.CreateFull(r.Context(), in)
	if err != nil {
		s.fail(w, r, err, itineraryNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, agg)
}

// GetItinerary handles GET /api/v1/itineraries/{id}.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	agg, err := s.itineraries.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err, itineraryNotFound)
		return
	}
	writeJSON(w, http.StatusOK, agg)
}

// UpdateItinerary handles PUT /api/v1/itineraries/{id}.
func (s *Server) UpdateItinerary(w http.ResponseWriter, r *http.Request) {
	var in domain.ItineraryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	updated, err := s.itineraries.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		s.fail(w, r, err, itineraryNotFound)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteItinerary handles DELETE /api/v1/itineraries/{id}.
func (s *Server) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	if err := s.itineraries.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err, itineraryNotFound)
		return
	}
	writeJSON(w, http.StatusOK, deletedBody{Deleted: true})
}

// FinalizeItinerary handles POST /api/v1/itineraries/{id}/finalize.
func (s *Server) FinalizeItinerary(w http.ResponseWriter, r *http.Request) {
	agg, err := s.itineraries.Finalize(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err, itineraryNotFound)
		return
	}
	writeJSON(w, http.StatusOK, agg)
}
