package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/traivel/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"day_number", "date", "theme", "activity_name", "time_slot",
	"category", "estimated_cost", "ai_status", "notes", "links",
}

// GetSummary handles GET /api/v1/itineraries/{id}/summary.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.plan.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err, itineraryNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// GetExport handles GET /api/v1/itineraries/{id}/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		writeError(w, http.StatusBadRequest, "format must be json or csv")
		return
	}

	rows, err := s.plan.Export(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err, itineraryNotFound)
		return
	}

	if format != "csv" {
		writeJSON(w, http.StatusOK, rows)
		return
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	_ = cw.Write(csvHeaders)
	for _, row := range rows {
		_ = cw.Write(csvRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// csvRecord flattens a row. Links are joined with "|" to keep each activity
// on a single CSV line; a missing cost is an empty cell.
func csvRecord(r domain.ExportRow) []string {
	cost := ""
	if r.EstimatedCost != nil {
		cost = strconv.FormatFloat(*r.EstimatedCost, 'f', -1, 64)
	}
	return []string{
		strconv.Itoa(r.DayNumber),
		r.Date,
		r.Theme,
		r.ActivityName,
		r.TimeSlot,
		r.Category,
		cost,
		r.AIStatus,
		r.Notes,
		strings.Join(r.Links, "|"),
	}
}
