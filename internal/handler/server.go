// Package handler implements the REST surface of the itinerary planner API.
// All handlers are methods on Server; Routes wires them onto a chi router.
// Methods are split into resource files (itinerary.go, day.go, ...) but share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/traivel/internal/domain"
	"github.com/pkordes/traivel/spec"
)

// ItineraryServicer defines the itinerary operations the handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the database or service layer.
type ItineraryServicer interface {
	List(ctx context.Context) ([]domain.Itinerary, error)
	Create(ctx context.Context, in domain.ItineraryInput) (domain.Itinerary, error)
	Get(ctx context.Context, id string) (domain.ItineraryWithDays, error)
	Update(ctx context.Context, id string, in domain.ItineraryInput) (domain.Itinerary, error)
	Delete(ctx context.Context, id string) error
	CreateFull(ctx context.Context, in domain.FullItineraryInput) (domain.ItineraryWithDays, error)
	Finalize(ctx context.Context, id string) (domain.ItineraryWithDays, error)
}

// DayServicer defines the day operations the handlers depend on.
type DayServicer interface {
	ListByItinerary(ctx context.Context, itineraryID string) ([]domain.Day, error)
	RequireItinerary(ctx context.Context, itineraryID string) error
	Create(ctx context.Context, itineraryID string, in domain.DayInput) (domain.Day, error)
	Get(ctx context.Context, id string) (domain.DayWithActivities, error)
	Update(ctx context.Context, id string, in domain.DayInput) (domain.Day, error)
	Delete(ctx context.Context, id string) error
	Next(ctx context.Context, itineraryID string, date *openapi_types.Date) (domain.NextDay, error)
}

// ActivityServicer defines the activity operations the handlers depend on.
type ActivityServicer interface {
	ListByDay(ctx context.Context, dayID string) ([]domain.Activity, error)
	RequireDay(ctx context.Context, dayID string) error
	Create(ctx context.Context, dayID string, in domain.ActivityInput) (domain.Activity, error)
	Get(ctx context.Context, id string) (domain.Activity, error)
	Update(ctx context.Context, id string, in domain.ActivityInput) (domain.Activity, error)
	Delete(ctx context.Context, id string) error
}

// PlanServicer defines the derived read views: cost summary and export.
type PlanServicer interface {
	Summary(ctx context.Context, id string) (domain.CostSummary, error)
	Export(ctx context.Context, id string) ([]domain.ExportRow, error)
}

// Server holds the dependencies shared by every REST handler.
type Server struct {
	itineraries ItineraryServicer
	days        DayServicer
	activities  ActivityServicer
	plan        PlanServicer
	log         *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(itineraries ItineraryServicer, days DayServicer, activities ActivityServicer, plan PlanServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{itineraries: itineraries, days: days, activities: activities, plan: plan, log: log}
}

// Routes returns a router serving /healthz, /openapi.yaml, and the REST API
// under /api/v1. Unknown paths and unsupported methods answer 404
// {"error":"Not found"}.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/api/v1", func(r chi.Router) {
		r.NotFound(notFound)
		r.MethodNotAllowed(notFound)

		r.Route("/itineraries", func(r chi.Router) {
			r.Get("/", s.ListItineraries)
			r.Post("/", s.CreateItinerary)
			// Static segments win over {id} in chi's tree, so "full" is never
			// captured as an identifier.
			r.Post("/full", s.CreateFullItinerary)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.GetItinerary)
				r.Put("/", s.UpdateItinerary)
				r.Delete("/", s.DeleteItinerary)
				r.Post("/finalize", s.FinalizeItinerary)
				r.Get("/summary", s.GetSummary)
				r.Get("/export", s.GetExport)
				r.Get("/days", s.ListDays)
				r.Post("/days", s.CreateDay)
				r.Get("/days/next", s.GetNextDay)
			})
		})

		r.Route("/days/{id}", func(r chi.Router) {
			r.Get("/", s.GetDay)
			r.Put("/", s.UpdateDay)
			r.Delete("/", s.DeleteDay)
			r.Get("/activities", s.ListActivities)
			r.Post("/activities", s.CreateActivity)
		})

		r.Route("/activities/{id}", func(r chi.Router) {
			r.Get("/", s.GetActivity)
			r.Put("/", s.UpdateActivity)
			r.Delete("/", s.DeleteActivity)
		})
	})

	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
