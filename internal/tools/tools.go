// Package tools exposes the itinerary operations as MCP tools for AI agents.
// Each tool declares an input schema; arguments are checked against it before
// the handler runs, and results are JSON text blocks with an error flag.
package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/pkordes/traivel/internal/domain"
)

// ServerName and ServerVersion identify the tool server to clients.
const (
	ServerName    = "traivel"
	ServerVersion = "1.0.0"
)

// ItineraryServicer is the subset of itinerary operations the tools call.
type ItineraryServicer interface {
	List(ctx context.Context) ([]domain.Itinerary, error)
	Get(ctx context.Context, id string) (domain.ItineraryWithDays, error)
	CreateFull(ctx context.Context, in domain.FullItineraryInput) (domain.ItineraryWithDays, error)
	Update(ctx context.Context, id string, in domain.ItineraryInput) (domain.Itinerary, error)
	Delete(ctx context.Context, id string) error
	Finalize(ctx context.Context, id string) (domain.ItineraryWithDays, error)
}

// DayServicer is the subset of day operations the tools call.
type DayServicer interface {
	Create(ctx context.Context, itineraryID string, in domain.DayInput) (domain.Day, error)
	Update(ctx context.Context, id string, in domain.DayInput) (domain.Day, error)
	Delete(ctx context.Context, id string) error
}

// ActivityServicer is the subset of activity operations the tools call.
type ActivityServicer interface {
	Create(ctx context.Context, dayID string, in domain.ActivityInput) (domain.Activity, error)
	Update(ctx context.Context, id string, in domain.ActivityInput) (domain.Activity, error)
	Delete(ctx context.Context, id string) error
}

// Tools holds the services behind every tool handler.
type Tools struct {
	itineraries ItineraryServicer
	days        DayServicer
	activities  ActivityServicer
	log         *slog.Logger
}

// New constructs Tools. A nil logger falls back to slog.Default().
func New(itineraries ItineraryServicer, days DayServicer, activities ActivityServicer, log *slog.Logger) *Tools {
	if log == nil {
		log = slog.Default()
	}
	return &Tools{itineraries: itineraries, days: days, activities: activities, log: log}
}

// ServerTools returns the twelve tools with schema validation applied to each
// handler.
func (t *Tools) ServerTools() []server.ServerTool {
	defs := []server.ServerTool{
		{Tool: listItinerariesTool(), Handler: t.listItineraries},
		{Tool: getItineraryTool(), Handler: t.getItinerary},
		{Tool: createFullItineraryTool(), Handler: t.createFullItinerary},
		{Tool: updateItineraryTool(), Handler: t.updateItinerary},
		{Tool: deleteItineraryTool(), Handler: t.deleteItinerary},
		{Tool: addDayTool(), Handler: t.addDay},
		{Tool: updateDayTool(), Handler: t.updateDay},
		{Tool: deleteDayTool(), Handler: t.deleteDay},
		{Tool: addActivityTool(), Handler: t.addActivity},
		{Tool: updateActivityTool(), Handler: t.updateActivity},
		{Tool: deleteActivityTool(), Handler: t.deleteActivity},
		{Tool: finalizeAllTool(), Handler: t.finalizeAll},
	}
	for i := range defs {
		defs[i].Handler = validated(defs[i].Tool, defs[i].Handler)
	}
	return defs
}

// NewServer creates an MCP server with every tool registered.
func NewServer(t *Tools) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.AddTools(t.ServerTools()...)
	return s
}
