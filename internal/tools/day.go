package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pkordes/traivel/internal/domain"
)

const dayNotFound = "Day not found"

func addDayTool() mcp.Tool {
	return newTool("add_day", "Add a day to an itinerary",
		[]mcp.ToolOption{idField("itinerary_id", "Itinerary the day belongs to")},
		dayFields(true))
}

func updateDayTool() mcp.Tool {
	return newTool("update_day", "Update a day",
		[]mcp.ToolOption{idField("id", "Day id")},
		dayFields(false))
}

func deleteDayTool() mcp.Tool {
	return newTool("delete_day", "Delete a day and all its activities",
		[]mcp.ToolOption{idField("id", "Day id")})
}

// addDay reports a missing parent itinerary as an itinerary not-found.
func (t *Tools) addDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		ItineraryID string `json:"itinerary_id"`
		domain.DayInput
	}
	if err := bind(req, &args); err != nil {
		return mcp.NewToolResultError("Invalid arguments: " + err.Error()), nil
	}

	day, err := t.days.Create(ctx, args.ItineraryID, args.DayInput)
	if err != nil {
		return t.errorResult(ctx, "add_day", err, itineraryNotFound)
	}
	return jsonResult(day)
}

func (t *Tools) updateDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		ID string `json:"id"`
		domain.DayInput
	}
	if err := bind(req, &args); err != nil {
		return mcp.NewToolResultError("Invalid arguments: " + err.Error()), nil
	}

	day, err := t.days.Update(ctx, args.ID, args.DayInput)
	if err != nil {
		return t.errorResult(ctx, "update_day", err, dayNotFound)
	}
	return jsonResult(day)
}

func (t *Tools) deleteDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := bind(req, &args); err != nil {
		return mcp.NewToolResultError("Invalid arguments: " + err.Error()), nil
	}

	if err := t.days.Delete(ctx, args.ID); err != nil {
		return t.errorResult(ctx, "delete_day", err, dayNotFound)
	}
	return mcp.NewToolResultText("Deleted day " + args.ID), nil
}
