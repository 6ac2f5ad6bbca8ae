package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pkordes/traivel/internal/domain"
)

const itineraryNotFound = "Itinerary not found"

func listItinerariesTool() mcp.Tool {
	return newTool("list_itineraries", "List all travel itineraries")
}

func getItineraryTool() mcp.Tool {
	return newTool("get_itinerary", "Get a single itinerary with all nested days and activities",
		[]mcp.ToolOption{idField("id", "Itinerary id")})
}

func createFullItineraryTool() mcp.Tool {
	return newTool("create_full_itinerary", "Create a complete itinerary with days and activities in one call",
		itineraryFields(true),
		[]mcp.ToolOption{
			mcp.WithArray("days", mcp.Items(dayItemSchema()), mcp.Description("Days with their activities")),
		})
}

func updateItineraryTool() mcp.Tool {
	return newTool("update_itinerary", "Update itinerary metadata",
		[]mcp.ToolOption{idField("id", "Itinerary id")},
		itineraryFields(false))
}

func deleteItineraryTool() mcp.Tool {
	return newTool("delete_itinerary", "Delete an itinerary and all its days and activities",
		[]mcp.ToolOption{idField("id", "Itinerary id")})
}

func finalizeAllTool() mcp.Tool {
	return newTool("finalize_all", "Mark all items in an itinerary as finalized",
		[]mcp.ToolOption{idField("itinerary_id", "Itinerary id")})
}

func (t *Tools) listItineraries(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	its, err := t.itineraries.List(ctx)
	if err != nil {
		return t.errorResult(ctx, "list_itineraries", err, itineraryNotFound)
	}
	return jsonResult(its)
}

func (t *Tools) getItinerary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := bind(req, &args); err != nil {
		return mcp.NewToolResultError("Invalid arguments: " + err.Error()), nil
	}

	full, err := t.itineraries.Get(ctx, args.ID)
	if err != nil {
		return t.errorResult(ctx, "get_itinerary", err, itineraryNotFound)
	}
	return jsonResult(full)
}

func (t *Tools) createFullItinerary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in domain.FullItineraryInput
	if err := bind(req, &in); err != nil {
		return mcp.NewToolResultError("Invalid arguments: " + err.Error()), nil
	}

	full, err := t.itineraries.CreateFull(ctx, in)
	if err != nil {
		return t.errorResult(ctx, "create_full_itinerary", err, itineraryNotFound)
	}
	return jsonResult(full)
}

func (t *Tools) updateItinerary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		ID string `json:"id"`
		domain.ItineraryInput
	}
	if err := bind(req, &args); err != nil {
		return mcp.NewToolResultError("Invalid arguments: " + err.Error()), nil
	}

	it, err := t.itineraries.Update(ctx, args.ID, args.ItineraryInput)
	if err != nil {
		return t.errorResult(ctx, "update_itinerary", err, itineraryNotFound)
	}
	return jsonResult(it)
}

func (t *Tools) deleteItinerary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := bind(req, &args); err != nil {
		return mcp.NewToolResultError("Invalid arguments: " + err.Error()), nil
	}

	if err := t.itineraries.Delete(ctx, args.ID); err != nil {
		return t.errorResult(ctx, "delete_itinerary", err, itineraryNotFound)
	}
	return mcp.NewToolResultText("Deleted itinerary " + args.ID), nil
}

// finalizeAll returns the whole aggregate after finalizing it.
func (t *Tools) finalizeAll(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		ItineraryID string `json:"itinerary_id"`
	}
	if err := bind(req, &args); err != nil {
		return mcp.NewToolResultError("Invalid arguments: " + err.Error()), nil
	}

	full, err := t.itineraries.Finalize(ctx, args.ItineraryID)
	if err != nil {
		return t.errorResult(ctx, "finalize_all", err, itineraryNotFound)
	}
	return jsonResult(full)
}
