package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pkordes/traivel/internal/domain"
)

const activityNotFound = "Activity not found"

func addActivityTool() mcp.Tool {
	return newTool("add_activity", "Add an activity to a day",
		[]mcp.ToolOption{idField("day_id", "Day the activity belongs to")},
		activityFields(true))
}

func updateActivityTool() mcp.Tool {
	return newTool("update_activity", "Update an activity",
		[]mcp.ToolOption{idField("id", "Activity id")},
		activityFields(false))
}

func deleteActivityTool() mcp.Tool {
	return newTool("delete_activity", "Delete an activity",
		[]mcp.ToolOption{idField("id", "Activity id")})
}

func (t *Tools) addActivity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		DayID string `json:"day_id"`
		domain.ActivityInput
	}
	if err := bind(req, &args); err != nil {
		return mcp.NewToolResultError("Invalid arguments: " + err.Error()), nil
	}

	act, err := t.activities.Create(ctx, args.DayID, args.ActivityInput)
	if err != nil {
		return t.errorResult(ctx, "add_activity", err, dayNotFound)
	}
	return jsonResult(act)
}

func (t *Tools) updateActivity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		ID string `json:"id"`
		domain.ActivityInput
	}
	if err := bind(req, &args); err != nil {
		return mcp.NewToolResultError("Invalid arguments: " + err.Error()), nil
	}

	act, err := t.activities.Update(ctx, args.ID, args.ActivityInput)
	if err != nil {
		return t.errorResult(ctx, "update_activity", err, activityNotFound)
	}
	return jsonResult(act)
}

func (t *Tools) deleteActivity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := bind(req, &args); err != nil {
		return mcp.NewToolResultError("Invalid arguments: " + err.Error()), nil
	}

	if err := t.activities.Delete(ctx, args.ID); err != nil {
		return t.errorResult(ctx, "delete_activity", err, activityNotFound)
	}
	return mcp.NewToolResultText("Deleted activity " + args.ID), nil
}
