package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pkordes/traivel/internal/domain"
)

// jsonResult renders v as indented JSON text.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tools: encode result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

// errorResult turns a service error into a flagged text result. Not-found
// uses notFoundMsg; validation failures carry their message; anything else is
// logged and reported generically.
func (t *Tools) errorResult(ctx context.Context, tool string, err error, notFoundMsg string) (*mcp.CallToolResult, error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return mcp.NewToolResultError(notFoundMsg), nil
	case errors.Is(err, domain.ErrValidation):
		return mcp.NewToolResultError(validationMessage(err)), nil
	default:
		t.log.ErrorContext(ctx, "tool call failed", "tool", tool, "error", err)
		return mcp.NewToolResultError("Internal server error"), nil
	}
}

// validationMessage strips the wrapping context, keeping what follows
// "validation error: ".
func validationMessage(err error) string {
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// bind decodes the call arguments into dst through a JSON round trip, so the
// domain input types and their json tags define the mapping.
func bind(req mcp.CallToolRequest, dst any) error {
	raw, err := json.Marshal(req.GetArguments())
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
