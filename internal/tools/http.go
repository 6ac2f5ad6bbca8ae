package tools

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/mark3labs/mcp-go/server"
)

// HTTPHandler serves MCP JSON-RPC over plain POST requests. Each request is
// handled on its own; no session state is kept between calls.
type HTTPHandler struct {
	mcp *server.MCPServer
	log *slog.Logger
}

// NewHTTPHandler wraps s for mounting at /mcp.
func NewHTTPHandler(s *server.MCPServer, log *slog.Logger) *HTTPHandler {
	if log == nil {
		log = slog.Default()
	}
	return &HTTPHandler{mcp: s, log: log}
}

func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
			"error": "Method not allowed. Use POST for MCP JSON-RPC.",
		})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.WarnContext(r.Context(), "mcp: read request body", "error", err)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "Request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}

	resp := h.mcp.HandleMessage(r.Context(), json.RawMessage(body))
	if resp == nil {
		// Notifications get no reply.
		w.WriteHeader(http.StatusAccepted)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
