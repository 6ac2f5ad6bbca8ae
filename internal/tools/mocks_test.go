package tools_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/traivel/internal/domain"
	"github.com/pkordes/traivel/internal/tools"
)

// Test doubles for the servicer interfaces.
// Set only the method fields your test needs.

type mockItineraryServicer struct {
	list       func(ctx context.Context) ([]domain.Itinerary, error)
	get        func(ctx context.Context, id string) (domain.ItineraryWithDays, error)
	createFull func(ctx context.Context, in domain.FullItineraryInput) (domain.ItineraryWithDays, error)
	update     func(ctx context.Context, id string, in domain.ItineraryInput) (domain.Itinerary, error)
	delete     func(ctx context.Context, id string) error
	finalize   func(ctx context.Context, id string) (domain.ItineraryWithDays, error)
}

func (m *mockItineraryServicer) List(ctx context.Context) ([]domain.Itinerary, error) {
	return m.list(ctx)
}
func (m *mockItineraryServicer) Get(ctx context.Context, id string) (domain.ItineraryWithDays, error) {
	return m.get(ctx, id)
}
func (m *mockItineraryServicer) CreateFull(ctx context.Context, in domain.FullItineraryInput) (domain.ItineraryWithDays, error) {
	return m.createFull(ctx, in)
}
func (m *mockItineraryServicer) Update(ctx context.Context, id string, in domain.ItineraryInput) (domain.Itinerary, error) {
	return m.update(ctx, id, in)
}
func (m *mockItineraryServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}
func (m *mockItineraryServicer) Finalize(ctx context.Context, id string) (domain.ItineraryWithDays, error) {
	return m.finalize(ctx, id)
}

var _ tools.ItineraryServicer = (*mockItineraryServicer)(nil)

type mockDayServicer struct {
	create func(ctx context.Context, itineraryID string, in domain.DayInput) (domain.Day, error)
	update func(ctx context.Context, id string, in domain.DayInput) (domain.Day, error)
	delete func(ctx context.Context, id string) error
}

func (m *mockDayServicer) Create(ctx context.Context, itineraryID string, in domain.DayInput) (domain.Day, error) {
	return m.create(ctx, itineraryID, in)
}
func (m *mockDayServicer) Update(ctx context.Context, id string, in domain.DayInput) (domain.Day, error) {
	return m.update(ctx, id, in)
}
func (m *mockDayServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ tools.DayServicer = (*mockDayServicer)(nil)

type mockActivityServicer struct {
	create func(ctx context.Context, dayID string, in domain.ActivityInput) (domain.Activity, error)
	update func(ctx context.Context, id string, in domain.ActivityInput) (domain.Activity, error)
	delete func(ctx context.Context, id string) error
}

func (m *mockActivityServicer) Create(ctx context.Context, dayID string, in domain.ActivityInput) (domain.Activity, error) {
	return m.create(ctx, dayID, in)
}
func (m *mockActivityServicer) Update(ctx context.Context, id string, in domain.ActivityInput) (domain.Activity, error) {
	return m.update(ctx, id, in)
}
func (m *mockActivityServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ tools.ActivityServicer = (*mockActivityServicer)(nil)

// ---- helpers ---------------------------------------------------------------

type services struct {
	itineraries *mockItineraryServicer
	days        *mockDayServicer
	activities  *mockActivityServicer
}

func newMCPServer(svcs services) *server.MCPServer {
	if svcs.itineraries == nil {
		svcs.itineraries = &mockItineraryServicer{}
	}
	if svcs.days == nil {
		svcs.days = &mockDayServicer{}
	}
	if svcs.activities == nil {
		svcs.activities = &mockActivityServicer{}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return tools.NewServer(tools.New(svcs.itineraries, svcs.days, svcs.activities, logger))
}

// rpcResponse is the generic shape of a JSON-RPC reply.
type rpcResponse struct {
	ID     int             `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// toolResult is the result payload of tools/call.
type toolResult struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	IsError bool `json:"isError"`
}

func (r toolResult) text() string {
	if len(r.Content) == 0 {
		return ""
	}
	return r.Content[0].Text
}

func rpc(t *testing.T, s *server.MCPServer, method string, params any) rpcResponse {
	t.Helper()
	msg := map[string]any{"jsonrpc": "2.0", "id": 1, "method": method}
	if params != nil {
		msg["params"] = params
	}
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	reply := s.HandleMessage(context.Background(), raw)
	require.NotNil(t, reply)

	out, err := json.Marshal(reply)
	require.NoError(t, err)
	var resp rpcResponse
	require.NoError(t, json.Unmarshal(out, &resp))
	return resp
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) toolResult {
	t.Helper()
	resp := rpc(t, s, "tools/call", map[string]any{"name": name, "arguments": args})
	require.Nil(t, resp.Error, "unexpected JSON-RPC error")

	var res toolResult
	require.NoError(t, json.Unmarshal(resp.Result, &res))
	return res
}

func ptr[T any](v T) *T { return &v }
