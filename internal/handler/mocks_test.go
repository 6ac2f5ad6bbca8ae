package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/traivel/internal/domain"
	"github.com/pkordes/traivel/internal/handler"
)

// Test doubles for the servicer interfaces.
// Set only the method fields your test needs.

type mockItineraryServicer struct {
	list       func(ctx context.Context) ([]domain.Itinerary, error)
	create     func(ctx context.Context, in domain.ItineraryInput) (domain.Itinerary, error)
	get        func(ctx context.Context, id string) (domain.ItineraryWithDays, error)
	update     func(ctx context.Context, id string, in domain.ItineraryInput) (domain.Itinerary, error)
	delete     func(ctx context.Context, id string) error
	createFull func(ctx context.Context, in domain.FullItineraryInput) (domain.ItineraryWithDays, error)
	finalize   func(ctx context.Context, id string) (domain.ItineraryWithDays, error)
}

func (m *mockItineraryServicer) List(ctx context.Context) ([]domain.Itinerary, error) {
	return m.list(ctx)
}
func (m *mockItineraryServicer) Create(ctx context.Context, in domain.ItineraryInput) (domain.Itinerary, error) {
	return m.create(ctx, in)
}
func (m *mockItineraryServicer) Get(ctx context.Context, id string) (domain.ItineraryWithDays, error) {
	return m.get(ctx, id)
}
func (m *mockItineraryServicer) Update(ctx context.Context, id string, in domain.ItineraryInput) (domain.Itinerary, error) {
	return m.update(ctx, id, in)
}
func (m *mockItineraryServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}
func (m *mockItineraryServicer) CreateFull(ctx context.Context, in domain.FullItineraryInput) (domain.ItineraryWithDays, error) {
	return m.createFull(ctx, in)
}
func (m *mockItineraryServicer) Finalize(ctx context.Context, id string) (domain.ItineraryWithDays, error) {
	return m.finalize(ctx, id)
}

var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

type mockDayServicer struct {
	listByItinerary  func(ctx context.Context, itineraryID string) ([]domain.Day, error)
	requireItinerary func(ctx context.Context, itineraryID string) error
	create           func(ctx context.Context, itineraryID string, in domain.DayInput) (domain.Day, error)
	get              func(ctx context.Context, id string) (domain.DayWithActivities, error)
	update           func(ctx context.Context, id string, in domain.DayInput) (domain.Day, error)
	delete           func(ctx context.Context, id string) error
	next             func(ctx context.Context, itineraryID string, date *openapi_types.Date) (domain.NextDay, error)
}

func (m *mockDayServicer) ListByItinerary(ctx context.Context, itineraryID string) ([]domain.Day, error) {
	return m.listByItinerary(ctx, itineraryID)
}
// RequireItinerary succeeds unless the test sets requireItinerary.
func (m *mockDayServicer) RequireItinerary(ctx context.Context, itineraryID string) error {
	if m.requireItinerary == nil {
		return nil
	}
	return m.requireItinerary(ctx, itineraryID)
}
func (m *mockDayServicer) Create(ctx context.Context, itineraryID string, in domain.DayInput) (domain.Day, error) {
	return m.create(ctx, itineraryID, in)
}
func (m *mockDayServicer) Get(ctx context.Context, id string) (domain.DayWithActivities, error) {
	return m.get(ctx, id)
}
func (m *mockDayServicer) Update(ctx context.Context, id string, in domain.DayInput) (domain.Day, error) {
	return m.update(ctx, id, in)
}
func (m *mockDayServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}
func (m *mockDayServicer) Next(ctx context.Context, itineraryID string, date *openapi_types.Date) (domain.NextDay, error) {
	return m.next(ctx, itineraryID, date)
}

var _ handler.DayServicer = (*mockDayServicer)(nil)

type mockActivityServicer struct {
	listByDay  func(ctx context.Context, dayID string) ([]domain.Activity, error)
	requireDay func(ctx context.Context, dayID string) error
	create     func(ctx context.Context, dayID string, in domain.ActivityInput) (domain.Activity, error)
	get        func(ctx context.Context, id string) (domain.Activity, error)
	update     func(ctx context.Context, id string, in domain.ActivityInput) (domain.Activity, error)
	delete     func(ctx context.Context, id string) error
}

func (m *mockActivityServicer) ListByDay(ctx context.Context, dayID string) ([]domain.Activity, error) {
	return m.listByDay(ctx, dayID)
}
// RequireDay succeeds unless the test sets requireDay.
func (m *mockActivityServicer) RequireDay(ctx context.Context, dayID string) error {
	if m.requireDay == nil {
		return nil
	}
	return m.requireDay(ctx, dayID)
}
func (m *mockActivityServicer) Create(ctx context.Context, dayID string, in domain.ActivityInput) (domain.Activity, error) {
	return m.create(ctx, dayID, in)
}
func (m *mockActivityServicer) Get(ctx context.Context, id string) (domain.Activity, error) {
	return m.get(ctx, id)
}
func (m *mockActivityServicer) Update(ctx context.Context, id string, in domain.ActivityInput) (domain.Activity, error) {
	return m.update(ctx, id, in)
}
func (m *mockActivityServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

type mockPlanServicer struct {
	summary func(ctx context.Context, id string) (domain.CostSummary, error)
	export  func(ctx context.Context, id string) ([]domain.ExportRow, error)
}

func (m *mockPlanServicer) Summary(ctx context.Context, id string) (domain.CostSummary, error) {
	return m.summary(ctx, id)
}
func (m *mockPlanServicer) Export(ctx context.Context, id string) ([]domain.ExportRow, error) {
	return m.export(ctx, id)
}

var _ handler.PlanServicer = (*mockPlanServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// services bundles the mocks for newRouter; nil fields stay unset.
type services struct {
	itineraries *mockItineraryServicer
	days        *mockDayServicer
	activities  *mockActivityServicer
	plan        *mockPlanServicer
}

// newRouter wires a Server with the given mocks into its chi routes,
// the same way main.go does in production.
func newRouter(svcs services) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := handler.NewServer(svcs.itineraries, svcs.days, svcs.activities, svcs.plan, logger)
	return srv.Routes()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func ptr[T any](v T) *T { return &v }
