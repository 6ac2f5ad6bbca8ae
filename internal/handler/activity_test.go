package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/traivel/internal/domain"
)

func TestListActivities_OK(t *testing.T) {
	h := newRouter(services{activities: &mockActivityServicer{
		listByDay: func(_ context.Context, dayID string) ([]domain.Activity, error) {
			return []domain.Activity{
				{ID: "a1", DayID: dayID, Name: "One", SortOrder: 1, ReferenceLinks: []domain.ReferenceLink{}},
				{ID: "a2", DayID: dayID, Name: "Two", SortOrder: 2, ReferenceLinks: []domain.ReferenceLink{}},
			}, nil
		},
	}})

	rec := do(t, h, http.MethodGet, "/api/v1/days/d1/activities", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "One", got[0].Name)
}

func TestCreateActivity_DecodesLinks(t *testing.T) {
	var got domain.ActivityInput
	h := newRouter(services{activities: &mockActivityServicer{
		create: func(_ context.Context, dayID string, in domain.ActivityInput) (domain.Activity, error) {
			got = in
			return domain.Activity{ID: "a1", DayID: dayID, Name: *in.Name, ReferenceLinks: *in.ReferenceLinks}, nil
		},
	}})

	rec := do(t, h, http.MethodPost, "/api/v1/days/d1/activities",
		`{"name":"Fushimi Inari","category":"culture","reference_links":[{"url":"https://x","title":"X"}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, got.ReferenceLinks)
	assert.Equal(t, []domain.ReferenceLink{{URL: "https://x", Title: "X"}}, *got.ReferenceLinks)
	assert.Equal(t, domain.CategoryCulture, *got.Category)
}

func TestCreateActivity_DayNotFound(t *testing.T) {
	h := newRouter(services{activities: &mockActivityServicer{
		create: func(_ context.Context, _ string, _ domain.ActivityInput) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	}})

	rec := do(t, h, http.MethodPost, "/api/v1/days/missing/activities", `{"name":"x"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Day not found", decodeError(t, rec))
}

func TestGetActivity_UnknownID(t *testing.T) {
	h := newRouter(services{activities: &mockActivityServicer{
		get: func(_ context.Context, _ string) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	}})

	rec := do(t, h, http.MethodGet, "/api/v1/activities/unknown-id", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Activity not found", decodeError(t, rec))
}

func TestUpdateActivity_OK(t *testing.T) {
	h := newRouter(services{activities: &mockActivityServicer{
		update: func(_ context.Context, id string, in domain.ActivityInput) (domain.Activity, error) {
			return domain.Activity{ID: id, Name: "Kept", SortOrder: *in.SortOrder, ReferenceLinks: []domain.ReferenceLink{}}, nil
		},
	}})

	rec := do(t, h, http.MethodPut, "/api/v1/activities/a1", `{"sort_order":4}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 4, got.SortOrder)
}

func TestDeleteActivity_NotFound(t *testing.T) {
	h := newRouter(services{activities: &mockActivityServicer{
		delete: func(_ context.Context, _ string) error { return domain.ErrNotFound },
	}})

	rec := do(t, h, http.MethodDelete, "/api/v1/activities/missing", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Activity not found", decodeError(t, rec))
}

func TestCreateActivity_MissingDayBeforeBody(t *testing.T) {
	h := newRouter(services{activities: &mockActivityServicer{
		requireDay: func(context.Context, string) error { return domain.ErrNotFound },
		create: func(context.Context, string, domain.ActivityInput) (domain.Activity, error) {
			t.Fatal("create must not run for a missing day")
			return domain.Activity{}, nil
		},
	}})

	rec := do(t, h, http.MethodPost, "/api/v1/days/missing/activities", `{bad`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Day not found", decodeError(t, rec))
}
