package tools_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/traivel/internal/domain"
)

func TestAddActivity_OK(t *testing.T) {
	s := newMCPServer(services{activities: &mockActivityServicer{
		create: func(_ context.Context, dayID string, in domain.ActivityInput) (domain.Activity, error) {
			assert.Equal(t, "d1", dayID)
			return domain.Activity{
				ID: "a1", DayID: dayID, Name: *in.Name, EstimatedCost: in.EstimatedCost,
				Category: domain.CategoryFood, ReferenceLinks: []domain.ReferenceLink{},
			}, nil
		},
	}})

	res := callTool(t, s, "add_activity", map[string]any{
		"day_id": "d1", "name": "Ramen", "estimated_cost": 12.5, "category": "food",
	})

	require.False(t, res.IsError, res.text())
	var got domain.Activity
	require.NoError(t, json.Unmarshal([]byte(res.text()), &got))
	assert.Equal(t, "Ramen", got.Name)
	assert.Equal(t, 12.5, *got.EstimatedCost)
}

func TestAddActivity_DayNotFound(t *testing.T) {
	s := newMCPServer(services{activities: &mockActivityServicer{
		create: func(context.Context, string, domain.ActivityInput) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	}})

	res := callTool(t, s, "add_activity", map[string]any{"day_id": "nope", "name": "Ramen"})

	assert.True(t, res.IsError)
	assert.Equal(t, "Day not found", res.text())
}

func TestAddActivity_LinkNeedsURL(t *testing.T) {
	s := newMCPServer(services{})

	res := callTool(t, s, "add_activity", map[string]any{
		"day_id": "d1", "name": "Ramen",
		"reference_links": []any{map[string]any{"title": "Menu"}},
	})

	assert.True(t, res.IsError)
	assert.Contains(t, res.text(), "reference_links[0].url is required")
}

func TestUpdateActivity_NotFound(t *testing.T) {
	s := newMCPServer(services{activities: &mockActivityServicer{
		update: func(context.Context, string, domain.ActivityInput) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	}})

	res := callTool(t, s, "update_activity", map[string]any{"id": "a9", "sort_order": 3})

	assert.True(t, res.IsError)
	assert.Equal(t, "Activity not found", res.text())
}

func TestUpdateActivity_PassesPartialInput(t *testing.T) {
	s := newMCPServer(services{activities: &mockActivityServicer{
		update: func(_ context.Context, id string, in domain.ActivityInput) (domain.Activity, error) {
			assert.Nil(t, in.Name)
			require.NotNil(t, in.SortOrder)
			return domain.Activity{ID: id, Name: "Ramen", SortOrder: *in.SortOrder, ReferenceLinks: []domain.ReferenceLink{}}, nil
		},
	}})

	res := callTool(t, s, "update_activity", map[string]any{"id": "a1", "sort_order": 3})

	require.False(t, res.IsError, res.text())
	var got domain.Activity
	require.NoError(t, json.Unmarshal([]byte(res.text()), &got))
	assert.Equal(t, 3, got.SortOrder)
}

func TestDeleteActivity_ConfirmationText(t *testing.T) {
	s := newMCPServer(services{activities: &mockActivityServicer{
		delete: func(context.Context, string) error { return nil },
	}})

	res := callTool(t, s, "delete_activity", map[string]any{"id": "a1"})

	assert.False(t, res.IsError)
	assert.Equal(t, "Deleted activity a1", res.text())
}
