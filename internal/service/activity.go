package service

import (
	"context"
	"fmt"

	"github.com/pkordes/traivel/internal/domain"
	"github.com/pkordes/traivel/internal/repo"
)

// ActivityService implements business logic for Activity operations.
type ActivityService struct {
	days       repo.DayRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(days repo.DayRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{days: days, activities: activities}
}

// ListByDay returns a day's activities ordered by sort_order, then creation time.
func (s *ActivityService) ListByDay(ctx context.Context, dayID string) ([]domain.Activity, error) {
	acts, err := s.activities.ListByDay(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByDay: %w", err)
	}
	if acts == nil {
		return []domain.Activity{}, nil
	}
	return acts, nil
}

// RequireDay returns domain.ErrNotFound when the day does not exist.
func (s *ActivityService) RequireDay(ctx context.Context, dayID string) error {
	if _, err := s.days.GetByID(ctx, dayID); err != nil {
		return fmt.Errorf("service.ActivityService.RequireDay: %w", err)
	}
	return nil
}

// Create verifies the parent day exists, validates, then persists.
// Returns domain.ErrNotFound if the day does not exist and
// domain.ErrValidation if name is missing or an enum value is unknown.
func (s *ActivityService) Create(ctx context.Context, dayID string, in domain.ActivityInput) (domain.Activity, error) {
	if _, err := s.days.GetByID(ctx, dayID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	a, err := newActivity(dayID, in)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	created, err := s.activities.Create(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return created, nil
}

// Get returns a single activity.
func (s *ActivityService) Get(ctx context.Context, id string) (domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Get: %w", err)
	}
	return a, nil
}

// Update merges in over the stored activity and persists the result.
// Supplying reference_links replaces the whole list.
func (s *ActivityService) Update(ctx context.Context, id string, in domain.ActivityInput) (domain.Activity, error) {
	existing, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	merged := mergeActivity(existing, in)
	if err := validateActivity(merged); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	updated, err := s.activities.Update(ctx, merged)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an activity.
func (s *ActivityService) Delete(ctx context.Context, id string) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}
