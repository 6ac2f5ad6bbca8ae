package service

import (
	"context"
	"fmt"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/traivel/internal/domain"
	"github.com/pkordes/traivel/internal/repo"
)

// DayService implements business logic for Day operations.
// It holds the itinerary repo because creating a day requires verifying the
// parent itinerary exists.
type DayService struct {
	itineraries repo.ItineraryRepo
	days        repo.DayRepo
	assembler   *Assembler
}

// NewDayService constructs a DayService backed by the provided repos.
func NewDayService(itineraries repo.ItineraryRepo, days repo.DayRepo, a *Assembler) *DayService {
	return &DayService{itineraries: itineraries, days: days, assembler: a}
}

// ListByItinerary returns the days of an itinerary ordered by day_number.
// An unknown itinerary yields an empty list, not an error.
func (s *DayService) ListByItinerary(ctx context.Context, itineraryID string) ([]domain.Day, error) {
	days, err := s.days.ListByItinerary(ctx, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("service.DayService.ListByItinerary: %w", err)
	}
	if days == nil {
		return []domain.Day{}, nil
	}
	return days, nil
}

// RequireItinerary returns domain.ErrNotFound when the itinerary does not exist.
func (s *DayService) RequireItinerary(ctx context.Context, itineraryID string) error {
	if _, err := s.itineraries.GetByID(ctx, itineraryID); err != nil {
		return fmt.Errorf("service.DayService.RequireItinerary: %w", err)
	}
	return nil
}

// Create verifies the parent itinerary exists, validates, then persists.
// Returns domain.ErrNotFound if the itinerary does not exist and
// domain.ErrValidation if day_number is missing.
func (s *DayService) Create(ctx context.Context, itineraryID string, in domain.DayInput) (domain.Day, error) {
	if _, err := s.itineraries.GetByID(ctx, itineraryID); err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Create: %w", err)
	}
	d, err := newDay(itineraryID, in)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Create: %w", err)
	}
	created, err := s.days.Create(ctx, d)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Create: %w", err)
	}
	return created, nil
}

// Get returns a day with its activities.
func (s *DayService) Get(ctx context.Context, id string) (domain.DayWithActivities, error) {
	d, err := s.assembler.Day(ctx, id)
	if err != nil {
		return domain.DayWithActivities{}, fmt.Errorf("service.DayService.Get: %w", err)
	}
	return d, nil
}

// Update merges in over the stored day and persists the result.
func (s *DayService) Update(ctx context.Context, id string, in domain.DayInput) (domain.Day, error) {
	existing, err := s.days.GetByID(ctx, id)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Update: %w", err)
	}
	merged := mergeDay(existing, in)
	if err := validateStatus(merged.AIStatus); err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Update: %w", err)
	}
	updated, err := s.days.Update(ctx, merged)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a day and its activities.
func (s *DayService) Delete(ctx context.Context, id string) error {
	if err := s.days.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.DayService.Delete: %w", err)
	}
	return nil
}

// Next suggests the day_number and date for a day about to be added to an
// itinerary. When date is given and the itinerary has a start date, the day
// number is derived from the date.
func (s *DayService) Next(ctx context.Context, itineraryID string, date *openapi_types.Date) (domain.NextDay, error) {
	it, err := s.itineraries.GetByID(ctx, itineraryID)
	if err != nil {
		return domain.NextDay{}, fmt.Errorf("service.DayService.Next: %w", err)
	}
	days, err := s.days.ListByItinerary(ctx, itineraryID)
	if err != nil {
		return domain.NextDay{}, fmt.Errorf("service.DayService.Next: %w", err)
	}
	return suggestNextDay(it.StartDate, days, date), nil
}
