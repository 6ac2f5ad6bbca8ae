// Package service contains the business logic for the itinerary planner.
// Services validate inputs, apply defaults and partial-update merges, and
// orchestrate repo calls. No SQL lives here; services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/pkordes/traivel/internal/domain"
	"github.com/pkordes/traivel/internal/repo"
)

// ItineraryService implements business logic for Itinerary operations,
// including nested bulk creation and finalize-all.
type ItineraryService struct {
	repo      repo.ItineraryRepo
	assembler *Assembler
}

// NewItineraryService constructs an ItineraryService backed by the provided
// repo and assembler.
func NewItineraryService(r repo.ItineraryRepo, a *Assembler) *ItineraryService {
	return &ItineraryService{repo: r, assembler: a}
}

// List returns all itineraries, newest first. Always non-nil.
func (s *ItineraryService) List(ctx context.Context) ([]domain.Itinerary, error) {
	its, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.List: %w", err)
	}
	if its == nil {
		return []domain.Itinerary{}, nil
	}
	return its, nil
}

// Create validates and persists a new itinerary.
// Returns domain.ErrValidation if title or destination_country is missing.
func (s *ItineraryService) Create(ctx context.Context, in domain.ItineraryInput) (domain.Itinerary, error) {
	it, err := newItinerary(in)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	created, err := s.repo.Create(ctx, it)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	return created, nil
}

// Get returns the full aggregate for an itinerary.
func (s *ItineraryService) Get(ctx context.Context, id string) (domain.ItineraryWithDays, error) {
	agg, err := s.assembler.Itinerary(ctx, id)
	if err != nil {
		return domain.ItineraryWithDays{}, fmt.Errorf("service.ItineraryService.Get: %w", err)
	}
	return agg, nil
}

// Update merges in over the stored itinerary and persists the result.
// Returns domain.ErrNotFound if the itinerary does not exist.
func (s *ItineraryService) Update(ctx context.Context, id string, in domain.ItineraryInput) (domain.Itinerary, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}
	merged := mergeItinerary(existing, in)
	if err := validateStatus(merged.AIStatus); err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}
	updated, err := s.repo.Update(ctx, merged)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an itinerary and everything under it.
func (s *ItineraryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	return nil
}

// CreateFull validates a nested document, stores the whole tree in one
// batch, and returns the aggregate as read back from the store.
func (s *ItineraryService) CreateFull(ctx context.Context, in domain.FullItineraryInput) (domain.ItineraryWithDays, error) {
	tree, err := newTree(in)
	if err != nil {
		return domain.ItineraryWithDays{}, fmt.Errorf("service.ItineraryService.CreateFull: %w", err)
	}
	id, err := s.repo.CreateTree(ctx, tree)
	if err != nil {
		return domain.ItineraryWithDays{}, fmt.Errorf("service.ItineraryService.CreateFull: %w", err)
	}
	agg, err := s.assembler.Itinerary(ctx, id)
	if err != nil {
		return domain.ItineraryWithDays{}, fmt.Errorf("service.ItineraryService.CreateFull: %w", err)
	}
	return agg, nil
}

// Finalize marks the itinerary and all of its descendants finalized and
// returns the refreshed aggregate.
func (s *ItineraryService) Finalize(ctx context.Context, id string) (domain.ItineraryWithDays, error) {
	if err := s.repo.Finalize(ctx, id); err != nil {
		return domain.ItineraryWithDays{}, fmt.Errorf("service.ItineraryService.Finalize: %w", err)
	}
	agg, err := s.assembler.Itinerary(ctx, id)
	if err != nil {
		return domain.ItineraryWithDays{}, fmt.Errorf("service.ItineraryService.Finalize: %w", err)
	}
	return agg, nil
}
