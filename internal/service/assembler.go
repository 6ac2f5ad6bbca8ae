package service

import (
	"context"
	"fmt"

	"github.com/pkordes/traivel/internal/domain"
	"github.com/pkordes/traivel/internal/repo"
)

// Assembler builds the nested read views: a whole itinerary, or a single day
// with its activities. It is the read path behind every detail endpoint.
type Assembler struct {
	itineraries repo.ItineraryRepo
	days        repo.DayRepo
	activities  repo.ActivityRepo
}

// NewAssembler constructs an Assembler over the three entity repos.
func NewAssembler(itineraries repo.ItineraryRepo, days repo.DayRepo, activities repo.ActivityRepo) *Assembler {
	return &Assembler{itineraries: itineraries, days: days, activities: activities}
}

// Itinerary loads an itinerary with its days ordered by day_number and each
// day's activities ordered by sort_order then created_at.
// Returns domain.ErrNotFound if the itinerary does not exist.
func (a *Assembler) Itinerary(ctx context.Context, id string) (domain.ItineraryWithDays, error) {
	it, err := a.itineraries.GetByID(ctx, id)
	if err != nil {
		return domain.ItineraryWithDays{}, fmt.Errorf("service.Assembler.Itinerary: %w", err)
	}
	days, err := a.days.ListByItinerary(ctx, id)
	if err != nil {
		return domain.ItineraryWithDays{}, fmt.Errorf("service.Assembler.Itinerary: %w", err)
	}
	acts, err := a.activities.ListByItinerary(ctx, id)
	if err != nil {
		return domain.ItineraryWithDays{}, fmt.Errorf("service.Assembler.Itinerary: %w", err)
	}

	byDay := make(map[string][]domain.Activity, len(days))
	for _, act := range acts {
		byDay[act.DayID] = append(byDay[act.DayID], act)
	}

	out := domain.ItineraryWithDays{Itinerary: it, Days: make([]domain.DayWithActivities, 0, len(days))}
	for _, d := range days {
		out.Days = append(out.Days, withActivities(d, byDay[d.ID]))
	}
	return out, nil
}

// Day loads one day with its ordered activities.
// Returns domain.ErrNotFound if the day does not exist.
func (a *Assembler) Day(ctx context.Context, id string) (domain.DayWithActivities, error) {
	d, err := a.days.GetByID(ctx, id)
	if err != nil {
		return domain.DayWithActivities{}, fmt.Errorf("service.Assembler.Day: %w", err)
	}
	acts, err := a.activities.ListByDay(ctx, id)
	if err != nil {
		return domain.DayWithActivities{}, fmt.Errorf("service.Assembler.Day: %w", err)
	}
	return withActivities(d, acts), nil
}

// withActivities pairs a day with its activities, never leaving the slice nil
// so it serializes as [] rather than null.
func withActivities(d domain.Day, acts []domain.Activity) domain.DayWithActivities {
	if acts == nil {
		acts = []domain.Activity{}
	}
	return domain.DayWithActivities{Day: d, Activities: acts}
}
