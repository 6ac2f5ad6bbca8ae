package service

import (
	"fmt"

	"github.com/pkordes/traivel/internal/domain"
)

// newItinerary validates a create request and fills defaults for every
// omitted optional field (pax 1, ai_status ai_recommended).
func newItinerary(in domain.ItineraryInput) (domain.Itinerary, error) {
	if in.Title == nil || *in.Title == "" || in.DestinationCountry == nil || *in.DestinationCountry == "" {
		return domain.Itinerary{}, fmt.Errorf("%w: title and destination_country are required", domain.ErrValidation)
	}
	it := mergeItinerary(domain.Itinerary{
		Pax:      1,
		AIStatus: domain.AIRecommended,
	}, in)
	if err := validateStatus(it.AIStatus); err != nil {
		return domain.Itinerary{}, err
	}
	return it, nil
}

// newDay validates a create request for a day under itineraryID.
func newDay(itineraryID string, in domain.DayInput) (domain.Day, error) {
	if in.DayNumber == nil {
		return domain.Day{}, fmt.Errorf("%w: day_number is required", domain.ErrValidation)
	}
	d := mergeDay(domain.Day{
		ItineraryID: itineraryID,
		AIStatus:    domain.AIRecommended,
	}, in)
	if err := validateStatus(d.AIStatus); err != nil {
		return domain.Day{}, err
	}
	return d, nil
}

// newActivity validates a create request for an activity under dayID.
// Omitted category defaults to sightseeing, sort_order to 0, links to none.
func newActivity(dayID string, in domain.ActivityInput) (domain.Activity, error) {
	if in.Name == nil || *in.Name == "" {
		return domain.Activity{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	a := mergeActivity(domain.Activity{
		DayID:          dayID,
		Category:       domain.CategorySightseeing,
		ReferenceLinks: []domain.ReferenceLink{},
		AIStatus:       domain.AIRecommended,
	}, in)
	if err := validateActivity(a); err != nil {
		return domain.Activity{}, err
	}
	return a, nil
}

// newTree validates a nested create request and converts it into rows ready
// for a single batch. Errors name the offending element by index.
func newTree(in domain.FullItineraryInput) (domain.ItineraryTree, error) {
	it, err := newItinerary(in.ItineraryInput)
	if err != nil {
		return domain.ItineraryTree{}, err
	}

	tree := domain.ItineraryTree{Itinerary: it, Days: make([]domain.DayTree, 0, len(in.Days))}
	for i, dayIn := range in.Days {
		if dayIn.DayNumber == nil {
			return domain.ItineraryTree{}, fmt.Errorf("%w: days[%d].day_number is required", domain.ErrValidation, i)
		}
		day, err := newDay("", dayIn.DayInput)
		if err != nil {
			return domain.ItineraryTree{}, fmt.Errorf("%w (days[%d])", err, i)
		}

		dt := domain.DayTree{Day: day, Activities: make([]domain.Activity, 0, len(dayIn.Activities))}
		for j, actIn := range dayIn.Activities {
			if actIn.Name == nil || *actIn.Name == "" {
				return domain.ItineraryTree{}, fmt.Errorf("%w: days[%d].activities[%d].name is required", domain.ErrValidation, i, j)
			}
			act, err := newActivity("", actIn)
			if err != nil {
				return domain.ItineraryTree{}, fmt.Errorf("%w (days[%d].activities[%d])", err, i, j)
			}
			dt.Activities = append(dt.Activities, act)
		}
		tree.Days = append(tree.Days, dt)
	}
	return tree, nil
}

func validateStatus(s domain.AIStatus) error {
	if !s.Valid() {
		return fmt.Errorf("%w: invalid ai_status %q", domain.ErrValidation, s)
	}
	return nil
}

func validateActivity(a domain.Activity) error {
	if !a.Category.Valid() {
		return fmt.Errorf("%w: invalid category %q", domain.ErrValidation, a.Category)
	}
	return validateStatus(a.AIStatus)
}
