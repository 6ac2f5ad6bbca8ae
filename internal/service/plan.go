package service

import (
	"context"
	"fmt"
	"strconv"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/traivel/internal/currency"
	"github.com/pkordes/traivel/internal/domain"
)

// RateSource converts amounts into the operator's home currency.
// Rate reports false when no rate is available; callers treat that as
// "unknown", never as an error.
type RateSource interface {
	HomeCurrency() string
	Rate(ctx context.Context, from string) (float64, bool)
}

// PlanService derives read-only views from a stored itinerary: the cost
// roll-up and the flat export.
type PlanService struct {
	assembler *Assembler
	rates     RateSource
}

// NewPlanService constructs a PlanService.
func NewPlanService(a *Assembler, rates RateSource) *PlanService {
	return &PlanService{assembler: a, rates: rates}
}

// Summary totals estimated_cost per day and for the whole trip, then converts
// the trip total into the home currency when a rate is available.
func (s *PlanService) Summary(ctx context.Context, id string) (domain.CostSummary, error) {
	agg, err := s.assembler.Itinerary(ctx, id)
	if err != nil {
		return domain.CostSummary{}, fmt.Errorf("service.PlanService.Summary: %w", err)
	}

	home := s.rates.HomeCurrency()
	sum := domain.CostSummary{
		ItineraryID:  agg.ID,
		HomeCurrency: home,
		HomeSymbol:   currency.Symbol(home),
		Days:         make([]domain.DayCost, 0, len(agg.Days)),
	}
	if agg.Currency != nil {
		sum.Currency = currency.NormalizeCode(*agg.Currency)
		sum.CurrencySymbol = currency.Symbol(sum.Currency)
	}
	for _, d := range agg.Days {
		dc := domain.DayCost{DayID: d.ID, DayNumber: d.DayNumber}
		for _, a := range d.Activities {
			if a.EstimatedCost != nil {
				dc.Total += *a.EstimatedCost
			}
		}
		sum.Total += dc.Total
		sum.Days = append(sum.Days, dc)
	}

	if sum.Currency == "" {
		return sum, nil
	}
	if rate, ok := s.rates.Rate(ctx, sum.Currency); ok {
		converted := sum.Total * rate
		sum.ExchangeRate = &rate
		sum.HomeTotal = &converted
	}
	return sum, nil
}

// Export returns one row per activity across the itinerary's days.
// Days with no activities contribute one row with empty activity fields.
func (s *PlanService) Export(ctx context.Context, id string) ([]domain.ExportRow, error) {
	agg, err := s.assembler.Itinerary(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.PlanService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, d := range agg.Days {
		base := domain.ExportRow{
			DayNumber: d.DayNumber,
			Date:      deref(d.Date),
			Theme:     deref(d.Theme),
			Links:     []string{},
		}
		if len(d.Activities) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, a := range d.Activities {
			row := base
			row.ActivityName = a.Name
			row.TimeSlot = deref(a.TimeSlot)
			row.Category = string(a.Category)
			row.EstimatedCost = a.EstimatedCost
			row.AIStatus = string(a.AIStatus)
			row.Notes = deref(a.Notes)
			row.Links = make([]string, 0, len(a.ReferenceLinks))
			for _, l := range a.ReferenceLinks {
				row.Links = append(row.Links, l.URL)
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// suggestNextDay picks the day_number and date for the next day of a trip.
// days must be ordered by day_number ascending.
func suggestNextDay(startDate *string, days []domain.Day, date *openapi_types.Date) domain.NextDay {
	maxNumber := 0
	for _, d := range days {
		if d.DayNumber > maxNumber {
			maxNumber = d.DayNumber
		}
	}
	next := domain.NextDay{DayNumber: maxNumber + 1}

	start, hasStart := parseDate(startDate)

	if date != nil {
		if hasStart {
			if n := int(date.Sub(start.Time).Hours()/24) + 1; n >= 1 {
				next.DayNumber = n
			}
		}
		next.Date = &openapi_types.Date{Time: date.Time}
		return next
	}

	if len(days) > 0 {
		if last, ok := parseDate(days[len(days)-1].Date); ok {
			next.Date = &openapi_types.Date{Time: last.AddDate(0, 0, 1)}
			return next
		}
	}
	if hasStart {
		next.Date = &openapi_types.Date{Time: start.AddDate(0, 0, maxNumber)}
	}
	return next
}

// parseDate reads a stored YYYY-MM-DD value through the same JSON decoding
// the API uses for dates. Missing or malformed values report false.
func parseDate(s *string) (openapi_types.Date, bool) {
	var d openapi_types.Date
	if s == nil || *s == "" {
		return d, false
	}
	if err := d.UnmarshalJSON([]byte(strconv.Quote(*s))); err != nil {
		return d, false
	}
	return d, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
