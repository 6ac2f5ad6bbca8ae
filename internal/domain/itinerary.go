// Package domain contains the core data types for the itinerary planner.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler, tools).
package domain

import "time"

// Itinerary is the root aggregate: one planned trip.
// Optional columns are pointers so that SQL NULL round-trips as JSON null.
type Itinerary struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	DestinationCountry string    `json:"destination_country"`
	DestinationCity    *string   `json:"destination_city"`
	OriginCountry      *string   `json:"origin_country"`
	OriginCity         *string   `json:"origin_city"`
	StartDate          *string   `json:"start_date"`
	EndDate            *string   `json:"end_date"`
	DurationDays       *int      `json:"duration_days"`
	Pax                int       `json:"pax"`
	PlaceOfStay        *string   `json:"place_of_stay"`
	Currency           *string   `json:"currency"`
	OriginCurrency     *string   `json:"origin_currency"`
	Language           *string   `json:"language"`
	OriginLanguage     *string   `json:"origin_language"`
	CultureNotes       *string   `json:"culture_notes"`
	ReligionNotes      *string   `json:"religion_notes"`
	WeatherNotes       *string   `json:"weather_notes"`
	AIStatus           AIStatus  `json:"ai_status"`
	Justification      *string   `json:"justification"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ItineraryInput carries caller-supplied itinerary fields.
// It serves both create (Title and DestinationCountry required) and partial
// update, where a nil field means "keep the stored value".
type ItineraryInput struct {
	Title              *string   `json:"title"`
	DestinationCountry *string   `json:"destination_country"`
	DestinationCity    *string   `json:"destination_city"`
	OriginCountry      *string   `json:"origin_country"`
	OriginCity         *string   `json:"origin_city"`
	StartDate          *string   `json:"start_date"`
	EndDate            *string   `json:"end_date"`
	DurationDays       *int      `json:"duration_days"`
	Pax                *int      `json:"pax"`
	PlaceOfStay        *string   `json:"place_of_stay"`
	Currency           *string   `json:"currency"`
	OriginCurrency     *string   `json:"origin_currency"`
	Language           *string   `json:"language"`
	OriginLanguage     *string   `json:"origin_language"`
	CultureNotes       *string   `json:"culture_notes"`
	ReligionNotes      *string   `json:"religion_notes"`
	WeatherNotes       *string   `json:"weather_notes"`
	AIStatus           *AIStatus `json:"ai_status"`
	Justification      *string   `json:"justification"`
}

// ItineraryWithDays is the full aggregate: an itinerary with its days, each
// carrying its activities.
type ItineraryWithDays struct {
	Itinerary
	Days []DayWithActivities `json:"days"`
}

// FullItineraryInput describes a whole tree created in one call.
type FullItineraryInput struct {
	ItineraryInput
	Days []FullDayInput `json:"days"`
}

// FullDayInput is one day of a FullItineraryInput.
type FullDayInput struct {
	DayInput
	Activities []ActivityInput `json:"activities"`
}

// ItineraryTree is a validated, defaulted tree ready to be persisted in one batch.
type ItineraryTree struct {
	Itinerary Itinerary
	Days      []DayTree
}

// DayTree is one day of an ItineraryTree.
type DayTree struct {
	Day        Day
	Activities []Activity
}
