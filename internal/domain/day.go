package domain

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Day is one day of an itinerary. Days are listed by DayNumber ascending;
// DayNumber is caller-supplied and not required to be unique.
type Day struct {
	ID            string    `json:"id"`
	ItineraryID   string    `json:"itinerary_id"`
	DayNumber     int       `json:"day_number"`
	Date          *string   `json:"date"`
	Theme         *string   `json:"theme"`
	AIStatus      AIStatus  `json:"ai_status"`
	Justification *string   `json:"justification"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DayInput carries caller-supplied day fields for create and partial update.
type DayInput struct {
	DayNumber     *int      `json:"day_number"`
	Date          *string   `json:"date"`
	Theme         *string   `json:"theme"`
	AIStatus      *AIStatus `json:"ai_status"`
	Justification *string   `json:"justification"`
}

// DayWithActivities is a day together with its ordered activities.
type DayWithActivities struct {
	Day
	Activities []Activity `json:"activities"`
}

// NextDay is a suggested day_number/date pair for the next day of a trip.
type NextDay struct {
	DayNumber int                 `json:"day_number"`
	Date      *openapi_types.Date `json:"date"`
}
