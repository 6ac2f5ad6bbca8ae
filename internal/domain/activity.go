package domain

import "time"

// ReferenceLink is a titled URL attached to an activity.
type ReferenceLink struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Activity is one entry in a day's plan. Activities are listed by SortOrder
// ascending, then CreatedAt ascending.
//
// ReferenceLinks is always non-nil once read from the store.
type Activity struct {
	ID             string          `json:"id"`
	DayID          string          `json:"day_id"`
	Name           string          `json:"name"`
	Description    *string         `json:"description"`
	TimeSlot       *string         `json:"time_slot"`
	EstimatedCost  *float64        `json:"estimated_cost"`
	Category       Category        `json:"category"`
	SortOrder      int             `json:"sort_order"`
	Notes          *string         `json:"notes"`
	ReferenceLinks []ReferenceLink `json:"reference_links"`
	AIStatus       AIStatus        `json:"ai_status"`
	Justification  *string         `json:"justification"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ActivityInput carries caller-supplied activity fields for create and
// partial update.
type ActivityInput struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	TimeSlot       *string          `json:"time_slot"`
	EstimatedCost  *float64         `json:"estimated_cost"`
	Category       *Category        `json:"category"`
	SortOrder      *int             `json:"sort_order"`
	Notes          *string          `json:"notes"`
	ReferenceLinks *[]ReferenceLink `json:"reference_links"`
	AIStatus       *AIStatus        `json:"ai_status"`
	Justification  *string          `json:"justification"`
}
