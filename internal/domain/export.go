package domain

// ExportRow is a single row in the flat itinerary export.
// It is a denormalized view: one row per activity, with day fields repeated
// for every activity on that day. Days with no activities yield one row with
// zero values for all activity fields.
type ExportRow struct {
	// Day fields, repeated for every activity on the day.
	DayNumber int    `json:"day_number"`
	Date      string `json:"date"`
	Theme     string `json:"theme"`

	// Activity fields; zero values when the day has no activities.
	ActivityName  string   `json:"activity_name"`
	TimeSlot      string   `json:"time_slot"`
	Category      string   `json:"category"`
	EstimatedCost *float64 `json:"estimated_cost"`
	AIStatus      string   `json:"ai_status"`
	Notes         string   `json:"notes"`

	// Links holds the URLs of the activity's reference links, in stored order.
	Links []string `json:"links"`
}
