package domain

// DayCost is the estimated spend for one day.
type DayCost struct {
	DayID     string  `json:"day_id"`
	DayNumber int     `json:"day_number"`
	Total     float64 `json:"total"`
}

// CostSummary rolls activity costs up per day and per trip.
// ExchangeRate and HomeTotal are nil when no rate could be obtained.
// The symbol fields carry display symbols such as "¥" or "RM".
type CostSummary struct {
	ItineraryID    string    `json:"itinerary_id"`
	Currency       string    `json:"currency"`
	CurrencySymbol string    `json:"currency_symbol"`
	Days           []DayCost `json:"days"`
	Total          float64   `json:"total"`
	HomeCurrency   string    `json:"home_currency"`
	HomeSymbol     string    `json:"home_currency_symbol"`
	ExchangeRate   *float64  `json:"exchange_rate"`
	HomeTotal      *float64  `json:"home_total"`
}
