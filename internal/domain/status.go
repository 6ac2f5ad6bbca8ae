package domain

// AIStatus tags where an entity's content came from. Any value may be set to
// any other value; no transitions are enforced.
type AIStatus string

const (
	AIRecommended AIStatus = "ai_recommended"
	Finalized     AIStatus = "finalized"
	Modified      AIStatus = "modified"
)

// AIStatuses lists every valid AIStatus in display order.
var AIStatuses = []AIStatus{AIRecommended, Finalized, Modified}

// Valid reports whether s is one of the known statuses.
func (s AIStatus) Valid() bool {
	for _, v := range AIStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Category classifies an activity.
type Category string

const (
	CategoryTransport     Category = "transport"
	CategoryAccommodation Category = "accommodation"
	CategoryFood          Category = "food"
	CategorySightseeing   Category = "sightseeing"
	CategoryAdventure     Category = "adventure"
	CategoryShopping      Category = "shopping"
	CategoryCulture       Category = "culture"
	CategoryRelaxation    Category = "relaxation"
	CategoryNightlife     Category = "nightlife"
	CategoryOther         Category = "other"
)

// Categories lists every valid Category.
var Categories = []Category{
	CategoryTransport, CategoryAccommodation, CategoryFood, CategorySightseeing,
	CategoryAdventure, CategoryShopping, CategoryCulture, CategoryRelaxation,
	CategoryNightlife, CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}
