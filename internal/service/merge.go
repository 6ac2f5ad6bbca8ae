package service

import "github.com/pkordes/traivel/internal/domain"

// The merge functions apply a partial input over an existing record field by
// field: a non-nil input value replaces the stored one, a nil value keeps it.
// JSON null and an absent key both decode to nil, so neither can clear a
// stored value; an empty string is a value and is stored as such.

// pick returns in when it is set, otherwise cur.
func pick[T any](in *T, cur T) T {
	if in != nil {
		return *in
	}
	return cur
}

// pickPtr returns a copy of in when it is set, otherwise cur.
func pickPtr[T any](in *T, cur *T) *T {
	if in != nil {
		v := *in
		return &v
	}
	return cur
}

func mergeItinerary(it domain.Itinerary, in domain.ItineraryInput) domain.Itinerary {
	it.Title = pick(in.Title, it.Title)
	it.DestinationCountry = pick(in.DestinationCountry, it.DestinationCountry)
	it.DestinationCity = pickPtr(in.DestinationCity, it.DestinationCity)
	it.OriginCountry = pickPtr(in.OriginCountry, it.OriginCountry)
	it.OriginCity = pickPtr(in.OriginCity, it.OriginCity)
	it.StartDate = pickPtr(in.StartDate, it.StartDate)
	it.EndDate = pickPtr(in.EndDate, it.EndDate)
	it.DurationDays = pickPtr(in.DurationDays, it.DurationDays)
	it.Pax = pick(in.Pax, it.Pax)
	it.PlaceOfStay = pickPtr(in.PlaceOfStay, it.PlaceOfStay)
	it.Currency = pickPtr(in.Currency, it.Currency)
	it.OriginCurrency = pickPtr(in.OriginCurrency, it.OriginCurrency)
	it.Language = pickPtr(in.Language, it.Language)
	it.OriginLanguage = pickPtr(in.OriginLanguage, it.OriginLanguage)
	it.CultureNotes = pickPtr(in.CultureNotes, it.CultureNotes)
	it.ReligionNotes = pickPtr(in.ReligionNotes, it.ReligionNotes)
	it.WeatherNotes = pickPtr(in.WeatherNotes, it.WeatherNotes)
	it.AIStatus = pick(in.AIStatus, it.AIStatus)
	it.Justification = pickPtr(in.Justification, it.Justification)
	return it
}

func mergeDay(d domain.Day, in domain.DayInput) domain.Day {
	d.DayNumber = pick(in.DayNumber, d.DayNumber)
	d.Date = pickPtr(in.Date, d.Date)
	d.Theme = pickPtr(in.Theme, d.Theme)
	d.AIStatus = pick(in.AIStatus, d.AIStatus)
	d.Justification = pickPtr(in.Justification, d.Justification)
	return d
}

func mergeActivity(a domain.Activity, in domain.ActivityInput) domain.Activity {
	a.Name = pick(in.Name, a.Name)
	a.Description = pickPtr(in.Description, a.Description)
	a.TimeSlot = pickPtr(in.TimeSlot, a.TimeSlot)
	a.EstimatedCost = pickPtr(in.EstimatedCost, a.EstimatedCost)
	a.Category = pick(in.Category, a.Category)
	a.SortOrder = pick(in.SortOrder, a.SortOrder)
	a.Notes = pickPtr(in.Notes, a.Notes)
	a.ReferenceLinks = pick(in.ReferenceLinks, a.ReferenceLinks)
	if a.ReferenceLinks == nil {
		a.ReferenceLinks = []domain.ReferenceLink{}
	}
	a.AIStatus = pick(in.AIStatus, a.AIStatus)
	a.Justification = pickPtr(in.Justification, a.Justification)
	return a
}
