package tools

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pkordes/traivel/internal/domain"
)

// integer narrows a number property to whole values.
func integer() mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["type"] = "integer"
	}
}

func aiStatusValues() []string {
	out := make([]string, len(domain.AIStatuses))
	for i, s := range domain.AIStatuses {
		out[i] = string(s)
	}
	return out
}

func categoryValues() []string {
	out := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		out[i] = string(c)
	}
	return out
}

var itineraryStringFields = []struct{ name, desc string }{
	{"destination_city", "Destination city"},
	{"origin_country", "Country the travellers depart from"},
	{"origin_city", "City the travellers depart from"},
	{"start_date", "First day of the trip, YYYY-MM-DD"},
	{"end_date", "Last day of the trip, YYYY-MM-DD"},
	{"place_of_stay", "Hotel or area the travellers stay in"},
	{"currency", "Destination currency code or symbol"},
	{"origin_currency", "Home currency code or symbol"},
	{"language", "Main language at the destination"},
	{"origin_language", "Language of the travellers"},
	{"culture_notes", "Etiquette and cultural notes"},
	{"religion_notes", "Religious customs worth knowing"},
	{"weather_notes", "Expected weather"},
	{"justification", "Why the agent recommends this itinerary"},
}

// itineraryFields adds every itinerary property. Title and destination
// country are required only when required is set.
func itineraryFields(required bool) []mcp.ToolOption {
	titleOpts := []mcp.PropertyOption{mcp.Description("Itinerary title")}
	countryOpts := []mcp.PropertyOption{mcp.Description("Destination country")}
	if required {
		titleOpts = append(titleOpts, mcp.Required())
		countryOpts = append(countryOpts, mcp.Required())
	}

	opts := []mcp.ToolOption{
		mcp.WithString("title", titleOpts...),
		mcp.WithString("destination_country", countryOpts...),
	}
	for _, f := range itineraryStringFields {
		opts = append(opts, mcp.WithString(f.name, mcp.Description(f.desc)))
	}
	opts = append(opts,
		mcp.WithNumber("duration_days", integer(), mcp.Description("Trip length in days")),
		mcp.WithNumber("pax", integer(), mcp.Description("Number of travellers")),
		mcp.WithString("ai_status", mcp.Enum(aiStatusValues()...), mcp.Description("Origin of the content")),
	)
	return opts
}

// dayFields adds the day properties; day_number is required on create.
func dayFields(required bool) []mcp.ToolOption {
	numberOpts := []mcp.PropertyOption{integer(), mcp.Description("Position of the day in the trip, starting at 1")}
	if required {
		numberOpts = append(numberOpts, mcp.Required())
	}
	return []mcp.ToolOption{
		mcp.WithNumber("day_number", numberOpts...),
		mcp.WithString("date", mcp.Description("Calendar date, YYYY-MM-DD")),
		mcp.WithString("theme", mcp.Description("Short theme for the day")),
		mcp.WithString("ai_status", mcp.Enum(aiStatusValues()...), mcp.Description("Origin of the content")),
		mcp.WithString("justification", mcp.Description("Why the agent planned the day this way")),
	}
}

// activityFields adds the activity properties; name is required on create.
func activityFields(required bool) []mcp.ToolOption {
	nameOpts := []mcp.PropertyOption{mcp.Description("Activity name")}
	if required {
		nameOpts = append(nameOpts, mcp.Required())
	}
	return []mcp.ToolOption{
		mcp.WithString("name", nameOpts...),
		mcp.WithString("description", mcp.Description("What the activity involves")),
		mcp.WithString("time_slot", mcp.Description("Free-form time, e.g. 09:00-11:00 or morning")),
		mcp.WithNumber("estimated_cost", mcp.Description("Estimated cost per person in the itinerary currency")),
		mcp.WithString("category", mcp.Enum(categoryValues()...), mcp.Description("Activity category")),
		mcp.WithNumber("sort_order", integer(), mcp.Description("Order within the day, ascending")),
		mcp.WithString("notes", mcp.Description("Practical notes")),
		mcp.WithArray("reference_links", mcp.Items(linkSchema()), mcp.Description("Titled URLs for the activity")),
		mcp.WithString("ai_status", mcp.Enum(aiStatusValues()...), mcp.Description("Origin of the content")),
		mcp.WithString("justification", mcp.Description("Why the agent picked this activity")),
	}
}

func linkSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url":   map[string]any{"type": "string"},
			"title": map[string]any{"type": "string"},
		},
		"required": []string{"url", "title"},
	}
}

func activityItemSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":            map[string]any{"type": "string"},
			"description":     map[string]any{"type": "string"},
			"time_slot":       map[string]any{"type": "string"},
			"estimated_cost":  map[string]any{"type": "number"},
			"category":        map[string]any{"type": "string", "enum": categoryValues()},
			"sort_order":      map[string]any{"type": "integer"},
			"notes":           map[string]any{"type": "string"},
			"reference_links": map[string]any{"type": "array", "items": linkSchema()},
			"ai_status":       map[string]any{"type": "string", "enum": aiStatusValues()},
			"justification":   map[string]any{"type": "string"},
		},
		"required": []string{"name"},
	}
}

func dayItemSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"day_number":    map[string]any{"type": "integer"},
			"date":          map[string]any{"type": "string"},
			"theme":         map[string]any{"type": "string"},
			"ai_status":     map[string]any{"type": "string", "enum": aiStatusValues()},
			"justification": map[string]any{"type": "string"},
			"activities":    map[string]any{"type": "array", "items": activityItemSchema()},
		},
		"required": []string{"day_number"},
	}
}

func idField(name, desc string) mcp.ToolOption {
	return mcp.WithString(name, mcp.Required(), mcp.Description(desc))
}

func newTool(name, desc string, groups ...[]mcp.ToolOption) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(desc)}
	for _, g := range groups {
		opts = append(opts, g...)
	}
	return mcp.NewTool(name, opts...)
}
