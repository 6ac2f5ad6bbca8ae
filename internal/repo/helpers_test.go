package repo_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/traivel/internal/domain"
	"github.com/pkordes/traivel/internal/repo"
	"github.com/pkordes/traivel/testutil"
)

// repos bundles the three repositories sharing one rolled-back transaction.
type repos struct {
	itineraries repo.ItineraryRepo
	days        repo.DayRepo
	activities  repo.ActivityRepo
}

func newTestRepos(t *testing.T) repos {
	t.Helper()
	return newRepos(testutil.NewTx(t))
}

func newRepos(tx pgx.Tx) repos {
	return repos{
		itineraries: repo.NewItineraryRepo(tx),
		days:        repo.NewDayRepo(tx),
		activities:  repo.NewActivityRepo(tx),
	}
}

func itineraryFixture() domain.Itinerary {
	return domain.Itinerary{
		Title:              "Autumn in Kyoto",
		DestinationCountry: "Japan",
		DestinationCity:    ptr("Kyoto"),
		StartDate:          ptr("2025-11-01"),
		Pax:                2,
		Currency:           ptr("JPY"),
		AIStatus:           domain.AIRecommended,
	}
}

func mustCreateItinerary(t *testing.T, r repos) domain.Itinerary {
	t.Helper()
	it, err := r.itineraries.Create(context.Background(), itineraryFixture())
	require.NoError(t, err)
	return it
}

func mustCreateDay(t *testing.T, r repos, itineraryID string, number int) domain.Day {
	t.Helper()
	d, err := r.days.Create(context.Background(), domain.Day{
		ItineraryID: itineraryID,
		DayNumber:   number,
		AIStatus:    domain.AIRecommended,
	})
	require.NoError(t, err)
	return d
}

func mustCreateActivity(t *testing.T, r repos, dayID, name string, sortOrder int) domain.Activity {
	t.Helper()
	a, err := r.activities.Create(context.Background(), domain.Activity{
		DayID:     dayID,
		Name:      name,
		Category:  domain.CategorySightseeing,
		SortOrder: sortOrder,
		AIStatus:  domain.AIRecommended,
	})
	require.NoError(t, err)
	return a
}

func ptr[T any](v T) *T { return &v }
