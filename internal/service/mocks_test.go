package service_test

import (
	"context"

	"github.com/pkordes/traivel/internal/domain"
	"github.com/pkordes/traivel/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field; set only the ones your test needs.

type mockItineraryRepo struct {
	create     func(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)
	getByID    func(ctx context.Context, id string) (domain.Itinerary, error)
	list       func(ctx context.Context) ([]domain.Itinerary, error)
	update     func(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)
	delete     func(ctx context.Context, id string) error
	createTree func(ctx context.Context, tree domain.ItineraryTree) (string, error)
	finalize   func(ctx context.Context, id string) error
}

func (m *mockItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	return m.create(ctx, it)
}
func (m *mockItineraryRepo) GetByID(ctx context.Context, id string) (domain.Itinerary, error) {
	return m.getByID(ctx, id)
}
func (m *mockItineraryRepo) List(ctx context.Context) ([]domain.Itinerary, error) {
	return m.list(ctx)
}
func (m *mockItineraryRepo) Update(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	return m.update(ctx, it)
}
func (m *mockItineraryRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}
func (m *mockItineraryRepo) CreateTree(ctx context.Context, tree domain.ItineraryTree) (string, error) {
	return m.createTree(ctx, tree)
}
func (m *mockItineraryRepo) Finalize(ctx context.Context, id string) error {
	return m.finalize(ctx, id)
}

var _ repo.ItineraryRepo = (*mockItineraryRepo)(nil)

type mockDayRepo struct {
	create          func(ctx context.Context, d domain.Day) (domain.Day, error)
	getByID         func(ctx context.Context, id string) (domain.Day, error)
	listByItinerary func(ctx context.Context, itineraryID string) ([]domain.Day, error)
	update          func(ctx context.Context, d domain.Day) (domain.Day, error)
	delete          func(ctx context.Context, id string) error
}

func (m *mockDayRepo) Create(ctx context.Context, d domain.Day) (domain.Day, error) {
	return m.create(ctx, d)
}
func (m *mockDayRepo) GetByID(ctx context.Context, id string) (domain.Day, error) {
	return m.getByID(ctx, id)
}
func (m *mockDayRepo) ListByItinerary(ctx context.Context, itineraryID string) ([]domain.Day, error) {
	return m.listByItinerary(ctx, itineraryID)
}
func (m *mockDayRepo) Update(ctx context.Context, d domain.Day) (domain.Day, error) {
	return m.update(ctx, d)
}
func (m *mockDayRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ repo.DayRepo = (*mockDayRepo)(nil)

type mockActivityRepo struct {
	create          func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	getByID         func(ctx context.Context, id string) (domain.Activity, error)
	listByDay       func(ctx context.Context, dayID string) ([]domain.Activity, error)
	listByItinerary func(ctx context.Context, itineraryID string) ([]domain.Activity, error)
	update          func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	delete          func(ctx context.Context, id string) error
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) GetByID(ctx context.Context, id string) (domain.Activity, error) {
	return m.getByID(ctx, id)
}
func (m *mockActivityRepo) ListByDay(ctx context.Context, dayID string) ([]domain.Activity, error) {
	return m.listByDay(ctx, dayID)
}
func (m *mockActivityRepo) ListByItinerary(ctx context.Context, itineraryID string) ([]domain.Activity, error) {
	return m.listByItinerary(ctx, itineraryID)
}
func (m *mockActivityRepo) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.update(ctx, a)
}
func (m *mockActivityRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func notFoundItinerary(_ context.Context, _ string) (domain.Itinerary, error) {
	return domain.Itinerary{}, domain.ErrNotFound
}

func notFoundDay(_ context.Context, _ string) (domain.Day, error) {
	return domain.Day{}, domain.ErrNotFound
}

// storedItinerary is what GetByID returns for "it1" in most tests.
func storedItinerary() domain.Itinerary {
	return domain.Itinerary{
		ID:                 "it1",
		Title:              "Kyoto in Autumn",
		DestinationCountry: "Japan",
		DestinationCity:    ptr("Kyoto"),
		StartDate:          ptr("2025-11-01"),
		Pax:                2,
		Currency:           ptr("JPY"),
		AIStatus:           domain.AIRecommended,
	}
}

// treeRepos wires fixed days and activities for itinerary "it1".
func treeRepos(days []domain.Day, acts []domain.Activity) (*mockItineraryRepo, *mockDayRepo, *mockActivityRepo) {
	its := &mockItineraryRepo{
		getByID: func(_ context.Context, id string) (domain.Itinerary, error) {
			if id != "it1" {
				return domain.Itinerary{}, domain.ErrNotFound
			}
			return storedItinerary(), nil
		},
	}
	ds := &mockDayRepo{
		listByItinerary: func(_ context.Context, _ string) ([]domain.Day, error) { return days, nil },
	}
	as := &mockActivityRepo{
		listByItinerary: func(_ context.Context, _ string) ([]domain.Activity, error) { return acts, nil },
	}
	return its, ds, as
}
