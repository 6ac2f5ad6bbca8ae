package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/traivel/internal/domain"
)

// ItineraryRepo defines the persistence operations for Itineraries.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type ItineraryRepo interface {
	// Create inserts a new itinerary and returns the persisted record (with
	// generated id, created_at, and updated_at populated).
	Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)

	// GetByID retrieves a single itinerary by its primary key.
	// Returns domain.ErrNotFound if no itinerary with that ID exists.
	GetByID(ctx context.Context, id string) (domain.Itinerary, error)

	// List returns all itineraries, newest created first.
	List(ctx context.Context) ([]domain.Itinerary, error)

	// Update overwrites every mutable column of an existing itinerary, stamps
	// updated_at, and returns the stored record.
	// Returns domain.ErrNotFound if no itinerary with that ID exists.
	Update(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)

	// Delete removes an itinerary; its days and activities go with it via
	// ON DELETE CASCADE. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error

	// CreateTree inserts an itinerary with all of its days and activities as
	// one batch in one transaction and returns the itinerary id. An id already
	// set on tree.Itinerary is kept; otherwise one is generated.
	CreateTree(ctx context.Context, tree domain.ItineraryTree) (string, error)

	// Finalize sets ai_status to finalized on the itinerary, its days, and
	// their activities in one transaction.
	// Returns domain.ErrNotFound if the itinerary does not exist.
	Finalize(ctx context.Context, id string) error
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

const itineraryColumns = `id, title, destination_country, destination_city, origin_country,
	origin_city, start_date, end_date, duration_days, pax, place_of_stay, currency,
	origin_currency, language, origin_language, culture_notes, religion_notes,
	weather_notes, ai_status, justification, created_at, updated_at`

const insertItinerarySQL = `
	INSERT INTO itineraries (id, title, destination_country, destination_city, origin_country,
		origin_city, start_date, end_date, duration_days, pax, place_of_stay, currency,
		origin_currency, language, origin_language, culture_notes, religion_notes,
		weather_notes, ai_status, justification)
	VALUES (@id, @title, @destination_country, @destination_city, @origin_country,
		@origin_city, @start_date, @end_date, @duration_days, @pax, @place_of_stay, @currency,
		@origin_currency, @language, @origin_language, @culture_notes, @religion_notes,
		@weather_notes, @ai_status, @justification)`

// Create inserts a new itinerary row and returns the full persisted record.
func (r *pgItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	if it.ID == "" {
		it.ID = newID()
	}

	row := r.db.QueryRow(ctx, insertItinerarySQL+" RETURNING "+itineraryColumns, itineraryArgs(it))
	result, err := scanItinerary(row)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an itinerary by primary key.
func (r *pgItineraryRepo) GetByID(ctx context.Context, id string) (domain.Itinerary, error) {
	q := `SELECT ` + itineraryColumns + ` FROM itineraries WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanItinerary(row)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all itineraries ordered by created_at descending (most recent first).
func (r *pgItineraryRepo) List(ctx context.Context) ([]domain.Itinerary, error) {
	q := `SELECT ` + itineraryColumns + ` FROM itineraries ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.List: %w", err)
	}
	defer rows.Close()

	itineraries := []domain.Itinerary{}
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.List: scan: %w", err)
		}
		itineraries = append(itineraries, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.List: rows: %w", err)
	}

	return itineraries, nil
}

// Update overwrites the mutable fields of an itinerary and returns the updated record.
func (r *pgItineraryRepo) Update(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	q := `
		UPDATE itineraries
		SET title               = @title,
		    destination_country = @destination_country,
		    destination_city    = @destination_city,
		    origin_country      = @origin_country,
		    origin_city         = @origin_city,
		    start_date          = @start_date,
		    end_date            = @end_date,
		    duration_days       = @duration_days,
		    pax                 = @pax,
		    place_of_stay       = @place_of_stay,
		    currency            = @currency,
		    origin_currency     = @origin_currency,
		    language            = @language,
		    origin_language     = @origin_language,
		    culture_notes       = @culture_notes,
		    religion_notes      = @religion_notes,
		    weather_notes       = @weather_notes,
		    ai_status           = @ai_status,
		    justification       = @justification,
		    updated_at          = clock_timestamp()
		WHERE id = @id
		RETURNING ` + itineraryColumns

	row := r.db.QueryRow(ctx, q, itineraryArgs(it))
	result, err := scanItinerary(row)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes an itinerary by primary key.
func (r *pgItineraryRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM itineraries WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// CreateTree queues one INSERT per row and sends them as a single batch
// inside a transaction, so either the whole tree is stored or nothing is.
// Ids are assigned here and foreign keys wired from parent to child.
func (r *pgItineraryRepo) CreateTree(ctx context.Context, tree domain.ItineraryTree) (string, error) {
	it := tree.Itinerary
	if it.ID == "" {
		it.ID = newID()
	}

	b := &pgx.Batch{}
	b.Queue(insertItinerarySQL, itineraryArgs(it))
	for _, dt := range tree.Days {
		day := dt.Day
		day.ID = newID()
		day.ItineraryID = it.ID
		b.Queue(insertDaySQL, dayArgs(day))

		for _, act := range dt.Activities {
			act.ID = newID()
			act.DayID = day.ID
			b.Queue(insertActivitySQL, activityArgs(act))
		}
	}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, b).Close()
	})
	if err != nil {
		return "", fmt.Errorf("repo.ItineraryRepo.CreateTree: %w", err)
	}
	return it.ID, nil
}

// Finalize runs the three finalize statements as one batch in one transaction.
// The activities statement selects its rows through the itinerary's days
// rather than an explicit id list.
func (r *pgItineraryRepo) Finalize(ctx context.Context, id string) error {
	args := pgx.NamedArgs{"id": id}

	b := &pgx.Batch{}
	b.Queue(`UPDATE itineraries SET ai_status = 'finalized', updated_at = clock_timestamp() WHERE id = @id`, args)
	b.Queue(`UPDATE days SET ai_status = 'finalized', updated_at = clock_timestamp() WHERE itinerary_id = @id`, args)
	b.Queue(`
		UPDATE activities SET ai_status = 'finalized', updated_at = clock_timestamp()
		WHERE day_id IN (SELECT id FROM days WHERE itinerary_id = @id)`, args)

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, b)
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return err
		}
		if tag.RowsAffected() == 0 {
			_ = br.Close()
			return domain.ErrNotFound
		}
		return br.Close()
	})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Finalize: %w", err)
	}
	return nil
}

// itineraryArgs builds the named arguments shared by insert and update.
func itineraryArgs(it domain.Itinerary) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":                  it.ID,
		"title":               it.Title,
		"destination_country": it.DestinationCountry,
		"destination_city":    it.DestinationCity, // nil becomes NULL
		"origin_country":      it.OriginCountry,
		"origin_city":         it.OriginCity,
		"start_date":          it.StartDate,
		"end_date":            it.EndDate,
		"duration_days":       it.DurationDays,
		"pax":                 it.Pax,
		"place_of_stay":       it.PlaceOfStay,
		"currency":            it.Currency,
		"origin_currency":     it.OriginCurrency,
		"language":            it.Language,
		"origin_language":     it.OriginLanguage,
		"culture_notes":       it.CultureNotes,
		"religion_notes":      it.ReligionNotes,
		"weather_notes":       it.WeatherNotes,
		"ai_status":           string(it.AIStatus),
		"justification":       it.Justification,
	}
}

// scanItinerary maps a single database row into a domain.Itinerary.
// Nullable columns scan into pointer fields; NULL leaves them nil.
func scanItinerary(s scanner) (domain.Itinerary, error) {
	var (
		it     domain.Itinerary
		status string
	)

	err := s.Scan(
		&it.ID, &it.Title, &it.DestinationCountry, &it.DestinationCity, &it.OriginCountry,
		&it.OriginCity, &it.StartDate, &it.EndDate, &it.DurationDays, &it.Pax, &it.PlaceOfStay,
		&it.Currency, &it.OriginCurrency, &it.Language, &it.OriginLanguage, &it.CultureNotes,
		&it.ReligionNotes, &it.WeatherNotes, &status, &it.Justification,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Itinerary{}, domain.ErrNotFound
		}
		return domain.Itinerary{}, err
	}

	it.AIStatus = domain.AIStatus(status)
	return it, nil
}
