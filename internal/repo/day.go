package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/traivel/internal/domain"
)

// DayRepo defines the persistence operations for Days.
type DayRepo interface {
	// Create inserts a new day and returns the persisted record.
	Create(ctx context.Context, day domain.Day) (domain.Day, error)

	// GetByID retrieves a single day by its primary key.
	// Returns domain.ErrNotFound if no day with that ID exists.
	GetByID(ctx context.Context, id string) (domain.Day, error)

	// ListByItinerary returns all days of an itinerary ordered by day_number ascending.
	// An unknown itinerary yields an empty slice.
	ListByItinerary(ctx context.Context, itineraryID string) ([]domain.Day, error)

	// Update overwrites the mutable fields of a day and stamps updated_at.
	// Returns domain.ErrNotFound if no day with that ID exists.
	Update(ctx context.Context, day domain.Day) (domain.Day, error)

	// Delete removes a day and, via ON DELETE CASCADE, its activities.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

// pgDayRepo is the Postgres implementation of DayRepo.
type pgDayRepo struct {
	db db
}

// NewDayRepo constructs a DayRepo backed by the provided db connection.
func NewDayRepo(db db) DayRepo {
	return &pgDayRepo{db: db}
}

const dayColumns = `id, itinerary_id, day_number, date, theme, ai_status, justification, created_at, updated_at`

const insertDaySQL = `
	INSERT INTO days (id, itinerary_id, day_number, date, theme, ai_status, justification)
	VALUES (@id, @itinerary_id, @day_number, @date, @theme, @ai_status, @justification)`

func (r *pgDayRepo) Create(ctx context.Context, day domain.Day) (domain.Day, error) {
	if day.ID == "" {
		day.ID = newID()
	}

	row := r.db.QueryRow(ctx, insertDaySQL+" RETURNING "+dayColumns, dayArgs(day))
	result, err := scanDay(row)
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgDayRepo) GetByID(ctx context.Context, id string) (domain.Day, error) {
	q := `SELECT ` + dayColumns + ` FROM days WHERE id = @id`

	result, err := scanDay(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgDayRepo) ListByItinerary(ctx context.Context, itineraryID string) ([]domain.Day, error) {
	q := `SELECT ` + dayColumns + `
		FROM days
		WHERE itinerary_id = @itinerary_id
		ORDER BY day_number ASC, created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"itinerary_id": itineraryID})
	if err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByItinerary: %w", err)
	}
	defer rows.Close()

	days := []domain.Day{}
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DayRepo.ListByItinerary: scan: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByItinerary: rows: %w", err)
	}
	return days, nil
}

func (r *pgDayRepo) Update(ctx context.Context, day domain.Day) (domain.Day, error) {
	q := `
		UPDATE days
		SET day_number    = @day_number,
		    date          = @date,
		    theme         = @theme,
		    ai_status     = @ai_status,
		    justification = @justification,
		    updated_at    = clock_timestamp()
		WHERE id = @id
		RETURNING ` + dayColumns

	result, err := scanDay(r.db.QueryRow(ctx, q, dayArgs(day)))
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgDayRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM days WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.DayRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DayRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func dayArgs(d domain.Day) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":            d.ID,
		"itinerary_id":  d.ItineraryID,
		"day_number":    d.DayNumber,
		"date":          d.Date,
		"theme":         d.Theme,
		"ai_status":     string(d.AIStatus),
		"justification": d.Justification,
	}
}

// scanDay maps a single database row into a domain.Day.
func scanDay(s scanner) (domain.Day, error) {
	var (
		d      domain.Day
		status string
	)
	err := s.Scan(&d.ID, &d.ItineraryID, &d.DayNumber, &d.Date, &d.Theme, &status,
		&d.Justification, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Day{}, domain.ErrNotFound
		}
		return domain.Day{}, err
	}
	d.AIStatus = domain.AIStatus(status)
	return d, nil
}
