package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/traivel/internal/domain"
)

// ActivityRepo defines the persistence operations for Activities.
// reference_links is stored as JSON text; implementations encode and decode
// it so callers only ever see []domain.ReferenceLink.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, act domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity by its primary key.
	// Returns domain.ErrNotFound if no activity with that ID exists.
	GetByID(ctx context.Context, id string) (domain.Activity, error)

	// ListByDay returns a day's activities ordered by sort_order, then created_at.
	ListByDay(ctx context.Context, dayID string) ([]domain.Activity, error)

	// ListByItinerary returns the activities of every day of an itinerary in
	// the same per-day order as ListByDay. Callers group them by DayID.
	ListByItinerary(ctx context.Context, itineraryID string) ([]domain.Activity, error)

	// Update overwrites the mutable fields of an activity and stamps updated_at.
	// Returns domain.ErrNotFound if no activity with that ID exists.
	Update(ctx context.Context, act domain.Activity) (domain.Activity, error)

	// Delete removes an activity. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, day_id, name, description, time_slot, estimated_cost, category,
	sort_order, notes, reference_links, ai_status, justification, created_at, updated_at`

const insertActivitySQL = `
	INSERT INTO activities (id, day_id, name, description, time_slot, estimated_cost,
		category, sort_order, notes, reference_links, ai_status, justification)
	VALUES (@id, @day_id, @name, @description, @time_slot, @estimated_cost,
		@category, @sort_order, @notes, @reference_links, @ai_status, @justification)`

func (r *pgActivityRepo) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	if act.ID == "" {
		act.ID = newID()
	}

	row := r.db.QueryRow(ctx, insertActivitySQL+" RETURNING "+activityColumns, activityArgs(act))
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, id string) (domain.Activity, error) {
	q := `SELECT ` + activityColumns + ` FROM activities WHERE id = @id`

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) ListByDay(ctx context.Context, dayID string) ([]domain.Activity, error) {
	q := `SELECT ` + activityColumns + `
		FROM activities
		WHERE day_id = @day_id
		ORDER BY sort_order ASC, created_at ASC`

	acts, err := r.list(ctx, q, pgx.NamedArgs{"day_id": dayID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByDay: %w", err)
	}
	return acts, nil
}

func (r *pgActivityRepo) ListByItinerary(ctx context.Context, itineraryID string) ([]domain.Activity, error) {
	q := `SELECT ` + activityColumns + `
		FROM activities
		WHERE day_id IN (SELECT id FROM days WHERE itinerary_id = @itinerary_id)
		ORDER BY day_id, sort_order ASC, created_at ASC`

	acts, err := r.list(ctx, q, pgx.NamedArgs{"itinerary_id": itineraryID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByItinerary: %w", err)
	}
	return acts, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	q := `
		UPDATE activities
		SET name            = @name,
		    description     = @description,
		    time_slot       = @time_slot,
		    estimated_cost  = @estimated_cost,
		    category        = @category,
		    sort_order      = @sort_order,
		    notes           = @notes,
		    reference_links = @reference_links,
		    ai_status       = @ai_status,
		    justification   = @justification,
		    updated_at      = clock_timestamp()
		WHERE id = @id
		RETURNING ` + activityColumns

	result, err := scanActivity(r.db.QueryRow(ctx, q, activityArgs(act)))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM activities WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgActivityRepo) list(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Activity, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	acts := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		acts = append(acts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return acts, nil
}

func activityArgs(a domain.Activity) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":              a.ID,
		"day_id":          a.DayID,
		"name":            a.Name,
		"description":     a.Description,
		"time_slot":       a.TimeSlot,
		"estimated_cost":  a.EstimatedCost,
		"category":        string(a.Category),
		"sort_order":      a.SortOrder,
		"notes":           a.Notes,
		"reference_links": encodeLinks(a.ReferenceLinks),
		"ai_status":       string(a.AIStatus),
		"justification":   a.Justification,
	}
}

// scanActivity maps a single database row into a domain.Activity, decoding
// the reference_links text into structured links.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a                domain.Activity
		category, status string
		links            string
	)
	err := s.Scan(&a.ID, &a.DayID, &a.Name, &a.Description, &a.TimeSlot, &a.EstimatedCost,
		&category, &a.SortOrder, &a.Notes, &links, &status, &a.Justification,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}
	a.Category = domain.Category(category)
	a.AIStatus = domain.AIStatus(status)
	a.ReferenceLinks = decodeLinks(links)
	return a, nil
}
