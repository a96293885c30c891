// README: Itinerary store backed by PostgreSQL (jsonb plan payloads).
package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"columbus/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Insert persists a freshly generated itinerary and returns its id and
// creation timestamp. The owning user row is resolved from the Firebase UID.
func (s *Store) Insert(ctx context.Context, it *Stored) (types.ID, time.Time, error) {
	planJSON, err := json.Marshal(it.Plan)
	if err != nil {
		return "", time.Time{}, err
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO itineraries (
			user_id, title, destination_name, start_date, end_date,
			duration_days, budget_total, budget_currency, travel_style,
			status, itinerary_data, ai_model_version
		) VALUES (
			(SELECT id FROM users WHERE firebase_uid = $1),
			$2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id, created_at`,
		string(it.UserID),
		it.Title,
		it.DestinationName,
		it.StartDate,
		it.EndDate,
		it.DurationDays,
		it.BudgetTotal,
		it.BudgetCurrency,
		it.TravelStyle,
		it.Status,
		planJSON,
		it.AIModelVersion,
	)

	var id string
	var createdAt time.Time
	if err := row.Scan(&id, &createdAt); err != nil {
		return "", time.Time{}, err
	}
	return types.ID(id), createdAt, nil
}

// Get loads an itinerary by id. UserID on the result carries the owner's
// Firebase UID so the service can run its ownership check.
func (s *Store) Get(ctx context.Context, id types.ID) (*Stored, error) {
	row := s.db.QueryRow(ctx, `
		SELECT i.id, u.firebase_uid, i.title, i.destination_name,
		       i.start_date, i.end_date, i.duration_days,
		       COALESCE(i.budget_total, 0), COALESCE(i.budget_currency, 'USD'),
		       COALESCE(i.travel_style, ''), i.status, i.itinerary_data,
		       COALESCE(i.ai_model_version, ''), i.is_public, i.view_count,
		       i.created_at, i.updated_at
		FROM itineraries i
		JOIN users u ON i.user_id = u.id
		WHERE i.id = $1`, string(id),
	)

	var it Stored
	var uid string
	var planJSON []byte
	err := row.Scan(
		&it.ID, &uid, &it.Title, &it.DestinationName,
		&it.StartDate, &it.EndDate, &it.DurationDays,
		&it.BudgetTotal, &it.BudgetCurrency,
		&it.TravelStyle, &it.Status, &planJSON,
		&it.AIModelVersion, &it.IsPublic, &it.ViewCount,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(planJSON, &it.Plan); err != nil {
		return nil, fmt.Errorf("itinerary %s: decode plan: %w", id, err)
	}
	it.UserID = types.ID(uid)
	return &it, nil
}

// IncrementViews bumps the view counter for non-owner reads.
func (s *Store) IncrementViews(ctx context.Context, id types.ID) error {
	_, err := s.db.Exec(ctx,
		`UPDATE itineraries SET view_count = view_count + 1 WHERE id = $1`, string(id))
	return err
}

// Update applies whitelisted column updates (the service owns the whitelist)
// and returns the new updated_at.
func (s *Store) Update(ctx context.Context, id types.ID, fields map[string]any) (time.Time, error) {
	set := ""
	args := make([]any, 0, len(fields)+1)
	for _, col := range []string{"title", "start_date", "end_date", "status", "itinerary_data", "is_public"} {
		v, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, v)
		if set != "" {
			set += ", "
		}
		set += fmt.Sprintf("%s = $%d", col, len(args))
	}
	if set == "" {
		return time.Time{}, ErrBadRequest
	}
	args = append(args, string(id))

	row := s.db.QueryRow(ctx, fmt.Sprintf(`
		UPDATE itineraries
		SET %s, updated_at = CURRENT_TIMESTAMP
		WHERE id = $%d
		RETURNING updated_at`, set, len(args)), args...)

	var updatedAt time.Time
	if err := row.Scan(&updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, err
	}
	return updatedAt, nil
}

// SummaryFor returns the compact context form of an itinerary owned by uid.
func (s *Store) SummaryFor(ctx context.Context, id, uid types.ID) (*Summary, error) {
	row := s.db.QueryRow(ctx, `
		SELECT destination_name, duration_days, COALESCE(travel_style, '')
		FROM itineraries
		WHERE id = $1 AND user_id = (SELECT id FROM users WHERE firebase_uid = $2)`,
		string(id), string(uid),
	)
	var sum Summary
	err := row.Scan(&sum.Destination, &sum.DurationDays, &sum.TravelStyle)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sum, nil
}
