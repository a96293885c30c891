// README: Preference store backed by PostgreSQL.
package user

import (
	"context"
	"encoding/json"
	"errors"

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

// GetByUser returns the preference row for the Firebase UID, or ErrNotFound.
func (s *Store) GetByUser(ctx context.Context, uid types.ID) (*Preferences, error) {
	row := s.db.QueryRow(ctx, `
		SELECT COALESCE(travel_style, ''), COALESCE(budget_preference, ''),
		       COALESCE(accommodation_preference, ''), COALESCE(food_preference, ''),
		       COALESCE(activity_preferences, '[]'::jsonb), COALESCE(dietary_restrictions, ''),
		       updated_at
		FROM user_preferences
		WHERE user_id = (SELECT id FROM users WHERE firebase_uid = $1)`,
		string(uid),
	)

	var p Preferences
	var activities []byte
	err := row.Scan(
		&p.TravelStyle, &p.BudgetPreference, &p.AccommodationPreference,
		&p.FoodPreference, &activities, &p.DietaryRestrictions, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(activities) > 0 {
		if err := json.Unmarshal(activities, &p.ActivityPreferences); err != nil {
			return nil, err
		}
	}
	p.UserID = uid
	return &p, nil
}

// Upsert writes the preference row for the Firebase UID, creating it on first save.
func (s *Store) Upsert(ctx context.Context, uid types.ID, p *Preferences) error {
	activities, err := json.Marshal(p.ActivityPreferences)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO user_preferences (
			user_id, travel_style, budget_preference, accommodation_preference,
			food_preference, activity_preferences, dietary_restrictions
		) VALUES (
			(SELECT id FROM users WHERE firebase_uid = $1),
			$2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (user_id) DO UPDATE SET
			travel_style = EXCLUDED.travel_style,
			budget_preference = EXCLUDED.budget_preference,
			accommodation_preference = EXCLUDED.accommodation_preference,
			food_preference = EXCLUDED.food_preference,
			activity_preferences = EXCLUDED.activity_preferences,
			dietary_restrictions = EXCLUDED.dietary_restrictions`,
		string(uid),
		p.TravelStyle, p.BudgetPreference, p.AccommodationPreference,
		p.FoodPreference, activities, p.DietaryRestrictions,
	)
	return err
}
