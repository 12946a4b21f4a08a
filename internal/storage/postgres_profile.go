package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"mealdash/internal/domain"
)

// GetProfile returns an empty profile when the user has no row yet; the
// profile record is created lazily on first write.
func (r *PostgresRepository) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile := domain.UserProfile{UserID: userID}
	err := r.DB.QueryRowContext(ctx, `
		SELECT dietary_preferences, allergies
		FROM user_profiles
		WHERE user_id = $1`, userID).
		Scan(pq.Array(&profile.DietaryPreferences), pq.Array(&profile.Allergies))
	if errors.Is(err, sql.ErrNoRows) {
		profile.DietaryPreferences = []string{}
		profile.Allergies = []string{}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *PostgresRepository) SaveProfile(ctx context.Context, profile *domain.UserProfile) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, dietary_preferences, allergies)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET dietary_preferences = EXCLUDED.dietary_preferences,
		    allergies = EXCLUDED.allergies`,
		profile.UserID, pq.Array(profile.DietaryPreferences), pq.Array(profile.Allergies))
	return err
}

func (r *PostgresRepository) AddFavorite(ctx context.Context, userID, restaurantID string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO user_favorites (user_id, restaurant_id)
		VALUES ($1, $2)`, userID, restaurantID)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PostgresRepository) RemoveFavorite(ctx context.Context, userID, restaurantID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		DELETE FROM user_favorites
		WHERE user_id = $1 AND restaurant_id = $2`, userID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListFavorites(ctx context.Context, userID string) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants
		JOIN user_favorites f ON f.restaurant_id = restaurants.id
		WHERE f.user_id = $1
		ORDER BY restaurants.name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			continue
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, rows.Err()
}
