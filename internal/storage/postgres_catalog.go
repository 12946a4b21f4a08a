package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/lib/pq"

	"mealdash/internal/domain"
)

const restaurantColumns = `id, name, description, street, city, state, zip_code,
	cuisine_types, operating_hours, phone, COALESCE(image_url, ''), is_active, created_at`

func scanRestaurant(row interface{ Scan(...any) error }) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	var hours []byte
	if err := row.Scan(
		&rest.ID, &rest.Name, &rest.Description,
		&rest.Address.Street, &rest.Address.City, &rest.Address.State, &rest.Address.ZipCode,
		pq.Array(&rest.CuisineTypes), &hours, &rest.Phone, &rest.ImageURL,
		&rest.IsActive, &rest.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(hours) > 0 {
		_ = json.Unmarshal(hours, &rest.OperatingHours)
	}
	return &rest, nil
}

func (r *PostgresRepository) ListActiveRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE is_active
		ORDER BY created_at DESC`)
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

func (r *PostgresRepository) SearchRestaurants(ctx context.Context, query, cuisine, city string) ([]domain.Restaurant, error) {
	sqlQuery := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE is_active`
	args := []any{}

	if query != "" {
		args = append(args, "%"+query+"%")
		pos := len(args)
		sqlQuery += ` AND (name ILIKE $` + strconv.Itoa(pos) + ` OR description ILIKE $` + strconv.Itoa(pos) + `)`
	}
	if cuisine != "" {
		args = append(args, cuisine)
		sqlQuery += ` AND $` + strconv.Itoa(len(args)) + ` = ANY(cuisine_types)`
	}
	if city != "" {
		args = append(args, "%"+city+"%")
		sqlQuery += ` AND city ILIKE $` + strconv.Itoa(len(args))
	}
	sqlQuery += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, sqlQuery, args...)
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

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRowContext(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rest, err
}

const menuItemColumns = `id, restaurant_id, name, description, price, category,
	COALESCE(image_url, ''), is_vegetarian, is_vegan, is_gluten_free, allergens,
	is_available, rating, created_at`

func scanMenuItem(row interface{ Scan(...any) error }) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := row.Scan(
		&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price,
		&item.Category, &item.ImageURL, &item.IsVegetarian, &item.IsVegan,
		&item.IsGlutenFree, pq.Array(&item.Allergens), &item.IsAvailable,
		&item.Rating, &item.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) ListAvailableMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE restaurant_id = $1 AND is_available
		ORDER BY category, name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			continue
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := scanMenuItem(r.DB.QueryRowContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return item, err
}
