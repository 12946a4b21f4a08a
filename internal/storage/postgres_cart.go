package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mealdash/internal/domain"
)

// GetCartByUser returns the cart with menu item names and live prices joined
// in, or nil when the user has no cart.
func (r *PostgresRepository) GetCartByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	var cart domain.Cart
	var restaurantID sql.NullString
	var restaurantName sql.NullString
	err := r.DB.QueryRowContext(ctx, `
		SELECT c.id, c.user_id, c.restaurant_id, r.name, c.version, c.created_at
		FROM carts c
		LEFT JOIN restaurants r ON c.restaurant_id = r.id
		WHERE c.user_id = $1`, userID).
		Scan(&cart.ID, &cart.UserID, &restaurantID, &restaurantName, &cart.Version, &cart.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	cart.RestaurantID = restaurantID.String
	cart.RestaurantName = restaurantName.String

	rows, err := r.DB.QueryContext(ctx, `
		SELECT cl.id, cl.menu_item_id, m.name, m.price, cl.quantity, cl.special_instructions
		FROM cart_lines cl
		JOIN menu_items m ON cl.menu_item_id = m.id
		WHERE cl.cart_id = $1
		ORDER BY cl.position`, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart.Lines = []domain.CartLine{}
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ID, &line.MenuItemID, &line.MenuItemName,
			&line.UnitPrice, &line.Quantity, &line.SpecialInstructions); err != nil {
			continue
		}
		cart.Lines = append(cart.Lines, line)
	}
	return &cart, rows.Err()
}

// CreateCart inserts a new cart with its lines. The UNIQUE constraint on
// user_id guarantees at most one cart per user; a concurrent create surfaces
// as ErrVersionConflict so the caller can re-read and retry.
func (r *PostgresRepository) CreateCart(ctx context.Context, cart *domain.Cart) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO carts (id, user_id, restaurant_id, version)
		VALUES ($1, $2, NULLIF($3, ''), 0)
		RETURNING created_at`,
		cart.ID, cart.UserID, cart.RestaurantID).Scan(&cart.CreatedAt)
	if isUniqueViolation(err) {
		return ErrVersionConflict
	}
	if err != nil {
		return fmt.Errorf("insert cart: %w", err)
	}

	if err := insertCartLines(ctx, tx, cart); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateCart replaces the full cart state, conditional on expectedVersion.
func (r *PostgresRepository) UpdateCart(ctx context.Context, cart *domain.Cart, expectedVersion int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE carts
		SET restaurant_id = NULLIF($1, ''), version = version + 1
		WHERE id = $2 AND version = $3`,
		cart.RestaurantID, cart.ID, expectedVersion)
	if err != nil {
		return fmt.Errorf("update cart: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrVersionConflict
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_lines WHERE cart_id = $1`, cart.ID); err != nil {
		return fmt.Errorf("delete cart lines: %w", err)
	}
	if err := insertCartLines(ctx, tx, cart); err != nil {
		return err
	}

	cart.Version = expectedVersion + 1
	return tx.Commit()
}

func insertCartLines(ctx context.Context, tx *sql.Tx, cart *domain.Cart) error {
	for i, line := range cart.Lines {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO cart_lines (id, cart_id, menu_item_id, quantity, special_instructions, position)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			line.ID, cart.ID, line.MenuItemID, line.Quantity, line.SpecialInstructions, i); err != nil {
			return fmt.Errorf("insert cart line: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) DeleteCartByUser(ctx context.Context, userID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
