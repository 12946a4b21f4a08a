package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"mealdash/internal/domain"
)

// CreateOrder persists the order with its lines and deletes the user's cart
// in the same transaction, so a failed order write leaves the cart intact.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, user_id, restaurant_id, subtotal, delivery_fee, tax, total,
			street, city, state, zip_code, payment_method, payment_status, status,
			estimated_delivery_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at`,
		order.ID, order.UserID, order.RestaurantID,
		order.Subtotal, order.DeliveryFee, order.Tax, order.Total,
		order.DeliveryAddress.Street, order.DeliveryAddress.City,
		order.DeliveryAddress.State, order.DeliveryAddress.ZipCode,
		order.PaymentMethod, string(order.PaymentStatus), string(order.Status),
		order.EstimatedDeliveryTime).Scan(&order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i, line := range order.Lines {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_lines (order_id, menu_item_id, quantity, special_instructions, price_at_order, position)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, line.MenuItemID, line.Quantity, line.SpecialInstructions,
			line.PriceAtOrder, i); err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, order.UserID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	return tx.Commit()
}

const orderColumns = `o.id, o.user_id, o.restaurant_id, r.name,
	o.subtotal, o.delivery_fee, o.tax, o.total,
	o.street, o.city, o.state, o.zip_code,
	o.payment_method, o.payment_status, o.status, o.estimated_delivery_time,
	o.payment_intent_id, o.card_last4, o.card_brand, o.driver_id, o.created_at`

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	var order domain.Order
	var paymentStatus, status string
	if err := row.Scan(
		&order.ID, &order.UserID, &order.RestaurantID, &order.RestaurantName,
		&order.Subtotal, &order.DeliveryFee, &order.Tax, &order.Total,
		&order.DeliveryAddress.Street, &order.DeliveryAddress.City,
		&order.DeliveryAddress.State, &order.DeliveryAddress.ZipCode,
		&order.PaymentMethod, &paymentStatus, &status, &order.EstimatedDeliveryTime,
		&order.PaymentIntentID, &order.CardLast4, &order.CardBrand, &order.DriverID,
		&order.CreatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if order.PaymentStatus, err = domain.ParsePaymentStatus(paymentStatus); err != nil {
		return nil, err
	}
	if order.Status, err = domain.ParseOrderStatus(status); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) loadOrderLines(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT ol.menu_item_id, m.name, ol.quantity, ol.special_instructions, ol.price_at_order
		FROM order_lines ol
		JOIN menu_items m ON ol.menu_item_id = m.id
		WHERE ol.order_id = $1
		ORDER BY ol.position`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []domain.OrderLine{}
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.MenuItemID, &line.MenuItemName, &line.Quantity,
			&line.SpecialInstructions, &line.PriceAtOrder); err != nil {
			continue
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN restaurants r ON o.restaurant_id = r.id
		WHERE o.id = $1`, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if order.Lines, err = r.loadOrderLines(ctx, orderID); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *PostgresRepository) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN restaurants r ON o.restaurant_id = r.id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].Lines, err = r.loadOrderLines(ctx, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *PostgresRepository) SetPaymentIntent(ctx context.Context, orderID, intentID string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET payment_intent_id = $1 WHERE id = $2`, intentID, orderID)
	return err
}

// UpdatePaymentStatus moves payment_status from one state to another with a
// conditional write; zero affected rows means the order was not in the
// expected state.
func (r *PostgresRepository) UpdatePaymentStatus(ctx context.Context, orderID string, from, to domain.PaymentStatus, details *domain.CardDetails) (int64, error) {
	var result sql.Result
	var err error
	if details != nil {
		result, err = r.DB.ExecContext(ctx, `
			UPDATE orders
			SET payment_status = $1, payment_intent_id = $2, card_last4 = $3, card_brand = $4
			WHERE id = $5 AND payment_status = $6`,
			string(to), details.PaymentIntentID, details.Last4, details.Brand,
			orderID, string(from))
	} else {
		result, err = r.DB.ExecContext(ctx, `
			UPDATE orders
			SET payment_status = $1
			WHERE id = $2 AND payment_status = $3`,
			string(to), orderID, string(from))
	}
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// UpdateOrderStatus applies a fulfillment transition conditionally on the
// order currently being in one of the allowed prior states.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, orderID string, to domain.OrderStatus, allowedFrom []domain.OrderStatus) (int64, error) {
	prior := make([]string, len(allowedFrom))
	for i, s := range allowedFrom {
		prior[i] = string(s)
	}
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders
		SET status = $1
		WHERE id = $2 AND status = ANY($3)`,
		string(to), orderID, pq.Array(prior))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID string, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRowContext(ctx, `SELECT qr_code FROM orders WHERE id = $1`, orderID).Scan(&qr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return qr, nil
}

// ListPendingPayments returns card orders stuck in pending payment with an
// intent issued before the cutoff. Used by the payment sweep.
func (r *PostgresRepository) ListPendingPayments(ctx context.Context, before time.Time) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN restaurants r ON o.restaurant_id = r.id
		WHERE o.payment_status = 'pending'
		  AND o.payment_intent_id <> ''
		  AND o.created_at < $1
		ORDER BY o.created_at`, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}
