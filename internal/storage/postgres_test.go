package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealdash/internal/domain"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestUpdateCart_VersionConflict(t *testing.T) {
	repo, mock := newMockRepo(t)

	cart := &domain.Cart{
		ID:           "cart-1",
		UserID:       "user-1",
		RestaurantID: "rest-1",
		Lines: []domain.CartLine{
			{ID: "line-1", MenuItemID: "item-1", Quantity: 2},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE carts").
		WithArgs("rest-1", "cart-1", 3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateCart(context.Background(), cart, 3)

	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCart_ReplacesLinesAndBumpsVersion(t *testing.T) {
	repo, mock := newMockRepo(t)

	cart := &domain.Cart{
		ID:           "cart-1",
		UserID:       "user-1",
		RestaurantID: "rest-1",
		Lines: []domain.CartLine{
			{ID: "line-1", MenuItemID: "item-1", Quantity: 2, SpecialInstructions: "no onions"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE carts").
		WithArgs("rest-1", "cart-1", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM cart_lines").
		WithArgs("cart-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO cart_lines").
		WithArgs("line-1", "cart-1", "item-1", 2, "no onions", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateCart(context.Background(), cart, 3)

	assert.NoError(t, err)
	assert.Equal(t, 4, cart.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_DeletesCartInSameTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	order := &domain.Order{
		ID:            "order-1",
		UserID:        "user-1",
		RestaurantID:  "rest-1",
		Subtotal:      decimal.RequireFromString("25.98"),
		DeliveryFee:   decimal.RequireFromString("5.99"),
		Tax:           decimal.RequireFromString("2.08"),
		Total:         decimal.RequireFromString("34.05"),
		PaymentMethod: "card",
		PaymentStatus: domain.PaymentPending,
		Status:        domain.OrderPending,
		Lines: []domain.OrderLine{
			{MenuItemID: "item-1", Quantity: 2, PriceAtOrder: decimal.RequireFromString("12.99")},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectExec("INSERT INTO order_lines").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM carts").
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateOrder(context.Background(), order)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_FailedLineInsertRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	order := &domain.Order{
		ID:     "order-1",
		UserID: "user-1",
		Lines: []domain.OrderLine{
			{MenuItemID: "item-1", Quantity: 1},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectExec("INSERT INTO order_lines").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.CreateOrder(context.Background(), order)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePaymentStatus_Conditional(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE orders").
		WithArgs("paid", "pi_123", "4242", "visa", "order-1", "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	details := &domain.CardDetails{PaymentIntentID: "pi_123", Last4: "4242", Brand: "visa"}
	rows, err := repo.UpdatePaymentStatus(context.Background(), "order-1",
		domain.PaymentPending, domain.PaymentPaid, details)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePaymentStatus_WrongStateAffectsNothing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE orders").
		WithArgs("paid", "order-1", "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.UpdatePaymentStatus(context.Background(), "order-1",
		domain.PaymentPending, domain.PaymentPaid, nil)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCartByUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM carts").
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.DeleteCartByUser(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCartByUser_NoCart(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM carts").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "restaurant_id", "name", "version", "created_at"}))

	cart, err := repo.GetCartByUser(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Nil(t, cart)
	assert.NoError(t, mock.ExpectationsWereMet())
}
