package tests

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mealdash/internal/domain"
	"mealdash/internal/mocks"
	"mealdash/internal/service"
	"mealdash/internal/storage"
)

func cartFixture() *domain.Cart {
	return &domain.Cart{
		ID:           "cart-1",
		UserID:       "user-1",
		RestaurantID: "rest-1",
		Lines: []domain.CartLine{
			{ID: "line-1", MenuItemID: "item-1", UnitPrice: decimal.RequireFromString("12.99"), Quantity: 2},
		},
		Version: 3,
	}
}

func TestCartService_GetCart(t *testing.T) {
	t.Run("empty cart when none stored", func(t *testing.T) {
		mockCarts := mocks.NewCartRepository(t)
		mockCatalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(mockCarts, mockCatalog)

		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(nil, nil).Once()

		cart, err := svc.GetCart(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", cart.UserID)
		assert.Empty(t, cart.Lines)
	})

	t.Run("existing cart returned as is", func(t *testing.T) {
		mockCarts := mocks.NewCartRepository(t)
		mockCatalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(mockCarts, mockCatalog)

		stored := cartFixture()
		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(stored, nil).Once()

		cart, err := svc.GetCart(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, stored, cart)
	})
}

func TestCartService_AddItem(t *testing.T) {
	item := &domain.MenuItem{
		ID:           "item-1",
		RestaurantID: "rest-1",
		Name:         "Margherita",
		Price:        decimal.RequireFromString("12.99"),
		IsAvailable:  true,
	}
	restaurant := &domain.Restaurant{ID: "rest-1", Name: "Pizza Place", IsActive: true}

	t.Run("creates cart on first add", func(t *testing.T) {
		mockCarts := mocks.NewCartRepository(t)
		mockCatalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(mockCarts, mockCatalog)

		mockCatalog.On("GetMenuItem", mock.Anything, "item-1").Return(item, nil).Once()
		mockCatalog.On("GetRestaurant", mock.Anything, "rest-1").Return(restaurant, nil).Once()
		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(nil, nil).Once()
		mockCarts.On("CreateCart", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil).Once()
		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(cartFixture(), nil).Once()

		cart, err := svc.AddItem(context.Background(), "user-1", "item-1", 2, nil)

		assert.NoError(t, err)
		assert.Equal(t, "rest-1", cart.RestaurantID)
	})

	t.Run("merges quantity for existing line", func(t *testing.T) {
		mockCarts := mocks.NewCartRepository(t)
		mockCatalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(mockCarts, mockCatalog)

		existing := cartFixture()
		mockCatalog.On("GetMenuItem", mock.Anything, "item-1").Return(item, nil).Once()
		mockCatalog.On("GetRestaurant", mock.Anything, "rest-1").Return(restaurant, nil).Once()
		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(existing, nil).Once()
		mockCarts.On("UpdateCart", mock.Anything, mock.MatchedBy(func(c *domain.Cart) bool {
			return len(c.Lines) == 1 && c.Lines[0].Quantity == 3
		}), 3).Return(nil).Once()
		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(existing, nil).Once()

		_, err := svc.AddItem(context.Background(), "user-1", "item-1", 1, nil)

		assert.NoError(t, err)
	})

	t.Run("rejects item from a different restaurant", func(t *testing.T) {
		mockCarts := mocks.NewCartRepository(t)
		mockCatalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(mockCarts, mockCatalog)

		other := &domain.MenuItem{ID: "item-9", RestaurantID: "rest-2", Price: decimal.RequireFromString("8.50")}
		otherRest := &domain.Restaurant{ID: "rest-2", Name: "Sushi Bar"}

		mockCatalog.On("GetMenuItem", mock.Anything, "item-9").Return(other, nil).Once()
		mockCatalog.On("GetRestaurant", mock.Anything, "rest-2").Return(otherRest, nil).Once()
		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(cartFixture(), nil).Once()

		cart, err := svc.AddItem(context.Background(), "user-1", "item-9", 1, nil)

		assert.Nil(t, cart)
		assert.ErrorIs(t, err, service.ErrConflict)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		mockCarts := mocks.NewCartRepository(t)
		mockCatalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(mockCarts, mockCatalog)

		cart, err := svc.AddItem(context.Background(), "user-1", "item-1", 0, nil)

		assert.Nil(t, cart)
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("unknown menu item", func(t *testing.T) {
		mockCarts := mocks.NewCartRepository(t)
		mockCatalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(mockCarts, mockCatalog)

		mockCatalog.On("GetMenuItem", mock.Anything, "missing").Return(nil, nil).Once()

		cart, err := svc.AddItem(context.Background(), "user-1", "missing", 1, nil)

		assert.Nil(t, cart)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("gives up after repeated version conflicts", func(t *testing.T) {
		mockCarts := mocks.NewCartRepository(t)
		mockCatalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(mockCarts, mockCatalog)

		mockCatalog.On("GetMenuItem", mock.Anything, "item-1").Return(item, nil).Once()
		mockCatalog.On("GetRestaurant", mock.Anything, "rest-1").Return(restaurant, nil).Once()
		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(cartFixture(), nil).Times(3)
		mockCarts.On("UpdateCart", mock.Anything, mock.AnythingOfType("*domain.Cart"), 3).
			Return(storage.ErrVersionConflict).Times(3)

		cart, err := svc.AddItem(context.Background(), "user-1", "item-1", 1, nil)

		assert.Nil(t, cart)
		assert.ErrorIs(t, err, service.ErrConflict)
	})
}

func TestCartService_UpdateItem(t *testing.T) {
	t.Run("partial update keeps other fields", func(t *testing.T) {
		mockCarts := mocks.NewCartRepository(t)
		mockCatalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(mockCarts, mockCatalog)

		existing := cartFixture()
		existing.Lines[0].SpecialInstructions = "no onions"
		quantity := 5

		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(existing, nil).Once()
		mockCarts.On("UpdateCart", mock.Anything, mock.MatchedBy(func(c *domain.Cart) bool {
			return c.Lines[0].Quantity == 5 && c.Lines[0].SpecialInstructions == "no onions"
		}), 3).Return(nil).Once()
		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(existing, nil).Once()

		_, err := svc.UpdateItem(context.Background(), "user-1", "line-1", &quantity, nil)

		assert.NoError(t, err)
	})

	t.Run("quantity zero rejected", func(t *testing.T) {
		mockCarts := mocks.NewCartRepository(t)
		mockCatalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(mockCarts, mockCatalog)

		zero := 0
		cart, err := svc.UpdateItem(context.Background(), "user-1", "line-1", &zero, nil)

		assert.Nil(t, cart)
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("line not in cart", func(t *testing.T) {
		mockCarts := mocks.NewCartRepository(t)
		mockCatalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(mockCarts, mockCatalog)

		quantity := 2
		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(cartFixture(), nil).Once()

		cart, err := svc.UpdateItem(context.Background(), "user-1", "line-404", &quantity, nil)

		assert.Nil(t, cart)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("no cart", func(t *testing.T) {
		mockCarts := mocks.NewCartRepository(t)
		mockCatalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(mockCarts, mockCatalog)

		quantity := 2
		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(nil, nil).Once()

		cart, err := svc.UpdateItem(context.Background(), "user-1", "line-1", &quantity, nil)

		assert.Nil(t, cart)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	t.Run("removing last line clears restaurant binding", func(t *testing.T) {
		mockCarts := mocks.NewCartRepository(t)
		mockCatalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(mockCarts, mockCatalog)

		existing := cartFixture()
		emptied := &domain.Cart{ID: "cart-1", UserID: "user-1", Lines: []domain.CartLine{}, Version: 4}

		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(existing, nil).Once()
		mockCarts.On("UpdateCart", mock.Anything, mock.MatchedBy(func(c *domain.Cart) bool {
			return len(c.Lines) == 0 && c.RestaurantID == ""
		}), 3).Return(nil).Once()
		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(emptied, nil).Once()

		cart, err := svc.RemoveItem(context.Background(), "user-1", "line-1")

		assert.NoError(t, err)
		assert.Empty(t, cart.Lines)
	})

	t.Run("removing absent line succeeds", func(t *testing.T) {
		mockCarts := mocks.NewCartRepository(t)
		mockCatalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(mockCarts, mockCatalog)

		existing := cartFixture()
		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(existing, nil).Once()
		mockCarts.On("UpdateCart", mock.Anything, mock.AnythingOfType("*domain.Cart"), 3).Return(nil).Once()
		mockCarts.On("GetCartByUser", mock.Anything, "user-1").Return(existing, nil).Once()

		_, err := svc.RemoveItem(context.Background(), "user-1", "line-404")

		assert.NoError(t, err)
	})
}

func TestCartService_ClearCart(t *testing.T) {
	tests := []struct {
		name    string
		deleted int64
		mockErr error
		wantErr bool
	}{
		{name: "cart deleted", deleted: 1},
		{name: "no cart to delete", deleted: 0},
		{name: "storage failure", mockErr: assert.AnError, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockCarts := mocks.NewCartRepository(t)
			mockCatalog := mocks.NewCatalogRepository(t)
			svc := service.NewCartService(mockCarts, mockCatalog)

			mockCarts.On("DeleteCartByUser", mock.Anything, "user-1").
				Return(testCase.deleted, testCase.mockErr).Once()

			err := svc.ClearCart(context.Background(), "user-1")

			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
