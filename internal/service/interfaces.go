package service

import (
	"context"
	"time"

	"mealdash/internal/domain"
)

type CatalogRepository interface {
	ListActiveRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	SearchRestaurants(ctx context.Context, query, cuisine, city string) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	ListAvailableMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
}

type CartRepository interface {
	GetCartByUser(ctx context.Context, userID string) (*domain.Cart, error)
	CreateCart(ctx context.Context, cart *domain.Cart) error
	UpdateCart(ctx context.Context, cart *domain.Cart, expectedVersion int) error
	DeleteCartByUser(ctx context.Context, userID string) (int64, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error)
	SetPaymentIntent(ctx context.Context, orderID, intentID string) error
	UpdatePaymentStatus(ctx context.Context, orderID string, from, to domain.PaymentStatus, details *domain.CardDetails) (int64, error)
	UpdateOrderStatus(ctx context.Context, orderID string, to domain.OrderStatus, allowedFrom []domain.OrderStatus) (int64, error)
	SaveQRCode(ctx context.Context, orderID string, qr []byte) error
	GetQRCode(ctx context.Context, orderID string) ([]byte, error)
	ListPendingPayments(ctx context.Context, before time.Time) ([]domain.Order, error)
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	SaveProfile(ctx context.Context, profile *domain.UserProfile) error
	AddFavorite(ctx context.Context, userID, restaurantID string) error
	RemoveFavorite(ctx context.Context, userID, restaurantID string) (int64, error)
	ListFavorites(ctx context.Context, userID string) ([]domain.Restaurant, error)
}

type FrequentItemsCache interface {
	Increment(ctx context.Context, userID, menuItemID string) (int64, error)
	Top(ctx context.Context, userID string, limit int64) ([]domain.ItemCount, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type PaymentProvider interface {
	CreateIntent(ctx context.Context, orderID string, amountCents int64, currency string) (*domain.PaymentIntent, error)
	GetPayment(ctx context.Context, paymentID string) (*domain.ProviderPayment, error)
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type CatalogServiceInterface interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	SearchRestaurants(ctx context.Context, query, cuisine, city string) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	GetRestaurantMenu(ctx context.Context, restaurantID string) (map[string][]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
}

type CartServiceInterface interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, menuItemID string, quantity int, instructions *string) (*domain.Cart, error)
	UpdateItem(ctx context.Context, userID, lineID string, quantity *int, instructions *string) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, lineID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}

type OrderServiceInterface interface {
	Checkout(ctx context.Context, userID, paymentMethod string, address domain.Address) (*domain.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error)
	GetOrder(ctx context.Context, identity domain.Identity, orderID string) (*domain.Order, error)
	GetOrderQRCode(ctx context.Context, identity domain.Identity, orderID string) ([]byte, error)
	UpdateFulfillmentStatus(ctx context.Context, orderID string, next domain.OrderStatus) error
}

type PaymentServiceInterface interface {
	CreatePaymentIntent(ctx context.Context, identity domain.Identity, orderID string) (string, error)
	ConfirmPayment(ctx context.Context, identity domain.Identity, orderID, providerPaymentID string) (*domain.Order, error)
}

type ProfileServiceInterface interface {
	SetPreferences(ctx context.Context, userID string, dietary, allergies []string) (*domain.UserProfile, error)
	AddFavorite(ctx context.Context, userID, restaurantID string) ([]domain.Restaurant, error)
	RemoveFavorite(ctx context.Context, userID, restaurantID string) ([]domain.Restaurant, error)
	ListFavorites(ctx context.Context, userID string) ([]domain.Restaurant, error)
	RecordFrequentItem(ctx context.Context, userID, menuItemID string) ([]domain.FrequentItem, error)
	ListFrequentItems(ctx context.Context, userID string) ([]domain.FrequentItem, error)
}
