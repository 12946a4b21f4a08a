package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "mealdash/internal/api/http"
	"mealdash/internal/domain"
	"mealdash/internal/mocks"
	"mealdash/internal/service"
)

type handlerFixture struct {
	catalog  *mocks.CatalogServiceInterface
	carts    *mocks.CartServiceInterface
	orders   *mocks.OrderServiceInterface
	payments *mocks.PaymentServiceInterface
	profiles *mocks.ProfileServiceInterface
	verifier *mocks.TokenVerifier
	router   http.Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	f := &handlerFixture{
		catalog:  mocks.NewCatalogServiceInterface(t),
		carts:    mocks.NewCartServiceInterface(t),
		orders:   mocks.NewOrderServiceInterface(t),
		payments: mocks.NewPaymentServiceInterface(t),
		profiles: mocks.NewProfileServiceInterface(t),
		verifier: mocks.NewTokenVerifier(t),
	}
	handler := httpapi.NewHandler(f.catalog, f.carts, f.orders, f.payments, f.profiles)
	f.router = httpapi.NewRouter(handler, f.verifier)
	return f
}

func (f *handlerFixture) authorize() {
	f.verifier.On("Verify", mock.Anything, "good-token").
		Return(&domain.Identity{UserID: "user-1"}, nil)
}

func (f *handlerFixture) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer good-token")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do("GET", "/health", "", false)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "mealdash", body["service"])
}

func TestCatalogEndpointsArePublic(t *testing.T) {
	f := newHandlerFixture(t)

	f.catalog.On("ListRestaurants", mock.Anything).
		Return([]domain.Restaurant{{ID: "rest-1", Name: "Pizza Place"}}, nil).Once()

	w := f.do("GET", "/api/restaurants", "", false)

	assert.Equal(t, http.StatusOK, w.Code)
	var restaurants []domain.Restaurant
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&restaurants))
	assert.Len(t, restaurants, 1)
}

func TestSearchPassesQueryParams(t *testing.T) {
	f := newHandlerFixture(t)

	f.catalog.On("SearchRestaurants", mock.Anything, "pizza", "italian", "Springfield").
		Return([]domain.Restaurant{}, nil).Once()

	w := f.do("GET", "/api/restaurants/search?query=pizza&cuisine=italian&city=Springfield", "", false)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownRestaurantIs404(t *testing.T) {
	f := newHandlerFixture(t)

	f.catalog.On("GetRestaurant", mock.Anything, "rest-404").
		Return(nil, service.ErrNotFound).Once()

	w := f.do("GET", "/api/restaurants/rest-404", "", false)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartRequiresAuth(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do("GET", "/api/cart", "", false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRejectedTokenIs401(t *testing.T) {
	f := newHandlerFixture(t)

	f.verifier.On("Verify", mock.Anything, "bad-token").
		Return(nil, assert.AnError).Once()

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddCartItem(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorize()

	cart := &domain.Cart{
		ID:           "cart-1",
		UserID:       "user-1",
		RestaurantID: "rest-1",
		Lines: []domain.CartLine{
			{ID: "line-1", MenuItemID: "item-1", UnitPrice: decimal.RequireFromString("12.99"), Quantity: 2},
		},
	}
	f.carts.On("AddItem", mock.Anything, "user-1", "item-1", 2, (*string)(nil)).
		Return(cart, nil).Once()

	w := f.do("POST", "/api/cart/items", `{"menu_item_id":"item-1","quantity":2}`, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var got domain.Cart
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "rest-1", got.RestaurantID)
}

func TestCrossRestaurantAddIs400(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorize()

	f.carts.On("AddItem", mock.Anything, "user-1", "item-9", 1, (*string)(nil)).
		Return(nil, service.ErrConflict).Once()

	w := f.do("POST", "/api/cart/items", `{"menu_item_id":"item-9","quantity":1}`, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartItemPartialBody(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorize()

	quantity := 3
	f.carts.On("UpdateItem", mock.Anything, "user-1", "line-1", &quantity, (*string)(nil)).
		Return(&domain.Cart{ID: "cart-1"}, nil).Once()

	w := f.do("PUT", "/api/cart/items/line-1", `{"quantity":3}`, true)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutReturns201(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorize()

	order := &domain.Order{
		ID:            "order-1",
		UserID:        "user-1",
		Total:         decimal.RequireFromString("41.07"),
		PaymentStatus: domain.PaymentPending,
		Status:        domain.OrderPending,
	}
	f.orders.On("Checkout", mock.Anything, "user-1", "card",
		domain.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701"}).
		Return(order, nil).Once()

	body := `{"payment_method":"card","delivery_address":{"street":"1 Main St","city":"Springfield","state":"IL","zip_code":"62701"}}`
	w := f.do("POST", "/api/orders", body, true)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got domain.Order
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "order-1", got.ID)
}

func TestCheckoutEmptyCartIs400(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorize()

	f.orders.On("Checkout", mock.Anything, "user-1", "card", domain.Address{}).
		Return(nil, service.ErrValidation).Once()

	w := f.do("POST", "/api/orders", `{"payment_method":"card"}`, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderForbiddenForOtherUser(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorize()

	f.orders.On("GetOrder", mock.Anything, domain.Identity{UserID: "user-1"}, "order-2").
		Return(nil, service.ErrUnauthorized).Once()

	w := f.do("GET", "/api/orders/order-2", "", true)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderQRCodeIsPNG(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorize()

	f.orders.On("GetOrderQRCode", mock.Anything, domain.Identity{UserID: "user-1"}, "order-1").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	w := f.do("GET", "/api/orders/order-1/qrcode", "", true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestCreatePaymentIntent(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorize()

	f.payments.On("CreatePaymentIntent", mock.Anything, domain.Identity{UserID: "user-1"}, "order-1").
		Return("pi_123_secret", nil).Once()

	w := f.do("POST", "/api/payments/create-payment-intent", `{"order_id":"order-1"}`, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "pi_123_secret", body["client_secret"])
}

func TestProviderOutageIs502(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorize()

	f.payments.On("CreatePaymentIntent", mock.Anything, domain.Identity{UserID: "user-1"}, "order-1").
		Return("", service.ErrUpstream).Once()

	w := f.do("POST", "/api/payments/create-payment-intent", `{"order_id":"order-1"}`, true)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestConfirmPayment(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorize()

	paid := &domain.Order{ID: "order-1", PaymentStatus: domain.PaymentPaid}
	f.payments.On("ConfirmPayment", mock.Anything, domain.Identity{UserID: "user-1"}, "order-1", "pi_123").
		Return(paid, nil).Once()

	w := f.do("POST", "/api/payments/confirm-payment", `{"order_id":"order-1","payment_intent_id":"pi_123"}`, true)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetPreferencesOmittedFieldStaysNil(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorize()

	profile := &domain.UserProfile{UserID: "user-1", DietaryPreferences: []string{"vegan"}}
	f.profiles.On("SetPreferences", mock.Anything, "user-1", []string{"vegan"}, []string(nil)).
		Return(profile, nil).Once()

	w := f.do("PUT", "/api/users/preferences", `{"dietary_preferences":["vegan"]}`, true)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDuplicateFavoriteIs400(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorize()

	f.profiles.On("AddFavorite", mock.Anything, "user-1", "rest-1").
		Return(nil, service.ErrConflict).Once()

	w := f.do("POST", "/api/users/favorites/restaurants/rest-1", "", true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnclassifiedErrorIsOpaque500(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorize()

	f.carts.On("GetCart", mock.Anything, "user-1").
		Return(nil, assert.AnError).Once()

	w := f.do("GET", "/api/cart", "", true)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server error")
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
