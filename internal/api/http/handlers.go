package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"mealdash/internal/domain"
	"mealdash/internal/service"
)

type Handler struct {
	Catalog  service.CatalogServiceInterface
	Carts    service.CartServiceInterface
	Orders   service.OrderServiceInterface
	Payments service.PaymentServiceInterface
	Profiles service.ProfileServiceInterface
}

func NewHandler(
	catalog service.CatalogServiceInterface,
	carts service.CartServiceInterface,
	orders service.OrderServiceInterface,
	payments service.PaymentServiceInterface,
	profiles service.ProfileServiceInterface,
) *Handler {
	return &Handler{
		Catalog:  catalog,
		Carts:    carts,
		Orders:   orders,
		Payments: payments,
		Profiles: profiles,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router, auth mux.MiddlewareFunc) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/search", h.searchRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getRestaurantMenu).Methods("GET")
	r.HandleFunc("/api/menu-items/{id}", h.getMenuItem).Methods("GET")

	authed := r.NewRoute().Subrouter()
	authed.Use(auth)

	authed.HandleFunc("/api/cart", h.getCart).Methods("GET")
	authed.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	authed.HandleFunc("/api/cart/items/{id}", h.updateCartItem).Methods("PUT")
	authed.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")
	authed.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")

	authed.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	authed.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	authed.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	authed.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	authed.HandleFunc("/api/payments/create-payment-intent", h.createPaymentIntent).Methods("POST")
	authed.HandleFunc("/api/payments/confirm-payment", h.confirmPayment).Methods("POST")

	authed.HandleFunc("/api/users/preferences", h.setPreferences).Methods("PUT")
	authed.HandleFunc("/api/users/favorites/restaurants", h.listFavorites).Methods("GET")
	authed.HandleFunc("/api/users/favorites/restaurants/{id}", h.addFavorite).Methods("POST")
	authed.HandleFunc("/api/users/favorites/restaurants/{id}", h.removeFavorite).Methods("DELETE")
	authed.HandleFunc("/api/users/frequent-items", h.listFrequentItems).Methods("GET")
	authed.HandleFunc("/api/users/frequent-items/{id}", h.recordFrequentItem).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "mealdash",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// writeError maps the service error taxonomy onto response codes. Storage
// and unclassified failures are logged and surfaced as an opaque 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUnauthorized):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrUpstream):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		log.Printf("ERROR: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
	}
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurants)
}

func (h *Handler) searchRestaurants(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	restaurants, err := h.Catalog.SearchRestaurants(r.Context(),
		params.Get("query"), params.Get("cuisine"), params.Get("city"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Catalog.GetRestaurant(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurant)
}

func (h *Handler) getRestaurantMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Catalog.GetRestaurantMenu(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(menu)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Catalog.GetMenuItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.GetCart(r.Context(), identityFrom(r).UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cart)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		MenuItemID          string  `json:"menu_item_id"`
		Quantity            int     `json:"quantity"`
		SpecialInstructions *string `json:"special_instructions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.AddItem(r.Context(), identityFrom(r).UserID,
		payload.MenuItemID, payload.Quantity, payload.SpecialInstructions)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cart)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity            *int    `json:"quantity"`
		SpecialInstructions *string `json:"special_instructions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.UpdateItem(r.Context(), identityFrom(r).UserID,
		mux.Vars(r)["id"], payload.Quantity, payload.SpecialInstructions)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.RemoveItem(r.Context(), identityFrom(r).UserID, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.ClearCart(r.Context(), identityFrom(r).UserID); err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"msg": "Cart cleared"})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		PaymentMethod   string         `json:"payment_method"`
		DeliveryAddress domain.Address `json:"delivery_address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Checkout(r.Context(), identityFrom(r).UserID,
		payload.PaymentMethod, payload.DeliveryAddress)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListUserOrders(r.Context(), identityFrom(r).UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetOrder(r.Context(), identityFrom(r), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.GetOrderQRCode(r.Context(), identityFrom(r), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	if len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		OrderID string `json:"order_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	clientSecret, err := h.Payments.CreatePaymentIntent(r.Context(), identityFrom(r), payload.OrderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"client_secret": clientSecret})
}

func (h *Handler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		OrderID         string `json:"order_id"`
		PaymentIntentID string `json:"payment_intent_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Payments.ConfirmPayment(r.Context(), identityFrom(r),
		payload.OrderID, payload.PaymentIntentID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) setPreferences(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DietaryPreferences []string `json:"dietary_preferences"`
		Allergies          []string `json:"allergies"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.Profiles.SetPreferences(r.Context(), identityFrom(r).UserID,
		payload.DietaryPreferences, payload.Allergies)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.Profiles.AddFavorite(r.Context(), identityFrom(r).UserID, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(favorites)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.Profiles.RemoveFavorite(r.Context(), identityFrom(r).UserID, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(favorites)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.Profiles.ListFavorites(r.Context(), identityFrom(r).UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(favorites)
}

func (h *Handler) recordFrequentItem(w http.ResponseWriter, r *http.Request) {
	items, err := h.Profiles.RecordFrequentItem(r.Context(), identityFrom(r).UserID, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (h *Handler) listFrequentItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Profiles.ListFrequentItems(r.Context(), identityFrom(r).UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}
