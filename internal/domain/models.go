package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type OpenClose struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type Restaurant struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	Address        Address              `json:"address"`
	CuisineTypes   []string             `json:"cuisine_types"`
	OperatingHours map[string]OpenClose `json:"operating_hours,omitempty"`
	Phone          string               `json:"phone,omitempty"`
	ImageURL       string               `json:"image_url,omitempty"`
	IsActive       bool                 `json:"is_active"`
	CreatedAt      time.Time            `json:"created_at"`
}

type MenuItem struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	ImageURL     string          `json:"image_url,omitempty"`
	IsVegetarian bool            `json:"is_vegetarian"`
	IsVegan      bool            `json:"is_vegan"`
	IsGlutenFree bool            `json:"is_gluten_free"`
	Allergens    []string        `json:"allergens"`
	IsAvailable  bool            `json:"is_available"`
	Rating       float64         `json:"rating"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Cart holds the single mutable basket of a user. RestaurantID is empty while
// the cart has no lines; every line's menu item must belong to that restaurant.
type Cart struct {
	ID             string     `json:"id,omitempty"`
	UserID         string     `json:"user_id,omitempty"`
	RestaurantID   string     `json:"restaurant_id,omitempty"`
	RestaurantName string     `json:"restaurant_name,omitempty"`
	Lines          []CartLine `json:"items"`
	Version        int        `json:"-"`
	CreatedAt      time.Time  `json:"created_at,omitempty"`
}

type CartLine struct {
	ID                  string          `json:"id"`
	MenuItemID          string          `json:"menu_item_id"`
	MenuItemName        string          `json:"menu_item_name,omitempty"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	Quantity            int             `json:"quantity"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

type Order struct {
	ID                    string          `json:"id"`
	UserID                string          `json:"user_id"`
	RestaurantID          string          `json:"restaurant_id"`
	RestaurantName        string          `json:"restaurant_name,omitempty"`
	Lines                 []OrderLine     `json:"items"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	DeliveryFee           decimal.Decimal `json:"delivery_fee"`
	Tax                   decimal.Decimal `json:"tax"`
	Total                 decimal.Decimal `json:"total"`
	DeliveryAddress       Address         `json:"delivery_address"`
	PaymentMethod         string          `json:"payment_method"`
	PaymentStatus         PaymentStatus   `json:"payment_status"`
	Status                OrderStatus     `json:"status"`
	EstimatedDeliveryTime time.Time       `json:"estimated_delivery_time"`
	PaymentIntentID       string          `json:"payment_intent_id,omitempty"`
	CardLast4             string          `json:"card_last4,omitempty"`
	CardBrand             string          `json:"card_brand,omitempty"`
	DriverID              string          `json:"driver_id,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
}

// OrderLine is the frozen counterpart of a cart line; PriceAtOrder is the
// menu item price captured at checkout and is the only price used for order
// arithmetic afterwards.
type OrderLine struct {
	MenuItemID          string          `json:"menu_item_id"`
	MenuItemName        string          `json:"menu_item_name,omitempty"`
	Quantity            int             `json:"quantity"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
	PriceAtOrder        decimal.Decimal `json:"price_at_order"`
}

type UserProfile struct {
	UserID             string   `json:"user_id"`
	DietaryPreferences []string `json:"dietary_preferences"`
	Allergies          []string `json:"allergies"`
}

type FrequentItem struct {
	MenuItemID   string    `json:"menu_item_id"`
	MenuItemName string    `json:"menu_item_name,omitempty"`
	OrderCount   int64     `json:"order_count"`
	MenuItem     *MenuItem `json:"menu_item,omitempty"`
}

type ItemCount struct {
	MenuItemID string
	Count      int64
}

// Identity is the resolved bearer credential of a request.
type Identity struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func (i Identity) IsAdmin() bool { return i.Role == "admin" }

type CardDetails struct {
	PaymentIntentID string `json:"payment_intent_id"`
	Last4           string `json:"last4"`
	Brand           string `json:"brand"`
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type ProviderPayment struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	CardLast4 string `json:"card_last4"`
	CardBrand string `json:"card_brand"`
}

type OrderEvent struct {
	Type         string          `json:"type"`
	OrderID      string          `json:"order_id"`
	UserID       string          `json:"user_id"`
	RestaurantID string          `json:"restaurant_id"`
	Total        decimal.Decimal `json:"total"`
	Timestamp    time.Time       `json:"timestamp"`
}

type FulfillmentEvent struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
