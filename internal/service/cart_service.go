package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"mealdash/internal/domain"
	"mealdash/internal/storage"
)

// Cart mutations are read-modify-write; the repository rejects writes whose
// version no longer matches, and the service re-reads and retries.
const cartWriteRetries = 3

type CartService struct {
	carts   CartRepository
	catalog CatalogRepository
}

func NewCartService(carts CartRepository, catalog CatalogRepository) *CartService {
	return &CartService{carts: carts, catalog: catalog}
}

// GetCart returns the user's cart, or an empty value cart when none exists.
// The empty cart is not persisted.
func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.carts.GetCartByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &domain.Cart{UserID: userID, Lines: []domain.CartLine{}}, nil
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, userID, menuItemID string, quantity int, instructions *string) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	item, err := s.catalog.GetMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item not found", ErrNotFound)
	}

	restaurant, err := s.catalog.GetRestaurant(ctx, item.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, fmt.Errorf("%w: restaurant not found", ErrNotFound)
	}

	var lastErr error
	for attempt := 0; attempt < cartWriteRetries; attempt++ {
		cart, err := s.carts.GetCartByUser(ctx, userID)
		if err != nil {
			return nil, err
		}

		if cart == nil {
			cart = &domain.Cart{
				ID:           uuid.NewString(),
				UserID:       userID,
				RestaurantID: restaurant.ID,
				Lines: []domain.CartLine{{
					ID:         uuid.NewString(),
					MenuItemID: item.ID,
					Quantity:   quantity,
				}},
			}
			if instructions != nil {
				cart.Lines[0].SpecialInstructions = *instructions
			}
			lastErr = s.carts.CreateCart(ctx, cart)
		} else {
			if cart.RestaurantID != "" && cart.RestaurantID != restaurant.ID && len(cart.Lines) > 0 {
				return nil, fmt.Errorf("%w: cannot add items from different restaurants, clear your cart first", ErrConflict)
			}
			cart.RestaurantID = restaurant.ID

			merged := false
			for i := range cart.Lines {
				if cart.Lines[i].MenuItemID == item.ID {
					cart.Lines[i].Quantity += quantity
					if instructions != nil {
						cart.Lines[i].SpecialInstructions = *instructions
					}
					merged = true
					break
				}
			}
			if !merged {
				line := domain.CartLine{
					ID:         uuid.NewString(),
					MenuItemID: item.ID,
					Quantity:   quantity,
				}
				if instructions != nil {
					line.SpecialInstructions = *instructions
				}
				cart.Lines = append(cart.Lines, line)
			}
			lastErr = s.carts.UpdateCart(ctx, cart, cart.Version)
		}

		if lastErr == nil {
			return s.carts.GetCartByUser(ctx, userID)
		}
		if !errors.Is(lastErr, storage.ErrVersionConflict) {
			return nil, lastErr
		}
	}
	return nil, fmt.Errorf("%w: cart was modified concurrently", ErrConflict)
}

// UpdateItem applies a partial update to a line. A nil quantity or
// instructions leaves that field unchanged; instructions may be set to the
// empty string explicitly. Quantity 0 is rejected, not treated as removal.
func (s *CartService) UpdateItem(ctx context.Context, userID, lineID string, quantity *int, instructions *string) (*domain.Cart, error) {
	if quantity != nil && *quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	var lastErr error
	for attempt := 0; attempt < cartWriteRetries; attempt++ {
		cart, err := s.carts.GetCartByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if cart == nil {
			return nil, fmt.Errorf("%w: cart not found", ErrNotFound)
		}

		found := false
		for i := range cart.Lines {
			if cart.Lines[i].ID == lineID {
				if quantity != nil {
					cart.Lines[i].Quantity = *quantity
				}
				if instructions != nil {
					cart.Lines[i].SpecialInstructions = *instructions
				}
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: item not found in cart", ErrNotFound)
		}

		lastErr = s.carts.UpdateCart(ctx, cart, cart.Version)
		if lastErr == nil {
			return s.carts.GetCartByUser(ctx, userID)
		}
		if !errors.Is(lastErr, storage.ErrVersionConflict) {
			return nil, lastErr
		}
	}
	return nil, fmt.Errorf("%w: cart was modified concurrently", ErrConflict)
}

// RemoveItem drops a line from the cart. Removing an absent line is a no-op
// success. When the last line goes, the restaurant binding is cleared but the
// cart record stays.
func (s *CartService) RemoveItem(ctx context.Context, userID, lineID string) (*domain.Cart, error) {
	var lastErr error
	for attempt := 0; attempt < cartWriteRetries; attempt++ {
		cart, err := s.carts.GetCartByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if cart == nil {
			return nil, fmt.Errorf("%w: cart not found", ErrNotFound)
		}

		kept := cart.Lines[:0]
		for _, line := range cart.Lines {
			if line.ID != lineID {
				kept = append(kept, line)
			}
		}
		cart.Lines = kept
		if len(cart.Lines) == 0 {
			cart.RestaurantID = ""
		}

		lastErr = s.carts.UpdateCart(ctx, cart, cart.Version)
		if lastErr == nil {
			return s.carts.GetCartByUser(ctx, userID)
		}
		if !errors.Is(lastErr, storage.ErrVersionConflict) {
			return nil, lastErr
		}
	}
	return nil, fmt.Errorf("%w: cart was modified concurrently", ErrConflict)
}

// ClearCart deletes the cart record entirely. Clearing an absent cart
// succeeds.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	_, err := s.carts.DeleteCartByUser(ctx, userID)
	return err
}

var _ CartServiceInterface = (*CartService)(nil)
