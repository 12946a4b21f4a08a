package service

import (
	"context"
	"fmt"

	"mealdash/internal/domain"
)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListActiveRestaurants(ctx)
}

func (s *CatalogService) SearchRestaurants(ctx context.Context, query, cuisine, city string) ([]domain.Restaurant, error) {
	return s.repo.SearchRestaurants(ctx, query, cuisine, city)
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	rest, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, fmt.Errorf("%w: restaurant not found", ErrNotFound)
	}
	return rest, nil
}

// GetRestaurantMenu returns the restaurant's available items grouped by
// category.
func (s *CatalogService) GetRestaurantMenu(ctx context.Context, restaurantID string) (map[string][]domain.MenuItem, error) {
	items, err := s.repo.ListAvailableMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no menu items found for this restaurant", ErrNotFound)
	}

	menu := make(map[string][]domain.MenuItem)
	for _, item := range items {
		menu[item.Category] = append(menu[item.Category], item)
	}
	return menu, nil
}

func (s *CatalogService) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item not found", ErrNotFound)
	}
	return item, nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
