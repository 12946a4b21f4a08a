package service

import (
	"context"
	"errors"
	"fmt"

	"mealdash/internal/domain"
	"mealdash/internal/storage"
)

const frequentItemsLimit = 50

type ProfileService struct {
	profiles ProfileRepository
	catalog  CatalogRepository
	frequent FrequentItemsCache
}

func NewProfileService(profiles ProfileRepository, catalog CatalogRepository, frequent FrequentItemsCache) *ProfileService {
	return &ProfileService{profiles: profiles, catalog: catalog, frequent: frequent}
}

// SetPreferences replaces whichever of the two lists is supplied. A nil
// slice means "not provided" and leaves the stored list untouched; an empty
// slice clears it.
func (s *ProfileService) SetPreferences(ctx context.Context, userID string, dietary, allergies []string) (*domain.UserProfile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if dietary != nil {
		profile.DietaryPreferences = dietary
	}
	if allergies != nil {
		profile.Allergies = allergies
	}
	if err := s.profiles.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) AddFavorite(ctx context.Context, userID, restaurantID string) ([]domain.Restaurant, error) {
	restaurant, err := s.catalog.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, fmt.Errorf("%w: restaurant not found", ErrNotFound)
	}

	if err := s.profiles.AddFavorite(ctx, userID, restaurantID); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, fmt.Errorf("%w: restaurant already in favorites", ErrConflict)
		}
		return nil, err
	}
	return s.profiles.ListFavorites(ctx, userID)
}

func (s *ProfileService) RemoveFavorite(ctx context.Context, userID, restaurantID string) ([]domain.Restaurant, error) {
	rows, err := s.profiles.RemoveFavorite(ctx, userID, restaurantID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: restaurant not in favorites", ErrConflict)
	}
	return s.profiles.ListFavorites(ctx, userID)
}

func (s *ProfileService) ListFavorites(ctx context.Context, userID string) ([]domain.Restaurant, error) {
	return s.profiles.ListFavorites(ctx, userID)
}

// RecordFrequentItem bumps the order counter for a menu item, starting at 1.
func (s *ProfileService) RecordFrequentItem(ctx context.Context, userID, menuItemID string) ([]domain.FrequentItem, error) {
	item, err := s.catalog.GetMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item not found", ErrNotFound)
	}

	if _, err := s.frequent.Increment(ctx, userID, menuItemID); err != nil {
		return nil, err
	}
	return s.ListFrequentItems(ctx, userID)
}

// ListFrequentItems returns counters sorted by descending count with item
// details resolved from the catalog. Items that no longer resolve are kept
// as bare counters.
func (s *ProfileService) ListFrequentItems(ctx context.Context, userID string) ([]domain.FrequentItem, error) {
	counts, err := s.frequent.Top(ctx, userID, frequentItemsLimit)
	if err != nil {
		return nil, err
	}

	items := make([]domain.FrequentItem, 0, len(counts))
	for _, count := range counts {
		frequent := domain.FrequentItem{MenuItemID: count.MenuItemID, OrderCount: count.Count}
		if item, err := s.catalog.GetMenuItem(ctx, count.MenuItemID); err == nil && item != nil {
			frequent.MenuItemName = item.Name
			frequent.MenuItem = item
		}
		items = append(items, frequent)
	}
	return items, nil
}

var _ ProfileServiceInterface = (*ProfileService)(nil)
