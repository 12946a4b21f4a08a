package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mealdash/internal/domain"
	"mealdash/internal/mocks"
	"mealdash/internal/service"
)

func TestCatalogService_GetRestaurantMenu(t *testing.T) {
	t.Run("groups items by category", func(t *testing.T) {
		mockRepo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(mockRepo)

		mockRepo.On("ListAvailableMenuItems", mock.Anything, "rest-1").
			Return([]domain.MenuItem{
				{ID: "item-1", Name: "Margherita", Category: "Pizza"},
				{ID: "item-2", Name: "Diavola", Category: "Pizza"},
				{ID: "item-3", Name: "Tiramisu", Category: "Dessert"},
			}, nil).Once()

		menu, err := svc.GetRestaurantMenu(context.Background(), "rest-1")

		assert.NoError(t, err)
		assert.Len(t, menu, 2)
		assert.Len(t, menu["Pizza"], 2)
		assert.Len(t, menu["Dessert"], 1)
	})

	t.Run("no available items", func(t *testing.T) {
		mockRepo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(mockRepo)

		mockRepo.On("ListAvailableMenuItems", mock.Anything, "rest-404").
			Return([]domain.MenuItem{}, nil).Once()

		menu, err := svc.GetRestaurantMenu(context.Background(), "rest-404")

		assert.Nil(t, menu)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestCatalogService_GetRestaurant(t *testing.T) {
	tests := []struct {
		name     string
		mockRest *domain.Restaurant
		wantErr  error
	}{
		{name: "found", mockRest: &domain.Restaurant{ID: "rest-1", Name: "Pizza Place"}},
		{name: "missing", mockRest: nil, wantErr: service.ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := mocks.NewCatalogRepository(t)
			svc := service.NewCatalogService(mockRepo)

			mockRepo.On("GetRestaurant", mock.Anything, "rest-1").
				Return(testCase.mockRest, nil).Once()

			rest, err := svc.GetRestaurant(context.Background(), "rest-1")

			if testCase.wantErr != nil {
				assert.Nil(t, rest)
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.mockRest, rest)
			}
		})
	}
}
