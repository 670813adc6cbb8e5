package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

func adminClaims() *auth.Claims {
	return &auth.Claims{UserID: uuid.New(), Email: "admin@x.com", IsAdmin: true}
}

func shopperClaims() *auth.Claims {
	return &auth.Claims{UserID: uuid.New(), Email: "shopper@x.com", IsAdmin: false}
}

func TestCatalogService_List(t *testing.T) {
	filter := repository.ProductFilter{Category: "Books", Search: "go"}
	expected := []model.Product{
		{ID: uuid.New(), Name: "The Go Programming Language", Category: model.CategoryBooks},
	}

	mockRepo := new(MockProductRepository)
	mockRepo.On("List", mock.Anything, filter).Return(expected, nil)

	service := NewCatalogService(mockRepo, nil)

	products, err := service.List(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_Get(t *testing.T) {
	productID := uuid.New()

	t.Run("found", func(t *testing.T) {
		expected := &model.Product{ID: productID, Name: "Mug"}
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindByID", mock.Anything, productID).Return(expected, nil)

		service := NewCatalogService(mockRepo, nil)
		product, err := service.Get(context.Background(), productID)
		assert.NoError(t, err)
		assert.Equal(t, expected, product)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindByID", mock.Anything, productID).Return(nil, gorm.ErrRecordNotFound)

		service := NewCatalogService(mockRepo, nil)
		product, err := service.Get(context.Background(), productID)
		assert.Equal(t, apperrors.ErrProductNotFound, err)
		assert.Nil(t, product)
	})
}

func TestCatalogService_Create(t *testing.T) {
	input := ProductInput{
		Name:        "Phone",
		Description: "A phone",
		Price:       decimal.NewFromInt(100),
		Category:    model.CategoryElectronics,
		Stock:       2,
	}

	tests := []struct {
		name          string
		claims        *auth.Claims
		input         ProductInput
		setupMock     func(*MockProductRepository)
		expectedError error
	}{
		{
			name:   "admin creates product",
			claims: adminClaims(),
			input:  input,
			setupMock: func(m *MockProductRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)
			},
		},
		{
			name:          "non-admin rejected",
			claims:        shopperClaims(),
			input:         input,
			setupMock:     func(m *MockProductRepository) {},
			expectedError: apperrors.ErrAdminRequired,
		},
		{
			name:          "missing session rejected",
			claims:        nil,
			input:         input,
			setupMock:     func(m *MockProductRepository) {},
			expectedError: apperrors.ErrInvalidSession,
		},
		{
			name:          "unknown category rejected",
			claims:        adminClaims(),
			input:         ProductInput{Name: "Phone", Description: "A phone", Price: decimal.NewFromInt(100), Category: "Gadgets"},
			setupMock:     func(m *MockProductRepository) {},
			expectedError: apperrors.ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			tt.setupMock(mockRepo)

			service := NewCatalogService(mockRepo, nil)
			product, err := service.Create(context.Background(), tt.claims, tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, product)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input.Name, product.Name)
				assert.Equal(t, model.DefaultProductImage, product.Image, "empty image falls back to the placeholder")
				assert.Equal(t, tt.input.Stock, product.Stock)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_UpdatePartial(t *testing.T) {
	productID := uuid.New()

	existing := func() *model.Product {
		return &model.Product{
			ID:          productID,
			Name:        "Mug",
			Description: "Stoneware mug",
			Price:       decimal.NewFromInt(10),
			Category:    model.CategoryHome,
			Image:       model.DefaultProductImage,
			Stock:       60,
		}
	}

	t.Run("only supplied fields change", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindByID", mock.Anything, productID).Return(existing(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

		newPrice := decimal.NewFromInt(12)
		newStock := 55
		service := NewCatalogService(mockRepo, nil)
		product, err := service.Update(context.Background(), adminClaims(), productID, ProductUpdate{
			Price: &newPrice,
			Stock: &newStock,
		})

		assert.NoError(t, err)
		assert.True(t, newPrice.Equal(product.Price))
		assert.Equal(t, newStock, product.Stock)
		assert.Equal(t, "Mug", product.Name)
		assert.Equal(t, model.CategoryHome, product.Category)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindByID", mock.Anything, productID).Return(nil, gorm.ErrRecordNotFound)

		service := NewCatalogService(mockRepo, nil)
		_, err := service.Update(context.Background(), adminClaims(), productID, ProductUpdate{})
		assert.Equal(t, apperrors.ErrProductNotFound, err)
	})

	t.Run("non-admin rejected before any read", func(t *testing.T) {
		mockRepo := new(MockProductRepository)

		service := NewCatalogService(mockRepo, nil)
		_, err := service.Update(context.Background(), shopperClaims(), productID, ProductUpdate{})
		assert.Equal(t, apperrors.ErrAdminRequired, err)
		mockRepo.AssertNotCalled(t, "FindByID")
	})
}

func TestCatalogService_Delete(t *testing.T) {
	productID := uuid.New()

	t.Run("admin deletes", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("Delete", mock.Anything, productID).Return(nil)

		service := NewCatalogService(mockRepo, nil)
		assert.NoError(t, service.Delete(context.Background(), adminClaims(), productID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("Delete", mock.Anything, productID).Return(gorm.ErrRecordNotFound)

		service := NewCatalogService(mockRepo, nil)
		err := service.Delete(context.Background(), adminClaims(), productID)
		assert.Equal(t, apperrors.ErrProductNotFound, err)
	})

	t.Run("non-admin rejected", func(t *testing.T) {
		mockRepo := new(MockProductRepository)

		service := NewCatalogService(mockRepo, nil)
		err := service.Delete(context.Background(), shopperClaims(), productID)
		assert.Equal(t, apperrors.ErrAdminRequired, err)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}
