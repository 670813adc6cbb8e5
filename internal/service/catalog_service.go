package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/auth"
	"storefront/internal/cache"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// ProductInput carries the fields for a new product. Presence validation
// happens at the handler boundary; defaults are applied here.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    model.Category
	Image       string
	Stock       int
}

// ProductUpdate carries a partial update; nil fields are left unchanged.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *model.Category
	Image       *string
	Stock       *int
}

// CatalogService handles product catalog operations. Mutations require the
// caller's verified claims to carry the admin flag.
type CatalogService interface {
	List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Create(ctx context.Context, claims *auth.Claims, input ProductInput) (*model.Product, error)
	Update(ctx context.Context, claims *auth.Claims, id uuid.UUID, input ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, claims *auth.Claims, id uuid.UUID) error
}

type catalogService struct {
	repo  repository.ProductRepository
	cache *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.ProductRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		repo:  repo,
		cache: cache,
	}
}

func (s *catalogService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id.String())
}

// requireAdmin enforces that the caller is an authenticated admin.
// Authorization derives solely from the stored IsAdmin flag captured in the
// claims at login.
func requireAdmin(claims *auth.Claims) error {
	if claims == nil {
		return apperrors.ErrInvalidSession
	}
	if !claims.IsAdmin {
		return apperrors.ErrAdminRequired
	}
	return nil
}

// List returns products matching the filter, newest first.
func (s *catalogService) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return s.repo.List(ctx, filter)
}

// Get retrieves a product by ID with caching.
func (s *catalogService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, productCacheTTL)
	}

	return product, nil
}

// Create adds a product to the catalog. Image defaults to a placeholder and
// stock to zero when not supplied.
func (s *catalogService) Create(ctx context.Context, claims *auth.Claims, input ProductInput) (*model.Product, error) {
	if err := requireAdmin(claims); err != nil {
		return nil, err
	}
	if !input.Category.Valid() {
		return nil, apperrors.ErrInvalidCategory
	}

	product := &model.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		Stock:       input.Stock,
	}
	if product.Image == "" {
		product.Image = model.DefaultProductImage
	}
	if product.Stock < 0 {
		product.Stock = 0
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

// Update applies a partial update: only supplied fields change.
func (s *catalogService) Update(ctx context.Context, claims *auth.Claims, id uuid.UUID, input ProductUpdate) (*model.Product, error) {
	if err := requireAdmin(claims); err != nil {
		return nil, err
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, apperrors.ErrInvalidCategory
		}
		product.Category = *input.Category
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))

	return product, nil
}

// Delete removes a product from the catalog.
func (s *catalogService) Delete(ctx context.Context, claims *auth.Claims, id uuid.UUID) error {
	if err := requireAdmin(claims); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))

	return nil
}
