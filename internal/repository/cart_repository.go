package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/model"
)

// CartRepository defines cart persistence operations.
type CartRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error)
	FindOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// FindByUserID loads a user's cart with its lines.
func (r *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	var cart model.Cart
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// FindOrCreateByUserID returns the user's cart, creating an empty one on
// first access. The unique index on user_id is the only concurrency guard:
// if a concurrent caller wins the insert, the duplicate-key error is
// resolved by re-reading their cart.
func (r *cartRepository) FindOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	cart, err := r.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := &model.Cart{UserID: userID, Items: []model.CartItem{}}
	if err := r.db.WithContext(ctx).Create(fresh).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.FindByUserID(ctx, userID)
		}
		return nil, err
	}
	return fresh, nil
}

// Save persists the cart and replaces its lines wholesale, mirroring a
// single-document write. Runs in one transaction.
func (r *cartRepository) Save(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}
		for i := range cart.Items {
			cart.Items[i].ID = uuid.New()
			cart.Items[i].CartID = cart.ID
		}
		if len(cart.Items) > 0 {
			if err := tx.Create(&cart.Items).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.Cart{}).Where("id = ?", cart.ID).
			Update("total_price", cart.TotalPrice).Error
	})
}
