package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is a denormalized snapshot of a product taken at add-time.
// Name, price, and image do not track later catalog changes.
type CartItem struct {
	ID        uuid.UUID       `json:"-" gorm:"type:char(36);primaryKey"`
	CartID    uuid.UUID       `json:"-" gorm:"type:char(36);not null;uniqueIndex:idx_cart_product"`
	ProductID uuid.UUID       `json:"productId" gorm:"type:char(36);not null;uniqueIndex:idx_cart_product"`
	Name      string          `json:"name" gorm:"size:100;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Quantity  int             `json:"quantity" gorm:"not null;default:1"`
	Image     string          `json:"image" gorm:"size:512;not null"`
}

// BeforeCreate sets UUID before creating the record.
func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Cart holds a user's pending purchases. The unique index on UserID is the
// sole guard against two carts being created for the same user.
type Cart struct {
	ID         uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID     uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;uniqueIndex"`
	Items      []CartItem      `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(20,2);not null;default:0"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ItemIndex returns the position of the line for productID, or -1.
func (c *Cart) ItemIndex(productID uuid.UUID) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// RecomputeTotal restores the cart invariant: the total is the sum of
// snapshot price times quantity over all lines. Every mutation recomputes
// before persisting.
func (c *Cart) RecomputeTotal() {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].Price.Mul(decimal.NewFromInt(int64(c.Items[i].Quantity))))
	}
	c.TotalPrice = total
}
