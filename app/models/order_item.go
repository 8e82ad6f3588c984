package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItem is the per-line quantity ledger. One row per (order, product);
// the composite unique index is what makes repeated adds idempotent at the
// storage level.
type OrderItem struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	OrderID   string  `gorm:"size:36;not null;uniqueIndex:idx_order_product"`
	Order     Order   `gorm:"foreignKey:OrderID"`
	ProductID string  `gorm:"size:36;not null;uniqueIndex:idx_order_product"`
	Product   Product `gorm:"foreignKey:ProductID"`
	Quantity  int     `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}

type OrderItemPayload struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (oi *OrderItem) Serialize() OrderItemPayload {
	return OrderItemPayload{
		ID:        oi.ID,
		OrderID:   oi.OrderID,
		ProductID: oi.ProductID,
		Quantity:  oi.Quantity,
	}
}
