package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is the cart aggregate. A user's open cart is the order reachable
// through the user_orders join; there is no status flag. The scalar Quantity
// column is a legacy artifact kept for schema compatibility; the OrderItem
// ledger is authoritative.
type Order struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Quantity  int       `gorm:"not null;default:0"`
	Users     []User    `gorm:"many2many:user_orders;"`
	Products  []Product `gorm:"many2many:prod_orders;"`
	Items     []OrderItem
	CreatedAt time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

type OrderPayload struct {
	ID        string             `json:"id"`
	Quantity  int                `json:"quantity"`
	Items     []OrderItemPayload `json:"items,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

func (o *Order) Serialize() OrderPayload {
	payload := OrderPayload{
		ID:        o.ID,
		Quantity:  o.Quantity,
		CreatedAt: o.CreatedAt,
	}
	for i := range o.Items {
		payload.Items = append(payload.Items, o.Items[i].Serialize())
	}
	return payload
}
