package models

import (
	"time"

	"github.com/artesania/artesania-api/app/utils/format"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryHomeDecoration Category = "home_decoration"
	CategorySculptures     Category = "sculptures"
)

type Product struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ArtistID  string          `gorm:"size:36;not null;index"`
	Artist    User            `gorm:"foreignKey:ArtistID"`
	Name      string          `gorm:"size:120;not null"`
	Category  Category        `gorm:"size:30;not null"`
	Details   string          `gorm:"size:120;not null"`
	Amount    int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Discount  decimal.Decimal `gorm:"type:decimal(16,2);default:0.00"`
	Orders    []Order         `gorm:"many2many:prod_orders;"`
	Favorites []Favorite      `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

type ProductPayload struct {
	ID         string          `json:"id"`
	ArtistID   string          `json:"artist_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Details    string          `json:"details"`
	Amount     int             `json:"amount"`
	Price      decimal.Decimal `json:"price"`
	PriceLabel string          `json:"price_label"`
	Discount   decimal.Decimal `json:"discount"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (p *Product) Serialize() ProductPayload {
	return ProductPayload{
		ID:         p.ID,
		ArtistID:   p.ArtistID,
		Name:       p.Name,
		Category:   string(p.Category),
		Details:    p.Details,
		Amount:     p.Amount,
		Price:      p.Price,
		PriceLabel: format.PriceLabel(p.Price),
		Discount:   p.Discount,
		CreatedAt:  p.CreatedAt,
	}
}
