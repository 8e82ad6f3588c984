package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Favorite struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string  `gorm:"size:36;not null;index"`
	User      User    `gorm:"foreignKey:UserID"`
	ProductID string  `gorm:"size:36;not null;index"`
	Product   Product `gorm:"foreignKey:ProductID"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}

type FavoritePayload struct {
	ID        string `json:"id"`
	ProductID string `json:"prod_id"`
	UserID    string `json:"user_id"`
}

func (f *Favorite) Serialize() FavoritePayload {
	return FavoritePayload{
		ID:        f.ID,
		ProductID: f.ProductID,
		UserID:    f.UserID,
	}
}
