package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleArtist   Role = "artist"
)

type User struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	FirstName string    `gorm:"size:120;not null"`
	LastName  string    `gorm:"size:120;not null"`
	Email     string    `gorm:"size:120;not null;uniqueIndex"`
	Password  string    `gorm:"size:255;not null"`
	Role      Role      `gorm:"size:20;not null;default:'customer'"`
	IsActive  bool      `gorm:"not null;default:true"`
	Products  []Product `gorm:"foreignKey:ArtistID"`
	Orders    []Order   `gorm:"many2many:user_orders;"`
	Favorites []Favorite
	CreatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

// UserPayload is the public representation; the password hash never leaves
// the server.
type UserPayload struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Email     string    `json:"email"`
	Role      string    `json:"rol"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Serialize() UserPayload {
	return UserPayload{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
