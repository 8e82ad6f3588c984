package repositories

import (
	"context"

	"github.com/artesania/artesania-api/app/models"
	"gorm.io/gorm"
)

type FavoriteRepositoryImpl interface {
	WithTx(tx *gorm.DB) FavoriteRepositoryImpl
	Create(ctx context.Context, favorite *models.Favorite) error
	FindByUserID(ctx context.Context, userID string) ([]models.Favorite, error)
	FindAll(ctx context.Context) ([]models.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepositoryImpl {
	return &favoriteRepository{db}
}

func (r *favoriteRepository) WithTx(tx *gorm.DB) FavoriteRepositoryImpl {
	return &favoriteRepository{tx}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	return translate(r.db.WithContext(ctx).Create(favorite).Error)
}

func (r *favoriteRepository) FindByUserID(ctx context.Context, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		return nil, translate(err)
	}
	return favorites, nil
}

func (r *favoriteRepository) FindAll(ctx context.Context) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.WithContext(ctx).Find(&favorites).Error; err != nil {
		return nil, translate(err)
	}
	return favorites, nil
}
