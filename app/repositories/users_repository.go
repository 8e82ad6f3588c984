package repositories

import (
	"context"

	"github.com/artesania/artesania-api/app/models"
	"gorm.io/gorm"
)

type UserRepositoryImpl interface {
	WithTx(tx *gorm.DB) UserRepositoryImpl
	Create(ctx context.Context, user *models.User) error
	CreateBatch(ctx context.Context, users []*models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepositoryImpl {
	return &userRepository{db}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepositoryImpl {
	return &userRepository{tx}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) CreateBatch(ctx context.Context, users []*models.User) error {
	return translate(r.db.WithContext(ctx).Create(users).Error)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}
