package repositories

import (
	"context"

	"github.com/artesania/artesania-api/app/models"
	"gorm.io/gorm"
)

type OrderItemRepositoryImpl interface {
	WithTx(tx *gorm.DB) OrderItemRepositoryImpl
	Add(ctx context.Context, item *models.OrderItem) error
	Update(ctx context.Context, item *models.OrderItem) error
	Delete(ctx context.Context, orderID, productID string) error
	FindByOrderAndProduct(ctx context.Context, orderID, productID string) (*models.OrderItem, error)
	CountByOrder(ctx context.Context, orderID string) (int64, error)
	FindAll(ctx context.Context) ([]models.OrderItem, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepositoryImpl {
	return &orderItemRepository{db}
}

func (r *orderItemRepository) WithTx(tx *gorm.DB) OrderItemRepositoryImpl {
	return &orderItemRepository{tx}
}

func (r *orderItemRepository) Add(ctx context.Context, item *models.OrderItem) error {
	return translate(r.db.WithContext(ctx).Create(item).Error)
}

func (r *orderItemRepository) Update(ctx context.Context, item *models.OrderItem) error {
	return translate(r.db.WithContext(ctx).Save(item).Error)
}

func (r *orderItemRepository) Delete(ctx context.Context, orderID, productID string) error {
	return translate(r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Delete(&models.OrderItem{}).Error)
}

func (r *orderItemRepository) FindByOrderAndProduct(ctx context.Context, orderID, productID string) (*models.OrderItem, error) {
	var item models.OrderItem
	err := forUpdate(r.db.WithContext(ctx)).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		First(&item).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *orderItemRepository) CountByOrder(ctx context.Context, orderID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	if err != nil {
		return 0, translate(err)
	}
	return count, nil
}

func (r *orderItemRepository) FindAll(ctx context.Context) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}
