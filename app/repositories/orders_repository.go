package repositories

import (
	"context"

	"github.com/artesania/artesania-api/app/models"
	"gorm.io/gorm"
)

type OrderRepositoryImpl interface {
	WithTx(tx *gorm.DB) OrderRepositoryImpl
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	// FindOpenByUserID resolves the user's cart through the user_orders
	// join. apperrors.ErrNotFound means the user has no open order.
	FindOpenByUserID(ctx context.Context, userID string) (*models.Order, error)
	FindByUserIDWithDetails(ctx context.Context, userID string) ([]models.Order, error)
	AppendUser(ctx context.Context, order *models.Order, user *models.User) error
	AppendProduct(ctx context.Context, order *models.Order, product *models.Product) error
	RemoveUser(ctx context.Context, order *models.Order, user *models.User) error
	RemoveProduct(ctx context.Context, order *models.Order, product *models.Product) error
	HasProduct(ctx context.Context, orderID, productID string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &orderRepository{db}
}

func (r *orderRepository) WithTx(tx *gorm.DB) OrderRepositoryImpl {
	return &orderRepository{tx}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	return translate(r.db.WithContext(ctx).Create(order).Error)
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *orderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Users").
		Preload("Products").
		Preload("Items").
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, translate(err)
	}
	return orders, nil
}

func (r *orderRepository) FindOpenByUserID(ctx context.Context, userID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Joins("JOIN user_orders uo ON uo.order_id = orders.id").
		Where("uo.user_id = ?", userID).
		Order("orders.created_at ASC").
		First(&order).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *orderRepository) FindByUserIDWithDetails(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Joins("JOIN user_orders uo ON uo.order_id = orders.id").
		Where("uo.user_id = ?", userID).
		Preload("Products").
		Preload("Items").
		Preload("Items.Product").
		Order("orders.created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, translate(err)
	}
	return orders, nil
}

func (r *orderRepository) AppendUser(ctx context.Context, order *models.Order, user *models.User) error {
	return translate(r.db.WithContext(ctx).Model(order).Association("Users").Append(user))
}

func (r *orderRepository) AppendProduct(ctx context.Context, order *models.Order, product *models.Product) error {
	return translate(r.db.WithContext(ctx).Model(order).Association("Products").Append(product))
}

func (r *orderRepository) RemoveUser(ctx context.Context, order *models.Order, user *models.User) error {
	return translate(r.db.WithContext(ctx).Model(order).Association("Users").Delete(user))
}

func (r *orderRepository) RemoveProduct(ctx context.Context, order *models.Order, product *models.Product) error {
	return translate(r.db.WithContext(ctx).Model(order).Association("Products").Delete(product))
}

func (r *orderRepository) HasProduct(ctx context.Context, orderID, productID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("prod_orders").
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	return translate(r.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id).Error)
}
