package repositories

import (
	"context"

	"github.com/artesania/artesania-api/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	WithTx(tx *gorm.DB) ProductRepositoryImpl
	Create(ctx context.Context, product *models.Product) error
	CreateBatch(ctx context.Context, products []*models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	// FindByIDForUpdate locks the product row for the rest of the
	// transaction, so the stock check in the cart engine cannot race a
	// concurrent add.
	FindByIDForUpdate(ctx context.Context, id string) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (r *productRepository) WithTx(tx *gorm.DB) ProductRepositoryImpl {
	return &productRepository{tx}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return translate(r.db.WithContext(ctx).Create(product).Error)
}

func (r *productRepository) CreateBatch(ctx context.Context, products []*models.Product) error {
	return translate(r.db.WithContext(ctx).Create(products).Error)
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *productRepository) FindByIDForUpdate(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := forUpdate(r.db.WithContext(ctx)).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}
