package services

import (
	"context"
	"fmt"

	"github.com/artesania/artesania-api/app/apperrors"
	"github.com/artesania/artesania-api/app/models"
	"github.com/artesania/artesania-api/app/repositories"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// UserInput is one element of a bulk user create.
type UserInput struct {
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"rol" validate:"required,oneof=admin customer artist"`
	IsActive  bool   `json:"is_active"`
}

// ProductInput is one element of a bulk product create.
type ProductInput struct {
	ArtistID string          `json:"artist_id" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category" validate:"required,oneof=home_decoration sculptures"`
	Details  string          `json:"details" validate:"required"`
	Amount   int             `json:"amount" validate:"gte=0"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Discount decimal.Decimal `json:"discount"`
}

type OrderItemInput struct {
	OrderID   string `json:"order_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type FavoriteInput struct {
	UserID    string `json:"user_id" validate:"required"`
	ProductID string `json:"prod_id" validate:"required"`
}

// CatalogService covers the non-cart CRUD: users, products, favorites and
// the raw order/order-item listings. No multi-entity coordination lives
// here.
type CatalogService struct {
	userRepo      repositories.UserRepositoryImpl
	productRepo   repositories.ProductRepositoryImpl
	orderRepo     repositories.OrderRepositoryImpl
	orderItemRepo repositories.OrderItemRepositoryImpl
	favoriteRepo  repositories.FavoriteRepositoryImpl
}

func NewCatalogService(userRepo repositories.UserRepositoryImpl, productRepo repositories.ProductRepositoryImpl, orderRepo repositories.OrderRepositoryImpl, orderItemRepo repositories.OrderItemRepositoryImpl, favoriteRepo repositories.FavoriteRepositoryImpl) *CatalogService {
	return &CatalogService{
		userRepo:      userRepo,
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		favoriteRepo:  favoriteRepo,
	}
}

func (s *CatalogService) CreateUsers(ctx context.Context, inputs []UserInput) ([]models.UserPayload, error) {
	users := make([]*models.User, 0, len(inputs))
	for _, input := range inputs {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		users = append(users, &models.User{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			Password:  string(hashed),
			Role:      models.Role(input.Role),
			IsActive:  input.IsActive,
		})
	}

	if err := s.userRepo.CreateBatch(ctx, users); err != nil {
		return nil, fmt.Errorf("create users: %w", err)
	}

	payloads := make([]models.UserPayload, 0, len(users))
	for _, user := range users {
		payloads = append(payloads, user.Serialize())
	}
	return payloads, nil
}

func (s *CatalogService) ListUsers(ctx context.Context) ([]models.UserPayload, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	payloads := make([]models.UserPayload, 0, len(users))
	for i := range users {
		payloads = append(payloads, users[i].Serialize())
	}
	return payloads, nil
}

func (s *CatalogService) CreateProducts(ctx context.Context, inputs []ProductInput) ([]models.ProductPayload, error) {
	products := make([]*models.Product, 0, len(inputs))
	for _, input := range inputs {
		if _, err := s.userRepo.FindByID(ctx, input.ArtistID); err != nil {
			return nil, fmt.Errorf("resolve artist %s: %w", input.ArtistID, err)
		}
		products = append(products, &models.Product{
			ArtistID: input.ArtistID,
			Name:     input.Name,
			Category: models.Category(input.Category),
			Details:  input.Details,
			Amount:   input.Amount,
			Price:    input.Price,
			Discount: input.Discount,
		})
	}

	if err := s.productRepo.CreateBatch(ctx, products); err != nil {
		return nil, fmt.Errorf("create products: %w", err)
	}

	payloads := make([]models.ProductPayload, 0, len(products))
	for _, product := range products {
		payloads = append(payloads, product.Serialize())
	}
	return payloads, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.ProductPayload, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	payloads := make([]models.ProductPayload, 0, len(products))
	for i := range products {
		payloads = append(payloads, products[i].Serialize())
	}
	return payloads, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.ProductPayload, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	payload := product.Serialize()
	return &payload, nil
}

func (s *CatalogService) CreateOrder(ctx context.Context, quantity int) (*models.OrderPayload, error) {
	order := &models.Order{Quantity: quantity}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	payload := order.Serialize()
	return &payload, nil
}

func (s *CatalogService) ListOrders(ctx context.Context) ([]models.OrderPayload, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	payloads := make([]models.OrderPayload, 0, len(orders))
	for i := range orders {
		payloads = append(payloads, orders[i].Serialize())
	}
	return payloads, nil
}

func (s *CatalogService) CreateOrderItem(ctx context.Context, input OrderItemInput) (*models.OrderItemPayload, error) {
	if input.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", apperrors.ErrInvalidInput)
	}
	if _, err := s.orderRepo.FindByID(ctx, input.OrderID); err != nil {
		return nil, fmt.Errorf("resolve order %s: %w", input.OrderID, err)
	}
	if _, err := s.productRepo.FindByID(ctx, input.ProductID); err != nil {
		return nil, fmt.Errorf("resolve product %s: %w", input.ProductID, err)
	}

	item := &models.OrderItem{OrderID: input.OrderID, ProductID: input.ProductID, Quantity: input.Quantity}
	if err := s.orderItemRepo.Add(ctx, item); err != nil {
		return nil, fmt.Errorf("create order item: %w", err)
	}
	payload := item.Serialize()
	return &payload, nil
}

func (s *CatalogService) ListOrderItems(ctx context.Context) ([]models.OrderItemPayload, error) {
	items, err := s.orderItemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	payloads := make([]models.OrderItemPayload, 0, len(items))
	for i := range items {
		payloads = append(payloads, items[i].Serialize())
	}
	return payloads, nil
}

func (s *CatalogService) CreateFavorite(ctx context.Context, input FavoriteInput) (*models.FavoritePayload, error) {
	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("resolve user %s: %w", input.UserID, err)
	}
	if _, err := s.productRepo.FindByID(ctx, input.ProductID); err != nil {
		return nil, fmt.Errorf("resolve product %s: %w", input.ProductID, err)
	}

	favorite := &models.Favorite{UserID: input.UserID, ProductID: input.ProductID}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	payload := favorite.Serialize()
	return &payload, nil
}

func (s *CatalogService) ListFavorites(ctx context.Context, userID string) ([]models.FavoritePayload, error) {
	var (
		favorites []models.Favorite
		err       error
	)
	if userID == "" {
		favorites, err = s.favoriteRepo.FindAll(ctx)
	} else {
		favorites, err = s.favoriteRepo.FindByUserID(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	payloads := make([]models.FavoritePayload, 0, len(favorites))
	for i := range favorites {
		payloads = append(payloads, favorites[i].Serialize())
	}
	return payloads, nil
}
