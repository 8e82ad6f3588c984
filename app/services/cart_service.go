package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/artesania/artesania-api/app/apperrors"
	"github.com/artesania/artesania-api/app/models"
	"github.com/artesania/artesania-api/app/repositories"
	"gorm.io/gorm"
)

// Association kinds accepted by BulkAssociate.
const (
	AssociationProductOrder = "prod_order"
	AssociationUserOrder    = "user_order"
)

// CartMutation reports the outcome of a successful add.
type CartMutation struct {
	OrderID   string
	ProductID string
	Quantity  int
	Stock     int
}

// CartLine is one ledger line of a listed cart.
type CartLine struct {
	ItemID          string                `json:"item_id"`
	QuantityOrdered int                   `json:"quantity_ordered"`
	Product         models.ProductPayload `json:"product"`
}

// CartOrder groups the lines of a single order.
type CartOrder struct {
	OrderID string     `json:"order_id"`
	Items   []CartLine `json:"items"`
}

// AssociationPair is one (order, other-entity) pair for BulkAssociate.
type AssociationPair struct {
	OrderID string `json:"order_id" validate:"required"`
	OtherID string `json:"other_id" validate:"required"`
}

// CartService owns the Order aggregate: the user_orders and prod_orders join
// rows and the OrderItem quantity ledger. Every operation runs inside one
// gorm transaction; repositories are rebound onto it with WithTx so no write
// escapes the unit of work.
type CartService struct {
	db            *gorm.DB
	userRepo      repositories.UserRepositoryImpl
	productRepo   repositories.ProductRepositoryImpl
	orderRepo     repositories.OrderRepositoryImpl
	orderItemRepo repositories.OrderItemRepositoryImpl
}

func NewCartService(db *gorm.DB, userRepo repositories.UserRepositoryImpl, productRepo repositories.ProductRepositoryImpl, orderRepo repositories.OrderRepositoryImpl, orderItemRepo repositories.OrderItemRepositoryImpl) *CartService {
	return &CartService{
		db:            db,
		userRepo:      userRepo,
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

// AddItemToCart adds one unit of the product to the user's open order,
// creating the order and both join rows lazily on first insertion. The stock
// check happens against the locked product row before anything is persisted,
// so an over-limit add rolls back without leaving partial state.
func (s *CartService) AddItemToCart(ctx context.Context, userID, productID string) (*CartMutation, error) {
	var result CartMutation

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.userRepo.WithTx(tx)
		products := s.productRepo.WithTx(tx)
		orders := s.orderRepo.WithTx(tx)
		items := s.orderItemRepo.WithTx(tx)

		user, err := users.FindByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("resolve user %s: %w", userID, err)
		}

		product, err := products.FindByIDForUpdate(ctx, productID)
		if err != nil {
			return fmt.Errorf("resolve product %s: %w", productID, err)
		}

		order, err := orders.FindOpenByUserID(ctx, userID)
		if errors.Is(err, apperrors.ErrNotFound) {
			order = &models.Order{}
			if err := orders.Create(ctx, order); err != nil {
				return fmt.Errorf("create order: %w", err)
			}
			if err := orders.AppendUser(ctx, order, user); err != nil {
				return fmt.Errorf("associate user to order: %w", err)
			}
			if err := orders.AppendProduct(ctx, order, product); err != nil {
				return fmt.Errorf("associate product to order: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("locate open order: %w", err)
		}

		newQuantity := 1
		existing, err := items.FindByOrderAndProduct(ctx, order.ID, productID)
		switch {
		case err == nil:
			newQuantity = existing.Quantity + 1
		case errors.Is(err, apperrors.ErrNotFound):
			existing = nil
		default:
			return fmt.Errorf("look up order item: %w", err)
		}

		if newQuantity > product.Amount {
			return apperrors.ErrStockExceeded
		}

		if existing == nil {
			linked, err := orders.HasProduct(ctx, order.ID, productID)
			if err != nil {
				return fmt.Errorf("check product association: %w", err)
			}
			if !linked {
				if err := orders.AppendProduct(ctx, order, product); err != nil {
					return fmt.Errorf("associate product to order: %w", err)
				}
			}
			item := &models.OrderItem{OrderID: order.ID, ProductID: productID, Quantity: newQuantity}
			if err := items.Add(ctx, item); err != nil {
				return fmt.Errorf("add order item: %w", err)
			}
		} else {
			existing.Quantity = newQuantity
			if err := items.Update(ctx, existing); err != nil {
				return fmt.Errorf("update order item: %w", err)
			}
		}

		result = CartMutation{
			OrderID:   order.ID,
			ProductID: productID,
			Quantity:  newQuantity,
			Stock:     product.Amount - newQuantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RemoveItemFromCart deletes the (order, product) ledger line. Removing the
// last line also tears down both join rows and the order itself; an order
// with zero items never persists.
func (s *CartService) RemoveItemFromCart(ctx context.Context, userID, productID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.userRepo.WithTx(tx)
		products := s.productRepo.WithTx(tx)
		orders := s.orderRepo.WithTx(tx)
		items := s.orderItemRepo.WithTx(tx)

		user, err := users.FindByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("resolve user %s: %w", userID, err)
		}

		product, err := products.FindByID(ctx, productID)
		if err != nil {
			return fmt.Errorf("resolve product %s: %w", productID, err)
		}

		order, err := orders.FindOpenByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("locate open order: %w", err)
		}

		if _, err := items.FindByOrderAndProduct(ctx, order.ID, productID); err != nil {
			return fmt.Errorf("look up order item: %w", err)
		}

		count, err := items.CountByOrder(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("count order items: %w", err)
		}

		if err := items.Delete(ctx, order.ID, productID); err != nil {
			return fmt.Errorf("delete order item: %w", err)
		}
		if err := orders.RemoveProduct(ctx, order, product); err != nil {
			return fmt.Errorf("remove product association: %w", err)
		}

		if count == 1 {
			if err := orders.RemoveUser(ctx, order, user); err != nil {
				return fmt.Errorf("remove user association: %w", err)
			}
			if err := orders.Delete(ctx, order.ID); err != nil {
				return fmt.Errorf("delete empty order: %w", err)
			}
		}
		return nil
	})
}

// ListCart returns the user's orders with their ledger lines. Products are
// deduplicated per order; an empty slice means no open order, which is not
// an error.
func (s *CartService) ListCart(ctx context.Context, userID string) ([]CartOrder, error) {
	var result []CartOrder

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.userRepo.WithTx(tx)
		orders := s.orderRepo.WithTx(tx)

		if _, err := users.FindByID(ctx, userID); err != nil {
			return fmt.Errorf("resolve user %s: %w", userID, err)
		}

		found, err := orders.FindByUserIDWithDetails(ctx, userID)
		if err != nil {
			return fmt.Errorf("load orders: %w", err)
		}

		result = make([]CartOrder, 0, len(found))
		for i := range found {
			order := &found[i]
			sort.SliceStable(order.Items, func(a, b int) bool {
				return order.Items[a].CreatedAt.Before(order.Items[b].CreatedAt)
			})

			cartOrder := CartOrder{OrderID: order.ID, Items: make([]CartLine, 0, len(order.Items))}
			seen := make(map[string]bool, len(order.Items))
			for j := range order.Items {
				item := &order.Items[j]
				if seen[item.ProductID] {
					continue
				}
				seen[item.ProductID] = true
				cartOrder.Items = append(cartOrder.Items, CartLine{
					ItemID:          item.ID,
					QuantityOrdered: item.Quantity,
					Product:         item.Product.Serialize(),
				})
			}
			result = append(result, cartOrder)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// BulkAssociate appends explicit join rows for prod_order or user_order
// maintenance. The whole batch aborts on the first pair whose entities do
// not both resolve.
func (s *CartService) BulkAssociate(ctx context.Context, kind string, pairs []AssociationPair) error {
	if kind != AssociationProductOrder && kind != AssociationUserOrder {
		return fmt.Errorf("%w: unknown association kind %q", apperrors.ErrInvalidInput, kind)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.userRepo.WithTx(tx)
		products := s.productRepo.WithTx(tx)
		orders := s.orderRepo.WithTx(tx)

		for _, pair := range pairs {
			order, err := orders.FindByID(ctx, pair.OrderID)
			if err != nil {
				return fmt.Errorf("resolve order %s: %w", pair.OrderID, err)
			}

			switch kind {
			case AssociationProductOrder:
				product, err := products.FindByID(ctx, pair.OtherID)
				if err != nil {
					return fmt.Errorf("resolve product %s: %w", pair.OtherID, err)
				}
				if err := orders.AppendProduct(ctx, order, product); err != nil {
					return fmt.Errorf("associate product %s to order %s: %w", pair.OtherID, pair.OrderID, err)
				}
			case AssociationUserOrder:
				user, err := users.FindByID(ctx, pair.OtherID)
				if err != nil {
					return fmt.Errorf("resolve user %s: %w", pair.OtherID, err)
				}
				if err := orders.AppendUser(ctx, order, user); err != nil {
					return fmt.Errorf("associate user %s to order %s: %w", pair.OtherID, pair.OrderID, err)
				}
			}
		}
		return nil
	})
}
