package service

import (
	"context"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/port"
	"github.com/google/uuid"
)

type CartService struct {
	carts    port.CartRepository
	products port.ProductRepository
}

func NewCart(carts port.CartRepository, products port.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error) {
	return s.carts.GetCart(ctx, userID)
}

// AddItem checks the product is purchasable before touching the cart. The
// check is advisory; the authoritative one happens at order placement.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error {
	if quantity <= 0 {
		return domain.Validationf("quantity must be a positive integer")
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return err
	}

	if product.Stock <= 0 || product.Stock < quantity {
		return domain.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Requested:   quantity,
			Available:   product.Stock,
		}
	}

	return s.carts.AddItem(ctx, userID, productID, quantity)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	return s.carts.RemoveItem(ctx, userID, productID)
}

func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.carts.Clear(ctx, userID)
}
