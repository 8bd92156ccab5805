package service

import (
	"context"
	"strings"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/port"
	"github.com/google/uuid"
)

// OrderService fronts the order placement transactor. Request-shape
// validation happens here; stock validation happens inside the repository
// transaction, against live rows.
type OrderService struct {
	orders  port.OrderRepository
	pricing domain.PricingPolicy
}

func NewOrder(orders port.OrderRepository, pricing domain.PricingPolicy) *OrderService {
	return &OrderService{orders: orders, pricing: pricing}
}

type PlaceOrderInput struct {
	ShippingAddress domain.ShippingAddress
	PaymentMethod   string
	Items           []domain.RequestedItem
}

func (s *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, in PlaceOrderInput) (domain.Order, error) {
	if err := validatePlaceOrder(in); err != nil {
		return domain.Order{}, err
	}

	return s.orders.PlaceOrder(ctx, userID, in.ShippingAddress, in.PaymentMethod, in.Items, s.pricing)
}

func validatePlaceOrder(in PlaceOrderInput) error {
	addr := in.ShippingAddress
	if strings.TrimSpace(addr.Address) == "" ||
		strings.TrimSpace(addr.City) == "" ||
		strings.TrimSpace(addr.PostalCode) == "" ||
		strings.TrimSpace(addr.Country) == "" ||
		strings.TrimSpace(in.PaymentMethod) == "" ||
		len(in.Items) == 0 {
		return domain.Validationf("missing required order fields")
	}

	seen := make(map[uuid.UUID]struct{}, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == uuid.Nil {
			return domain.Validationf("missing required order fields")
		}
		if item.Quantity <= 0 {
			return domain.Validationf("quantity must be positive for product %s", item.ProductID)
		}
		if _, dup := seen[item.ProductID]; dup {
			return domain.Validationf("duplicate product %s in order", item.ProductID)
		}
		seen[item.ProductID] = struct{}{}
	}

	return nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// GetOrder enforces ownership: callers never see another user's order.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (domain.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if order.UserID != userID {
		return domain.Order{}, domain.ErrNotOwner
	}

	return order, nil
}

func (s *OrderService) MarkPaid(ctx context.Context, userID, orderID uuid.UUID, result domain.PaymentResult) (domain.Order, error) {
	if strings.TrimSpace(result.ID) == "" {
		return domain.Order{}, domain.Validationf("missing payment result id")
	}

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if order.UserID != userID {
		return domain.Order{}, domain.ErrNotOwner
	}

	return s.orders.MarkPaid(ctx, orderID, result)
}
