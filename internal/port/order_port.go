package port

import (
	"context"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/google/uuid"
)

type OrderRepository interface {
	// PlaceOrder runs the whole placement as one transaction: it re-reads
	// the cart and live stock, validates the requested items, snapshots
	// them into an immutable order, decrements stock and deletes the cart.
	// Any failure aborts with no observable mutation.
	PlaceOrder(ctx context.Context, userID uuid.UUID, address domain.ShippingAddress,
		paymentMethod string, requested []domain.RequestedItem, pricing domain.PricingPolicy) (domain.Order, error)

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)

	Get(ctx context.Context, id uuid.UUID) (domain.Order, error)

	// MarkPaid flips is_paid once and records the payment result. Ownership
	// is checked by the caller.
	MarkPaid(ctx context.Context, id uuid.UUID, result domain.PaymentResult) (domain.Order, error)
}
