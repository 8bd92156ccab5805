package port

import (
	"context"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/google/uuid"
)

type CartRepository interface {
	// GetCart returns the owner's cart with live product data joined in.
	// Items whose product no longer exists are dropped and the removal is
	// persisted. A user without a cart gets an empty cart, not an error.
	GetCart(ctx context.Context, ownerID uuid.UUID) (domain.Cart, error)

	// AddItem appends a line item, creating the cart lazily. An existing
	// line for the same product has its quantity incremented.
	AddItem(ctx context.Context, ownerID, productID uuid.UUID, quantity int32) error

	// RemoveItem drops the line item for productID. domain.ErrNotFound is
	// returned when the owner has no cart at all.
	RemoveItem(ctx context.Context, ownerID, productID uuid.UUID) error

	// Clear deletes the cart entirely, or domain.ErrNotFound if none exists.
	Clear(ctx context.Context, ownerID uuid.UUID) error
}
