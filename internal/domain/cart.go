package domain

import (
	"github.com/google/uuid"
	"time"
)

type Cart struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Items   []CartItem
}

// CartItem is a live reference into the catalog: quantity plus product id.
// Product is populated on reads; it stays nil for bare references.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int32
	Product   *Product

	CreatedAt time.Time
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// FindItem returns the line item for productID, if present.
func (c Cart) FindItem(productID uuid.UUID) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}
