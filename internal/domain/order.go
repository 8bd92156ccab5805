package domain

import (
	"time"

	"github.com/google/uuid"
)

type ShippingAddress struct {
	Address    string
	City       string
	PostalCode string
	Country    string
}

// PaymentResult records the outcome reported by an external payment provider.
type PaymentResult struct {
	ID         string
	Status     string
	UpdateTime time.Time
	PayerEmail string
}

// OrderItem is a snapshot of the product at purchase time. Later catalog
// changes (price, name, deletion) never affect it.
type OrderItem struct {
	ProductID uuid.UUID
	Name      string
	Image     string
	Quantity  int32
	UnitPrice Money
}

func (i OrderItem) LineTotal() Money {
	return i.UnitPrice.MulInt(int64(i.Quantity))
}

type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Items           []OrderItem
	ShippingAddress ShippingAddress
	PaymentMethod   string

	ItemsPrice    Money
	TaxPrice      Money
	ShippingPrice Money
	TotalPrice    Money

	IsPaid        bool
	PaidAt        *time.Time
	PaymentResult *PaymentResult
	IsDelivered   bool
	DeliveredAt   *time.Time

	CreatedAt time.Time
}

// RequestedItem is one line of a place-order request. Client-supplied prices
// are not part of it: totals are recomputed from the live catalog.
type RequestedItem struct {
	ProductID uuid.UUID
	Quantity  int32
}
