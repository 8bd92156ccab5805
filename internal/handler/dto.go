package handler

import (
	"time"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type productJSON struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Stock       int32           `json:"stock"`
}

func toProductJSON(p domain.Product) productJSON {
	return productJSON{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		Category:    p.Category,
		Image:       p.Image,
		Price:       p.Price.Amount,
		Currency:    p.Price.Currency.String(),
		Stock:       p.Stock,
	}
}

func toProductsJSON(products []domain.Product) []productJSON {
	out := make([]productJSON, 0, len(products))
	for _, p := range products {
		out = append(out, toProductJSON(p))
	}
	return out
}

type cartItemJSON struct {
	ProductID uuid.UUID    `json:"product_id"`
	Quantity  int32        `json:"quantity"`
	Product   *productJSON `json:"product,omitempty"`
}

func toCartJSON(cart domain.Cart) []cartItemJSON {
	items := make([]cartItemJSON, 0, len(cart.Items))
	for _, item := range cart.Items {
		out := cartItemJSON{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if item.Product != nil {
			p := toProductJSON(*item.Product)
			out.Product = &p
		}
		items = append(items, out)
	}
	return items
}

type orderItemJSON struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
}

type paymentResultJSON struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	UpdateTime time.Time `json:"update_time"`
	PayerEmail string    `json:"payer_email"`
}

type shippingAddressJSON struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type orderJSON struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"user_id"`
	Items           []orderItemJSON     `json:"items"`
	ShippingAddress shippingAddressJSON `json:"shipping_address"`
	PaymentMethod   string              `json:"payment_method"`
	ItemsPrice      decimal.Decimal     `json:"items_price"`
	TaxPrice        decimal.Decimal     `json:"tax_price"`
	ShippingPrice   decimal.Decimal     `json:"shipping_price"`
	TotalPrice      decimal.Decimal     `json:"total_price"`
	Currency        string              `json:"currency"`
	IsPaid          bool                `json:"is_paid"`
	PaidAt          *time.Time          `json:"paid_at,omitempty"`
	PaymentResult   *paymentResultJSON  `json:"payment_result,omitempty"`
	IsDelivered     bool                `json:"is_delivered"`
	DeliveredAt     *time.Time          `json:"delivered_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

func toOrderJSON(o domain.Order) orderJSON {
	items := make([]orderItemJSON, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemJSON{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.Amount,
		})
	}

	out := orderJSON{
		ID:     o.ID,
		UserID: o.UserID,
		Items:  items,
		ShippingAddress: shippingAddressJSON{
			Address:    o.ShippingAddress.Address,
			City:       o.ShippingAddress.City,
			PostalCode: o.ShippingAddress.PostalCode,
			Country:    o.ShippingAddress.Country,
		},
		PaymentMethod: o.PaymentMethod,
		ItemsPrice:    o.ItemsPrice.Amount,
		TaxPrice:      o.TaxPrice.Amount,
		ShippingPrice: o.ShippingPrice.Amount,
		TotalPrice:    o.TotalPrice.Amount,
		Currency:      o.TotalPrice.Currency.String(),
		IsPaid:        o.IsPaid,
		PaidAt:        o.PaidAt,
		IsDelivered:   o.IsDelivered,
		DeliveredAt:   o.DeliveredAt,
		CreatedAt:     o.CreatedAt,
	}

	if o.PaymentResult != nil {
		out.PaymentResult = &paymentResultJSON{
			ID:         o.PaymentResult.ID,
			Status:     o.PaymentResult.Status,
			UpdateTime: o.PaymentResult.UpdateTime,
			PayerEmail: o.PaymentResult.PayerEmail,
		}
	}

	return out
}

func toOrdersJSON(orders []domain.Order) []orderJSON {
	out := make([]orderJSON, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderJSON(o))
	}
	return out
}

type userJSON struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserJSON(u domain.User) userJSON {
	return userJSON{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
