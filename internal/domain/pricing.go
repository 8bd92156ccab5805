package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// PricingPolicy computes order totals from snapshot line items. The rates
// mirror the storefront defaults: 10% tax, flat shipping fee waived above
// the free-shipping threshold.
type PricingPolicy struct {
	TaxRate          decimal.Decimal
	ShippingFee      decimal.Decimal
	FreeShippingOver decimal.Decimal
	Currency         currency.Unit
}

func DefaultPricingPolicy(unit currency.Unit) PricingPolicy {
	return PricingPolicy{
		TaxRate:          decimal.NewFromFloat(0.10),
		ShippingFee:      decimal.NewFromInt(50),
		FreeShippingOver: decimal.NewFromInt(1000),
		Currency:         unit,
	}
}

type Totals struct {
	ItemsPrice    Money
	TaxPrice      Money
	ShippingPrice Money
	TotalPrice    Money
}

// ComputeTotals derives the full price breakdown from the given snapshot
// items. Amounts are rounded to two decimal places.
func (p PricingPolicy) ComputeTotals(items []OrderItem) Totals {
	itemsPrice := decimal.Zero
	for _, item := range items {
		itemsPrice = itemsPrice.Add(item.LineTotal().Amount)
	}

	taxPrice := itemsPrice.Mul(p.TaxRate).Round(2)

	shippingPrice := p.ShippingFee
	if itemsPrice.GreaterThan(p.FreeShippingOver) {
		shippingPrice = decimal.Zero
	}

	return Totals{
		ItemsPrice:    NewMoney(itemsPrice, p.Currency),
		TaxPrice:      NewMoney(taxPrice, p.Currency),
		ShippingPrice: NewMoney(shippingPrice, p.Currency),
		TotalPrice:    NewMoney(itemsPrice.Add(taxPrice).Add(shippingPrice), p.Currency),
	}
}
