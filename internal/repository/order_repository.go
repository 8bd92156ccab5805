package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/port"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const orderColumns = `id, user_id, shipping_address, shipping_city, shipping_postal, shipping_country,
	payment_method, items_price, tax_price, shipping_price, total_price, currency,
	is_paid, paid_at, payment_id, payment_status, payment_update_time, payer_email,
	is_delivered, delivered_at, created_at`

type orderRepository struct {
	db   querier
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{db: pool, pool: pool}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{db: tx, pool: nil} // use provided transaction instead
}

// PlaceOrder holds one transaction across the whole mutation sequence.
// Stock is re-read under row locks inside the transaction, so two
// placements racing for the last unit cannot both succeed.
func (r *orderRepository) PlaceOrder(ctx context.Context, userID uuid.UUID, address domain.ShippingAddress,
	paymentMethod string, requested []domain.RequestedItem, pricing domain.PricingPolicy) (domain.Order, error) {

	if userID == uuid.Nil {
		return domain.Order{}, fmt.Errorf("userID is empty")
	}

	return withTx(ctx, r.pool, r.db, func(q querier) (domain.Order, error) {
		cartID, cartItems, err := lockCart(ctx, q, userID)
		if err != nil {
			return domain.Order{}, err
		}
		if len(cartItems) == 0 {
			return domain.Order{}, domain.Validationf("no items in cart")
		}

		products, err := lockProducts(ctx, q, requested)
		if err != nil {
			return domain.Order{}, err
		}

		// Validate every requested line against the cart and live stock
		// before touching anything.
		snapshot := make([]domain.OrderItem, 0, len(requested))
		for _, req := range requested {
			if _, inCart := cartItems[req.ProductID]; !inCart {
				return domain.Order{}, domain.Validationf("product %s not in cart", req.ProductID)
			}

			p, ok := products[req.ProductID]
			if !ok {
				return domain.Order{}, domain.Validationf("product %s is no longer available", req.ProductID)
			}
			if p.Stock < req.Quantity {
				return domain.Order{}, domain.InsufficientStockError{
					ProductID:   p.ID,
					ProductName: p.Name,
					Requested:   req.Quantity,
					Available:   p.Stock,
				}
			}

			snapshot = append(snapshot, domain.OrderItem{
				ProductID: p.ID,
				Name:      p.Name,
				Image:     p.Image,
				Quantity:  req.Quantity,
				UnitPrice: p.Price,
			})
		}

		totals := pricing.ComputeTotals(snapshot)

		order := domain.Order{
			UserID:          userID,
			Items:           snapshot,
			ShippingAddress: address,
			PaymentMethod:   paymentMethod,
			ItemsPrice:      totals.ItemsPrice,
			TaxPrice:        totals.TaxPrice,
			ShippingPrice:   totals.ShippingPrice,
			TotalPrice:      totals.TotalPrice,
		}

		err = q.QueryRow(ctx, `
			INSERT INTO orders (user_id, shipping_address, shipping_city, shipping_postal, shipping_country,
				payment_method, items_price, tax_price, shipping_price, total_price, currency)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at`,
			userID, address.Address, address.City, address.PostalCode, address.Country,
			paymentMethod, totals.ItemsPrice.Amount, totals.TaxPrice.Amount,
			totals.ShippingPrice.Amount, totals.TotalPrice.Amount,
			pricing.Currency.String()).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return domain.Order{}, fmt.Errorf("insert order: %w", err)
		}

		// Item snapshots and stock decrements go out as one batch.
		batch := &pgx.Batch{}
		for _, item := range snapshot {
			batch.Queue(`
				INSERT INTO order_items (order_id, product_id, name, image, quantity, unit_price)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				order.ID, item.ProductID, item.Name, item.Image, item.Quantity, item.UnitPrice.Amount)
			batch.Queue(`
				UPDATE products SET stock = stock - $2, updated_at = now() WHERE id = $1`,
				item.ProductID, item.Quantity)
		}
		br := q.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return domain.Order{}, fmt.Errorf("batch write: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return domain.Order{}, fmt.Errorf("br.Close: %w", err)
		}

		if _, err := q.Exec(ctx, `DELETE FROM carts WHERE id = $1`, cartID); err != nil {
			return domain.Order{}, fmt.Errorf("delete cart: %w", err)
		}

		return order, nil
	})
}

// lockCart reads the user's cart under FOR UPDATE, serializing double
// submits of the same cart. Returns quantity by product id.
func lockCart(ctx context.Context, q querier, userID uuid.UUID) (uuid.UUID, map[uuid.UUID]int32, error) {
	var cartID uuid.UUID
	err := q.QueryRow(ctx, `SELECT id FROM carts WHERE user_id = $1 FOR UPDATE`, userID).Scan(&cartID)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, nil, domain.Validationf("no items in cart")
	}
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("lock cart: %w", err)
	}

	rows, err := q.Query(ctx, `SELECT product_id, quantity FROM cart_items WHERE cart_id = $1`, cartID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("select cart items: %w", err)
	}
	defer rows.Close()

	items := make(map[uuid.UUID]int32)
	for rows.Next() {
		var (
			productID uuid.UUID
			quantity  int32
		)
		if err := rows.Scan(&productID, &quantity); err != nil {
			return uuid.Nil, nil, fmt.Errorf("scan cart item: %w", err)
		}
		items[productID] = quantity
	}
	if err := rows.Err(); err != nil {
		return uuid.Nil, nil, fmt.Errorf("rows.Err: %w", err)
	}

	return cartID, items, nil
}

// lockProducts locks the requested product rows in sorted id order so
// concurrent placements cannot deadlock on each other.
func lockProducts(ctx context.Context, q querier, requested []domain.RequestedItem) (map[uuid.UUID]domain.Product, error) {
	ids := make([]uuid.UUID, 0, len(requested))
	for _, req := range requested {
		ids = append(ids, req.ProductID)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})

	rows, err := q.Query(ctx, `
		SELECT id, name, image, price, currency, stock
		FROM products
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE`, ids)
	if err != nil {
		return nil, fmt.Errorf("lock products: %w", err)
	}
	defer rows.Close()

	products := make(map[uuid.UUID]domain.Product, len(ids))
	for rows.Next() {
		var (
			p    domain.Product
			amt  decimal.Decimal
			curr string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &amt, &curr, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}

		unit, err := currency.ParseISO(curr)
		if err != nil {
			return nil, fmt.Errorf("currency[%s] is not valid: %w", curr, err)
		}
		p.Price = domain.NewMoney(amt, unit)

		products[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return products, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("userID is empty")
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanOrder: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) Get(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	orders := []domain.Order{order}
	if err := r.attachItems(ctx, orders); err != nil {
		return domain.Order{}, err
	}

	return orders[0], nil
}

func (r *orderRepository) MarkPaid(ctx context.Context, id uuid.UUID, result domain.PaymentResult) (domain.Order, error) {
	return withTx(ctx, r.pool, r.db, func(q querier) (domain.Order, error) {
		var isPaid bool
		err := q.QueryRow(ctx, `SELECT is_paid FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&isPaid)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, domain.ErrNotFound
		}
		if err != nil {
			return domain.Order{}, fmt.Errorf("lock order: %w", err)
		}
		if isPaid {
			return domain.Order{}, domain.Validationf("order is already paid")
		}

		row := q.QueryRow(ctx, `
			UPDATE orders
			SET is_paid = TRUE, paid_at = now(),
			    payment_id = $2, payment_status = $3, payment_update_time = $4, payer_email = $5
			WHERE id = $1
			RETURNING `+orderColumns,
			id, result.ID, result.Status, result.UpdateTime, result.PayerEmail)

		order, err := scanOrder(row)
		if err != nil {
			return domain.Order{}, fmt.Errorf("update order: %w", err)
		}

		orders := []domain.Order{order}
		if err := attachItems(ctx, q, orders); err != nil {
			return domain.Order{}, err
		}

		return orders[0], nil
	})
}

func (r *orderRepository) attachItems(ctx context.Context, orders []domain.Order) error {
	return attachItems(ctx, r.db, orders)
}

// attachItems loads snapshot items for all orders in one query.
func attachItems(ctx context.Context, q querier, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	rows, err := q.Query(ctx, `
		SELECT order_id, product_id, name, image, quantity, unit_price,
		       (SELECT currency FROM orders WHERE orders.id = order_items.order_id)
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY name`, ids)
	if err != nil {
		return fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID uuid.UUID
			item    domain.OrderItem
			amt     decimal.Decimal
			curr    string
		)
		if err := rows.Scan(&orderID, &item.ProductID, &item.Name, &item.Image,
			&item.Quantity, &amt, &curr); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}

		unit, err := currency.ParseISO(curr)
		if err != nil {
			return fmt.Errorf("currency[%s] is not valid: %w", curr, err)
		}
		item.UnitPrice = domain.NewMoney(amt, unit)

		i := index[orderID]
		orders[i].Items = append(orders[i].Items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows.Err: %w", err)
	}

	return nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		order      domain.Order
		itemsAmt   decimal.Decimal
		taxAmt     decimal.Decimal
		shipAmt    decimal.Decimal
		totalAmt   decimal.Decimal
		curr       string
		paidAt     *time.Time
		payID      *string
		payStatus  *string
		payUpdate  *time.Time
		payerEmail *string
	)

	err := row.Scan(&order.ID, &order.UserID,
		&order.ShippingAddress.Address, &order.ShippingAddress.City,
		&order.ShippingAddress.PostalCode, &order.ShippingAddress.Country,
		&order.PaymentMethod, &itemsAmt, &taxAmt, &shipAmt, &totalAmt, &curr,
		&order.IsPaid, &paidAt, &payID, &payStatus, &payUpdate, &payerEmail,
		&order.IsDelivered, &order.DeliveredAt, &order.CreatedAt)
	if err != nil {
		return domain.Order{}, err
	}

	unit, err := currency.ParseISO(curr)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", curr, err)
	}

	order.ItemsPrice = domain.NewMoney(itemsAmt, unit)
	order.TaxPrice = domain.NewMoney(taxAmt, unit)
	order.ShippingPrice = domain.NewMoney(shipAmt, unit)
	order.TotalPrice = domain.NewMoney(totalAmt, unit)
	order.PaidAt = paidAt

	if payID != nil {
		order.PaymentResult = &domain.PaymentResult{
			ID:     *payID,
			Status: derefString(payStatus),
		}
		if payUpdate != nil {
			order.PaymentResult.UpdateTime = *payUpdate
		}
		order.PaymentResult.PayerEmail = derefString(payerEmail)
	}

	return order, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
