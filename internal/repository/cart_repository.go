package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/port"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	db   querier
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{db: pool, pool: pool}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{db: tx, pool: nil} // use provided transaction instead
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID uuid.UUID) (domain.Cart, error) {
	if ownerID == uuid.Nil {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	return withTx(ctx, r.pool, r.db, func(q querier) (domain.Cart, error) {
		var cartID uuid.UUID
		err := q.QueryRow(ctx, `SELECT id FROM carts WHERE user_id = $1`, ownerID).Scan(&cartID)
		if errors.Is(err, pgx.ErrNoRows) {
			// No cart yet behaves as an empty cart.
			return domain.Cart{OwnerID: ownerID}, nil
		}
		if err != nil {
			return domain.Cart{}, fmt.Errorf("select cart: %w", err)
		}

		rows, err := q.Query(ctx, `
			SELECT ci.product_id, ci.quantity, ci.created_at,
			       p.id, p.name, p.description, p.brand, p.category, p.image,
			       p.price, p.currency, p.stock
			FROM cart_items ci
			LEFT JOIN products p ON p.id = ci.product_id
			WHERE ci.cart_id = $1
			ORDER BY ci.created_at`, cartID)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("select cart items: %w", err)
		}
		defer rows.Close()

		var (
			items []domain.CartItem
			stale []uuid.UUID
		)
		for rows.Next() {
			var (
				item      domain.CartItem
				productID *uuid.UUID
				name      *string
				desc      *string
				brand     *string
				category  *string
				image     *string
				price     decimal.NullDecimal
				curr      *string
				stock     *int32
			)
			if err := rows.Scan(&item.ProductID, &item.Quantity, &item.CreatedAt,
				&productID, &name, &desc, &brand, &category, &image,
				&price, &curr, &stock); err != nil {
				return domain.Cart{}, fmt.Errorf("scan cart item: %w", err)
			}

			if productID == nil {
				// Product vanished from the catalog: drop the line.
				stale = append(stale, item.ProductID)
				continue
			}

			unit, err := currency.ParseISO(*curr)
			if err != nil {
				return domain.Cart{}, fmt.Errorf("currency[%s] is not valid: %w", *curr, err)
			}

			item.Product = &domain.Product{
				ID:          *productID,
				Name:        *name,
				Description: *desc,
				Brand:       *brand,
				Category:    *category,
				Image:       *image,
				Price:       domain.NewMoney(price.Decimal, unit),
				Stock:       *stock,
			}
			items = append(items, item)
		}
		if err := rows.Err(); err != nil {
			return domain.Cart{}, fmt.Errorf("rows.Err: %w", err)
		}

		if len(stale) > 0 {
			if _, err := q.Exec(ctx,
				`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = ANY($2)`,
				cartID, stale); err != nil {
				return domain.Cart{}, fmt.Errorf("delete stale cart items: %w", err)
			}
		}

		return domain.Cart{ID: cartID, OwnerID: ownerID, Items: items}, nil
	})
}

func (r *cartRepository) AddItem(ctx context.Context, ownerID, productID uuid.UUID, quantity int32) error {
	if ownerID == uuid.Nil {
		return fmt.Errorf("ownerID is empty")
	}
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	_, err := withTx(ctx, r.pool, r.db, func(q querier) (struct{}, error) {
		var cartID uuid.UUID
		err := q.QueryRow(ctx, `
			INSERT INTO carts (user_id) VALUES ($1)
			ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
			RETURNING id`, ownerID).Scan(&cartID)
		if err != nil {
			return struct{}{}, fmt.Errorf("upsert cart: %w", err)
		}

		_, err = q.Exec(ctx, `
			INSERT INTO cart_items (cart_id, product_id, quantity)
			VALUES ($1, $2, $3)
			ON CONFLICT (cart_id, product_id)
			DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`,
			cartID, productID, quantity)
		if err != nil {
			return struct{}{}, fmt.Errorf("upsert cart item: %w", err)
		}

		return struct{}{}, nil
	})
	return err
}

func (r *cartRepository) RemoveItem(ctx context.Context, ownerID, productID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return fmt.Errorf("ownerID is empty")
	}

	_, err := withTx(ctx, r.pool, r.db, func(q querier) (struct{}, error) {
		var cartID uuid.UUID
		err := q.QueryRow(ctx, `SELECT id FROM carts WHERE user_id = $1`, ownerID).Scan(&cartID)
		if errors.Is(err, pgx.ErrNoRows) {
			return struct{}{}, domain.ErrNotFound
		}
		if err != nil {
			return struct{}{}, fmt.Errorf("select cart: %w", err)
		}

		// Removing a product that is not in the cart is a no-op.
		if _, err := q.Exec(ctx,
			`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
			cartID, productID); err != nil {
			return struct{}{}, fmt.Errorf("delete cart item: %w", err)
		}

		return struct{}{}, nil
	})
	return err
}

func (r *cartRepository) Clear(ctx context.Context, ownerID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return fmt.Errorf("ownerID is empty")
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, ownerID)
	if err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
