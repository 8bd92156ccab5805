package repository_test

import (
	"sync"
	"testing"
	"time"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/port"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

type orderRepositorySuite struct {
	suite.Suite

	repo     port.OrderRepository
	carts    port.CartRepository
	products port.ProductRepository
	pricing  domain.PricingPolicy
	pool     *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestOrderRepositorySuite(t *testing.T) {
	suite.Run(t, new(orderRepositorySuite))
}

// before all tests in the suite
func (suite *orderRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo = repository.NewOrder(suite.pool)
	suite.carts = repository.NewCart(suite.pool)
	suite.products = repository.NewProduct(suite.pool)
	suite.pricing = domain.DefaultPricingPolicy(currency.MustParseISO("INR"))
}

// after all tests in the suite
func (suite *orderRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *orderRepositorySuite) TestPlaceOrder() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct(100, 5)
	userID := uuid.New()
	require.NoError(t, suite.carts.AddItem(ctx, userID, product.ID, 2))

	address := randomAddress()
	order, err := suite.repo.PlaceOrder(ctx, userID, address, "PayPal",
		[]domain.RequestedItem{{ProductID: product.ID, Quantity: 2}}, suite.pricing)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, address, order.ShippingAddress)
	assert.Equal(t, "PayPal", order.PaymentMethod)
	assert.False(t, order.IsPaid)
	assert.False(t, order.CreatedAt.IsZero())

	// 2 x 100 = 200 items, 10% tax, flat shipping below the threshold
	assert.True(t, order.ItemsPrice.Amount.Equal(decimal.NewFromInt(200)))
	assert.True(t, order.TaxPrice.Amount.Equal(decimal.NewFromInt(20)))
	assert.True(t, order.ShippingPrice.Amount.Equal(decimal.NewFromInt(50)))
	assert.True(t, order.TotalPrice.Amount.Equal(decimal.NewFromInt(270)))

	// stock was decremented
	updated, err := suite.products.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(3), updated.Stock)

	// cart was cleared
	cart, err := suite.carts.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	// the persisted order carries the item snapshot
	stored, err := suite.repo.Get(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, product.ID, stored.Items[0].ProductID)
	assert.Equal(t, product.Name, stored.Items[0].Name)
	assert.Equal(t, int32(2), stored.Items[0].Quantity)
	assert.True(t, stored.Items[0].UnitPrice.Amount.Equal(decimal.NewFromInt(100)))
}

func (suite *orderRepositorySuite) TestPlaceOrder_FreeShipping() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct(600, 5)
	userID := uuid.New()
	require.NoError(t, suite.carts.AddItem(ctx, userID, product.ID, 2))

	order, err := suite.repo.PlaceOrder(ctx, userID, randomAddress(), "Card",
		[]domain.RequestedItem{{ProductID: product.ID, Quantity: 2}}, suite.pricing)
	require.NoError(t, err)

	assert.True(t, order.ItemsPrice.Amount.Equal(decimal.NewFromInt(1200)))
	assert.True(t, order.ShippingPrice.Amount.Equal(decimal.Zero))
	assert.True(t, order.TotalPrice.Amount.Equal(decimal.NewFromInt(1320)))
}

func (suite *orderRepositorySuite) TestPlaceOrder_Failures() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	suite.Run("no cart", func() {
		_, err := suite.repo.PlaceOrder(ctx, uuid.New(), randomAddress(), "PayPal",
			[]domain.RequestedItem{{ProductID: uuid.New(), Quantity: 1}}, suite.pricing)
		require.EqualError(t, err, "no items in cart")

		var validationErr domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	suite.Run("product not in cart", func() {
		product := suite.createProduct(100, 5)
		stranger := suite.createProduct(100, 5)
		userID := uuid.New()
		require.NoError(t, suite.carts.AddItem(ctx, userID, product.ID, 1))

		_, err := suite.repo.PlaceOrder(ctx, userID, randomAddress(), "PayPal",
			[]domain.RequestedItem{{ProductID: stranger.ID, Quantity: 1}}, suite.pricing)
		require.EqualError(t, err, "product "+stranger.ID.String()+" not in cart")
	})

	suite.Run("product removed from catalog", func() {
		product := suite.createProduct(100, 5)
		userID := uuid.New()
		require.NoError(t, suite.carts.AddItem(ctx, userID, product.ID, 1))

		_, err := suite.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", product.ID)
		require.NoError(t, err)

		_, err = suite.repo.PlaceOrder(ctx, userID, randomAddress(), "PayPal",
			[]domain.RequestedItem{{ProductID: product.ID, Quantity: 1}}, suite.pricing)
		require.EqualError(t, err, "product "+product.ID.String()+" is no longer available")
	})

	suite.Run("insufficient stock leaves everything untouched", func() {
		product := suite.createProduct(100, 1)
		userID := uuid.New()
		require.NoError(t, suite.carts.AddItem(ctx, userID, product.ID, 2))

		_, err := suite.repo.PlaceOrder(ctx, userID, randomAddress(), "PayPal",
			[]domain.RequestedItem{{ProductID: product.ID, Quantity: 2}}, suite.pricing)

		var stockErr domain.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, product.ID, stockErr.ProductID)
		assert.Equal(t, int32(2), stockErr.Requested)
		assert.Equal(t, int32(1), stockErr.Available)

		// nothing was mutated
		updated, err := suite.products.Get(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, int32(1), updated.Stock)

		cart, err := suite.carts.GetCart(ctx, userID)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)

		var count int
		err = suite.pool.QueryRow(ctx,
			"SELECT COUNT(*) FROM orders WHERE user_id = $1", userID).Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

// Two buyers race for the last unit: exactly one order must go through.
func (suite *orderRepositorySuite) TestPlaceOrder_Concurrent() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct(100, 1)

	buyers := []uuid.UUID{uuid.New(), uuid.New()}
	for _, userID := range buyers {
		require.NoError(t, suite.carts.AddItem(ctx, userID, product.ID, 1))
	}

	errs := make([]error, len(buyers))
	var wg sync.WaitGroup
	for i, userID := range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = suite.repo.PlaceOrder(ctx, userID, randomAddress(), "PayPal",
				[]domain.RequestedItem{{ProductID: product.ID, Quantity: 1}}, suite.pricing)
		}()
	}
	wg.Wait()

	var succeeded, outOfStock int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			var stockErr domain.InsufficientStockError
			require.ErrorAs(t, err, &stockErr)
			outOfStock++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, outOfStock)

	updated, err := suite.products.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(0), updated.Stock)
}

func (suite *orderRepositorySuite) TestListByUser() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct(100, 10)
	userID := uuid.New()
	otherID := uuid.New()

	first := suite.placeOrder(userID, product.ID, 1)
	second := suite.placeOrder(userID, product.ID, 2)
	suite.placeOrder(otherID, product.ID, 1)

	orders, err := suite.repo.ListByUser(ctx, userID)
	require.NoError(t, err)

	require.Len(t, orders, 2)
	// newest first
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
	for _, o := range orders {
		assert.Equal(t, userID, o.UserID)
		assert.NotEmpty(t, o.Items)
	}
}

func (suite *orderRepositorySuite) TestGet_NotFound() {
	_, err := suite.repo.Get(suite.T().Context(), uuid.New())
	require.ErrorIs(suite.T(), err, domain.ErrNotFound)
}

func (suite *orderRepositorySuite) TestMarkPaid() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct(100, 10)
	order := suite.placeOrder(uuid.New(), product.ID, 1)

	result := domain.PaymentResult{
		ID:         "PAYID-123",
		Status:     "COMPLETED",
		UpdateTime: time.Now().UTC().Truncate(time.Second),
		PayerEmail: "buyer@example.com",
	}

	paid, err := suite.repo.MarkPaid(ctx, order.ID, result)
	require.NoError(t, err)

	assert.True(t, paid.IsPaid)
	require.NotNil(t, paid.PaidAt)
	require.NotNil(t, paid.PaymentResult)
	assert.Equal(t, result.ID, paid.PaymentResult.ID)
	assert.Equal(t, result.Status, paid.PaymentResult.Status)
	assert.Equal(t, result.PayerEmail, paid.PaymentResult.PayerEmail)
	assert.NotEmpty(t, paid.Items)

	// paying twice is rejected
	_, err = suite.repo.MarkPaid(ctx, order.ID, result)
	require.EqualError(t, err, "order is already paid")

	// unknown order
	_, err = suite.repo.MarkPaid(ctx, uuid.New(), result)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *orderRepositorySuite) createProduct(price int64, stock int32) domain.Product {
	p := randomProduct(stock)
	p.Price = domain.NewMoney(decimal.NewFromInt(price), suite.pricing.Currency)

	created, err := suite.products.Create(suite.T().Context(), p)
	suite.Require().NoError(err)
	return created
}

func (suite *orderRepositorySuite) placeOrder(userID, productID uuid.UUID, quantity int32) domain.Order {
	ctx := suite.T().Context()

	suite.Require().NoError(suite.carts.AddItem(ctx, userID, productID, quantity))

	order, err := suite.repo.PlaceOrder(ctx, userID, randomAddress(), "PayPal",
		[]domain.RequestedItem{{ProductID: productID, Quantity: quantity}}, suite.pricing)
	suite.Require().NoError(err)
	return order
}

func (suite *orderRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(),
		"TRUNCATE TABLE orders, carts, products CASCADE")
	suite.NoError(err)
}
