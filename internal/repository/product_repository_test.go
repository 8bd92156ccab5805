package repository_test

import (
	"testing"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/port"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type productRepositorySuite struct {
	suite.Suite

	repo port.ProductRepository
	pool *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestProductRepositorySuite(t *testing.T) {
	suite.Run(t, new(productRepositorySuite))
}

// before all tests in the suite
func (suite *productRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo = repository.NewProduct(suite.pool)
}

// after all tests in the suite
func (suite *productRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *productRepositorySuite) TestCreateGet() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := randomProduct(7)

	created, err := suite.repo.Create(ctx, product)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assertProduct(t, product, created)

	fetched, err := suite.repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assertProduct(t, product, fetched)

	_, err = suite.repo.Get(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *productRepositorySuite) TestList() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	tv := randomProduct(5)
	tv.Category = "electronics"
	phone := randomProduct(5)
	phone.Category = "electronics"
	speaker := randomProduct(5)
	speaker.Category = "audio"

	for _, p := range []domain.Product{tv, phone, speaker} {
		_, err := suite.repo.Create(ctx, p)
		require.NoError(t, err)
	}

	all, err := suite.repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	electronics, err := suite.repo.List(ctx, "electronics")
	require.NoError(t, err)
	require.Len(t, electronics, 2)
	for _, p := range electronics {
		assert.Equal(t, "electronics", p.Category)
	}

	none, err := suite.repo.List(ctx, "furniture")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func (suite *productRepositorySuite) TestSearch() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	tv := randomProduct(5)
	tv.Name = "Sony Bravia OLED"
	tv.Description = "A television"
	phone := randomProduct(5)
	phone.Name = "Pixel 8 Pro"
	phone.Description = "Has an excellent camera"

	for _, p := range []domain.Product{tv, phone} {
		_, err := suite.repo.Create(ctx, p)
		require.NoError(t, err)
	}

	// case-insensitive substring match on name
	found, err := suite.repo.Search(ctx, "bravia")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, tv.Name, found[0].Name)

	// matches the description too
	found, err = suite.repo.Search(ctx, "camera")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, phone.Name, found[0].Name)

	found, err = suite.repo.Search(ctx, "toaster")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func (suite *productRepositorySuite) TestCount() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	n, err := suite.repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = suite.repo.Create(ctx, randomProduct(1))
	require.NoError(t, err)

	n, err = suite.repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func (suite *productRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE products CASCADE")
	suite.NoError(err)
}
