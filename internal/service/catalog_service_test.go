package service_test

import (
	"testing"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSearch(t *testing.T) {
	products := &fakeProductRepo{
		search: func(query string) ([]domain.Product, error) {
			assert.Equal(t, "bravia", query)
			return []domain.Product{{Name: "Sony Bravia OLED"}}, nil
		},
	}
	svc := service.NewCatalog(products)

	t.Run("trims the query", func(t *testing.T) {
		found, err := svc.Search(t.Context(), "  bravia  ")
		require.NoError(t, err)
		require.Len(t, found, 1)
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := svc.Search(t.Context(), "   ")
		require.EqualError(t, err, "search query is required")
	})
}

func TestCatalogList(t *testing.T) {
	products := &fakeProductRepo{
		list: func(category string) ([]domain.Product, error) {
			assert.Equal(t, "audio", category)
			return nil, nil
		},
	}
	svc := service.NewCatalog(products)

	_, err := svc.List(t.Context(), " audio ")
	require.NoError(t, err)
}
