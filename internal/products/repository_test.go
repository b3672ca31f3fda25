package products

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/luisherrera/billpoint-backend/pkg/db/models"
	"github.com/luisherrera/billpoint-backend/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProduct(t *testing.T, conn *gorm.DB, name string, createdAt time.Time, category *string) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     decimal.NewFromInt(10),
		MRP:       decimal.NewFromInt(12),
		Category:  category,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, conn.Create(product).Error)
	return product
}

func TestRepositoryCreateFindUpdateDelete(t *testing.T) {
	conn := setupProductsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	sku := "SKU-1"
	product := &models.Product{
		ID:    uuid.New(),
		Name:  "Milk",
		Price: decimal.NewFromInt(10),
		MRP:   decimal.NewFromInt(12),
		SKU:   &sku,
	}

	_, err := repo.Create(ctx, product)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk", found.Name)
	require.NotNil(t, found.SKU)
	assert.Equal(t, "SKU-1", *found.SKU)

	found.Name = "Whole Milk"
	_, err = repo.Update(ctx, found)
	require.NoError(t, err)

	again, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Whole Milk", again.Name)

	require.NoError(t, repo.Delete(ctx, product.ID))
	_, err = repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryCreateDuplicateSKU(t *testing.T) {
	conn := setupProductsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	sku := "SKU-DUP"
	_, err := repo.Create(ctx, &models.Product{ID: uuid.New(), Name: "First", SKU: &sku})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.Product{ID: uuid.New(), Name: "Second", SKU: &sku})
	require.Error(t, err)
}

func TestRepositoryListPagination(t *testing.T) {
	conn := setupProductsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedProduct(t, conn, "Item", base.Add(time.Duration(i)*time.Minute), nil)
	}

	first, err := repo.List(ctx, productListQuery{Pagination: pagination.Params{Limit: 2}})
	require.NoError(t, err)
	require.Len(t, first.Products, 2)
	require.NotEmpty(t, first.NextCursor)

	// newest first
	assert.True(t, first.Products[0].CreatedAt.After(first.Products[1].CreatedAt))

	second, err := repo.List(ctx, productListQuery{
		Pagination: pagination.Params{Limit: 2, Cursor: first.NextCursor},
	})
	require.NoError(t, err)
	require.Len(t, second.Products, 2)
	assert.True(t, first.Products[1].CreatedAt.After(second.Products[0].CreatedAt))

	third, err := repo.List(ctx, productListQuery{
		Pagination: pagination.Params{Limit: 2, Cursor: second.NextCursor},
	})
	require.NoError(t, err)
	require.Len(t, third.Products, 1)
	assert.Empty(t, third.NextCursor)
}

func TestRepositoryListFilters(t *testing.T) {
	conn := setupProductsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	dairy := "dairy"
	bakery := "bakery"
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedProduct(t, conn, "Milk", base, &dairy)
	seedProduct(t, conn, "Butter", base.Add(time.Minute), &dairy)
	seedProduct(t, conn, "Bread", base.Add(2*time.Minute), &bakery)

	byCategory, err := repo.List(ctx, productListQuery{
		Filters: ProductListFilters{Category: &dairy},
	})
	require.NoError(t, err)
	assert.Len(t, byCategory.Products, 2)

	bySearch, err := repo.List(ctx, productListQuery{
		Filters: ProductListFilters{Query: "brea"},
	})
	require.NoError(t, err)
	require.Len(t, bySearch.Products, 1)
	assert.Equal(t, "Bread", bySearch.Products[0].Name)
}

func TestRepositoryListRejectsBadCursor(t *testing.T) {
	conn := setupProductsTestDB(t)
	repo := NewRepository(conn)

	_, err := repo.List(context.Background(), productListQuery{
		Pagination: pagination.Params{Cursor: "not-a-cursor"},
	})
	require.Error(t, err)
}
