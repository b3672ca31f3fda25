package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	pkgerrors "github.com/luisherrera/billpoint-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	conn := setupProductsTestDB(t)
	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)
	return svc
}

func TestServiceCreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sku := "SKU-9"
	created, err := svc.Create(ctx, CreateProductInput{
		Name:  "Milk",
		Price: decimal.NewFromInt(10),
		MRP:   decimal.NewFromInt(12),
		SKU:   &sku,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk", fetched.Name)
	assert.True(t, fetched.Price.Equal(decimal.NewFromInt(10)))
}

func TestServiceCreateValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateProductInput{})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	_, err = svc.Create(ctx, CreateProductInput{Name: "Milk", Price: decimal.NewFromInt(-1)})
	appErr = pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestServiceCreateDuplicateSKUConflict(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sku := "SKU-DUP"
	_, err := svc.Create(ctx, CreateProductInput{Name: "First", SKU: &sku})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateProductInput{Name: "Second", SKU: &sku})
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeConflict, appErr.Code())
}

func TestServiceGetMissing(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), uuid.New())
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestServiceUpdateAllowedFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductInput{
		Name:  "Milk",
		Price: decimal.NewFromInt(10),
		MRP:   decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, map[string]any{
		"name":     "Whole Milk",
		"price":    12.5,
		"category": "dairy",
	})
	require.NoError(t, err)

	assert.Equal(t, "Whole Milk", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.NewFromFloat(12.5)), "price = %s", updated.Price)
	require.NotNil(t, updated.Category)
	assert.Equal(t, "dairy", *updated.Category)
	// untouched fields survive the patch
	assert.True(t, updated.MRP.Equal(decimal.NewFromInt(12)))
}

func TestServiceUpdateRejectsUnknownField(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductInput{Name: "Milk"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, map[string]any{"id": uuid.New().String()})
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	// row is untouched after the rejected patch
	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk", fetched.Name)
}

func TestServiceUpdateRejectsBadValues(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductInput{Name: "Milk"})
	require.NoError(t, err)

	cases := []map[string]any{
		{"name": ""},
		{"name": 42.0},
		{"price": "abc"},
		{"price": -3.0},
		{"sku": 42.0},
	}
	for _, fields := range cases {
		_, err := svc.Update(ctx, created.ID, fields)
		appErr := pkgerrors.As(err)
		require.NotNil(t, appErr, "fields %v", fields)
		assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	}
}

func TestServiceUpdateClearsOptionalField(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sku := "SKU-7"
	created, err := svc.Create(ctx, CreateProductInput{Name: "Milk", SKU: &sku})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, map[string]any{"sku": nil})
	require.NoError(t, err)
	assert.Nil(t, updated.SKU)
}

func TestServiceDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductInput{Name: "Milk"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestServiceList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Milk", "Bread", "Butter"} {
		_, err := svc.Create(ctx, CreateProductInput{Name: name})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, ListProductsInput{})
	require.NoError(t, err)
	assert.Len(t, list.Products, 3)
	assert.Empty(t, list.NextCursor)
}
