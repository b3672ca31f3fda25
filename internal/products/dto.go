package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/luisherrera/billpoint-backend/pkg/db/models"
	"github.com/luisherrera/billpoint-backend/pkg/pagination"
	"github.com/shopspring/decimal"
)

// CreateProductInput captures the fields accepted when adding a catalog item.
type CreateProductInput struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	MRP      decimal.Decimal `json:"mrp"`
	ImageURL *string         `json:"image_url" validate:"omitempty,url"`
	SKU      *string         `json:"sku"`
	Category *string         `json:"category"`
}

// ProductListFilters describe the supported filter knobs for the catalog list.
type ProductListFilters struct {
	Category *string `json:"category,omitempty"`
	Query    string  `json:"q,omitempty"`
}

// ListProductsInput captures the inputs needed to paginate/filter the catalog.
type ListProductsInput struct {
	Filters    ProductListFilters
	Pagination pagination.Params
}

// ProductListResult wraps one page of catalog rows plus the next page cursor.
type ProductListResult struct {
	Products   []models.Product
	NextCursor string
}

// ProductDTO is the catalog item shape returned to clients.
type ProductDTO struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	MRP       decimal.Decimal `json:"mrp"`
	ImageURL  *string         `json:"image_url,omitempty"`
	SKU       *string         `json:"sku,omitempty"`
	Category  *string         `json:"category,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListDTO is the paginated catalog payload.
type ProductListDTO struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

func toProductDTO(product *models.Product) *ProductDTO {
	return &ProductDTO{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		MRP:       product.MRP,
		ImageURL:  product.ImageURL,
		SKU:       product.SKU,
		Category:  product.Category,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}
