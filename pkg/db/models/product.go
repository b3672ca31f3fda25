package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog listing.
type Product struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string          `gorm:"column:name;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	MRP       decimal.Decimal `gorm:"column:mrp;type:numeric(12,2);not null"`
	ImageURL  *string         `gorm:"column:image_url"`
	SKU       *string         `gorm:"column:sku;uniqueIndex"`
	Category  *string         `gorm:"column:category"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
