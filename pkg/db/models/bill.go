package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bill is one point-of-sale transaction. A bill is written once, together
// with its full set of items, and never updated afterwards.
type Bill struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`
	TotalMRP     decimal.Decimal `gorm:"column:total_mrp;type:numeric(12,2);not null"`
	TotalSavings decimal.Decimal `gorm:"column:total_savings;type:numeric(12,2);not null"`
	CreatedBy    string          `gorm:"column:created_by;not null"`
	Items        []BillItem      `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
}

// BillItem is the snapshot of one sold line. ProductID is a soft reference:
// the catalog row may be deleted later and the item still stands.
type BillItem struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BillID    uuid.UUID       `gorm:"column:bill_id;type:uuid;not null;index"`
	ProductID *uuid.UUID      `gorm:"column:product_id;type:uuid"`
	Name      string          `gorm:"column:name;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	MRP       decimal.Decimal `gorm:"column:mrp;type:numeric(12,2);not null"`
	Quantity  int             `gorm:"column:quantity;not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}
