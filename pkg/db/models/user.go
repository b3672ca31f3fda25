package models

import (
	"time"

	"github.com/luisherrera/billpoint-backend/pkg/types"
)

// User is the shop operator. IDs are opaque strings supplied by the client
// until a real identity layer lands.
type User struct {
	ID          string        `gorm:"column:id;primaryKey"`
	Name        string        `gorm:"column:name;not null"`
	ShopName    *string       `gorm:"column:shop_name"`
	ShopAddress *string       `gorm:"column:shop_address"`
	Phone       *string       `gorm:"column:phone"`
	Settings    types.JSONMap `gorm:"column:settings;type:jsonb;serializer:json"`
	CreatedAt   time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}
