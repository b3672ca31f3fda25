package bills

import (
	"context"

	"github.com/google/uuid"
	"github.com/luisherrera/billpoint-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for bill and bill item tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateBill(ctx context.Context, bill *models.Bill) (*models.Bill, error)
	CreateBillItems(ctx context.Context, items []models.BillItem) error
	FindBillByID(ctx context.Context, id uuid.UUID) (*models.Bill, error)
}
