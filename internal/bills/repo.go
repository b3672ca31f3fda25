package bills

import (
	"context"

	"github.com/google/uuid"
	"github.com/luisherrera/billpoint-backend/pkg/db/models"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a bills repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateBill(ctx context.Context, bill *models.Bill) (*models.Bill, error) {
	if err := r.db.WithContext(ctx).Omit("Items").Create(bill).Error; err != nil {
		return nil, err
	}
	return bill, nil
}

func (r *repository) CreateBillItems(ctx context.Context, items []models.BillItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *repository) FindBillByID(ctx context.Context, id uuid.UUID) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_items.created_at ASC, bill_items.id ASC")
		}).
		Where("id = ?", id).
		First(&bill).Error
	if err != nil {
		return nil, err
	}
	return &bill, nil
}
