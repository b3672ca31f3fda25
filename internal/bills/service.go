package bills

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/luisherrera/billpoint-backend/pkg/db/models"
	pkgerrors "github.com/luisherrera/billpoint-backend/pkg/errors"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service records point-of-sale bills.
type Service interface {
	CreateBill(ctx context.Context, input CreateBillInput) (*BillDTO, error)
	GetBill(ctx context.Context, id uuid.UUID) (*BillDTO, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds a bills service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("bills repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// validateInput runs before any store interaction so bad payloads never
// touch the connection pool.
func validateInput(input CreateBillInput) error {
	if len(input.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "bill requires at least one item")
	}
	for i, item := range input.Items {
		if item.Name == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item %d: name required", i))
		}
		if item.Quantity < 1 {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item %d: quantity must be at least 1", i))
		}
		if item.Price.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item %d: price cannot be negative", i))
		}
		if item.MRP.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item %d: mrp cannot be negative", i))
		}
	}
	if input.TotalAmount.IsNegative() || input.TotalMRP.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "bill totals cannot be negative")
	}
	return nil
}

func (s *service) CreateBill(ctx context.Context, input CreateBillInput) (*BillDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	// id assigned here so the items can reference it inside the same tx
	billID := uuid.New()
	bill := &models.Bill{
		ID:           billID,
		TotalAmount:  input.TotalAmount,
		TotalMRP:     input.TotalMRP,
		TotalSavings: input.TotalSavings,
		CreatedBy:    input.CreatedBy,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.CreateBill(ctx, bill); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating bill")
		}

		items := make([]models.BillItem, 0, len(input.Items))
		for _, item := range input.Items {
			items = append(items, models.BillItem{
				ID:        uuid.New(),
				BillID:    billID,
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				MRP:       item.MRP,
				Quantity:  item.Quantity,
			})
		}
		if err := repo.CreateBillItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating bill items")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// re-read outside the tx so the response reflects committed state
	saved, err := s.repo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading created bill")
	}
	return toBillDTO(saved), nil
}

func (s *service) GetBill(ctx context.Context, id uuid.UUID) (*BillDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bill id required")
	}
	bill, err := s.repo.FindBillByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "bill not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading bill")
	}
	return toBillDTO(bill), nil
}
