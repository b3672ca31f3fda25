package bills

import (
	"time"

	"github.com/google/uuid"
	"github.com/luisherrera/billpoint-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// BillItemInput is one purchased line on an incoming bill.
type BillItemInput struct {
	ProductID *uuid.UUID      `json:"product_id" validate:"omitempty"`
	Name      string          `json:"name" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	MRP       decimal.Decimal `json:"mrp"`
	Quantity  int             `json:"quantity" validate:"required"`
}

// CreateBillInput captures the full payload required to record a bill.
type CreateBillInput struct {
	Items        []BillItemInput `json:"items" validate:"required"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalMRP     decimal.Decimal `json:"total_mrp"`
	TotalSavings decimal.Decimal `json:"total_savings"`
	CreatedBy    string          `json:"-"`
}

// BillItemDTO is the line item shape returned to clients.
type BillItemDTO struct {
	ID        uuid.UUID       `json:"id"`
	ProductID *uuid.UUID      `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	MRP       decimal.Decimal `json:"mrp"`
	Quantity  int             `json:"quantity"`
}

// BillDTO is the recorded bill shape returned to clients.
type BillDTO struct {
	ID           uuid.UUID       `json:"id"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalMRP     decimal.Decimal `json:"total_mrp"`
	TotalSavings decimal.Decimal `json:"total_savings"`
	CreatedBy    string          `json:"created_by"`
	Items        []BillItemDTO   `json:"items"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toBillDTO(bill *models.Bill) *BillDTO {
	items := make([]BillItemDTO, 0, len(bill.Items))
	for _, item := range bill.Items {
		items = append(items, BillItemDTO{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			MRP:       item.MRP,
			Quantity:  item.Quantity,
		})
	}
	return &BillDTO{
		ID:           bill.ID,
		TotalAmount:  bill.TotalAmount,
		TotalMRP:     bill.TotalMRP,
		TotalSavings: bill.TotalSavings,
		CreatedBy:    bill.CreatedBy,
		Items:        items,
		CreatedAt:    bill.CreatedAt,
	}
}
