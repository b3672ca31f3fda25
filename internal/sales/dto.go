package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SummaryInput carries the optional inclusive date range for the summary.
// Both bounds are compared by calendar date, not timestamp.
type SummaryInput struct {
	Start *time.Time
	End   *time.Time
}

// TopProductDTO is one row of the top sellers leaderboard.
type TopProductDTO struct {
	ProductID    *uuid.UUID      `json:"product_id,omitempty"`
	Name         string          `json:"product_name"`
	QuantitySold int64           `json:"total_quantity"`
	Revenue      decimal.Decimal `json:"total_revenue"`
	MRPValue     decimal.Decimal `json:"total_mrp_value"`
}

// SummaryDTO aggregates the sales figures for the requested range.
type SummaryDTO struct {
	TotalBills     int64           `json:"total_bills"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalMRP       decimal.Decimal `json:"total_mrp"`
	TotalSavings   decimal.Decimal `json:"total_savings"`
	TotalItemsSold int64           `json:"total_items_sold"`
	TopProducts    []TopProductDTO `json:"top_products"`
}
