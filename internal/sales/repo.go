package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// billFilter scopes all summary queries to the same inclusive date range.
// Every aggregate shares this builder so the three queries can never drift
// out of sync on their WHERE clauses.
type billFilter struct {
	start *time.Time
	end   *time.Time
}

func (f billFilter) apply(q *gorm.DB) *gorm.DB {
	if f.start != nil {
		q = q.Where("DATE(bills.created_at) >= DATE(?)", *f.start)
	}
	if f.end != nil {
		q = q.Where("DATE(bills.created_at) <= DATE(?)", *f.end)
	}
	return q
}

// Repository defines the read-side aggregates backing the sales summary.
type Repository interface {
	BillTotals(ctx context.Context, filter billFilter) (*billTotalsRow, error)
	ItemsSold(ctx context.Context, filter billFilter) (int64, error)
	TopProducts(ctx context.Context, filter billFilter, limit int) ([]topProductRow, error)
}

type billTotalsRow struct {
	TotalBills   int64
	TotalSales   decimal.Decimal
	TotalMRP     decimal.Decimal
	TotalSavings decimal.Decimal
}

type topProductRow struct {
	ProductID    *string
	Name         string
	QuantitySold int64
	Revenue      decimal.Decimal
	MRPValue     decimal.Decimal
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a sales repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) BillTotals(ctx context.Context, filter billFilter) (*billTotalsRow, error) {
	var row billTotalsRow
	q := r.db.WithContext(ctx).
		Table("bills").
		Select(`COUNT(*) AS total_bills,
COALESCE(SUM(bills.total_amount), 0) AS total_sales,
COALESCE(SUM(bills.total_mrp), 0) AS total_mrp,
COALESCE(SUM(bills.total_savings), 0) AS total_savings`)
	if err := filter.apply(q).Scan(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) ItemsSold(ctx context.Context, filter billFilter) (int64, error) {
	var total int64
	q := r.db.WithContext(ctx).
		Table("bill_items").
		Joins("JOIN bills ON bills.id = bill_items.bill_id").
		Select("COALESCE(SUM(bill_items.quantity), 0)")
	if err := filter.apply(q).Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *repository) TopProducts(ctx context.Context, filter billFilter, limit int) ([]topProductRow, error) {
	var rows []topProductRow
	q := r.db.WithContext(ctx).
		Table("bill_items").
		Joins("JOIN bills ON bills.id = bill_items.bill_id").
		Select(`bill_items.product_id AS product_id,
bill_items.name AS name,
SUM(bill_items.quantity) AS quantity_sold,
SUM(bill_items.price * bill_items.quantity) AS revenue,
SUM(bill_items.mrp * bill_items.quantity) AS mrp_value`).
		Group("bill_items.product_id, bill_items.name").
		Order("revenue DESC, bill_items.name ASC").
		Limit(limit)
	if err := filter.apply(q).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
