package sales

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

func setupSalesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:sales_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	billsTable := `
CREATE TABLE IF NOT EXISTS bills (
  id TEXT PRIMARY KEY,
  total_amount NUMERIC NOT NULL DEFAULT 0,
  total_mrp NUMERIC NOT NULL DEFAULT 0,
  total_savings NUMERIC NOT NULL DEFAULT 0,
  created_by TEXT NOT NULL DEFAULT '',
  created_at DATETIME
);`
	billItemsTable := `
CREATE TABLE IF NOT EXISTS bill_items (
  id TEXT PRIMARY KEY,
  bill_id TEXT NOT NULL,
  product_id TEXT,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL DEFAULT 0,
  mrp NUMERIC NOT NULL DEFAULT 0,
  quantity INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME
);`

	require.NoError(t, db.Exec(billsTable).Error)
	require.NoError(t, db.Exec(billItemsTable).Error)
	return db
}

type seedItem struct {
	productID *uuid.UUID
	name      string
	price     int64
	mrp       int64
	qty       int
}

func seedBill(t *testing.T, db *gorm.DB, createdAt time.Time, totalAmount, totalSavings int64, items ...seedItem) uuid.UUID {
	t.Helper()

	billID := uuid.New()
	err := db.Exec(
		`INSERT INTO bills (id, total_amount, total_mrp, total_savings, created_by, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		billID.String(), decimal.NewFromInt(totalAmount), decimal.NewFromInt(totalAmount+totalSavings),
		decimal.NewFromInt(totalSavings), "u1", createdAt,
	).Error
	require.NoError(t, err)

	for _, item := range items {
		var productID *string
		if item.productID != nil {
			s := item.productID.String()
			productID = &s
		}
		err := db.Exec(
			`INSERT INTO bill_items (id, bill_id, product_id, name, price, mrp, quantity, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), billID.String(), productID, item.name,
			decimal.NewFromInt(item.price), decimal.NewFromInt(item.mrp), item.qty, createdAt,
		).Error
		require.NoError(t, err)
	}
	return billID
}
