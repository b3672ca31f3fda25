package bills

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// setupBillsTestDB opens a fresh in-memory database per test so aggregate
// assertions never see rows written by other tests.
func setupBillsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:bills_%d?mode=memory&cache=shared", testDBSeq.Add(1))
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
