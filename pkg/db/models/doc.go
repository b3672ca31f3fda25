// Package models holds the persistence structs shared by every repository.
package models

import "github.com/shopspring/decimal"

func init() {
	// Money fields render as JSON numbers, matching the mobile client's
	// existing payload shape.
	decimal.MarshalJSONWithoutQuotes = true
}
