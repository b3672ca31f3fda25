package products

import (
	"fmt"

	"github.com/luisherrera/billpoint-backend/pkg/db/models"
	pkgerrors "github.com/luisherrera/billpoint-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// patchSetter applies one decoded JSON value to the product. Values arrive
// as generic JSON types (string, float64, nil) from the request body.
type patchSetter func(product *models.Product, value any) error

// patchAllowlist enumerates every patchable field. Anything outside the
// allowlist is rejected, so adding a column never silently becomes writable.
var patchAllowlist = map[string]patchSetter{
	"name": func(p *models.Product, value any) error {
		name, ok := value.(string)
		if !ok || name == "" {
			return fmt.Errorf("name must be a non-empty string")
		}
		p.Name = name
		return nil
	},
	"price": func(p *models.Product, value any) error {
		amount, err := decimalFromJSON(value)
		if err != nil {
			return fmt.Errorf("price %v", err)
		}
		p.Price = amount
		return nil
	},
	"mrp": func(p *models.Product, value any) error {
		amount, err := decimalFromJSON(value)
		if err != nil {
			return fmt.Errorf("mrp %v", err)
		}
		p.MRP = amount
		return nil
	},
	"image_url": func(p *models.Product, value any) error {
		url, err := optionalString(value)
		if err != nil {
			return fmt.Errorf("image_url %v", err)
		}
		p.ImageURL = url
		return nil
	},
	"sku": func(p *models.Product, value any) error {
		sku, err := optionalString(value)
		if err != nil {
			return fmt.Errorf("sku %v", err)
		}
		p.SKU = sku
		return nil
	},
	"category": func(p *models.Product, value any) error {
		category, err := optionalString(value)
		if err != nil {
			return fmt.Errorf("category %v", err)
		}
		p.Category = category
		return nil
	},
}

func decimalFromJSON(value any) (decimal.Decimal, error) {
	var amount decimal.Decimal
	switch v := value.(type) {
	case float64:
		amount = decimal.NewFromFloat(v)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("must be a number")
		}
		amount = parsed
	default:
		return decimal.Zero, fmt.Errorf("must be a number")
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("cannot be negative")
	}
	return amount, nil
}

func optionalString(value any) (*string, error) {
	if value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("must be a string or null")
	}
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

// applyPatch mutates the product from the decoded request fields, rejecting
// unknown field names before any setter runs.
func applyPatch(product *models.Product, fields map[string]any) error {
	for name := range fields {
		if _, ok := patchAllowlist[name]; !ok {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("field %q cannot be updated", name))
		}
	}
	for name, value := range fields {
		if err := patchAllowlist[name](product, value); err != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
	}
	return nil
}
