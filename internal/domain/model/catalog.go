package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Specification is the free-form per-component attribute document. The
// store passes it through unvalidated and never interprets its contents,
// so it stays raw bytes to preserve key order.
type Specification = json.RawMessage

// Manufacturer is a catalog vendor entry.
type Manufacturer struct {
	ID   int64
	Name string
}

// ComponentType groups components into catalog categories.
type ComponentType struct {
	ID          int64
	Name        string
	Description string
}

// Component is a purchasable catalog item with its current unit price.
type Component struct {
	ID             int64
	Name           string
	TypeID         *int64
	ManufacturerID *int64
	Price          decimal.Decimal
	StockQuantity  int
	Specification  Specification
}
