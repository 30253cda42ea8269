package dto

import "encoding/json"

// ComponentRequest describes a catalog item payload.
type ComponentRequest struct {
	Name           string          `json:"name"`
	TypeID         *int64          `json:"type_id"`
	ManufacturerID *int64          `json:"manufacturer_id"`
	Price          string          `json:"price"`
	StockQuantity  int             `json:"stock_quantity"`
	Specification  json.RawMessage `json:"specification,omitempty"`
}

// ComponentResponse is the public view of a catalog item.
type ComponentResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	TypeID         *int64          `json:"type_id,omitempty"`
	ManufacturerID *int64          `json:"manufacturer_id,omitempty"`
	Price          string          `json:"price"`
	StockQuantity  int             `json:"stock_quantity"`
	Specification  json.RawMessage `json:"specification,omitempty"`
}

// ManufacturerRequest registers a vendor.
type ManufacturerRequest struct {
	Name string `json:"name"`
}

// ManufacturerResponse is the public view of a vendor.
type ManufacturerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ComponentTypeRequest registers a catalog category.
type ComponentTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ComponentTypeResponse is the public view of a catalog category.
type ComponentTypeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
