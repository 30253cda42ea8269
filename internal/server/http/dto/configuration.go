package dto

import "time"

// ConfigurationRequest creates or renames a build template.
type ConfigurationRequest struct {
	Name        *string `json:"name"`
	Description string  `json:"description"`
}

// ConfigurationResponse is the public view of a build template.
type ConfigurationResponse struct {
	ID          int64                       `json:"id"`
	Name        string                      `json:"name"`
	Description string                      `json:"description,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	Items       []ConfigurationItemResponse `json:"items,omitempty"`
}

// ConfigurationItemRequest puts a component into a build by catalog name.
type ConfigurationItemRequest struct {
	Component string `json:"component"`
	Quantity  int    `json:"quantity"`
}

// ItemQuantityRequest changes a line item's quantity.
type ItemQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ConfigurationItemResponse is one line item of a build.
type ConfigurationItemResponse struct {
	ComponentID   int64  `json:"component_id"`
	ComponentName string `json:"component_name"`
	Quantity      int    `json:"quantity"`
}

// QuoteResponse carries the current price of a build.
type QuoteResponse struct {
	Price string `json:"price"`
}
