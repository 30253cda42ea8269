package dto

import "time"

// OrderCreateRequest places an order from a configuration.
type OrderCreateRequest struct {
	ConfigurationID int64 `json:"configuration_id"`
	Quantity        int   `json:"quantity"`
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"user_id"`
	OrderDate time.Time          `json:"order_date"`
	Total     string             `json:"total"`
	Status    string             `json:"status"`
	Snapshots []SnapshotResponse `json:"configurations,omitempty"`
}

// SnapshotResponse is one frozen configuration within an order.
type SnapshotResponse struct {
	ConfigurationID int64  `json:"configuration_id"`
	Quantity        int    `json:"quantity"`
	PriceAtTime     string `json:"price_at_time"`
}

// SnapshotRequest attaches a configuration to an existing order.
type SnapshotRequest struct {
	ConfigurationID int64 `json:"configuration_id"`
	Quantity        int   `json:"quantity"`
}

// StatusChangeRequest moves an order to the named status.
type StatusChangeRequest struct {
	Status string `json:"status"`
}

// StatusResponse is one entry of the status vocabulary.
type StatusResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
