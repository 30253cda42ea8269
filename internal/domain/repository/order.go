package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/antech/configstore/internal/domain/model"
)

// OrderRepository is the order ledger's storage contract. Every method
// that touches an order total runs as one transaction and adjusts the
// total additively, so the total stays equal to the sum of snapshot
// costs and concurrent edits to the same order cannot lose updates.
type OrderRepository interface {
	// Create inserts an order in the pending status together with its
	// first snapshot frozen at unitPrice. Total is unitPrice times quantity.
	Create(ctx context.Context, userID, configurationID int64, quantity int, unitPrice decimal.Decimal) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	Delete(ctx context.Context, id int64) error

	// AttachSnapshot adds a second configuration to an existing order and
	// increments the total by price times quantity. An already attached
	// configuration yields ErrAlreadyExists.
	AttachSnapshot(ctx context.Context, orderID, configurationID int64, quantity int, price decimal.Decimal) (*model.OrderConfiguration, error)
	// UpdateSnapshotQuantity changes a snapshot's quantity under a row lock
	// and shifts the total by price_at_time times the quantity difference.
	UpdateSnapshotQuantity(ctx context.Context, orderID, configurationID int64, quantity int) (*model.OrderConfiguration, error)
	// RemoveSnapshot deletes the snapshot and subtracts its cost.
	RemoveSnapshot(ctx context.Context, orderID, configurationID int64) error

	SetStatus(ctx context.Context, orderID, statusID int64) error
	GetStatusByName(ctx context.Context, name string) (*model.OrderStatus, error)
	ListStatuses(ctx context.Context) ([]model.OrderStatus, error)
}
