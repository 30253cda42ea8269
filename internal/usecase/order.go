package usecase

import (
	"context"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
	"github.com/antech/configstore/internal/domain/repository"
)

// OrderUseCase is the order ledger. It is the only writer of an order's
// total: creation freezes a configuration quote into a snapshot, and
// every later snapshot mutation moves the total by a delta at the
// storage layer.
type OrderUseCase struct {
	orders         repository.OrderRepository
	configurations repository.ConfigurationRepository
	pricing        *PricingUseCase
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, configurations repository.ConfigurationRepository, pricing *PricingUseCase) *OrderUseCase {
	return &OrderUseCase{orders: orders, configurations: configurations, pricing: pricing}
}

// Create places an order from one of the caller's configurations at the
// given quantity multiplier. The configuration must have line items; its
// current quote becomes the snapshot's frozen price.
func (u *OrderUseCase) Create(ctx context.Context, caller *model.User, configurationID int64, quantity int) (*model.Order, error) {
	if quantity < 1 {
		return nil, domainErrors.ErrInvalid
	}

	cfg, err := u.configurations.GetByID(ctx, configurationID)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(cfg.UserID) {
		return nil, domainErrors.ErrNotFound
	}

	unitPrice, err := u.pricing.Quote(ctx, configurationID)
	if err != nil {
		return nil, err
	}

	return u.orders.Create(ctx, caller.ID, configurationID, quantity, unitPrice)
}

// List returns the caller's orders.
func (u *OrderUseCase) List(ctx context.Context, caller *model.User) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, caller.ID)
}

// ListAll returns every order. Administrator surface.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// Get loads an order with its snapshots, ownership masked.
func (u *OrderUseCase) Get(ctx context.Context, caller *model.User, id int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(order.UserID) {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// Delete removes an order. There is deliberately no status guard: the
// owner may delete an already paid order, matching the legacy behavior.
func (u *OrderUseCase) Delete(ctx context.Context, caller *model.User, id int64) error {
	if _, err := u.Get(ctx, caller, id); err != nil {
		return err
	}
	return u.orders.Delete(ctx, id)
}

// Attach adds another configuration to an existing order at a fresh
// quote. Administrator surface; the attached configuration's ownership
// is deliberately not revalidated, matching the legacy behavior.
func (u *OrderUseCase) Attach(ctx context.Context, orderID, configurationID int64, quantity int) (*model.OrderConfiguration, error) {
	if quantity < 1 {
		return nil, domainErrors.ErrInvalid
	}

	if _, err := u.configurations.GetByID(ctx, configurationID); err != nil {
		return nil, err
	}

	price, err := u.pricing.Quote(ctx, configurationID)
	if err != nil {
		return nil, err
	}

	return u.orders.AttachSnapshot(ctx, orderID, configurationID, quantity, price)
}

// EditSnapshotQuantity changes a snapshot's quantity at its frozen
// price. Administrator surface.
func (u *OrderUseCase) EditSnapshotQuantity(ctx context.Context, orderID, configurationID int64, quantity int) (*model.OrderConfiguration, error) {
	if quantity < 1 {
		return nil, domainErrors.ErrInvalid
	}
	return u.orders.UpdateSnapshotQuantity(ctx, orderID, configurationID, quantity)
}

// RemoveSnapshot detaches a configuration from an order. Administrator
// surface.
func (u *OrderUseCase) RemoveSnapshot(ctx context.Context, orderID, configurationID int64) error {
	return u.orders.RemoveSnapshot(ctx, orderID, configurationID)
}

// SetStatus moves an order through the status workflow. Owners may only
// pay a pending order; administrators may set any seeded status.
func (u *OrderUseCase) SetStatus(ctx context.Context, caller *model.User, orderID int64, statusName string) error {
	order, err := u.Get(ctx, caller, orderID)
	if err != nil {
		return err
	}

	if !CanTransition(caller.Role, order.Status, statusName) {
		return domainErrors.ErrForbidden
	}

	status, err := u.orders.GetStatusByName(ctx, statusName)
	if err != nil {
		return err
	}
	return u.orders.SetStatus(ctx, orderID, status.ID)
}

// Statuses lists the seeded status vocabulary.
func (u *OrderUseCase) Statuses(ctx context.Context) ([]model.OrderStatus, error) {
	return u.orders.ListStatuses(ctx)
}
