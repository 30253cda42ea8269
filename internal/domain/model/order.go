package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seeded status vocabulary. Only the first two are referenced by code:
// orders start in StatusPending and owners may move them to StatusPaid.
// The rest are reachable through the administrator path.
const (
	StatusPending   = "В обработке"
	StatusPaid      = "Оплачен"
	StatusAssembly  = "Собирается"
	StatusShipped   = "Отправлен"
	StatusDelivered = "Доставлен"
	StatusCancelled = "Отменен"
)

// OrderStatus is one named stage of the order lifecycle.
type OrderStatus struct {
	ID   int64
	Name string
}

// Order is a purchase record. Total is owned by the order ledger and is
// kept equal to the sum of price_at_time times quantity over the attached
// snapshots after every snapshot mutation.
type Order struct {
	ID        int64
	UserID    int64
	OrderDate time.Time
	Total     decimal.Decimal
	StatusID  int64
	Status    string
	Snapshots []OrderConfiguration
}

// OrderConfiguration freezes a configuration's price into an order. Once
// written, PriceAtTime never changes; later catalog or configuration
// edits do not touch it.
type OrderConfiguration struct {
	ID              int64
	OrderID         int64
	ConfigurationID int64
	Quantity        int
	PriceAtTime     decimal.Decimal
}

// Cost returns the snapshot's contribution to the order total.
func (s *OrderConfiguration) Cost() decimal.Decimal {
	return s.PriceAtTime.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// SnapshotDelta computes the total adjustment produced by changing a
// snapshot's quantity at its frozen price.
func SnapshotDelta(price decimal.Decimal, oldQuantity, newQuantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(newQuantity - oldQuantity)))
}
