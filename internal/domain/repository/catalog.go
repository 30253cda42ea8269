package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/antech/configstore/internal/domain/model"
)

// CatalogRepository provides access to components, their types and
// manufacturers. UnitPrice is the read the pricing engine depends on;
// the rest serves catalog browsing and administration.
type CatalogRepository interface {
	CreateComponent(ctx context.Context, component *model.Component) (*model.Component, error)
	UpdateComponent(ctx context.Context, component *model.Component) error
	DeleteComponent(ctx context.Context, id int64) error
	GetComponent(ctx context.Context, id int64) (*model.Component, error)
	GetComponentByName(ctx context.Context, name string) (*model.Component, error)
	ListComponents(ctx context.Context) ([]model.Component, error)
	UnitPrice(ctx context.Context, componentID int64) (decimal.Decimal, error)

	CreateManufacturer(ctx context.Context, name string) (*model.Manufacturer, error)
	ListManufacturers(ctx context.Context) ([]model.Manufacturer, error)
	CreateComponentType(ctx context.Context, name, description string) (*model.ComponentType, error)
	ListComponentTypes(ctx context.Context) ([]model.ComponentType, error)
}
