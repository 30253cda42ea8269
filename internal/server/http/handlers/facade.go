package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/antech/configstore/internal/domain/model"
)

// AuthFacade describes account and session capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password, fullName, phone, address string) (*model.User, error)
	Login(ctx context.Context, login, password string) (*model.User, *model.Session, error)
	Logout(ctx context.Context, token string) error
	DeleteAccount(ctx context.Context, caller *model.User) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error
	ListUsers(ctx context.Context) ([]model.User, error)
	ChangeRole(ctx context.Context, userID int64, role model.Role) error
}

// CatalogFacade encapsulates catalog operations exposed via HTTP.
type CatalogFacade interface {
	ListComponents(ctx context.Context) ([]model.Component, error)
	GetComponent(ctx context.Context, id int64) (*model.Component, error)
	CreateComponent(ctx context.Context, component *model.Component) (*model.Component, error)
	UpdateComponent(ctx context.Context, component *model.Component) error
	DeleteComponent(ctx context.Context, id int64) error
	ListComponentTypes(ctx context.Context) ([]model.ComponentType, error)
	ListManufacturers(ctx context.Context) ([]model.Manufacturer, error)
	CreateManufacturer(ctx context.Context, name string) (*model.Manufacturer, error)
	CreateComponentType(ctx context.Context, name, description string) (*model.ComponentType, error)
}

// ConfigurationFacade provides build template operations.
type ConfigurationFacade interface {
	CreateConfiguration(ctx context.Context, caller *model.User, name *string, description string) (*model.Configuration, error)
	Configurations(ctx context.Context, caller *model.User) ([]model.Configuration, error)
	Configuration(ctx context.Context, caller *model.User, id int64) (*model.Configuration, error)
	UpdateConfiguration(ctx context.Context, caller *model.User, id int64, name *string, description string) error
	DeleteConfiguration(ctx context.Context, caller *model.User, id int64) error
	AddConfigurationItem(ctx context.Context, caller *model.User, configurationID int64, componentName string, quantity int) (*model.ConfigurationItem, error)
	UpdateConfigurationItem(ctx context.Context, caller *model.User, configurationID, componentID int64, quantity int) error
	RemoveConfigurationItem(ctx context.Context, caller *model.User, configurationID, componentID int64) error
	QuoteConfiguration(ctx context.Context, caller *model.User, configurationID int64) (decimal.Decimal, error)
}

// OrderFacade provides order ledger operations.
type OrderFacade interface {
	CreateOrder(ctx context.Context, caller *model.User, configurationID int64, quantity int) (*model.Order, error)
	Orders(ctx context.Context, caller *model.User) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, caller *model.User, id int64) (*model.Order, error)
	DeleteOrder(ctx context.Context, caller *model.User, id int64) error
	AttachConfiguration(ctx context.Context, orderID, configurationID int64, quantity int) (*model.OrderConfiguration, error)
	UpdateOrderConfiguration(ctx context.Context, orderID, configurationID int64, quantity int) (*model.OrderConfiguration, error)
	RemoveOrderConfiguration(ctx context.Context, orderID, configurationID int64) error
	SetOrderStatus(ctx context.Context, caller *model.User, orderID int64, statusName string) error
	OrderStatuses(ctx context.Context) ([]model.OrderStatus, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CatalogFacade
	ConfigurationFacade
	OrderFacade
	Authorize(ctx context.Context, token string, required model.Role) (*model.User, error)
}
