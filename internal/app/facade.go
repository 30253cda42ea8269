package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/antech/configstore/internal/domain/model"
	"github.com/antech/configstore/internal/usecase"
)

// StoreFacade aggregates the use cases behind one application surface.
// HTTP handlers and the background worker talk only to it.
type StoreFacade struct {
	auth           *usecase.AuthUseCase
	catalog        *usecase.CatalogUseCase
	configurations *usecase.ConfigurationUseCase
	pricing        *usecase.PricingUseCase
	orders         *usecase.OrderUseCase
}

// NewStoreFacade constructs StoreFacade.
func NewStoreFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	configurations *usecase.ConfigurationUseCase,
	pricing *usecase.PricingUseCase,
	orders *usecase.OrderUseCase,
) *StoreFacade {
	return &StoreFacade{
		auth:           auth,
		catalog:        catalog,
		configurations: configurations,
		pricing:        pricing,
		orders:         orders,
	}
}

func (f *StoreFacade) Register(ctx context.Context, email, password, fullName, phone, address string) (*model.User, error) {
	return f.auth.Register(ctx, email, password, fullName, phone, address)
}

func (f *StoreFacade) Login(ctx context.Context, login, password string) (*model.User, *model.Session, error) {
	return f.auth.Login(ctx, login, password)
}

func (f *StoreFacade) Authorize(ctx context.Context, token string, required model.Role) (*model.User, error) {
	return f.auth.Authorize(ctx, token, required)
}

func (f *StoreFacade) Logout(ctx context.Context, token string) error {
	return f.auth.Logout(ctx, token)
}

func (f *StoreFacade) DeleteAccount(ctx context.Context, caller *model.User) error {
	return f.auth.DeleteAccount(ctx, caller)
}

func (f *StoreFacade) RequestPasswordReset(ctx context.Context, email string) error {
	return f.auth.RequestPasswordReset(ctx, email)
}

func (f *StoreFacade) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	return f.auth.ConfirmPasswordReset(ctx, email, code, newPassword)
}

func (f *StoreFacade) ListUsers(ctx context.Context) ([]model.User, error) {
	return f.auth.ListUsers(ctx)
}

func (f *StoreFacade) ChangeRole(ctx context.Context, userID int64, role model.Role) error {
	return f.auth.ChangeRole(ctx, userID, role)
}

func (f *StoreFacade) ListComponents(ctx context.Context) ([]model.Component, error) {
	return f.catalog.ListComponents(ctx)
}

func (f *StoreFacade) GetComponent(ctx context.Context, id int64) (*model.Component, error) {
	return f.catalog.GetComponent(ctx, id)
}

func (f *StoreFacade) CreateComponent(ctx context.Context, component *model.Component) (*model.Component, error) {
	return f.catalog.CreateComponent(ctx, component)
}

func (f *StoreFacade) UpdateComponent(ctx context.Context, component *model.Component) error {
	return f.catalog.UpdateComponent(ctx, component)
}

func (f *StoreFacade) DeleteComponent(ctx context.Context, id int64) error {
	return f.catalog.DeleteComponent(ctx, id)
}

func (f *StoreFacade) ListComponentTypes(ctx context.Context) ([]model.ComponentType, error) {
	return f.catalog.ListComponentTypes(ctx)
}

func (f *StoreFacade) ListManufacturers(ctx context.Context) ([]model.Manufacturer, error) {
	return f.catalog.ListManufacturers(ctx)
}

func (f *StoreFacade) CreateManufacturer(ctx context.Context, name string) (*model.Manufacturer, error) {
	return f.catalog.CreateManufacturer(ctx, name)
}

func (f *StoreFacade) CreateComponentType(ctx context.Context, name, description string) (*model.ComponentType, error) {
	return f.catalog.CreateComponentType(ctx, name, description)
}

func (f *StoreFacade) CreateConfiguration(ctx context.Context, caller *model.User, name *string, description string) (*model.Configuration, error) {
	return f.configurations.Create(ctx, caller, name, description)
}

func (f *StoreFacade) Configurations(ctx context.Context, caller *model.User) ([]model.Configuration, error) {
	return f.configurations.List(ctx, caller)
}

func (f *StoreFacade) Configuration(ctx context.Context, caller *model.User, id int64) (*model.Configuration, error) {
	return f.configurations.Get(ctx, caller, id)
}

func (f *StoreFacade) UpdateConfiguration(ctx context.Context, caller *model.User, id int64, name *string, description string) error {
	return f.configurations.Update(ctx, caller, id, name, description)
}

func (f *StoreFacade) DeleteConfiguration(ctx context.Context, caller *model.User, id int64) error {
	return f.configurations.Delete(ctx, caller, id)
}

func (f *StoreFacade) AddConfigurationItem(ctx context.Context, caller *model.User, configurationID int64, componentName string, quantity int) (*model.ConfigurationItem, error) {
	return f.configurations.AddItem(ctx, caller, configurationID, componentName, quantity)
}

func (f *StoreFacade) UpdateConfigurationItem(ctx context.Context, caller *model.User, configurationID, componentID int64, quantity int) error {
	return f.configurations.UpdateItem(ctx, caller, configurationID, componentID, quantity)
}

func (f *StoreFacade) RemoveConfigurationItem(ctx context.Context, caller *model.User, configurationID, componentID int64) error {
	return f.configurations.RemoveItem(ctx, caller, configurationID, componentID)
}

// QuoteConfiguration prices the caller's configuration at current catalog
// prices. Ownership is checked before any pricing work happens.
func (f *StoreFacade) QuoteConfiguration(ctx context.Context, caller *model.User, configurationID int64) (decimal.Decimal, error) {
	if _, err := f.configurations.Get(ctx, caller, configurationID); err != nil {
		return decimal.Decimal{}, err
	}
	return f.pricing.Quote(ctx, configurationID)
}

func (f *StoreFacade) CreateOrder(ctx context.Context, caller *model.User, configurationID int64, quantity int) (*model.Order, error) {
	return f.orders.Create(ctx, caller, configurationID, quantity)
}

func (f *StoreFacade) Orders(ctx context.Context, caller *model.User) ([]model.Order, error) {
	return f.orders.List(ctx, caller)
}

func (f *StoreFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *StoreFacade) Order(ctx context.Context, caller *model.User, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, caller, id)
}

func (f *StoreFacade) DeleteOrder(ctx context.Context, caller *model.User, id int64) error {
	return f.orders.Delete(ctx, caller, id)
}

func (f *StoreFacade) AttachConfiguration(ctx context.Context, orderID, configurationID int64, quantity int) (*model.OrderConfiguration, error) {
	return f.orders.Attach(ctx, orderID, configurationID, quantity)
}

func (f *StoreFacade) UpdateOrderConfiguration(ctx context.Context, orderID, configurationID int64, quantity int) (*model.OrderConfiguration, error) {
	return f.orders.EditSnapshotQuantity(ctx, orderID, configurationID, quantity)
}

func (f *StoreFacade) RemoveOrderConfiguration(ctx context.Context, orderID, configurationID int64) error {
	return f.orders.RemoveSnapshot(ctx, orderID, configurationID)
}

func (f *StoreFacade) SetOrderStatus(ctx context.Context, caller *model.User, orderID int64, statusName string) error {
	return f.orders.SetStatus(ctx, caller, orderID, statusName)
}

func (f *StoreFacade) OrderStatuses(ctx context.Context) ([]model.OrderStatus, error) {
	return f.orders.Statuses(ctx)
}
