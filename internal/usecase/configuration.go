package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
	"github.com/antech/configstore/internal/domain/repository"
)

// ConfigurationUseCase manages build templates and their line items.
// Every entity-scoped method masks foreign ownership as not found, so a
// caller cannot probe for the existence of other users' builds.
type ConfigurationUseCase struct {
	configurations repository.ConfigurationRepository
	catalog        repository.CatalogRepository
}

// NewConfigurationUseCase constructs ConfigurationUseCase.
func NewConfigurationUseCase(configurations repository.ConfigurationRepository, catalog repository.CatalogRepository) *ConfigurationUseCase {
	return &ConfigurationUseCase{configurations: configurations, catalog: catalog}
}

// Create opens an empty configuration for the caller. The name is
// optional; when present it must be unique among the caller's builds.
func (u *ConfigurationUseCase) Create(ctx context.Context, caller *model.User, name *string, description string) (*model.Configuration, error) {
	if name != nil && strings.TrimSpace(*name) == "" {
		name = nil
	}
	return u.configurations.Create(ctx, caller.ID, name, description)
}

// List returns the caller's configurations without line items.
func (u *ConfigurationUseCase) List(ctx context.Context, caller *model.User) ([]model.Configuration, error) {
	return u.configurations.ListByUser(ctx, caller.ID)
}

// Get loads a configuration with its line items.
func (u *ConfigurationUseCase) Get(ctx context.Context, caller *model.User, id int64) (*model.Configuration, error) {
	cfg, err := u.configurations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(cfg.UserID) {
		return nil, domainErrors.ErrNotFound
	}
	return cfg, nil
}

// Update renames or redescribes a configuration.
func (u *ConfigurationUseCase) Update(ctx context.Context, caller *model.User, id int64, name *string, description string) error {
	if _, err := u.Get(ctx, caller, id); err != nil {
		return err
	}
	if name != nil && strings.TrimSpace(*name) == "" {
		name = nil
	}
	return u.configurations.Update(ctx, id, name, description)
}

// Delete removes a configuration with its line items. Orders holding a
// frozen snapshot of the configuration are not affected.
func (u *ConfigurationUseCase) Delete(ctx context.Context, caller *model.User, id int64) error {
	if _, err := u.Get(ctx, caller, id); err != nil {
		return err
	}
	return u.configurations.Delete(ctx, id)
}

// AddItem puts a component into the configuration, resolved by its
// catalog name. A component may appear only once per configuration.
func (u *ConfigurationUseCase) AddItem(ctx context.Context, caller *model.User, configurationID int64, componentName string, quantity int) (*model.ConfigurationItem, error) {
	if quantity < 1 {
		return nil, domainErrors.ErrInvalid
	}
	if _, err := u.Get(ctx, caller, configurationID); err != nil {
		return nil, err
	}

	component, err := u.catalog.GetComponentByName(ctx, componentName)
	if err != nil {
		return nil, err
	}

	item, err := u.configurations.AddItem(ctx, configurationID, component.ID, quantity)
	if err != nil {
		return nil, err
	}
	item.ComponentName = component.Name
	return item, nil
}

// UpdateItem changes a line item's quantity.
func (u *ConfigurationUseCase) UpdateItem(ctx context.Context, caller *model.User, configurationID, componentID int64, quantity int) error {
	if quantity < 1 {
		return domainErrors.ErrInvalid
	}
	if _, err := u.Get(ctx, caller, configurationID); err != nil {
		return err
	}
	return u.configurations.UpdateItemQuantity(ctx, configurationID, componentID, quantity)
}

// RemoveItem drops a component from the configuration.
func (u *ConfigurationUseCase) RemoveItem(ctx context.Context, caller *model.User, configurationID, componentID int64) error {
	if _, err := u.Get(ctx, caller, configurationID); err != nil {
		return err
	}
	return u.configurations.RemoveItem(ctx, configurationID, componentID)
}
