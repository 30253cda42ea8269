package repository

import (
	"context"

	"github.com/antech/configstore/internal/domain/model"
)

// ConfigurationRepository owns build templates and their line items.
// A configuration name is unique per owner; a component appears at most
// once per configuration. Both violations surface as ErrAlreadyExists.
type ConfigurationRepository interface {
	Create(ctx context.Context, userID int64, name *string, description string) (*model.Configuration, error)
	GetByID(ctx context.Context, id int64) (*model.Configuration, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Configuration, error)
	Update(ctx context.Context, id int64, name *string, description string) error
	Delete(ctx context.Context, id int64) error

	AddItem(ctx context.Context, configurationID, componentID int64, quantity int) (*model.ConfigurationItem, error)
	UpdateItemQuantity(ctx context.Context, configurationID, componentID int64, quantity int) error
	RemoveItem(ctx context.Context, configurationID, componentID int64) error
	ListItems(ctx context.Context, configurationID int64) ([]model.ConfigurationItem, error)
}
