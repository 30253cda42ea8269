package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
	"github.com/antech/configstore/internal/domain/repository"
)

// CatalogUseCase covers catalog browsing and administration. Components
// are visible to every authenticated user; mutations are administrator
// surface, gated at the router.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

func (u *CatalogUseCase) ListComponents(ctx context.Context) ([]model.Component, error) {
	return u.catalog.ListComponents(ctx)
}

func (u *CatalogUseCase) GetComponent(ctx context.Context, id int64) (*model.Component, error) {
	return u.catalog.GetComponent(ctx, id)
}

func (u *CatalogUseCase) ListComponentTypes(ctx context.Context) ([]model.ComponentType, error) {
	return u.catalog.ListComponentTypes(ctx)
}

func (u *CatalogUseCase) ListManufacturers(ctx context.Context) ([]model.Manufacturer, error) {
	return u.catalog.ListManufacturers(ctx)
}

// CreateComponent registers a catalog item. The specification JSON is
// stored as-is and never inspected.
func (u *CatalogUseCase) CreateComponent(ctx context.Context, component *model.Component) (*model.Component, error) {
	if err := validateComponent(component); err != nil {
		return nil, err
	}
	return u.catalog.CreateComponent(ctx, component)
}

func (u *CatalogUseCase) UpdateComponent(ctx context.Context, component *model.Component) error {
	if err := validateComponent(component); err != nil {
		return err
	}
	return u.catalog.UpdateComponent(ctx, component)
}

func (u *CatalogUseCase) DeleteComponent(ctx context.Context, id int64) error {
	return u.catalog.DeleteComponent(ctx, id)
}

func (u *CatalogUseCase) CreateManufacturer(ctx context.Context, name string) (*model.Manufacturer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainErrors.ErrInvalid
	}
	return u.catalog.CreateManufacturer(ctx, name)
}

func (u *CatalogUseCase) CreateComponentType(ctx context.Context, name, description string) (*model.ComponentType, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainErrors.ErrInvalid
	}
	return u.catalog.CreateComponentType(ctx, name, description)
}

func validateComponent(component *model.Component) error {
	if strings.TrimSpace(component.Name) == "" {
		return domainErrors.ErrInvalid
	}
	if component.Price.IsNegative() {
		return domainErrors.ErrInvalid
	}
	if component.StockQuantity < 0 {
		return domainErrors.ErrInvalid
	}
	return nil
}
