package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
	"github.com/antech/configstore/internal/test"
)

type configurationFixture struct {
	uc             *ConfigurationUseCase
	configurations *test.ConfigurationRepositoryStub
	catalog        *test.CatalogRepositoryStub
	owner          *model.User
	admin          *model.User
	stranger       *model.User
}

func newConfigurationFixture() *configurationFixture {
	configurations := test.NewConfigurationRepositoryStub()
	catalog := test.NewCatalogRepositoryStub()
	return &configurationFixture{
		uc:             NewConfigurationUseCase(configurations, catalog),
		configurations: configurations,
		catalog:        catalog,
		owner:          &model.User{ID: 1, Role: model.RoleUser},
		admin:          &model.User{ID: 99, Role: model.RoleAdministrator},
		stranger:       &model.User{ID: 2, Role: model.RoleUser},
	}
}

func strPtr(s string) *string { return &s }

func TestCreateConfigurationNormalizesEmptyName(t *testing.T) {
	f := newConfigurationFixture()

	cfg, err := f.uc.Create(context.Background(), f.owner, strPtr("   "), "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if cfg.Name != nil {
		t.Fatalf("blank name must be stored as nil")
	}
	if cfg.DisplayName() == "" {
		t.Fatalf("fallback display name missing")
	}
}

func TestCreateConfigurationNameUniquePerOwner(t *testing.T) {
	f := newConfigurationFixture()
	ctx := context.Background()

	if _, err := f.uc.Create(ctx, f.owner, strPtr("Игровая"), ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.uc.Create(ctx, f.owner, strPtr("Игровая"), ""); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	// The same name is fine for another owner.
	if _, err := f.uc.Create(ctx, f.stranger, strPtr("Игровая"), ""); err != nil {
		t.Fatalf("other owner blocked: %v", err)
	}
	// Several unnamed builds never collide.
	if _, err := f.uc.Create(ctx, f.owner, nil, ""); err != nil {
		t.Fatalf("first unnamed: %v", err)
	}
	if _, err := f.uc.Create(ctx, f.owner, nil, ""); err != nil {
		t.Fatalf("second unnamed: %v", err)
	}
}

func TestGetMasksForeignConfiguration(t *testing.T) {
	f := newConfigurationFixture()
	ctx := context.Background()
	cfg, _ := f.uc.Create(ctx, f.owner, nil, "")

	if _, err := f.uc.Get(ctx, f.stranger, cfg.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.uc.Get(ctx, f.admin, cfg.ID); err != nil {
		t.Fatalf("admin must see any configuration: %v", err)
	}
}

func TestAddItemResolvesComponentByName(t *testing.T) {
	f := newConfigurationFixture()
	ctx := context.Background()
	seedComponent(t, f.catalog, "RTX 4090", 2500)
	cfg, _ := f.uc.Create(ctx, f.owner, nil, "")

	item, err := f.uc.AddItem(ctx, f.owner, cfg.ID, "RTX 4090", 2)
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if item.ComponentName != "RTX 4090" || item.Quantity != 2 {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestAddItemUnknownComponent(t *testing.T) {
	f := newConfigurationFixture()
	ctx := context.Background()
	cfg, _ := f.uc.Create(ctx, f.owner, nil, "")

	_, err := f.uc.AddItem(ctx, f.owner, cfg.ID, "нет такого", 1)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddItemDuplicateComponentConflicts(t *testing.T) {
	f := newConfigurationFixture()
	ctx := context.Background()
	seedComponent(t, f.catalog, "RTX 4090", 2500)
	cfg, _ := f.uc.Create(ctx, f.owner, nil, "")

	if _, err := f.uc.AddItem(ctx, f.owner, cfg.ID, "RTX 4090", 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, err := f.uc.AddItem(ctx, f.owner, cfg.ID, "RTX 4090", 1)
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAddItemRejectsBadQuantity(t *testing.T) {
	f := newConfigurationFixture()
	ctx := context.Background()
	seedComponent(t, f.catalog, "RTX 4090", 2500)
	cfg, _ := f.uc.Create(ctx, f.owner, nil, "")

	if _, err := f.uc.AddItem(ctx, f.owner, cfg.ID, "RTX 4090", 0); !errors.Is(err, domainErrors.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestAddItemMasksForeignConfiguration(t *testing.T) {
	f := newConfigurationFixture()
	ctx := context.Background()
	seedComponent(t, f.catalog, "RTX 4090", 2500)
	cfg, _ := f.uc.Create(ctx, f.owner, nil, "")

	_, err := f.uc.AddItem(ctx, f.stranger, cfg.ID, "RTX 4090", 1)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAndRemoveItem(t *testing.T) {
	f := newConfigurationFixture()
	ctx := context.Background()
	c := seedComponent(t, f.catalog, "RTX 4090", 2500)
	cfg, _ := f.uc.Create(ctx, f.owner, nil, "")
	if _, err := f.uc.AddItem(ctx, f.owner, cfg.ID, "RTX 4090", 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := f.uc.UpdateItem(ctx, f.owner, cfg.ID, c.ID, 4); err != nil {
		t.Fatalf("update item: %v", err)
	}
	items, _ := f.configurations.ListItems(ctx, cfg.ID)
	if len(items) != 1 || items[0].Quantity != 4 {
		t.Fatalf("quantity not updated: %+v", items)
	}

	if err := f.uc.RemoveItem(ctx, f.owner, cfg.ID, c.ID); err != nil {
		t.Fatalf("remove item: %v", err)
	}
	items, _ = f.configurations.ListItems(ctx, cfg.ID)
	if len(items) != 0 {
		t.Fatalf("item survived removal")
	}
}

func TestDeleteMasksForeignConfiguration(t *testing.T) {
	f := newConfigurationFixture()
	ctx := context.Background()
	cfg, _ := f.uc.Create(ctx, f.owner, nil, "")

	if err := f.uc.Delete(ctx, f.stranger, cfg.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := f.uc.Delete(ctx, f.owner, cfg.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

func TestListScopesToOwner(t *testing.T) {
	f := newConfigurationFixture()
	ctx := context.Background()
	if _, err := f.uc.Create(ctx, f.owner, strPtr("Игровая"), ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := f.uc.List(ctx, f.owner)
	if err != nil || len(mine) != 1 {
		t.Fatalf("owner list: %v, %d", err, len(mine))
	}
	theirs, err := f.uc.List(ctx, f.stranger)
	if err != nil || len(theirs) != 0 {
		t.Fatalf("stranger list: %v, %d", err, len(theirs))
	}
}
