package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/repository"
)

// PriceProvider is the only read the pricing engine takes from the
// catalog: a component's current unit price.
type PriceProvider interface {
	UnitPrice(ctx context.Context, componentID int64) (decimal.Decimal, error)
}

// PricingUseCase computes the live price of a configuration. The result
// is a point-in-time value; the order ledger freezes it into snapshots.
type PricingUseCase struct {
	configurations repository.ConfigurationRepository
	prices         PriceProvider
}

// NewPricingUseCase constructs PricingUseCase.
func NewPricingUseCase(configurations repository.ConfigurationRepository, prices PriceProvider) *PricingUseCase {
	return &PricingUseCase{configurations: configurations, prices: prices}
}

// Quote sums quantity times current unit price over the configuration's
// line items. A configuration without line items cannot be priced.
func (u *PricingUseCase) Quote(ctx context.Context, configurationID int64) (decimal.Decimal, error) {
	items, err := u.configurations.ListItems(ctx, configurationID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if len(items) == 0 {
		return decimal.Decimal{}, domainErrors.ErrEmptyConfiguration
	}

	total := decimal.Zero
	for _, item := range items {
		price, err := u.prices.UnitPrice(ctx, item.ComponentID)
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}
