package model

import (
	"fmt"
	"time"
)

// Configuration is a named, user-owned build template: a set of catalog
// components with quantities. It carries no prices of its own; its cost
// is computed from current catalog prices on demand.
type Configuration struct {
	ID          int64
	UserID      int64
	Name        *string
	Description string
	CreatedAt   time.Time
	Items       []ConfigurationItem
}

// DisplayName returns the stored name or the numbered fallback used when
// the owner never named the build.
func (c *Configuration) DisplayName() string {
	if c.Name != nil && *c.Name != "" {
		return *c.Name
	}
	return fmt.Sprintf("Конфигурация #%d", c.ID)
}

// ConfigurationItem is one component row within a configuration. A
// component appears at most once per configuration.
type ConfigurationItem struct {
	ID              int64
	ConfigurationID int64
	ComponentID     int64
	ComponentName   string
	Quantity        int
}
