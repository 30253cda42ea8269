package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
)

// UserRepositoryStub stores accounts in-memory for tests.
type UserRepositoryStub struct {
	ByID    map[int64]*model.User
	ByEmail map[string]*model.User
	ByPhone map[string]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByID:    make(map[int64]*model.User),
		ByEmail: make(map[string]*model.User),
		ByPhone: make(map[string]*model.User),
		Next:    1,
	}
}

// Create registers an account unless email or phone is already taken.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if _, exists := s.ByPhone[user.Phone]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := *user
	stored.ID = s.Next
	s.Next++
	s.ByID[stored.ID] = &stored
	s.ByEmail[stored.Email] = &stored
	s.ByPhone[stored.Phone] = &stored
	return &stored, nil
}

// GetByID fetches an account by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail fetches an account by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByPhone fetches an account by phone or returns not found.
func (s *UserRepositoryStub) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByPhone[phone]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored account.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		users = append(users, *u)
	}
	return users, nil
}

// UpdateRole assigns a role to the stored account.
func (s *UserRepositoryStub) UpdateRole(ctx context.Context, userID int64, role model.Role) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.Role = role
	return nil
}

// UpdatePassword replaces the stored hash.
func (s *UserRepositoryStub) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

// Delete removes the account.
func (s *UserRepositoryStub) Delete(ctx context.Context, userID int64) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, userID)
	delete(s.ByEmail, user.Email)
	delete(s.ByPhone, user.Phone)
	return nil
}

// SessionRepositoryStub keeps sessions in-memory with real sliding expiry.
type SessionRepositoryStub struct {
	Sessions map[string]*model.Session
	Users    map[int64]*model.User
	Next     int64
	Now      func() time.Time
	Err      error
}

// NewSessionRepositoryStub constructs stub repository with initialized maps.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{
		Sessions: make(map[string]*model.Session),
		Users:    make(map[int64]*model.User),
		Next:     1,
		Now:      time.Now,
	}
}

// Create opens a session for the user.
func (s *SessionRepositoryStub) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) (*model.Session, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	session := &model.Session{ID: s.Next, UserID: userID, Token: token, CreatedAt: s.Now(), ExpiresAt: expiresAt}
	s.Next++
	s.Sessions[token] = session
	return session, nil
}

// Authenticate resolves a live token and pushes its expiry forward.
func (s *SessionRepositoryStub) Authenticate(ctx context.Context, token string, window time.Duration) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	session, ok := s.Sessions[token]
	if !ok || !session.ExpiresAt.After(s.Now()) {
		return nil, domainErrors.ErrUnauthenticated
	}
	session.ExpiresAt = s.Now().Add(window)
	user, ok := s.Users[session.UserID]
	if !ok {
		return nil, domainErrors.ErrUnauthenticated
	}
	return user, nil
}

// DeleteByToken drops the session if present.
func (s *SessionRepositoryStub) DeleteByToken(ctx context.Context, token string) error {
	if s.Err != nil {
		return s.Err
	}
	delete(s.Sessions, token)
	return nil
}

// DeleteByUser revokes every session of the user.
func (s *SessionRepositoryStub) DeleteByUser(ctx context.Context, userID int64) error {
	if s.Err != nil {
		return s.Err
	}
	for token, session := range s.Sessions {
		if session.UserID == userID {
			delete(s.Sessions, token)
		}
	}
	return nil
}

// PurgeExpired removes dead sessions and reports how many.
func (s *SessionRepositoryStub) PurgeExpired(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	var purged int64
	for token, session := range s.Sessions {
		if !session.ExpiresAt.After(s.Now()) {
			delete(s.Sessions, token)
			purged++
		}
	}
	return purged, nil
}

// PasswordResetRepositoryStub keeps recovery codes in-memory.
type PasswordResetRepositoryStub struct {
	Requests []model.PasswordResetRequest
	Next     int64
	Now      func() time.Time
	Err      error
}

// NewPasswordResetRepositoryStub constructs the stub.
func NewPasswordResetRepositoryStub() *PasswordResetRepositoryStub {
	return &PasswordResetRepositoryStub{Next: 1, Now: time.Now}
}

// Create stores a recovery code.
func (s *PasswordResetRepositoryStub) Create(ctx context.Context, userID int64, code string, expiresAt time.Time) error {
	if s.Err != nil {
		return s.Err
	}
	s.Requests = append(s.Requests, model.PasswordResetRequest{
		ID: s.Next, UserID: userID, Code: code, CreatedAt: s.Now(), ExpiresAt: expiresAt,
	})
	s.Next++
	return nil
}

// GetActive returns the newest live request matching the code.
func (s *PasswordResetRepositoryStub) GetActive(ctx context.Context, userID int64, code string) (*model.PasswordResetRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := len(s.Requests) - 1; i >= 0; i-- {
		req := s.Requests[i]
		if req.UserID == userID && req.Code == code && req.ExpiresAt.After(s.Now()) {
			return &req, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the request by identifier.
func (s *PasswordResetRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i, req := range s.Requests {
		if req.ID == id {
			s.Requests = append(s.Requests[:i], s.Requests[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// PurgeExpired removes dead requests and reports how many.
func (s *PasswordResetRepositoryStub) PurgeExpired(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	var purged int64
	kept := s.Requests[:0]
	for _, req := range s.Requests {
		if req.ExpiresAt.After(s.Now()) {
			kept = append(kept, req)
		} else {
			purged++
		}
	}
	s.Requests = kept
	return purged, nil
}

// CatalogRepositoryStub keeps the component catalog in-memory.
type CatalogRepositoryStub struct {
	Components    map[int64]*model.Component
	Manufacturers map[int64]*model.Manufacturer
	Types         map[int64]*model.ComponentType
	Next          int64
	Err           error
	UnitPriceFn   func(context.Context, int64) (decimal.Decimal, error)
}

// NewCatalogRepositoryStub constructs stub repository with initialized maps.
func NewCatalogRepositoryStub() *CatalogRepositoryStub {
	return &CatalogRepositoryStub{
		Components:    make(map[int64]*model.Component),
		Manufacturers: make(map[int64]*model.Manufacturer),
		Types:         make(map[int64]*model.ComponentType),
		Next:          1,
	}
}

// CreateComponent registers a catalog item unless the name is taken.
func (s *CatalogRepositoryStub) CreateComponent(ctx context.Context, component *model.Component) (*model.Component, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Components {
		if c.Name == component.Name {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	stored := *component
	stored.ID = s.Next
	s.Next++
	s.Components[stored.ID] = &stored
	return &stored, nil
}

// UpdateComponent replaces the stored item.
func (s *CatalogRepositoryStub) UpdateComponent(ctx context.Context, component *model.Component) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Components[component.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *component
	s.Components[component.ID] = &stored
	return nil
}

// DeleteComponent removes the item.
func (s *CatalogRepositoryStub) DeleteComponent(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Components[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Components, id)
	return nil
}

// GetComponent fetches by identifier or returns not found.
func (s *CatalogRepositoryStub) GetComponent(ctx context.Context, id int64) (*model.Component, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.Components[id]; ok {
		return c, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetComponentByName fetches by catalog name or returns not found.
func (s *CatalogRepositoryStub) GetComponentByName(ctx context.Context, name string) (*model.Component, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Components {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListComponents returns every stored item.
func (s *CatalogRepositoryStub) ListComponents(ctx context.Context) ([]model.Component, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	components := make([]model.Component, 0, len(s.Components))
	for _, c := range s.Components {
		components = append(components, *c)
	}
	return components, nil
}

// UnitPrice returns the item's current price.
func (s *CatalogRepositoryStub) UnitPrice(ctx context.Context, componentID int64) (decimal.Decimal, error) {
	if s.UnitPriceFn != nil {
		return s.UnitPriceFn(ctx, componentID)
	}
	if s.Err != nil {
		return decimal.Decimal{}, s.Err
	}
	if c, ok := s.Components[componentID]; ok {
		return c.Price, nil
	}
	return decimal.Decimal{}, domainErrors.ErrNotFound
}

// CreateManufacturer registers a vendor.
func (s *CatalogRepositoryStub) CreateManufacturer(ctx context.Context, name string) (*model.Manufacturer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	m := &model.Manufacturer{ID: s.Next, Name: name}
	s.Next++
	s.Manufacturers[m.ID] = m
	return m, nil
}

// ListManufacturers returns every vendor.
func (s *CatalogRepositoryStub) ListManufacturers(ctx context.Context) ([]model.Manufacturer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Manufacturer, 0, len(s.Manufacturers))
	for _, m := range s.Manufacturers {
		out = append(out, *m)
	}
	return out, nil
}

// CreateComponentType registers a category.
func (s *CatalogRepositoryStub) CreateComponentType(ctx context.Context, name, description string) (*model.ComponentType, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	t := &model.ComponentType{ID: s.Next, Name: name, Description: description}
	s.Next++
	s.Types[t.ID] = t
	return t, nil
}

// ListComponentTypes returns every category.
func (s *CatalogRepositoryStub) ListComponentTypes(ctx context.Context) ([]model.ComponentType, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.ComponentType, 0, len(s.Types))
	for _, t := range s.Types {
		out = append(out, *t)
	}
	return out, nil
}

// ConfigurationRepositoryStub keeps build templates in-memory, enforcing
// per-owner name uniqueness and one row per component.
type ConfigurationRepositoryStub struct {
	Configurations map[int64]*model.Configuration
	Next           int64
	Err            error
	ListItemsFn    func(context.Context, int64) ([]model.ConfigurationItem, error)
}

// NewConfigurationRepositoryStub constructs stub repository with initialized maps.
func NewConfigurationRepositoryStub() *ConfigurationRepositoryStub {
	return &ConfigurationRepositoryStub{
		Configurations: make(map[int64]*model.Configuration),
		Next:           1,
	}
}

// Create opens an empty configuration.
func (s *ConfigurationRepositoryStub) Create(ctx context.Context, userID int64, name *string, description string) (*model.Configuration, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if name != nil {
		for _, c := range s.Configurations {
			if c.UserID == userID && c.Name != nil && *c.Name == *name {
				return nil, domainErrors.ErrAlreadyExists
			}
		}
	}
	cfg := &model.Configuration{ID: s.Next, UserID: userID, Name: name, Description: description, CreatedAt: time.Now()}
	s.Next++
	s.Configurations[cfg.ID] = cfg
	return cfg, nil
}

// GetByID fetches a configuration with items or returns not found.
func (s *ConfigurationRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Configuration, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if cfg, ok := s.Configurations[id]; ok {
		return cfg, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns the owner's configurations.
func (s *ConfigurationRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Configuration, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Configuration, 0)
	for _, c := range s.Configurations {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

// Update renames the configuration, enforcing per-owner uniqueness.
func (s *ConfigurationRepositoryStub) Update(ctx context.Context, id int64, name *string, description string) error {
	if s.Err != nil {
		return s.Err
	}
	cfg, ok := s.Configurations[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if name != nil {
		for _, c := range s.Configurations {
			if c.ID != id && c.UserID == cfg.UserID && c.Name != nil && *c.Name == *name {
				return domainErrors.ErrAlreadyExists
			}
		}
	}
	cfg.Name = name
	cfg.Description = description
	return nil
}

// Delete removes the configuration with its items.
func (s *ConfigurationRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Configurations[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Configurations, id)
	return nil
}

// AddItem appends a line item, one row per component.
func (s *ConfigurationRepositoryStub) AddItem(ctx context.Context, configurationID, componentID int64, quantity int) (*model.ConfigurationItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	cfg, ok := s.Configurations[configurationID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	for _, item := range cfg.Items {
		if item.ComponentID == componentID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	item := model.ConfigurationItem{ID: s.Next, ConfigurationID: configurationID, ComponentID: componentID, Quantity: quantity}
	s.Next++
	cfg.Items = append(cfg.Items, item)
	return &item, nil
}

// UpdateItemQuantity changes the line item's quantity.
func (s *ConfigurationRepositoryStub) UpdateItemQuantity(ctx context.Context, configurationID, componentID int64, quantity int) error {
	if s.Err != nil {
		return s.Err
	}
	cfg, ok := s.Configurations[configurationID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	for i := range cfg.Items {
		if cfg.Items[i].ComponentID == componentID {
			cfg.Items[i].Quantity = quantity
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// RemoveItem drops the line item.
func (s *ConfigurationRepositoryStub) RemoveItem(ctx context.Context, configurationID, componentID int64) error {
	if s.Err != nil {
		return s.Err
	}
	cfg, ok := s.Configurations[configurationID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	for i := range cfg.Items {
		if cfg.Items[i].ComponentID == componentID {
			cfg.Items = append(cfg.Items[:i], cfg.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ListItems returns the configuration's line items.
func (s *ConfigurationRepositoryStub) ListItems(ctx context.Context, configurationID int64) ([]model.ConfigurationItem, error) {
	if s.ListItemsFn != nil {
		return s.ListItemsFn(ctx, configurationID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	cfg, ok := s.Configurations[configurationID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return append([]model.ConfigurationItem(nil), cfg.Items...), nil
}

// OrderRepositoryStub keeps orders in-memory and maintains each total the
// same additive way the real storage does, so tests can recompute the
// invariant against it.
type OrderRepositoryStub struct {
	Orders   map[int64]*model.Order
	Statuses []model.OrderStatus
	Next     int64
	Err      error
}

// NewOrderRepositoryStub constructs the stub with the seeded status set.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders: make(map[int64]*model.Order),
		Statuses: []model.OrderStatus{
			{ID: 1, Name: model.StatusPending},
			{ID: 2, Name: model.StatusPaid},
			{ID: 3, Name: model.StatusAssembly},
			{ID: 4, Name: model.StatusShipped},
			{ID: 5, Name: model.StatusDelivered},
			{ID: 6, Name: model.StatusCancelled},
		},
		Next: 1,
	}
}

// Create opens a pending order with its first frozen snapshot.
func (s *OrderRepositoryStub) Create(ctx context.Context, userID, configurationID int64, quantity int, unitPrice decimal.Decimal) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	snapshot := model.OrderConfiguration{
		ID: s.Next + 1, OrderID: s.Next, ConfigurationID: configurationID,
		Quantity: quantity, PriceAtTime: unitPrice,
	}
	order := &model.Order{
		ID: s.Next, UserID: userID, OrderDate: time.Now(),
		Total: snapshot.Cost(), StatusID: 1, Status: model.StatusPending,
		Snapshots: []model.OrderConfiguration{snapshot},
	}
	s.Next += 2
	s.Orders[order.ID] = order
	return order, nil
}

// GetByID fetches an order with snapshots or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns the user's orders.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Order, 0)
	for _, o := range s.Orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

// ListAll returns every order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		out = append(out, *o)
	}
	return out, nil
}

// Delete removes the order.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Orders, id)
	return nil
}

// AttachSnapshot adds a snapshot and increments the total by its cost.
func (s *OrderRepositoryStub) AttachSnapshot(ctx context.Context, orderID, configurationID int64, quantity int, price decimal.Decimal) (*model.OrderConfiguration, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	for _, snap := range order.Snapshots {
		if snap.ConfigurationID == configurationID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	snapshot := model.OrderConfiguration{
		ID: s.Next, OrderID: orderID, ConfigurationID: configurationID,
		Quantity: quantity, PriceAtTime: price,
	}
	s.Next++
	order.Snapshots = append(order.Snapshots, snapshot)
	order.Total = order.Total.Add(snapshot.Cost())
	return &snapshot, nil
}

// UpdateSnapshotQuantity shifts the total by the frozen-price delta.
func (s *OrderRepositoryStub) UpdateSnapshotQuantity(ctx context.Context, orderID, configurationID int64, quantity int) (*model.OrderConfiguration, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	for i := range order.Snapshots {
		snap := &order.Snapshots[i]
		if snap.ConfigurationID == configurationID {
			order.Total = order.Total.Add(model.SnapshotDelta(snap.PriceAtTime, snap.Quantity, quantity))
			snap.Quantity = quantity
			result := *snap
			return &result, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// RemoveSnapshot deletes the snapshot and subtracts its cost.
func (s *OrderRepositoryStub) RemoveSnapshot(ctx context.Context, orderID, configurationID int64) error {
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	for i := range order.Snapshots {
		snap := order.Snapshots[i]
		if snap.ConfigurationID == configurationID {
			order.Snapshots = append(order.Snapshots[:i], order.Snapshots[i+1:]...)
			order.Total = order.Total.Sub(snap.Cost())
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// SetStatus assigns the status by identifier.
func (s *OrderRepositoryStub) SetStatus(ctx context.Context, orderID, statusID int64) error {
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	for _, status := range s.Statuses {
		if status.ID == statusID {
			order.StatusID = status.ID
			order.Status = status.Name
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// GetStatusByName resolves a status from the seeded vocabulary.
func (s *OrderRepositoryStub) GetStatusByName(ctx context.Context, name string) (*model.OrderStatus, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, status := range s.Statuses {
		if status.Name == name {
			st := status
			return &st, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListStatuses returns the seeded vocabulary.
func (s *OrderRepositoryStub) ListStatuses(ctx context.Context) ([]model.OrderStatus, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.OrderStatus(nil), s.Statuses...), nil
}
