package repository

// Factory describes access to the different domain repositories.
type Factory interface {
	Users() UserRepository
	Sessions() SessionRepository
	PasswordResets() PasswordResetRepository
	Catalog() CatalogRepository
	Configurations() ConfigurationRepository
	Orders() OrderRepository
}
