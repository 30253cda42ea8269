package model

// Role names a permission level. The store knows exactly two: ordinary
// users and administrators. An administrator passes any role requirement.
type Role string

const (
	RoleUser          Role = "Пользователь"
	RoleAdministrator Role = "Администратор"
)

// Satisfies reports whether the role meets a required level.
func (r Role) Satisfies(required Role) bool {
	if r == RoleAdministrator {
		return true
	}
	return r == required
}

// User represents a registered account holder.
type User struct {
	ID           int64
	FullName     string
	Email        string
	Phone        string
	Address      string
	PasswordHash string
	Role         Role
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdministrator
}

// Owns reports whether the user may act on an entity owned by ownerID.
// Administrators act on anything.
func (u *User) Owns(ownerID int64) bool {
	return u.ID == ownerID || u.IsAdmin()
}
