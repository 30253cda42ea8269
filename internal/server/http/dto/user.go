package dto

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	Role     string `json:"role"`
}

// RoleChangeRequest assigns a role to an account.
type RoleChangeRequest struct {
	Role string `json:"role"`
}
