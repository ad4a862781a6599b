package models

// User is the authenticated identity that navigation gating is decided on.
type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Groups     []string `json:"groups"`
	IsAdmin    bool     `json:"isAdmin"`
	IsBusiness bool     `json:"isBusiness"`
}

// HasGroup reports whether the user belongs to the named group.
func (u User) HasGroup(group string) bool {
	for _, g := range u.Groups {
		if g == group {
			return true
		}
	}
	return false
}

type UserRole string

const (
	RoleAdmin    UserRole = "Admin"
	RoleQA       UserRole = "QA"
	RoleBusiness UserRole = "Business"
	RoleUser     UserRole = "User"
)

type UserStatus string

const (
	StatusActive   UserStatus = "Active"
	StatusInactive UserStatus = "Inactive"
)

// UserRow represents a managed back-office account.
type UserRow struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Role           UserRole   `json:"role"`
	Status         UserStatus `json:"status"`
	LastLogin      string     `json:"lastLogin"`
	PhoneNumber    string     `json:"phoneNumber,omitempty"`
	Department     string     `json:"department,omitempty"`
	LineManager    string     `json:"lineManager,omitempty"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
}

// CreateUserRequest is the registration form payload.
type CreateUserRequest struct {
	FirstName      string   `json:"firstName" validate:"required"`
	LastName       string   `json:"lastName" validate:"required"`
	Email          string   `json:"email" validate:"required"`
	Password       string   `json:"password" validate:"required"`
	Role           UserRole `json:"role" validate:"required"`
	PhoneNumber    string   `json:"phoneNumber" validate:"required"`
	Department     string   `json:"department" validate:"required"`
	LineManager    string   `json:"lineManager" validate:"required"`
	ProfilePicture string   `json:"profilePicture"`
}

// UserPatch carries the fields of a partial user update; nil fields are left untouched.
type UserPatch struct {
	FirstName      *string     `json:"firstName,omitempty"`
	LastName       *string     `json:"lastName,omitempty"`
	Email          *string     `json:"email,omitempty"`
	Role           *UserRole   `json:"role,omitempty"`
	Status         *UserStatus `json:"status,omitempty"`
	PhoneNumber    *string     `json:"phoneNumber,omitempty"`
	Department     *string     `json:"department,omitempty"`
	LineManager    *string     `json:"lineManager,omitempty"`
	ProfilePicture *string     `json:"profilePicture,omitempty"`
}

type ChangePasswordRequest struct {
	UserID          string `json:"userId" validate:"required"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// LoginRequest is the payload of the mock sign-in form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
