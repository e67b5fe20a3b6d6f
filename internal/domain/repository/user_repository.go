package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterInput creates a new account.
type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// LoginInput authenticates by email and password. Credentials are
// verified server-side; the session arrives as HTTP-only cookies.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileInput updates the signed-in user's profile.
type ProfileInput struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// ChangePasswordInput rotates the signed-in user's password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UserFilters narrows the admin user listing.
type UserFilters struct {
	Search  string
	IsAdmin *bool
}

// AdminUserInput is the back-office user update.
type AdminUserInput struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	IsAdmin     *bool  `json:"is_admin,omitempty"`
}

// UserRepository covers authentication, the signed-in profile and the
// admin user management surface.
type UserRepository interface {
	Register(ctx context.Context, input RegisterInput) (Result[entity.User], error)
	Login(ctx context.Context, input LoginInput) (Result[entity.User], error)
	Logout(ctx context.Context) (string, error)
	Profile(ctx context.Context) (*entity.User, error)
	UpdateProfile(ctx context.Context, input ProfileInput) (Result[entity.User], error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) (string, error)
	RefreshToken(ctx context.Context) (string, error)

	ListUsers(ctx context.Context, filters UserFilters, opts ListOptions) (Page[entity.User], error)
	AdminUpdate(ctx context.Context, id int, input AdminUserInput) (Result[entity.User], error)
	AdminDelete(ctx context.Context, id int) (Deleted, error)
}
