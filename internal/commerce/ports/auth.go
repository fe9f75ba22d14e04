// Package ports defines the service interfaces the console views consume,
// plus the plain input structs they accept. Implementations live in the
// rest package; tests substitute stubs.
package ports

import (
	"context"

	"github.com/marketbay/storefront/internal/commerce/domain"
)

// LoginInput carries the credentials for a login attempt.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterInput carries the fields for creating an account. ConfirmPassword
// is validated client-side and never sent to the backend.
type RegisterInput struct {
	Username        string `json:"username" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"-" validate:"eqfield=Password"`
}

// AuthService covers login, registration and signout. The backend sets the
// session credential as a cookie side effect of login and registration;
// none of these calls touch the session store themselves.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*domain.Identity, error)
	Register(ctx context.Context, input RegisterInput) (*domain.Identity, error)
	Signout(ctx context.Context) error
}
