// Package rest implements the ports interfaces over the backend REST API
// using the shared HTTP client. Inputs are validated here, before any
// request is issued; a validation failure never reaches the network.
package rest

import (
	"context"

	"github.com/marketbay/storefront/internal/client"
	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
	"github.com/marketbay/storefront/internal/validate"
)

type AuthService struct {
	client *client.Client
}

func NewAuthService(c *client.Client) *AuthService {
	return &AuthService{client: c}
}

// Login authenticates against the backend. The session credential is set
// as a cookie side effect; the response body is the identity record.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*domain.Identity, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	var identity domain.Identity
	if err := s.client.Post(ctx, "/auth/login", input, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Register creates an account and, like Login, receives the credential as
// a cookie side effect alongside the identity record.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	var identity domain.Identity
	if err := s.client.Post(ctx, "/auth/register", input, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (s *AuthService) Signout(ctx context.Context) error {
	return s.client.Post(ctx, "/auth/signout", nil, nil)
}
