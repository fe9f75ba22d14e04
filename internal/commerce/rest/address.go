package rest

import (
	"context"

	"github.com/marketbay/storefront/internal/client"
	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
	"github.com/marketbay/storefront/internal/validate"
)

type AddressService struct {
	client *client.Client
}

func NewAddressService(c *client.Client) *AddressService {
	return &AddressService{client: c}
}

// Get returns the saved address, or (nil, nil) when none has been saved
// yet. "No address" is an expected empty state, not a failure.
func (s *AddressService) Get(ctx context.Context) (*domain.Address, error) {
	var address domain.Address
	if err := s.client.Get(ctx, "/user/address", &address); err != nil {
		if client.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

func (s *AddressService) Create(ctx context.Context, input ports.AddressInput) (*domain.Address, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	var address domain.Address
	if err := s.client.Post(ctx, "/user/address", input, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

func (s *AddressService) Update(ctx context.Context, input ports.AddressInput) (*domain.Address, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	var address domain.Address
	if err := s.client.Put(ctx, "/user/address", input, &address); err != nil {
		return nil, err
	}
	return &address, nil
}
