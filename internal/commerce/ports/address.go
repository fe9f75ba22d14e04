package ports

import (
	"context"

	"github.com/marketbay/storefront/internal/commerce/domain"
)

// AddressInput carries the shipping address fields.
type AddressInput struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// AddressService covers the user's single saved address. Get returns
// (nil, nil) when no address has been saved yet; that is an expected empty
// state, not an error.
type AddressService interface {
	Get(ctx context.Context) (*domain.Address, error)
	Create(ctx context.Context, input AddressInput) (*domain.Address, error)
	Update(ctx context.Context, input AddressInput) (*domain.Address, error)
}
