package ports

import (
	"context"

	"github.com/marketbay/storefront/internal/commerce/domain"
)

// CartService covers the authenticated cart surface. Every mutating call
// returns the full updated cart, which the caller adopts wholesale as its
// new local state.
type CartService interface {
	Get(ctx context.Context) (*domain.Cart, error)
	AddItem(ctx context.Context, productID int64, quantity int) (*domain.Cart, error)
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, itemID int64) (*domain.Cart, error)
	Clear(ctx context.Context) error
}
