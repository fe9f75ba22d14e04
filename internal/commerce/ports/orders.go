package ports

import (
	"context"

	"github.com/marketbay/storefront/internal/commerce/domain"
)

// OrderService covers the authenticated order surface. Place initiates
// checkout from the current cart and returns the payment intent; Confirm is
// called after the payment SDK reports success.
type OrderService interface {
	Place(ctx context.Context) (*domain.PaymentIntent, error)
	Confirm(ctx context.Context, orderID int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
}
