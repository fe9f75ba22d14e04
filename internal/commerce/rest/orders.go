package rest

import (
	"context"
	"fmt"

	"github.com/marketbay/storefront/internal/client"
	"github.com/marketbay/storefront/internal/commerce/domain"
)

type OrderService struct {
	client *client.Client
}

func NewOrderService(c *client.Client) *OrderService {
	return &OrderService{client: c}
}

// Place initiates checkout from the current cart. The backend creates a
// pending order and a payment intent with the processor.
func (s *OrderService) Place(ctx context.Context) (*domain.PaymentIntent, error) {
	var intent domain.PaymentIntent
	if err := s.client.Post(ctx, "/user/orders/place", nil, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// Confirm tells the backend the payment went through. Called only after
// the payment SDK reports success.
func (s *OrderService) Confirm(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order domain.Order
	if err := s.client.Post(ctx, fmt.Sprintf("/user/orders/confirm/%d", orderID), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.client.Get(ctx, "/user/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := s.client.Get(ctx, fmt.Sprintf("/user/orders/%d", id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}
