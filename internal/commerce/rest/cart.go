package rest

import (
	"context"
	"fmt"

	"github.com/marketbay/storefront/internal/client"
	"github.com/marketbay/storefront/internal/commerce/domain"
)

type CartService struct {
	client *client.Client
}

func NewCartService(c *client.Client) *CartService {
	return &CartService{client: c}
}

func (s *CartService) Get(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	if err := s.client.Get(ctx, "/user/cart", &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

type addItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func (s *CartService) AddItem(ctx context.Context, productID int64, quantity int) (*domain.Cart, error) {
	var cart domain.Cart
	err := s.client.Post(ctx, "/user/cart/items", addItemRequest{ProductID: productID, Quantity: quantity}, &cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateItemQuantity sets the absolute quantity of one cart line. The
// backend takes the quantity as a query parameter, not a body.
func (s *CartService) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (*domain.Cart, error) {
	var cart domain.Cart
	path := fmt.Sprintf("/user/cart/items/%d?quantity=%d", itemID, quantity)
	if err := s.client.Put(ctx, path, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, itemID int64) (*domain.Cart, error) {
	var cart domain.Cart
	if err := s.client.Delete(ctx, fmt.Sprintf("/user/cart/items/%d", itemID), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *CartService) Clear(ctx context.Context) error {
	return s.client.Delete(ctx, "/user/cart/clear", nil)
}
