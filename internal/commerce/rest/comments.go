package rest

import (
	"context"
	"fmt"

	"github.com/marketbay/storefront/internal/client"
	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
	"github.com/marketbay/storefront/internal/validate"
)

type CommentService struct {
	client *client.Client
}

func NewCommentService(c *client.Client) *CommentService {
	return &CommentService{client: c}
}

func (s *CommentService) ListForProduct(ctx context.Context, productID int64, page ports.PageInput) (*domain.Page[domain.Comment], error) {
	q := pageQuery(page.Page, page.Size)
	var result domain.Page[domain.Comment]
	path := fmt.Sprintf("/user/comments/product/%d?%s", productID, q.Encode())
	if err := s.client.Get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *CommentService) Add(ctx context.Context, input ports.CommentInput) (*domain.Comment, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	var comment domain.Comment
	if err := s.client.Post(ctx, "/user/comments", input, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
