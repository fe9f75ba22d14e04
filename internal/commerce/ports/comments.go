package ports

import (
	"context"

	"github.com/marketbay/storefront/internal/commerce/domain"
)

// CommentInput carries a new product review.
type CommentInput struct {
	Text      string `json:"text" validate:"required"`
	Rating    int    `json:"rating" validate:"gte=1,lte=5"`
	ProductID int64  `json:"productId" validate:"required"`
}

// CommentService covers product reviews.
type CommentService interface {
	ListForProduct(ctx context.Context, productID int64, page PageInput) (*domain.Page[domain.Comment], error)
	Add(ctx context.Context, input CommentInput) (*domain.Comment, error)
}
