package ports

import (
	"context"

	"github.com/marketbay/storefront/internal/commerce/domain"
)

// ProductInput carries the editable product fields. It is serialised as the
// "data" JSON part of the multipart create/update request.
type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	CategoryID  int64   `json:"categoryId" validate:"required"`
}

// ImageUpload is an optional product image, constrained client-side to
// image MIME types of at most 5MB before submission.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// CategoryInput carries the single editable category field.
type CategoryInput struct {
	Name string `json:"name" validate:"required"`
}

// AdminService covers the admin console surface.
type AdminService interface {
	CreateProduct(ctx context.Context, input ProductInput, image *ImageUpload) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, input ProductInput, image *ImageUpload) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, input CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListOrders(ctx context.Context) (*domain.Page[domain.Order], error)

	ListComments(ctx context.Context) (*domain.Page[domain.Comment], error)
	DeleteComment(ctx context.Context, id int64) error

	ListUsers(ctx context.Context) (*domain.Page[domain.User], error)
}
