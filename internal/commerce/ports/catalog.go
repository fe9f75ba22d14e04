package ports

import (
	"context"

	"github.com/marketbay/storefront/internal/commerce/domain"
)

// PageInput selects one page of a listing.
type PageInput struct {
	Page int
	Size int
}

// ListProductsInput carries the listing parameters. CategoryID and Search
// are mutually exclusive; when both are set, CategoryID wins (matching the
// storefront's filter-then-search precedence).
type ListProductsInput struct {
	CategoryID int64
	Search     string
	Page       int
	Size       int
}

// CatalogService covers the public, unauthenticated catalog surface.
type CatalogService interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*domain.Page[domain.ProductSummary], error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListCategories(ctx context.Context, page PageInput) (*domain.Page[domain.Category], error)
}
