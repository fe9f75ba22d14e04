package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/marketbay/storefront/internal/client"
	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
)

type CatalogService struct {
	client *client.Client
}

func NewCatalogService(c *client.Client) *CatalogService {
	return &CatalogService{client: c}
}

func (s *CatalogService) ListProducts(ctx context.Context, input ports.ListProductsInput) (*domain.Page[domain.ProductSummary], error) {
	q := pageQuery(input.Page, input.Size)

	path := "/public/products"
	switch {
	case input.CategoryID != 0:
		path = fmt.Sprintf("/public/products/category/%d", input.CategoryID)
	case input.Search != "":
		path = "/public/products/search"
		q.Set("name", input.Search)
	}

	var page domain.Page[domain.ProductSummary]
	if err := s.client.Get(ctx, path+"?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := s.client.Get(ctx, fmt.Sprintf("/public/products/%d", id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *CatalogService) ListCategories(ctx context.Context, page ports.PageInput) (*domain.Page[domain.Category], error) {
	q := pageQuery(page.Page, page.Size)
	var result domain.Page[domain.Category]
	if err := s.client.Get(ctx, "/public/categories?"+q.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("pageNumber", fmt.Sprint(page))
	if size > 0 {
		q.Set("pageSize", fmt.Sprint(size))
	}
	return q
}
