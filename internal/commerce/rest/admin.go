package rest

import (
	"context"
	"fmt"

	"github.com/marketbay/storefront/internal/client"
	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
	"github.com/marketbay/storefront/internal/validate"
)

type AdminService struct {
	client *client.Client
}

func NewAdminService(c *client.Client) *AdminService {
	return &AdminService{client: c}
}

// CreateProduct validates the form fields and the optional image before
// building the multipart request (JSON part "data" + binary part "file").
func (s *AdminService) CreateProduct(ctx context.Context, input ports.ProductInput, image *ports.ImageUpload) (*domain.Product, error) {
	file, err := checkProduct(input, image)
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := s.client.PostMultipart(ctx, "/admin/products", input, file, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, id int64, input ports.ProductInput, image *ports.ImageUpload) (*domain.Product, error) {
	file, err := checkProduct(input, image)
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := s.client.PutMultipart(ctx, fmt.Sprintf("/admin/products/%d", id), input, file, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/admin/products/%d", id), nil)
}

func (s *AdminService) CreateCategory(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	var category domain.Category
	if err := s.client.Post(ctx, "/admin/categories", input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *AdminService) UpdateCategory(ctx context.Context, id int64, input ports.CategoryInput) (*domain.Category, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	var category domain.Category
	if err := s.client.Put(ctx, fmt.Sprintf("/admin/categories/%d", id), input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *AdminService) DeleteCategory(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/admin/categories/%d", id), nil)
}

func (s *AdminService) ListOrders(ctx context.Context) (*domain.Page[domain.Order], error) {
	var page domain.Page[domain.Order]
	if err := s.client.Get(ctx, "/admin/orders", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *AdminService) ListComments(ctx context.Context) (*domain.Page[domain.Comment], error) {
	var page domain.Page[domain.Comment]
	if err := s.client.Get(ctx, "/admin/comments", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *AdminService) DeleteComment(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/admin/comments/%d", id), nil)
}

func (s *AdminService) ListUsers(ctx context.Context) (*domain.Page[domain.User], error) {
	var page domain.Page[domain.User]
	if err := s.client.Get(ctx, "/admin/users", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// checkProduct runs all client-side product form checks and converts the
// image upload into the client's multipart file part.
func checkProduct(input ports.ProductInput, image *ports.ImageUpload) (*client.FilePart, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if image == nil {
		return nil, nil
	}
	if err := validate.Image(image.Content); err != nil {
		return nil, err
	}
	ct := image.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &client.FilePart{Filename: image.Filename, ContentType: ct, Content: image.Content}, nil
}
