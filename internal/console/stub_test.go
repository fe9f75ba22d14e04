package console

import (
	"context"

	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

// stubPrompter answers every confirmation the same way and counts asks.
type stubPrompter struct {
	answer bool
	asked  int
}

func (p *stubPrompter) Confirm(string) bool {
	p.asked++
	return p.answer
}

type stubCartService struct {
	GetFn                func(ctx context.Context) (*domain.Cart, error)
	AddItemFn            func(ctx context.Context, productID int64, quantity int) (*domain.Cart, error)
	UpdateItemQuantityFn func(ctx context.Context, itemID int64, quantity int) (*domain.Cart, error)
	RemoveItemFn         func(ctx context.Context, itemID int64) (*domain.Cart, error)
	ClearFn              func(ctx context.Context) error
}

func (s *stubCartService) Get(ctx context.Context) (*domain.Cart, error) {
	return s.GetFn(ctx)
}

func (s *stubCartService) AddItem(ctx context.Context, productID int64, quantity int) (*domain.Cart, error) {
	return s.AddItemFn(ctx, productID, quantity)
}

func (s *stubCartService) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (*domain.Cart, error) {
	return s.UpdateItemQuantityFn(ctx, itemID, quantity)
}

func (s *stubCartService) RemoveItem(ctx context.Context, itemID int64) (*domain.Cart, error) {
	return s.RemoveItemFn(ctx, itemID)
}

func (s *stubCartService) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}

type stubCatalogService struct {
	ListProductsFn   func(ctx context.Context, input ports.ListProductsInput) (*domain.Page[domain.ProductSummary], error)
	GetProductFn     func(ctx context.Context, id int64) (*domain.Product, error)
	ListCategoriesFn func(ctx context.Context, page ports.PageInput) (*domain.Page[domain.Category], error)
}

func (s *stubCatalogService) ListProducts(ctx context.Context, input ports.ListProductsInput) (*domain.Page[domain.ProductSummary], error) {
	return s.ListProductsFn(ctx, input)
}

func (s *stubCatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.GetProductFn(ctx, id)
}

func (s *stubCatalogService) ListCategories(ctx context.Context, page ports.PageInput) (*domain.Page[domain.Category], error) {
	if s.ListCategoriesFn == nil {
		return &domain.Page[domain.Category]{}, nil
	}
	return s.ListCategoriesFn(ctx, page)
}

type stubOrderService struct {
	PlaceFn   func(ctx context.Context) (*domain.PaymentIntent, error)
	ConfirmFn func(ctx context.Context, orderID int64) (*domain.Order, error)
	ListFn    func(ctx context.Context) ([]domain.Order, error)
	GetFn     func(ctx context.Context, id int64) (*domain.Order, error)
}

func (s *stubOrderService) Place(ctx context.Context) (*domain.PaymentIntent, error) {
	return s.PlaceFn(ctx)
}

func (s *stubOrderService) Confirm(ctx context.Context, orderID int64) (*domain.Order, error) {
	return s.ConfirmFn(ctx, orderID)
}

func (s *stubOrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.ListFn(ctx)
}

func (s *stubOrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.GetFn(ctx, id)
}

type stubAdminService struct {
	CreateProductFn  func(ctx context.Context, input ports.ProductInput, image *ports.ImageUpload) (*domain.Product, error)
	UpdateProductFn  func(ctx context.Context, id int64, input ports.ProductInput, image *ports.ImageUpload) (*domain.Product, error)
	DeleteProductFn  func(ctx context.Context, id int64) error
	CreateCategoryFn func(ctx context.Context, input ports.CategoryInput) (*domain.Category, error)
	UpdateCategoryFn func(ctx context.Context, id int64, input ports.CategoryInput) (*domain.Category, error)
	DeleteCategoryFn func(ctx context.Context, id int64) error
	ListOrdersFn     func(ctx context.Context) (*domain.Page[domain.Order], error)
	ListCommentsFn   func(ctx context.Context) (*domain.Page[domain.Comment], error)
	DeleteCommentFn  func(ctx context.Context, id int64) error
	ListUsersFn      func(ctx context.Context) (*domain.Page[domain.User], error)
}

func (s *stubAdminService) CreateProduct(ctx context.Context, input ports.ProductInput, image *ports.ImageUpload) (*domain.Product, error) {
	return s.CreateProductFn(ctx, input, image)
}

func (s *stubAdminService) UpdateProduct(ctx context.Context, id int64, input ports.ProductInput, image *ports.ImageUpload) (*domain.Product, error) {
	return s.UpdateProductFn(ctx, id, input, image)
}

func (s *stubAdminService) DeleteProduct(ctx context.Context, id int64) error {
	return s.DeleteProductFn(ctx, id)
}

func (s *stubAdminService) CreateCategory(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	return s.CreateCategoryFn(ctx, input)
}

func (s *stubAdminService) UpdateCategory(ctx context.Context, id int64, input ports.CategoryInput) (*domain.Category, error) {
	return s.UpdateCategoryFn(ctx, id, input)
}

func (s *stubAdminService) DeleteCategory(ctx context.Context, id int64) error {
	return s.DeleteCategoryFn(ctx, id)
}

func (s *stubAdminService) ListOrders(ctx context.Context) (*domain.Page[domain.Order], error) {
	return s.ListOrdersFn(ctx)
}

func (s *stubAdminService) ListComments(ctx context.Context) (*domain.Page[domain.Comment], error) {
	return s.ListCommentsFn(ctx)
}

func (s *stubAdminService) DeleteComment(ctx context.Context, id int64) error {
	return s.DeleteCommentFn(ctx, id)
}

func (s *stubAdminService) ListUsers(ctx context.Context) (*domain.Page[domain.User], error) {
	return s.ListUsersFn(ctx)
}

type stubAuthService struct {
	LoginFn    func(ctx context.Context, input ports.LoginInput) (*domain.Identity, error)
	RegisterFn func(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error)
	SignoutFn  func(ctx context.Context) error
}

func (s *stubAuthService) Login(ctx context.Context, input ports.LoginInput) (*domain.Identity, error) {
	return s.LoginFn(ctx, input)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
	return s.RegisterFn(ctx, input)
}

func (s *stubAuthService) Signout(ctx context.Context) error {
	return s.SignoutFn(ctx)
}
