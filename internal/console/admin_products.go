package console

import (
	"context"
	"fmt"
	"io"

	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
)

// AdminProductsView manages the product catalog: list, create and update
// via the multipart form, and delete behind a confirmation.
type AdminProductsView struct {
	admin   ports.AdminService
	catalog ports.CatalogService
	notify  Notifier
	prompt  Prompter

	products   []domain.ProductSummary
	categories []domain.Category
}

func NewAdminProductsView(admin ports.AdminService, catalog ports.CatalogService, notify Notifier, prompt Prompter) *AdminProductsView {
	return &AdminProductsView{admin: admin, catalog: catalog, notify: notify, prompt: prompt}
}

func (v *AdminProductsView) Load(ctx context.Context) {
	page, err := v.catalog.ListProducts(ctx, ports.ListProductsInput{})
	if err != nil {
		v.notify.Error("Failed to load products")
		return
	}
	v.products = page.Content

	cats, err := v.catalog.ListCategories(ctx, ports.PageInput{})
	if err != nil {
		v.notify.Error("Failed to load categories")
		return
	}
	v.categories = cats.Content
}

// Create submits the product form. Validation failures (blank fields,
// price not above zero, oversized or non-image file) surface before any
// request is issued.
func (v *AdminProductsView) Create(ctx context.Context, input ports.ProductInput, image *ports.ImageUpload) {
	product, err := v.admin.CreateProduct(ctx, input, image)
	if err != nil {
		v.notify.Error(failureMessage(err, "Failed to save product"))
		return
	}
	v.products = append(v.products, summaryOf(product))
	v.notify.Success("Product created successfully!")
}

func (v *AdminProductsView) Update(ctx context.Context, id int64, input ports.ProductInput, image *ports.ImageUpload) {
	product, err := v.admin.UpdateProduct(ctx, id, input, image)
	if err != nil {
		v.notify.Error(failureMessage(err, "Failed to save product"))
		return
	}
	for i := range v.products {
		if v.products[i].ID == id {
			v.products[i] = summaryOf(product)
		}
	}
	v.notify.Success("Product updated successfully!")
}

// Delete removes a product after an explicit confirmation; cancelling
// issues no request and leaves the list unchanged.
func (v *AdminProductsView) Delete(ctx context.Context, id int64) {
	if !v.prompt.Confirm("Are you sure you want to delete this product?") {
		return
	}
	if err := v.admin.DeleteProduct(ctx, id); err != nil {
		v.notify.Error(failureMessage(err, "Failed to delete product"))
		return
	}
	v.products = deleteByID(v.products, func(p domain.ProductSummary) int64 { return p.ID }, id)
	v.notify.Success("Product deleted")
}

func (v *AdminProductsView) Products() []domain.ProductSummary { return v.products }

func (v *AdminProductsView) Render(w io.Writer) {
	if len(v.products) == 0 {
		fmt.Fprintln(w, "No products.")
		return
	}
	for _, p := range v.products {
		fmt.Fprintf(w, "#%-4d %-30s %8.2f  %s\n", p.ID, p.Name, p.Price, p.CategoryName)
	}
}

func summaryOf(p *domain.Product) domain.ProductSummary {
	return domain.ProductSummary{
		ID:           p.ID,
		Name:         p.Name,
		ImageURL:     p.ImageURL,
		Price:        p.Price,
		CategoryName: p.CategoryName,
	}
}

func deleteByID[T any](items []T, id func(T) int64, target int64) []T {
	out := items[:0]
	for _, item := range items {
		if id(item) != target {
			out = append(out, item)
		}
	}
	return out
}
