package console

import (
	"context"
	"fmt"
	"io"

	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
)

// AdminCategoriesView manages categories: list, create, rename, delete
// behind a confirmation.
type AdminCategoriesView struct {
	admin   ports.AdminService
	catalog ports.CatalogService
	notify  Notifier
	prompt  Prompter

	categories []domain.Category
}

func NewAdminCategoriesView(admin ports.AdminService, catalog ports.CatalogService, notify Notifier, prompt Prompter) *AdminCategoriesView {
	return &AdminCategoriesView{admin: admin, catalog: catalog, notify: notify, prompt: prompt}
}

func (v *AdminCategoriesView) Load(ctx context.Context) {
	page, err := v.catalog.ListCategories(ctx, ports.PageInput{})
	if err != nil {
		v.notify.Error("Failed to load categories")
		return
	}
	v.categories = page.Content
}

func (v *AdminCategoriesView) Create(ctx context.Context, name string) {
	category, err := v.admin.CreateCategory(ctx, ports.CategoryInput{Name: name})
	if err != nil {
		v.notify.Error(failureMessage(err, "Failed to create category"))
		return
	}
	v.categories = append(v.categories, *category)
	v.notify.Success("Category created")
}

func (v *AdminCategoriesView) Rename(ctx context.Context, id int64, name string) {
	category, err := v.admin.UpdateCategory(ctx, id, ports.CategoryInput{Name: name})
	if err != nil {
		v.notify.Error(failureMessage(err, "Failed to update category"))
		return
	}
	for i := range v.categories {
		if v.categories[i].ID == id {
			v.categories[i] = *category
		}
	}
	v.notify.Success("Category updated")
}

// Delete removes a category after an explicit confirmation. Cancelling the
// prompt issues no request and the category stays in the list.
func (v *AdminCategoriesView) Delete(ctx context.Context, id int64) {
	if !v.prompt.Confirm("Are you sure you want to delete this category?") {
		return
	}
	if err := v.admin.DeleteCategory(ctx, id); err != nil {
		v.notify.Error(failureMessage(err, "Failed to delete category"))
		return
	}
	v.categories = deleteByID(v.categories, func(c domain.Category) int64 { return c.ID }, id)
	v.notify.Success("Category deleted")
}

func (v *AdminCategoriesView) Categories() []domain.Category { return v.categories }

func (v *AdminCategoriesView) Render(w io.Writer) {
	if len(v.categories) == 0 {
		fmt.Fprintln(w, "No categories.")
		return
	}
	for _, c := range v.categories {
		fmt.Fprintf(w, "#%-4d %s\n", c.ID, c.Name)
	}
}
