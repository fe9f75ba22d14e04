package console

import (
	"context"
	"testing"

	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
)

func categoriesView(t *testing.T, admin *stubAdminService, notify Notifier, prompt Prompter) *AdminCategoriesView {
	t.Helper()
	catalog := &stubCatalogService{
		ListCategoriesFn: func(context.Context, ports.PageInput) (*domain.Page[domain.Category], error) {
			return &domain.Page[domain.Category]{Content: []domain.Category{
				{ID: 1, Name: "Mugs"},
				{ID: 2, Name: "Shirts"},
			}}, nil
		},
	}
	v := NewAdminCategoriesView(admin, catalog, notify, prompt)
	v.Load(context.Background())
	if len(v.Categories()) != 2 {
		t.Fatal("categories failed to load")
	}
	return v
}

func TestDeleteCategoryCancelledIssuesNoRequest(t *testing.T) {
	calls := 0
	admin := &stubAdminService{
		DeleteCategoryFn: func(context.Context, int64) error { calls++; return nil },
	}
	prompt := &stubPrompter{answer: false}
	v := categoriesView(t, admin, &recordingNotifier{}, prompt)

	v.Delete(context.Background(), 1)

	if prompt.asked != 1 {
		t.Error("delete must ask for confirmation")
	}
	if calls != 0 {
		t.Errorf("cancelled delete must not issue a request, saw %d", calls)
	}
	if len(v.Categories()) != 2 {
		t.Error("the category must stay in the list after cancelling")
	}
}

func TestDeleteCategoryConfirmed(t *testing.T) {
	notify := &recordingNotifier{}
	var deleted int64
	admin := &stubAdminService{
		DeleteCategoryFn: func(_ context.Context, id int64) error { deleted = id; return nil },
	}
	v := categoriesView(t, admin, notify, &stubPrompter{answer: true})

	v.Delete(context.Background(), 1)

	if deleted != 1 {
		t.Errorf("deleted id = %d", deleted)
	}
	if len(v.Categories()) != 1 || v.Categories()[0].ID != 2 {
		t.Errorf("categories after delete = %+v", v.Categories())
	}
	if len(notify.successes) != 1 {
		t.Errorf("successes = %v", notify.successes)
	}
}

func TestCreateCategoryAppendsToList(t *testing.T) {
	notify := &recordingNotifier{}
	admin := &stubAdminService{
		CreateCategoryFn: func(_ context.Context, input ports.CategoryInput) (*domain.Category, error) {
			return &domain.Category{ID: 3, Name: input.Name}, nil
		},
	}
	v := categoriesView(t, admin, notify, &stubPrompter{})

	v.Create(context.Background(), "Caps")

	if len(v.Categories()) != 3 || v.Categories()[2].Name != "Caps" {
		t.Errorf("categories = %+v", v.Categories())
	}
}

func TestRenameCategoryUpdatesList(t *testing.T) {
	admin := &stubAdminService{
		UpdateCategoryFn: func(_ context.Context, id int64, input ports.CategoryInput) (*domain.Category, error) {
			return &domain.Category{ID: id, Name: input.Name}, nil
		},
	}
	v := categoriesView(t, admin, &recordingNotifier{}, &stubPrompter{})

	v.Rename(context.Background(), 2, "Tees")

	if v.Categories()[1].Name != "Tees" {
		t.Errorf("categories = %+v", v.Categories())
	}
}
