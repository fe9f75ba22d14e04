package console

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
	"github.com/marketbay/storefront/internal/session"
)

// Sort modes applied client-side to the already-fetched product payload.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
)

// CatalogView is the product listing screen: fetched payload, client-side
// sort, category filter and search (both refetch), and add-to-cart.
type CatalogView struct {
	catalog  ports.CatalogService
	cart     ports.CartService
	session  *session.Store
	notify   Notifier
	tracker  *Tracker
	pageSize int

	products   []domain.ProductSummary
	categories []domain.Category
	categoryID int64
	search     string
	sortMode   string
}

func NewCatalogView(catalog ports.CatalogService, cart ports.CartService, store *session.Store, notify Notifier, pageSize int) *CatalogView {
	return &CatalogView{
		catalog:  catalog,
		cart:     cart,
		session:  store,
		notify:   notify,
		tracker:  NewTracker(),
		pageSize: pageSize,
		sortMode: SortNewest,
	}
}

// Load fetches products for the current filter plus the category list. On
// failure the previously rendered payload stays in place.
func (v *CatalogView) Load(ctx context.Context) {
	page, err := v.catalog.ListProducts(ctx, ports.ListProductsInput{
		CategoryID: v.categoryID,
		Search:     v.search,
		Size:       v.pageSize,
	})
	if err != nil {
		v.notify.Error("Failed to load products")
		return
	}
	v.products = page.Content
	v.applySort()

	cats, err := v.catalog.ListCategories(ctx, ports.PageInput{Size: v.pageSize})
	if err != nil {
		v.notify.Error("Failed to load categories")
		return
	}
	v.categories = cats.Content
}

// FilterByCategory sets the category filter (0 clears it) and refetches.
func (v *CatalogView) FilterByCategory(ctx context.Context, categoryID int64) {
	v.categoryID = categoryID
	v.search = ""
	v.Load(ctx)
}

// Search sets the search query and refetches.
func (v *CatalogView) Search(ctx context.Context, query string) {
	v.search = query
	v.categoryID = 0
	v.Load(ctx)
}

// SortBy reorders the fetched payload without another request.
func (v *CatalogView) SortBy(mode string) {
	v.sortMode = mode
	v.applySort()
}

func (v *CatalogView) applySort() {
	switch v.sortMode {
	case SortPriceLow:
		sort.SliceStable(v.products, func(i, j int) bool { return v.products[i].Price < v.products[j].Price })
	case SortPriceHigh:
		sort.SliceStable(v.products, func(i, j int) bool { return v.products[i].Price > v.products[j].Price })
	case SortName:
		sort.SliceStable(v.products, func(i, j int) bool { return v.products[i].Name < v.products[j].Name })
	default:
		sort.SliceStable(v.products, func(i, j int) bool { return v.products[i].CreatedAt > v.products[j].CreatedAt })
	}
}

// AddToCart adds one unit of the product. Unauthenticated users get a
// login prompt and no request is issued. A second add on the same product
// while one is outstanding is ignored.
func (v *CatalogView) AddToCart(ctx context.Context, productID int64) {
	if !v.session.Authenticated() {
		v.notify.Error("Please login to add products to cart")
		return
	}
	if v.tracker.Pending(productID) {
		return
	}

	seq := v.tracker.Begin(productID)
	_, err := v.cart.AddItem(ctx, productID, 1)
	v.tracker.Finish(productID, seq, err != nil)
	if err != nil {
		v.notify.Error(failureMessage(err, "Failed to add to cart"))
		return
	}
	v.notify.Success("Added to cart")
}

// Products returns the current payload in render order.
func (v *CatalogView) Products() []domain.ProductSummary { return v.products }

// Render prints the product list, or an explicit empty state when the
// current filter matches nothing.
func (v *CatalogView) Render(w io.Writer) {
	if len(v.categories) > 0 {
		fmt.Fprint(w, "Categories:")
		for _, c := range v.categories {
			fmt.Fprintf(w, " [%d] %s", c.ID, c.Name)
		}
		fmt.Fprintln(w)
	}

	if len(v.products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}
	for _, p := range v.products {
		fmt.Fprintf(w, "#%-4d %-30s %8.2f  %s\n", p.ID, p.Name, p.Price, p.CategoryName)
	}
}
