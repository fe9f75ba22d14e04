package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/marketbay/storefront/internal/client"
	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
	"github.com/marketbay/storefront/internal/session"
)

// ProductView is the product detail screen: the product, its reviews, an
// add-to-cart control and a review form.
type ProductView struct {
	catalog  ports.CatalogService
	cart     ports.CartService
	comments ports.CommentService
	session  *session.Store
	notify   Notifier
	pageSize int

	product  *domain.Product
	reviews  []domain.Comment
	notFound bool
	adding   bool
}

func NewProductView(catalog ports.CatalogService, cart ports.CartService, comments ports.CommentService, store *session.Store, notify Notifier, pageSize int) *ProductView {
	return &ProductView{
		catalog:  catalog,
		cart:     cart,
		comments: comments,
		session:  store,
		notify:   notify,
		pageSize: pageSize,
	}
}

// Load fetches the product and its reviews. A missing product is the one
// failure that gets a dedicated view instead of a notification; a failed
// review fetch silently renders an empty list.
func (v *ProductView) Load(ctx context.Context, id int64) {
	v.notFound = false
	product, err := v.catalog.GetProduct(ctx, id)
	if err != nil {
		if client.IsNotFound(err) {
			v.product = nil
			v.notFound = true
			return
		}
		v.notify.Error("Failed to load product")
		return
	}
	v.product = product

	page, err := v.comments.ListForProduct(ctx, id, ports.PageInput{Size: v.pageSize})
	if err != nil {
		v.reviews = nil
		return
	}
	v.reviews = page.Content
}

// AddToCart adds the given quantity of the loaded product.
func (v *ProductView) AddToCart(ctx context.Context, quantity int) {
	if v.product == nil {
		return
	}
	if !v.session.Authenticated() {
		v.notify.Error("Please login to add products to cart")
		return
	}
	if v.adding {
		return
	}
	v.adding = true
	_, err := v.cart.AddItem(ctx, v.product.ID, quantity)
	v.adding = false
	if err != nil {
		v.notify.Error(failureMessage(err, "Failed to add to cart"))
		return
	}
	v.notify.Success("Added to cart!")
}

// AddReview submits a review and prepends it to the local list on success.
func (v *ProductView) AddReview(ctx context.Context, text string, rating int) {
	if v.product == nil {
		return
	}
	comment, err := v.comments.Add(ctx, ports.CommentInput{
		Text:      strings.TrimSpace(text),
		Rating:    rating,
		ProductID: v.product.ID,
	})
	if err != nil {
		v.notify.Error(failureMessage(err, "Failed to add review"))
		return
	}
	v.reviews = append([]domain.Comment{*comment}, v.reviews...)
	v.notify.Success("Review added successfully!")
}

func (v *ProductView) Render(w io.Writer) {
	if v.notFound {
		fmt.Fprintln(w, "Product not found.")
		fmt.Fprintln(w, "Type 'products' to go back to the catalog.")
		return
	}
	if v.product == nil {
		return
	}
	p := v.product
	fmt.Fprintf(w, "#%d %s — %.2f\n", p.ID, p.Name, p.Price)
	fmt.Fprintf(w, "%s\n", p.Description)
	fmt.Fprintf(w, "Category: %s  In stock: %d  Rating: %.1f (%d reviews)\n",
		p.CategoryName, p.Quantity, p.AverageRating, p.ReviewCount)
	for _, c := range v.reviews {
		fmt.Fprintf(w, "  %s %s: %s\n", stars(c.Rating), c.Username, c.Text)
	}
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
