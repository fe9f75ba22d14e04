package console

import (
	"context"
	"fmt"
	"io"

	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
)

// CartView is the cart screen. Every mutating call replaces the local cart
// with the server's response; a failed call leaves the rendered cart
// untouched. Per-line controls are disabled while a request for that line
// is outstanding.
type CartView struct {
	service ports.CartService
	notify  Notifier
	prompt  Prompter
	tracker *Tracker

	cart *domain.Cart
}

func NewCartView(service ports.CartService, notify Notifier, prompt Prompter) *CartView {
	return &CartView{service: service, notify: notify, prompt: prompt, tracker: NewTracker()}
}

func (v *CartView) Load(ctx context.Context) {
	cart, err := v.service.Get(ctx)
	if err != nil {
		v.notify.Error("Failed to load cart")
		return
	}
	v.cart = cart
}

// IncreaseQuantity bumps a line's quantity by one. Ignored while another
// request on the same line is in flight.
func (v *CartView) IncreaseQuantity(ctx context.Context, itemID int64) {
	item := v.item(itemID)
	if item == nil {
		return
	}
	v.updateQuantity(ctx, itemID, item.Quantity+1)
}

// DecreaseQuantity lowers a line's quantity by one, never below one. The
// floor check happens before any request is issued.
func (v *CartView) DecreaseQuantity(ctx context.Context, itemID int64) {
	item := v.item(itemID)
	if item == nil || item.Quantity <= 1 {
		return
	}
	v.updateQuantity(ctx, itemID, item.Quantity-1)
}

func (v *CartView) updateQuantity(ctx context.Context, itemID int64, quantity int) {
	if v.tracker.Pending(itemID) {
		return
	}
	seq := v.tracker.Begin(itemID)
	cart, err := v.service.UpdateItemQuantity(ctx, itemID, quantity)
	apply := v.tracker.Finish(itemID, seq, err != nil)
	if err != nil {
		v.notify.Error(failureMessage(err, "Failed to update quantity"))
		return
	}
	if apply {
		v.cart = cart
	}
	v.notify.Success("Quantity updated")
}

// RemoveItem deletes one line from the cart.
func (v *CartView) RemoveItem(ctx context.Context, itemID int64) {
	if v.tracker.Pending(itemID) {
		return
	}
	seq := v.tracker.Begin(itemID)
	cart, err := v.service.RemoveItem(ctx, itemID)
	apply := v.tracker.Finish(itemID, seq, err != nil)
	if err != nil {
		v.notify.Error(failureMessage(err, "Failed to remove item"))
		return
	}
	if apply {
		v.cart = cart
	}
	v.notify.Success("Item removed from cart")
}

// Clear empties the cart after an explicit confirmation. On success the
// local cart is reset without a refetch.
func (v *CartView) Clear(ctx context.Context) {
	if !v.prompt.Confirm("Are you sure you want to clear your cart?") {
		return
	}
	if err := v.service.Clear(ctx); err != nil {
		v.notify.Error("Failed to clear cart")
		return
	}
	if v.cart != nil {
		v.cart.Items = nil
		v.cart.TotalPrice = 0
	}
	v.notify.Success("Cart cleared successfully")
}

// Cart returns the last successfully fetched cart, or nil before Load.
func (v *CartView) Cart() *domain.Cart { return v.cart }

func (v *CartView) item(itemID int64) *domain.CartItem {
	if v.cart == nil {
		return nil
	}
	for i := range v.cart.Items {
		if v.cart.Items[i].ID == itemID {
			return &v.cart.Items[i]
		}
	}
	return nil
}

func (v *CartView) Render(w io.Writer) {
	if v.cart == nil || len(v.cart.Items) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}
	for _, item := range v.cart.Items {
		marker := " "
		if v.tracker.Pending(item.ID) {
			marker = "…"
		}
		fmt.Fprintf(w, "%s #%-4d %-30s x%-3d %8.2f\n", marker, item.ID, item.ProductName, item.Quantity, item.Total)
	}
	fmt.Fprintf(w, "Total: %.2f\n", v.cart.TotalPrice)
}
