package console

import (
	"context"
	"fmt"
	"io"

	"github.com/marketbay/storefront/internal/commerce/ports"
	"github.com/marketbay/storefront/internal/payment"
)

// CheckoutView runs the two-step checkout: place the order to obtain the
// payment intent, confirm the payment with the processor's SDK, then tell
// the backend the payment went through. Any failure stops the flow and
// sends the user back to the cart with their contents preserved.
type CheckoutView struct {
	orders    ports.OrderService
	confirmer payment.Confirmer
	notify    Notifier
	out       io.Writer
}

func NewCheckoutView(orders ports.OrderService, confirmer payment.Confirmer, notify Notifier, out io.Writer) *CheckoutView {
	return &CheckoutView{orders: orders, confirmer: confirmer, notify: notify, out: out}
}

// Checkout returns true when the payment completed and was confirmed with
// the backend. On false the caller returns to the cart view.
func (v *CheckoutView) Checkout(ctx context.Context, card payment.Card) bool {
	intent, err := v.orders.Place(ctx)
	if err != nil {
		v.notify.Error(failureMessage(err, "Failed to start checkout"))
		return false
	}

	// Order summary before taking the card through the processor.
	if order, err := v.orders.Get(ctx, intent.OrderID); err == nil {
		fmt.Fprintf(v.out, "Order #%d — %.2f\n", order.ID, order.TotalAmount)
		for _, item := range order.Items {
			fmt.Fprintf(v.out, "  %-30s x%-3d %8.2f\n", item.ProductName, item.Quantity, item.Price)
		}
	}

	if v.confirmer == nil {
		v.notify.Error("Payments are not configured")
		return false
	}
	if err := v.confirmer.Confirm(ctx, intent.ClientSecret, card); err != nil {
		v.notify.Error(failureMessage(err, "Payment failed"))
		return false
	}

	if _, err := v.orders.Confirm(ctx, intent.OrderID); err != nil {
		v.notify.Error(failureMessage(err, "Payment confirmation failed"))
		return false
	}
	v.notify.Success("Payment successful!")
	return true
}
