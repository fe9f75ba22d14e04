package console

import (
	"context"
	"fmt"
	"io"

	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
)

// OrdersView lists the user's orders and lets them confirm payment of an
// order still pending, with a per-order in-flight guard.
type OrdersView struct {
	service ports.OrderService
	notify  Notifier
	tracker *Tracker

	orders []domain.Order
}

func NewOrdersView(service ports.OrderService, notify Notifier) *OrdersView {
	return &OrdersView{service: service, notify: notify, tracker: NewTracker()}
}

func (v *OrdersView) Load(ctx context.Context) {
	orders, err := v.service.List(ctx)
	if err != nil {
		v.notify.Error("Failed to load orders")
		return
	}
	v.orders = orders
}

// ConfirmPayment retries backend confirmation of a pending order and
// patches the local entry from the response.
func (v *OrdersView) ConfirmPayment(ctx context.Context, orderID int64) {
	if v.tracker.Pending(orderID) {
		return
	}
	seq := v.tracker.Begin(orderID)
	order, err := v.service.Confirm(ctx, orderID)
	apply := v.tracker.Finish(orderID, seq, err != nil)
	if err != nil {
		v.notify.Error(failureMessage(err, "Payment confirmation failed"))
		return
	}
	if apply {
		for i := range v.orders {
			if v.orders[i].ID == orderID {
				v.orders[i] = *order
			}
		}
	}
	v.notify.Success("Payment confirmed successfully!")
}

// ShowDetail fetches and renders one order.
func (v *OrdersView) ShowDetail(ctx context.Context, id int64, w io.Writer) {
	order, err := v.service.Get(ctx, id)
	if err != nil {
		v.notify.Error(failureMessage(err, "Failed to load order"))
		return
	}
	fmt.Fprintf(w, "Order #%d  %s  %.2f  %s\n", order.ID, order.Status, order.TotalAmount, order.CreatedAt.Format("2006-01-02"))
	for _, item := range order.Items {
		fmt.Fprintf(w, "  %-30s x%-3d %8.2f\n", item.ProductName, item.Quantity, item.Price)
	}
}

func (v *OrdersView) Render(w io.Writer) {
	if len(v.orders) == 0 {
		fmt.Fprintln(w, "No orders yet.")
		return
	}
	for _, o := range v.orders {
		marker := " "
		if v.tracker.Pending(o.ID) {
			marker = "…"
		}
		fmt.Fprintf(w, "%s #%-4d %-8s %8.2f  %s\n", marker, o.ID, o.Status, o.TotalAmount, o.CreatedAt.Format("2006-01-02"))
	}
}
