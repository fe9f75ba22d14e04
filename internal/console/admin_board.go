package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
)

// AdminOrdersView lists all orders across users.
type AdminOrdersView struct {
	admin  ports.AdminService
	notify Notifier

	orders []domain.Order
}

func NewAdminOrdersView(admin ports.AdminService, notify Notifier) *AdminOrdersView {
	return &AdminOrdersView{admin: admin, notify: notify}
}

func (v *AdminOrdersView) Load(ctx context.Context) {
	page, err := v.admin.ListOrders(ctx)
	if err != nil {
		v.notify.Error("Failed to load orders")
		return
	}
	v.orders = page.Content
}

func (v *AdminOrdersView) Render(w io.Writer) {
	if len(v.orders) == 0 {
		fmt.Fprintln(w, "No orders.")
		return
	}
	for _, o := range v.orders {
		fmt.Fprintf(w, "#%-4d %-12s %-8s %8.2f  %s\n", o.ID, o.Username, o.Status, o.TotalAmount, o.CreatedAt.Format("2006-01-02"))
	}
}

// AdminCommentsView lists all reviews and deletes them behind a
// confirmation.
type AdminCommentsView struct {
	admin  ports.AdminService
	notify Notifier
	prompt Prompter

	comments []domain.Comment
}

func NewAdminCommentsView(admin ports.AdminService, notify Notifier, prompt Prompter) *AdminCommentsView {
	return &AdminCommentsView{admin: admin, notify: notify, prompt: prompt}
}

func (v *AdminCommentsView) Load(ctx context.Context) {
	page, err := v.admin.ListComments(ctx)
	if err != nil {
		v.notify.Error("Failed to load comments")
		return
	}
	v.comments = page.Content
}

func (v *AdminCommentsView) Delete(ctx context.Context, id int64) {
	if !v.prompt.Confirm("Are you sure you want to delete this comment?") {
		return
	}
	if err := v.admin.DeleteComment(ctx, id); err != nil {
		v.notify.Error(failureMessage(err, "Failed to delete comment"))
		return
	}
	v.comments = deleteByID(v.comments, func(c domain.Comment) int64 { return c.ID }, id)
	v.notify.Success("Comment deleted")
}

func (v *AdminCommentsView) Render(w io.Writer) {
	if len(v.comments) == 0 {
		fmt.Fprintln(w, "No comments.")
		return
	}
	for _, c := range v.comments {
		fmt.Fprintf(w, "#%-4d %s %-12s %s\n", c.ID, stars(c.Rating), c.Username, c.Text)
	}
}

// AdminUsersView lists all registered accounts.
type AdminUsersView struct {
	admin  ports.AdminService
	notify Notifier

	users []domain.User
}

func NewAdminUsersView(admin ports.AdminService, notify Notifier) *AdminUsersView {
	return &AdminUsersView{admin: admin, notify: notify}
}

func (v *AdminUsersView) Load(ctx context.Context) {
	page, err := v.admin.ListUsers(ctx)
	if err != nil {
		v.notify.Error("Failed to load users")
		return
	}
	v.users = page.Content
}

func (v *AdminUsersView) Render(w io.Writer) {
	if len(v.users) == 0 {
		fmt.Fprintln(w, "No users.")
		return
	}
	for _, u := range v.users {
		fmt.Fprintf(w, "#%-4d %-16s %-28s %s\n", u.ID, u.Username, u.Email, strings.Join(u.Roles, ","))
	}
}
