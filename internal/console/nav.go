package console

import (
	"context"
	"fmt"
	"io"

	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
	"github.com/marketbay/storefront/internal/session"
)

// Nav is the navigation shell: the links it renders depend entirely on the
// session store's content. It keeps a cart item count that is refreshed on
// every auth transition.
type Nav struct {
	session   *session.Store
	cart      ports.CartService
	cartCount int
}

func NewNav(store *session.Store, cart ports.CartService) *Nav {
	n := &Nav{session: store, cart: cart}
	store.Subscribe(func(snap session.Snapshot) {
		n.refreshCartCount(context.Background(), snap.Authenticated)
	})
	return n
}

func (n *Nav) refreshCartCount(ctx context.Context, authenticated bool) {
	if !authenticated {
		n.cartCount = 0
		return
	}
	cart, err := n.cart.Get(ctx)
	if err != nil {
		n.cartCount = 0
		return
	}
	n.cartCount = len(cart.Items)
}

func (n *Nav) Render(w io.Writer) {
	items := []string{"products", fmt.Sprintf("cart(%d)", n.cartCount)}

	snap := n.session.Snapshot()
	if snap.Authenticated {
		items = append(items, "orders", "profile:"+snap.Identity.Username)
		if snap.Identity.HasRole(domain.RoleAdmin) {
			items = append(items, "admin")
		}
		items = append(items, "logout")
	} else {
		items = append(items, "login", "register")
	}

	for i, item := range items {
		if i > 0 {
			fmt.Fprint(w, " | ")
		}
		fmt.Fprint(w, item)
	}
	fmt.Fprintln(w)
}
