package main

import (
	"bufio"
	"context"
	"os"

	"github.com/marketbay/storefront/internal/client"
	"github.com/marketbay/storefront/internal/commerce/rest"
	"github.com/marketbay/storefront/internal/config"
	"github.com/marketbay/storefront/internal/console"
	"github.com/marketbay/storefront/internal/payment"
	"github.com/marketbay/storefront/internal/session"
	"github.com/marketbay/storefront/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	store := session.NewStore()

	api := client.New(client.Config{
		BaseURL: cfg.APIBaseURL,
		Logger:  log,
		// Drop the stale local session when the backend no longer accepts
		// the credential; the next render reflects the anonymous state.
		OnUnauthorized: store.Logout,
	})

	auth := rest.NewAuthService(api)
	catalog := rest.NewCatalogService(api)
	cart := rest.NewCartService(api)
	orders := rest.NewOrderService(api)
	address := rest.NewAddressService(api)
	comments := rest.NewCommentService(api)
	admin := rest.NewAdminService(api)

	var confirmer payment.Confirmer
	if c, err := payment.NewStripeConfirmer(cfg.Stripe.APIKey); err == nil {
		confirmer = c
	} else {
		log.Warn().Err(err).Msg("checkout disabled")
	}

	out := os.Stdout
	in := bufio.NewReader(os.Stdin)
	notify := console.NewNotifier(out)
	prompt := console.NewPrompter(in, out)

	views := console.Views{
		Nav:             console.NewNav(store, cart),
		Auth:            console.NewAuthView(auth, store, notify),
		Catalog:         console.NewCatalogView(catalog, cart, store, notify, cfg.PageSize),
		Product:         console.NewProductView(catalog, cart, comments, store, notify, cfg.CommentPageSize),
		Cart:            console.NewCartView(cart, notify, prompt),
		Checkout:        console.NewCheckoutView(orders, confirmer, notify, out),
		Orders:          console.NewOrdersView(orders, notify),
		Profile:         console.NewProfileView(address, notify),
		AdminProducts:   console.NewAdminProductsView(admin, catalog, notify, prompt),
		AdminCategories: console.NewAdminCategoriesView(admin, catalog, notify, prompt),
		AdminOrders:     console.NewAdminOrdersView(admin, notify),
		AdminComments:   console.NewAdminCommentsView(admin, notify, prompt),
		AdminUsers:      console.NewAdminUsersView(admin, notify),
	}

	console.NewShell(in, out, notify, store, views).Run(context.Background())
}
