package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/marketbay/storefront/internal/commerce/ports"
	"github.com/marketbay/storefront/internal/payment"
	"github.com/marketbay/storefront/internal/session"
)

// Views bundles every screen the shell can route to.
type Views struct {
	Nav             *Nav
	Auth            *AuthView
	Catalog         *CatalogView
	Product         *ProductView
	Cart            *CartView
	Checkout        *CheckoutView
	Orders          *OrdersView
	Profile         *ProfileView
	AdminProducts   *AdminProductsView
	AdminCategories *AdminCategoriesView
	AdminOrders     *AdminOrdersView
	AdminComments   *AdminCommentsView
	AdminUsers      *AdminUsersView
}

// Shell is the interactive command loop. One command maps to one view
// action; the views own all state and messaging. The input reader is
// shared with the Prompter so confirmation answers are not buffered away.
type Shell struct {
	in      *bufio.Reader
	out     io.Writer
	notify  Notifier
	session *session.Store
	views   Views
}

func NewShell(in *bufio.Reader, out io.Writer, notify Notifier, store *session.Store, views Views) *Shell {
	return &Shell{in: in, out: out, notify: notify, session: store, views: views}
}

// Run reads commands until EOF or "quit".
func (s *Shell) Run(ctx context.Context) {
	fmt.Fprintln(s.out, "marketbay storefront — type 'help' for commands")
	for {
		fmt.Fprint(s.out, "> ")
		raw, err := s.in.ReadString('\n')
		line := strings.TrimSpace(raw)
		if line == "quit" || line == "exit" {
			return
		}
		if line != "" {
			s.dispatch(ctx, strings.Fields(line))
		}
		if err != nil {
			return
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, args []string) {
	switch args[0] {
	case "help":
		s.printHelp()
	case "nav":
		s.views.Nav.Render(s.out)
	case "products":
		s.products(ctx, args[1:])
	case "product":
		if id, ok := s.id(args, 1); ok {
			s.views.Product.Load(ctx, id)
			s.views.Product.Render(s.out)
		}
	case "review":
		s.review(ctx, args[1:])
	case "add":
		if id, ok := s.id(args, 1); ok {
			s.views.Catalog.AddToCart(ctx, id)
		}
	case "cart":
		s.cart(ctx, args[1:])
	case "checkout":
		s.checkout(ctx, args[1:])
	case "orders":
		s.views.Orders.Load(ctx)
		s.views.Orders.Render(s.out)
	case "order":
		if id, ok := s.id(args, 1); ok {
			s.views.Orders.ShowDetail(ctx, id, s.out)
		}
	case "pay":
		if id, ok := s.id(args, 1); ok {
			s.views.Orders.ConfirmPayment(ctx, id)
		}
	case "profile":
		s.views.Profile.Load(ctx)
		s.views.Profile.Render(s.out)
	case "address":
		s.address(ctx, strings.Join(args[1:], " "))
	case "login":
		if len(args) != 3 {
			s.notify.Error("usage: login <username> <password>")
			return
		}
		s.views.Auth.Login(ctx, args[1], args[2])
	case "register":
		if len(args) != 5 {
			s.notify.Error("usage: register <username> <email> <password> <confirm>")
			return
		}
		s.views.Auth.Register(ctx, args[1], args[2], args[3], args[4])
	case "logout":
		s.views.Auth.Logout(ctx)
	case "admin":
		s.admin(ctx, args[1:])
	default:
		s.notify.Error("unknown command: " + args[0])
	}
}

func (s *Shell) products(ctx context.Context, args []string) {
	if len(args) >= 1 {
		switch args[0] {
		case "sort":
			if len(args) == 2 {
				s.views.Catalog.SortBy(args[1])
				s.views.Catalog.Render(s.out)
				return
			}
		case "search":
			s.views.Catalog.Search(ctx, strings.Join(args[1:], " "))
			s.views.Catalog.Render(s.out)
			return
		case "cat":
			if id, ok := s.id(args, 1); ok {
				s.views.Catalog.FilterByCategory(ctx, id)
				s.views.Catalog.Render(s.out)
			}
			return
		}
	}
	s.views.Catalog.Load(ctx)
	s.views.Catalog.Render(s.out)
}

func (s *Shell) review(ctx context.Context, args []string) {
	if len(args) < 2 {
		s.notify.Error("usage: review <rating 1-5> <text>")
		return
	}
	rating, err := strconv.Atoi(args[0])
	if err != nil {
		s.notify.Error("rating must be a number")
		return
	}
	s.views.Product.AddReview(ctx, strings.Join(args[1:], " "), rating)
}

func (s *Shell) cart(ctx context.Context, args []string) {
	if len(args) == 0 {
		s.views.Cart.Load(ctx)
		s.views.Cart.Render(s.out)
		return
	}
	switch args[0] {
	case "inc":
		if id, ok := s.id(args, 1); ok {
			s.views.Cart.IncreaseQuantity(ctx, id)
		}
	case "dec":
		if id, ok := s.id(args, 1); ok {
			s.views.Cart.DecreaseQuantity(ctx, id)
		}
	case "rm":
		if id, ok := s.id(args, 1); ok {
			s.views.Cart.RemoveItem(ctx, id)
		}
	case "clear":
		s.views.Cart.Clear(ctx)
	default:
		s.notify.Error("usage: cart [inc|dec|rm <itemID> | clear]")
	}
}

func (s *Shell) checkout(ctx context.Context, args []string) {
	if len(args) != 4 {
		s.notify.Error("usage: checkout <card-number> <exp-month> <exp-year> <cvc>")
		return
	}
	month, err1 := strconv.ParseInt(args[1], 10, 64)
	year, err2 := strconv.ParseInt(args[2], 10, 64)
	if err1 != nil || err2 != nil {
		s.notify.Error("expiry must be numeric")
		return
	}
	card := payment.Card{Number: args[0], ExpMonth: month, ExpYear: year, CVC: args[3]}
	if s.views.Checkout.Checkout(ctx, card) {
		s.views.Orders.Load(ctx)
		s.views.Orders.Render(s.out)
		return
	}
	// Failed checkout lands the user back on the cart, contents intact.
	s.views.Cart.Load(ctx)
	s.views.Cart.Render(s.out)
}

func (s *Shell) address(ctx context.Context, line string) {
	parts := strings.Split(line, "|")
	if len(parts) != 4 {
		s.notify.Error("usage: address <street>|<city>|<zip>|<country>")
		return
	}
	s.views.Profile.Save(ctx, ports.AddressInput{
		Street:  strings.TrimSpace(parts[0]),
		City:    strings.TrimSpace(parts[1]),
		ZipCode: strings.TrimSpace(parts[2]),
		Country: strings.TrimSpace(parts[3]),
	})
}

func (s *Shell) admin(ctx context.Context, args []string) {
	identity := s.session.Identity()
	if !identity.IsAdmin() {
		s.notify.Error("admin access required")
		return
	}
	if len(args) == 0 {
		s.notify.Error("usage: admin <products|categories|orders|comments|users|...>")
		return
	}
	switch args[0] {
	case "products":
		s.views.AdminProducts.Load(ctx)
		s.views.AdminProducts.Render(s.out)
	case "categories":
		s.views.AdminCategories.Load(ctx)
		s.views.AdminCategories.Render(s.out)
	case "orders":
		s.views.AdminOrders.Load(ctx)
		s.views.AdminOrders.Render(s.out)
	case "comments":
		s.views.AdminComments.Load(ctx)
		s.views.AdminComments.Render(s.out)
	case "users":
		s.views.AdminUsers.Load(ctx)
		s.views.AdminUsers.Render(s.out)
	case "add-category":
		if len(args) >= 2 {
			s.views.AdminCategories.Create(ctx, strings.Join(args[1:], " "))
		}
	case "rename-category":
		if id, ok := s.id(args, 1); ok && len(args) >= 3 {
			s.views.AdminCategories.Rename(ctx, id, strings.Join(args[2:], " "))
		}
	case "del-category":
		if id, ok := s.id(args, 1); ok {
			s.views.AdminCategories.Delete(ctx, id)
		}
	case "add-product":
		input, image, ok := s.productForm(args[1:])
		if ok {
			s.views.AdminProducts.Create(ctx, input, image)
		}
	case "update-product":
		if id, ok := s.id(args, 1); ok {
			input, image, formOK := s.productForm(args[2:])
			if formOK {
				s.views.AdminProducts.Update(ctx, id, input, image)
			}
		}
	case "del-product":
		if id, ok := s.id(args, 1); ok {
			s.views.AdminProducts.Delete(ctx, id)
		}
	case "del-comment":
		if id, ok := s.id(args, 1); ok {
			s.views.AdminComments.Delete(ctx, id)
		}
	default:
		s.notify.Error("unknown admin command: " + args[0])
	}
}

// productForm parses "name|description|price|quantity|categoryID" plus an
// optional image path argument.
func (s *Shell) productForm(args []string) (ports.ProductInput, *ports.ImageUpload, bool) {
	if len(args) == 0 {
		s.notify.Error("usage: admin add-product <name>|<description>|<price>|<quantity>|<categoryID> [image-path]")
		return ports.ProductInput{}, nil, false
	}

	var imagePath string
	if len(args) >= 2 {
		imagePath = args[len(args)-1]
		args = args[:len(args)-1]
	}

	parts := strings.Split(strings.Join(args, " "), "|")
	if len(parts) != 5 {
		s.notify.Error("product form needs 5 fields separated by |")
		return ports.ProductInput{}, nil, false
	}
	price, _ := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	quantity, _ := strconv.Atoi(strings.TrimSpace(parts[3]))
	categoryID, _ := strconv.ParseInt(strings.TrimSpace(parts[4]), 10, 64)
	input := ports.ProductInput{
		Name:        strings.TrimSpace(parts[0]),
		Description: strings.TrimSpace(parts[1]),
		Price:       price,
		Quantity:    quantity,
		CategoryID:  categoryID,
	}

	if imagePath == "" {
		return input, nil, true
	}
	content, err := os.ReadFile(imagePath)
	if err != nil {
		s.notify.Error("cannot read image: " + err.Error())
		return ports.ProductInput{}, nil, false
	}
	return input, &ports.ImageUpload{
		Filename:    filepath.Base(imagePath),
		ContentType: http.DetectContentType(content),
		Content:     content,
	}, true
}

func (s *Shell) id(args []string, pos int) (int64, bool) {
	if len(args) <= pos {
		s.notify.Error("missing id")
		return 0, false
	}
	id, err := strconv.ParseInt(args[pos], 10, 64)
	if err != nil {
		s.notify.Error("id must be a number")
		return 0, false
	}
	return id, true
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.out, `commands:
  nav                                   show navigation
  products [sort <mode>|search <q>|cat <id>]
  product <id>                          product detail with reviews
  review <rating> <text>                review the shown product
  add <productID>                       add one unit to the cart
  cart [inc|dec|rm <itemID> | clear]
  checkout <card> <mm> <yyyy> <cvc>
  orders | order <id> | pay <orderID>
  profile | address <street>|<city>|<zip>|<country>
  login | register | logout
  admin products|categories|orders|comments|users
  admin add-category <name> | rename-category <id> <name> | del-category <id>
  admin add-product <form> [image] | update-product <id> <form> | del-product <id>
  admin del-comment <id>
  quit
`)
}
