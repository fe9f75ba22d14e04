package storetest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marketbay/storefront/internal/commerce/domain"
)

func pageOf[T any](items []T) domain.Page[T] {
	return domain.Page[T]{
		Content:       items,
		PageSize:      len(items),
		TotalPages:    1,
		TotalElements: int64(len(items)),
		LastPage:      true,
	}
}

func paramID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func username(c echo.Context) string {
	name, _ := c.Get("username").(string)
	return name
}

// --- public catalog ---

func (s *Server) listProducts(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var categoryID int64
	if c.Param("id") != "" {
		categoryID, _ = paramID(c)
	}
	search := strings.ToLower(c.QueryParam("name"))

	summaries := make([]domain.ProductSummary, 0, len(s.products))
	for _, p := range s.products {
		if categoryID != 0 && p.categoryID != categoryID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		summaries = append(summaries, domain.ProductSummary{
			ID:           p.ID,
			Name:         p.Name,
			ImageURL:     p.ImageURL,
			Price:        p.Price,
			CategoryName: p.CategoryName,
			CreatedAt:    p.createdAt.Format(time.RFC3339),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return c.JSON(http.StatusOK, pageOf(summaries))
}

func (s *Server) getProduct(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	return c.JSON(http.StatusOK, p.Product)
}

func (s *Server) listCategories(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	categories := make([]domain.Category, 0, len(s.categories))
	for _, cat := range s.categories {
		categories = append(categories, *cat)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return c.JSON(http.StatusOK, pageOf(categories))
}

// --- cart ---

func (s *Server) cartFor(name string) *domain.Cart {
	cart, ok := s.carts[name]
	if !ok {
		cart = &domain.Cart{ID: s.id(), Username: name}
		s.carts[name] = cart
	}
	return cart
}

func recalc(cart *domain.Cart) {
	total := 0.0
	for i := range cart.Items {
		cart.Items[i].Total = cart.Items[i].Price * float64(cart.Items[i].Quantity)
		total += cart.Items[i].Total
	}
	cart.TotalPrice = total
}

func (s *Server) getCart(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.cartFor(username(c)))
}

func (s *Server) addCartItem(c echo.Context) error {
	var req struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[req.ProductID]
	if !ok {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	if req.Quantity < 1 {
		return fail(c, http.StatusBadRequest, "quantity must be positive")
	}

	cart := s.cartFor(username(c))
	for i := range cart.Items {
		if cart.Items[i].ProductName == p.Name {
			cart.Items[i].Quantity += req.Quantity
			recalc(cart)
			return c.JSON(http.StatusOK, cart)
		}
	}
	cart.Items = append(cart.Items, domain.CartItem{
		ID:           s.id(),
		ProductName:  p.Name,
		ProductImage: p.ImageURL,
		Price:        p.Price,
		Quantity:     req.Quantity,
	})
	recalc(cart)
	return c.JSON(http.StatusOK, cart)
}

func (s *Server) updateCartItem(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid item id")
	}
	quantity, err := strconv.Atoi(c.QueryParam("quantity"))
	if err != nil || quantity < 1 {
		return fail(c, http.StatusBadRequest, "invalid quantity")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartFor(username(c))
	for i := range cart.Items {
		if cart.Items[i].ID == id {
			cart.Items[i].Quantity = quantity
			recalc(cart)
			return c.JSON(http.StatusOK, cart)
		}
	}
	return fail(c, http.StatusNotFound, "Cart item not found")
}

func (s *Server) removeCartItem(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid item id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartFor(username(c))
	for i := range cart.Items {
		if cart.Items[i].ID == id {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			recalc(cart)
			return c.JSON(http.StatusOK, cart)
		}
	}
	return fail(c, http.StatusNotFound, "Cart item not found")
}

func (s *Server) clearCart(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartFor(username(c))
	cart.Items = nil
	cart.TotalPrice = 0
	return c.NoContent(http.StatusOK)
}

// --- orders ---

func (s *Server) placeOrder(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := username(c)
	cart := s.cartFor(name)
	if len(cart.Items) == 0 {
		return fail(c, http.StatusBadRequest, "Cart is empty")
	}

	order := &domain.Order{
		ID:          s.id(),
		Status:      domain.OrderStatusPending,
		TotalAmount: cart.TotalPrice,
		CreatedAt:   time.Now(),
		Username:    name,
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ID:          s.id(),
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}
	s.orders[order.ID] = order
	cart.Items = nil
	cart.TotalPrice = 0

	return c.JSON(http.StatusCreated, domain.PaymentIntent{
		ClientSecret: fmt.Sprintf("pi_%d_secret_test", order.ID),
		OrderID:      order.ID,
		TotalAmount:  order.TotalAmount,
	})
}

func (s *Server) confirmOrder(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid order id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok || order.Username != username(c) {
		return fail(c, http.StatusNotFound, "Order not found")
	}
	order.Status = domain.OrderStatusPaid
	return c.JSON(http.StatusOK, order)
}

func (s *Server) listOrders(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := username(c)
	orders := make([]domain.Order, 0)
	for _, o := range s.orders {
		if o.Username == name {
			orders = append(orders, *o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid order id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok || order.Username != username(c) {
		return fail(c, http.StatusNotFound, "Order not found")
	}
	return c.JSON(http.StatusOK, order)
}

// --- address ---

func (s *Server) getAddress(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	address, ok := s.addresses[username(c)]
	if !ok {
		return fail(c, http.StatusNotFound, "Address not found")
	}
	return c.JSON(http.StatusOK, address)
}

func (s *Server) saveAddress(c echo.Context) error {
	var req domain.Address
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	name := username(c)
	existing, ok := s.addresses[name]
	if ok {
		req.ID = existing.ID
	} else {
		req.ID = s.id()
	}
	req.UserName = name
	s.addresses[name] = &req

	status := http.StatusOK
	if !ok {
		status = http.StatusCreated
	}
	return c.JSON(status, &req)
}

// --- comments ---

func (s *Server) listComments(c echo.Context) error {
	productID, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	comments := make([]domain.Comment, 0)
	for _, cm := range s.comments {
		if cm.ProductID == productID {
			comments = append(comments, *cm)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID > comments[j].ID })
	return c.JSON(http.StatusOK, pageOf(comments))
}

func (s *Server) addComment(c echo.Context) error {
	var req struct {
		Text      string `json:"text"`
		Rating    int    `json:"rating"`
		ProductID int64  `json:"productId"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[req.ProductID]
	if !ok {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	comment := &domain.Comment{
		ID:          s.id(),
		Text:        req.Text,
		Rating:      req.Rating,
		ProductID:   req.ProductID,
		Username:    username(c),
		CreatedAt:   time.Now(),
		ProductName: p.Name,
	}
	s.comments[comment.ID] = comment
	return c.JSON(http.StatusCreated, comment)
}

// --- admin ---

// productData decodes the JSON "data" part of the multipart form.
type productData struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	CategoryID  int64   `json:"categoryId"`
}

func (s *Server) bindProductForm(c echo.Context) (*productData, string, error) {
	raw := c.FormValue("data")
	var data productData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, "", fail(c, http.StatusBadRequest, "invalid product data")
	}

	imageURL := ""
	if fh, err := c.FormFile("file"); err == nil {
		imageURL = "/images/" + fh.Filename
	}
	return &data, imageURL, nil
}

func (s *Server) adminCreateProduct(c echo.Context) error {
	data, imageURL, err := s.bindProductForm(c)
	if data == nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := &product{
		Product: domain.Product{
			ID:           s.id(),
			Name:         data.Name,
			Description:  data.Description,
			ImageURL:     imageURL,
			Price:        data.Price,
			Quantity:     data.Quantity,
			CategoryName: s.categoryName(data.CategoryID),
		},
		categoryID: data.CategoryID,
		createdAt:  time.Now(),
	}
	s.products[p.ID] = p
	return c.JSON(http.StatusCreated, p.Product)
}

func (s *Server) adminUpdateProduct(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product id")
	}
	data, imageURL, err := s.bindProductForm(c)
	if data == nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	p.Name = data.Name
	p.Description = data.Description
	p.Price = data.Price
	p.Quantity = data.Quantity
	p.categoryID = data.CategoryID
	p.CategoryName = s.categoryName(data.CategoryID)
	if imageURL != "" {
		p.ImageURL = imageURL
	}
	return c.JSON(http.StatusOK, p.Product)
}

func (s *Server) adminDeleteProduct(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	delete(s.products, id)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) adminCreateCategory(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return fail(c, http.StatusBadRequest, "invalid category")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	category := &domain.Category{ID: s.id(), Name: req.Name}
	s.categories[category.ID] = category
	return c.JSON(http.StatusCreated, category)
}

func (s *Server) adminUpdateCategory(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid category id")
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return fail(c, http.StatusBadRequest, "invalid category")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	category, ok := s.categories[id]
	if !ok {
		return fail(c, http.StatusNotFound, "Category not found")
	}
	category.Name = req.Name
	return c.JSON(http.StatusOK, category)
}

func (s *Server) adminDeleteCategory(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid category id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return fail(c, http.StatusNotFound, "Category not found")
	}
	delete(s.categories, id)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) adminListOrders(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, *o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return c.JSON(http.StatusOK, pageOf(orders))
}

func (s *Server) adminListComments(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	comments := make([]domain.Comment, 0, len(s.comments))
	for _, cm := range s.comments {
		comments = append(comments, *cm)
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return c.JSON(http.StatusOK, pageOf(comments))
}

func (s *Server) adminDeleteComment(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid comment id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return fail(c, http.StatusNotFound, "Comment not found")
	}
	delete(s.comments, id)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) adminListUsers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, domain.User{
			ID:       u.id,
			Username: u.username,
			Email:    u.email,
			Roles:    append([]string(nil), u.roles...),
		})
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return c.JSON(http.StatusOK, pageOf(users))
}
