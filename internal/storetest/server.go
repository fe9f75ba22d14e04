// Package storetest is an in-memory double of the shop backend, used by
// integration tests. It mirrors the real API's surface: cookie-based JWT
// authentication, role-gated /user and /admin groups, camelCase JSON
// bodies and the {"message": "..."} error envelope.
package storetest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/marketbay/storefront/internal/commerce/domain"
)

const (
	jwtSecret  = "storetest-secret"
	cookieName = "shop_session"
)

type user struct {
	id           int64
	username     string
	email        string
	passwordHash string
	roles        []string
}

type product struct {
	domain.Product
	categoryID int64
	createdAt  time.Time
}

// Server owns the fake backend's state. All access goes through mu; the
// handlers hold it for the whole request, which is fine at test scale.
type Server struct {
	httpSrv *httptest.Server

	mu         sync.Mutex
	nextID     int64
	users      map[string]*user
	products   map[int64]*product
	categories map[int64]*domain.Category
	carts      map[string]*domain.Cart
	orders     map[int64]*domain.Order
	comments   map[int64]*domain.Comment
	addresses  map[string]*domain.Address
}

// New starts the fake backend under the /api prefix and returns it.
// Callers must Close it.
func New() *Server {
	s := &Server{
		users:      make(map[string]*user),
		products:   make(map[int64]*product),
		categories: make(map[int64]*domain.Category),
		carts:      make(map[string]*domain.Cart),
		orders:     make(map[int64]*domain.Order),
		comments:   make(map[int64]*domain.Comment),
		addresses:  make(map[string]*domain.Address),
	}

	e := echo.New()
	e.HideBanner = true

	api := e.Group("/api")
	api.POST("/auth/register", s.register)
	api.POST("/auth/login", s.login)
	api.POST("/auth/signout", s.signout)

	api.GET("/public/products", s.listProducts)
	api.GET("/public/products/category/:id", s.listProducts)
	api.GET("/public/products/search", s.listProducts)
	api.GET("/public/products/:id", s.getProduct)
	api.GET("/public/categories", s.listCategories)

	usr := api.Group("/user", s.requireAuth)
	usr.GET("/cart", s.getCart)
	usr.POST("/cart/items", s.addCartItem)
	usr.PUT("/cart/items/:id", s.updateCartItem)
	usr.DELETE("/cart/items/:id", s.removeCartItem)
	usr.DELETE("/cart/clear", s.clearCart)
	usr.POST("/orders/place", s.placeOrder)
	usr.POST("/orders/confirm/:id", s.confirmOrder)
	usr.GET("/orders", s.listOrders)
	usr.GET("/orders/:id", s.getOrder)
	usr.GET("/address", s.getAddress)
	usr.POST("/address", s.saveAddress)
	usr.PUT("/address", s.saveAddress)
	usr.GET("/comments/product/:id", s.listComments)
	usr.POST("/comments", s.addComment)

	adm := api.Group("/admin", s.requireAuth, s.requireAdmin)
	adm.POST("/products", s.adminCreateProduct)
	adm.PUT("/products/:id", s.adminUpdateProduct)
	adm.DELETE("/products/:id", s.adminDeleteProduct)
	adm.POST("/categories", s.adminCreateCategory)
	adm.PUT("/categories/:id", s.adminUpdateCategory)
	adm.DELETE("/categories/:id", s.adminDeleteCategory)
	adm.GET("/orders", s.adminListOrders)
	adm.GET("/comments", s.adminListComments)
	adm.DELETE("/comments/:id", s.adminDeleteComment)
	adm.GET("/users", s.adminListUsers)

	s.httpSrv = httptest.NewServer(e)
	return s
}

// BaseURL is the address to hand to the client under test, prefix included.
func (s *Server) BaseURL() string { return s.httpSrv.URL + "/api" }

func (s *Server) Close() { s.httpSrv.Close() }

// --- auth ---

func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"message": msg})
}

func (s *Server) issueCookie(c echo.Context, u *user) error {
	claims := jwt.MapClaims{
		"sub":   u.username,
		"roles": u.roles,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{Name: cookieName, Value: token, Path: "/", HttpOnly: true})
	return nil
}

// requireAuth validates the session cookie and injects username/roles into
// the request context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			return fail(c, http.StatusUnauthorized, "missing session cookie")
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			return fail(c, http.StatusUnauthorized, "invalid session")
		}

		username, _ := claims["sub"].(string)
		roles := []string{}
		if raw, ok := claims["roles"].([]any); ok {
			for _, r := range raw {
				if s, ok := r.(string); ok {
					roles = append(roles, s)
				}
			}
		}
		c.Set("username", username)
		c.Set("roles", roles)
		return next(c)
	}
}

func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		roles, _ := c.Get("roles").([]string)
		for _, r := range roles {
			if r == domain.RoleAdmin {
				return next(c)
			}
		}
		return fail(c, http.StatusForbidden, "admin access required")
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.Username]; exists {
		return fail(c, http.StatusConflict, "username already taken")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "hash failure")
	}
	u := &user{
		id:           s.id(),
		username:     req.Username,
		email:        req.Email,
		passwordHash: string(hash),
		roles:        []string{domain.RoleUser},
	}
	s.users[u.username] = u

	if err := s.issueCookie(c, u); err != nil {
		return fail(c, http.StatusInternalServerError, "token failure")
	}
	return c.JSON(http.StatusCreated, identityOf(u))
}

func (s *Server) login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[req.Username]
	if !ok || bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(req.Password)) != nil {
		return fail(c, http.StatusUnauthorized, "Bad credentials")
	}
	if err := s.issueCookie(c, u); err != nil {
		return fail(c, http.StatusInternalServerError, "token failure")
	}
	return c.JSON(http.StatusOK, identityOf(u))
}

func (s *Server) signout(c echo.Context) error {
	c.SetCookie(&http.Cookie{Name: cookieName, Value: "", Path: "/", MaxAge: -1})
	return c.NoContent(http.StatusOK)
}

func identityOf(u *user) domain.Identity {
	return domain.Identity{
		ID:       u.id,
		Username: u.username,
		Email:    u.email,
		Roles:    append([]string(nil), u.roles...),
	}
}

// --- seed helpers for tests ---

// SeedAdmin registers an account carrying the admin role.
func (s *Server) SeedAdmin(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.users[username] = &user{
		id:           s.id(),
		username:     username,
		email:        username + "@example.com",
		passwordHash: string(hash),
		roles:        []string{domain.RoleUser, domain.RoleAdmin},
	}
}

// SeedCategory inserts a category and returns its ID.
func (s *Server) SeedCategory(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.categories[id] = &domain.Category{ID: id, Name: name}
	return id
}

// SeedProduct inserts a product and returns its ID.
func (s *Server) SeedProduct(name string, price float64, quantity int, categoryID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.products[id] = &product{
		Product: domain.Product{
			ID:           id,
			Name:         name,
			Description:  name + " description",
			Price:        price,
			Quantity:     quantity,
			CategoryName: s.categoryName(categoryID),
		},
		categoryID: categoryID,
		createdAt:  time.Now(),
	}
	return id
}

func (s *Server) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Server) categoryName(id int64) string {
	if c, ok := s.categories[id]; ok {
		return c.Name
	}
	return ""
}
