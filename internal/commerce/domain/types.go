// Package domain holds the data-transfer shapes mirrored from backend
// responses. The backend is the sole writer of persistent state; these
// types only ever hold the last successful server response.
package domain

import "time"

// ProductSummary is the lightweight product view used on listing pages.
type ProductSummary struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ImageURL     string  `json:"imageUrl"`
	Price        float64 `json:"price"`
	CategoryName string  `json:"categoryName"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}

// Product is the full product view returned by the detail endpoint.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"imageUrl"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	CategoryName  string  `json:"categoryName"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int64   `json:"reviewCount"`
}

// Category is a product grouping managed by admins.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CartItem is one line of the user's cart.
type CartItem struct {
	ID           int64   `json:"id"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Total        float64 `json:"total"`
}

// Cart is the user's cart with its aggregate total.
type Cart struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
}

// OrderItem is one line of a placed order.
type OrderItem struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Order statuses as reported by the backend.
const (
	OrderStatusPending = "PENDING"
	OrderStatusPaid    = "PAID"
)

// Order is a placed order with its lines.
type Order struct {
	ID          int64       `json:"id"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"totalAmount"`
	CreatedAt   time.Time   `json:"createdAt"`
	Username    string      `json:"username"`
	Items       []OrderItem `json:"items"`
}

// PaymentIntent is the result of placing an order: the order to confirm and
// the payment processor's client secret, opaque to this client.
type PaymentIntent struct {
	ClientSecret string  `json:"clientSecret"`
	OrderID      int64   `json:"orderId"`
	TotalAmount  float64 `json:"totalAmount"`
}

// Comment is a product review.
type Comment struct {
	ID          int64     `json:"id"`
	Text        string    `json:"text"`
	Rating      int       `json:"rating"`
	ProductID   int64     `json:"productId"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"createdAt"`
	ProductName string    `json:"productName,omitempty"`
}

// Address is the user's shipping address.
type Address struct {
	ID       int64  `json:"id"`
	Street   string `json:"street"`
	City     string `json:"city"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
	UserName string `json:"userName,omitempty"`
	Email    string `json:"email,omitempty"`
}

// User is the admin-facing account record.
type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// Page is the backend's paged collection envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	LastPage      bool  `json:"lastPage"`
}
