package models

import "time"

type Order struct {
	ID          int         `json:"id"`
	CartID      *string     `json:"cartId"`
	FullName    string      `json:"fullName"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Place       string      `json:"place"`
	TotalAmount float64     `json:"totalAmount"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Items       []OrderItem `json:"orderItem,omitempty"`
}

// OrderItem carries the product name and unit price as they were when
// the order was placed, so later product edits never rewrite history.
type OrderItem struct {
	ID          int      `json:"id"`
	OrderID     int      `json:"orderId"`
	ProductID   int      `json:"productId"`
	ProductName string   `json:"productName"`
	UnitPrice   float64  `json:"unitPrice"`
	Quantity    int      `json:"quantity"`
	Product     *Product `json:"product,omitempty"`
}
