package models

type OrderItemInput struct {
	ProductID int `json:"productId" binding:"required,min=1"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	CartID   *string          `json:"cartId"`
	FullName string           `json:"fullName" binding:"required"`
	Email    string           `json:"email" binding:"required,email"`
	Phone    string           `json:"phone" binding:"required"`
	Place    string           `json:"place" binding:"required,min=3"`
	Items    []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderRequest is a partial patch. Items and totalAmount are
// deliberately absent: both are immutable after creation.
type UpdateOrderRequest struct {
	CartID   *string `json:"cartId"`
	FullName *string `json:"fullName"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Place    *string `json:"place" binding:"omitempty,min=3"`
	IsActive *bool   `json:"isActive"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	ImageURL    []string `json:"imageUrl" binding:"max=3"`
	CategoryID  int      `json:"categoryId" binding:"required,min=1"`
	BrandID     int      `json:"brandId" binding:"required,min=1"`
	IsActive    *bool    `json:"isActive"`
}

type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" binding:"omitempty,gt=0"`
	ImageURL    *[]string `json:"imageUrl" binding:"omitempty,max=3"`
	CategoryID  *int      `json:"categoryId" binding:"omitempty,min=1"`
	BrandID     *int      `json:"brandId" binding:"omitempty,min=1"`
	IsActive    *bool     `json:"isActive"`
}

type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"isActive"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

type CreateBrandRequest struct {
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"isActive"`
}

type UpdateBrandRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

type CreateContactRequest struct {
	Name         string  `json:"name" binding:"required,max=120"`
	Phone        string  `json:"phone" binding:"required,max=20"`
	Email        string  `json:"email" binding:"required,email,max=150"`
	InterestedIn *string `json:"interestedIn" binding:"omitempty,max=80"`
	Message      *string `json:"message" binding:"omitempty,max=1000"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
