package services

import (
	"bnc-store/models"
	"context"
	"log"
	"strings"
)

// ProductPricer resolves current product pricing for order snapshots.
type ProductPricer interface {
	PricingByIDs(ctx context.Context, ids []int) ([]models.ProductPricing, error)
}

// OrderStore persists orders. Create must write the order and all of
// its items atomically.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindAll(ctx context.Context) ([]models.Order, error)
	FindActive(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id int) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
}

// OrderMailer is the fire-and-forget notification boundary. Send
// failures never affect the order itself.
type OrderMailer interface {
	SendOrderPlaced(order *models.Order) error
}

type OrderService struct {
	products ProductPricer
	orders   OrderStore
	mailer   OrderMailer
}

// NewOrderService wires the order workflow. mailer may be nil when SMTP
// is not configured; the service then skips notifications.
func NewOrderService(products ProductPricer, orders OrderStore, mailer OrderMailer) *OrderService {
	return &OrderService{
		products: products,
		orders:   orders,
		mailer:   mailer,
	}
}

// Create places an order: it snapshots product name and price from the
// live catalog, computes the total server-side, persists order and
// items in one transaction, then attempts the confirmation email.
func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest) (*models.OrderResult, error) {
	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	ids := distinctProductIDs(req.Items)

	pricing, err := s.products.PricingByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(pricing) != len(ids) {
		return nil, models.ErrProductsNotFound
	}

	priceByID := make(map[int]models.ProductPricing, len(pricing))
	for _, p := range pricing {
		priceByID[p.ID] = p
	}

	var totalAmount float64
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, in := range req.Items {
		p := priceByID[in.ProductID]
		items = append(items, models.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    in.Quantity,
		})
		totalAmount += p.Price * float64(in.Quantity)
	}

	order := &models.Order{
		CartID:      normalizeCartID(req.CartID),
		FullName:    strings.TrimSpace(req.FullName),
		Email:       strings.TrimSpace(req.Email),
		Phone:       phone,
		Place:       strings.TrimSpace(req.Place),
		TotalAmount: totalAmount,
		Items:       items,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	// The order is durable at this point; a failed email is logged and
	// swallowed, never surfaced to the caller.
	if s.mailer != nil {
		if err := s.mailer.SendOrderPlaced(order); err != nil {
			log.Printf("Order email failed: %v", err)
		}
	}

	return &models.OrderResult{
		Message: "Order created successfully",
		Order:   order,
	}, nil
}

func (s *OrderService) FindAll(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *OrderService) FindActive(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindActive(ctx)
}

func (s *OrderService) FindOne(ctx context.Context, id int) (*models.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// Update patches contact fields on an existing order. Items and
// totalAmount are immutable after creation and cannot be patched.
func (s *OrderService) Update(ctx context.Context, id int, req models.UpdateOrderRequest) (*models.OrderResult, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CartID != nil {
		order.CartID = normalizeCartID(req.CartID)
	}
	if req.FullName != nil {
		order.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		order.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		phone, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		order.Phone = phone
	}
	if req.Place != nil {
		order.Place = strings.TrimSpace(*req.Place)
	}
	if req.IsActive != nil {
		order.IsActive = *req.IsActive
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	return &models.OrderResult{
		Message: "Order updated successfully",
		Order:   order,
	}, nil
}

// Remove soft-deletes an order. Removing an already-inactive order is a
// no-op that still reports success.
func (s *OrderService) Remove(ctx context.Context, id int) (*models.OrderResult, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.IsActive {
		return &models.OrderResult{
			Message: "Order already inactive",
			Order:   order,
		}, nil
	}

	order.IsActive = false
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	return &models.OrderResult{
		Message: "Order marked as inactive",
		Order:   order,
	}, nil
}

func distinctProductIDs(items []models.OrderItemInput) []int {
	seen := make(map[int]bool, len(items))
	ids := make([]int, 0, len(items))
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}
	return ids
}

// normalizePhone strips everything but digits and requires exactly ten
// of them (country-local mobile number).
func normalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	phone := digits.String()
	if len(phone) != 10 {
		return "", models.ValidationError("Phone must be a valid 10-digit mobile number")
	}
	return phone, nil
}

// normalizeCartID maps blank correlation tokens to NULL so the cart_id
// uniqueness constraint only binds clients that actually send one.
func normalizeCartID(cartID *string) *string {
	if cartID == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*cartID)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
