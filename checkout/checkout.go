// Package checkout validates the shopper's contact form and submits the
// cart as an order.
package checkout

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"bnc-store/cart"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is the contact detail block the shopper fills in.
type Form struct {
	FullName string
	Email    string
	Phone    string
	Place    string
}

// ValidationError is a form problem the shopper can fix. Checks run in
// field order and the first failure wins.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks the form against a cart snapshot.
func Validate(form Form, lines []cart.Line) error {
	if strings.TrimSpace(form.FullName) == "" {
		return &ValidationError{Field: "fullName", Message: "Please enter your full name"}
	}

	email := strings.TrimSpace(form.Email)
	if email == "" {
		return &ValidationError{Field: "email", Message: "Please enter your email"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}

	phone := digitsOnly(form.Phone)
	if phone == "" {
		return &ValidationError{Field: "phone", Message: "Please enter your mobile number"}
	}
	if len(phone) != 10 {
		return &ValidationError{Field: "phone", Message: "Mobile number must be exactly 10 digits"}
	}

	if strings.TrimSpace(form.Place) == "" {
		return &ValidationError{Field: "place", Message: "Please enter your place (city & pincode)"}
	}

	if len(lines) == 0 {
		return &ValidationError{Field: "cart", Message: "Your cart is empty"}
	}

	return nil
}

// Submitter ties the cart store to the API client.
type Submitter struct {
	store  *cart.Store
	client *Client
}

func NewSubmitter(store *cart.Store, client *Client) *Submitter {
	return &Submitter{store: store, client: client}
}

// Submit validates the form and places the order. On success the cart
// is emptied and its id retired so a resubmission cannot collide with
// the accepted order. On any failure the cart is left untouched.
func (s *Submitter) Submit(ctx context.Context, form Form) (int64, error) {
	lines := s.store.Lines()
	if err := Validate(form, lines); err != nil {
		return 0, err
	}

	items := make([]OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, OrderItem{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	orderID, err := s.client.PlaceOrder(ctx, OrderRequest{
		CartID:   s.store.CartID(),
		FullName: strings.TrimSpace(form.FullName),
		Email:    strings.TrimSpace(form.Email),
		Phone:    digitsOnly(form.Phone),
		Place:    strings.TrimSpace(form.Place),
		Items:    items,
	})
	if err != nil {
		return 0, err
	}

	s.store.Clear()
	s.store.ResetCartID()
	return orderID, nil
}

// IsValidation reports whether err is a form problem rather than a
// transport or server failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
