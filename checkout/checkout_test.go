package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bnc-store/cart"
)

func validForm() Form {
	return Form{
		FullName: "Bharath Kumar",
		Email:    "bharath@example.com",
		Phone:    "9876543210",
		Place:    "Chennai 600001",
	}
}

func oneLine() []cart.Line {
	return []cart.Line{{ProductID: 1, Name: "HP Pavilion 15", Price: 52999, Quantity: 1}}
}

func TestValidateFailFastOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Form)
		lines   []cart.Line
		field   string
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(f *Form) { f.FullName = "  " },
			lines:   oneLine(),
			field:   "fullName",
			message: "Please enter your full name",
		},
		{
			name:    "missing email",
			mutate:  func(f *Form) { f.Email = "" },
			lines:   oneLine(),
			field:   "email",
			message: "Please enter your email",
		},
		{
			name:    "bad email",
			mutate:  func(f *Form) { f.Email = "not-an-email" },
			lines:   oneLine(),
			field:   "email",
			message: "Please enter a valid email address",
		},
		{
			name:    "missing phone",
			mutate:  func(f *Form) { f.Phone = "" },
			lines:   oneLine(),
			field:   "phone",
			message: "Please enter your mobile number",
		},
		{
			name:    "short phone",
			mutate:  func(f *Form) { f.Phone = "12345" },
			lines:   oneLine(),
			field:   "phone",
			message: "Mobile number must be exactly 10 digits",
		},
		{
			name:    "long phone",
			mutate:  func(f *Form) { f.Phone = "98765432101" },
			lines:   oneLine(),
			field:   "phone",
			message: "Mobile number must be exactly 10 digits",
		},
		{
			name:    "missing place",
			mutate:  func(f *Form) { f.Place = "" },
			lines:   oneLine(),
			field:   "place",
			message: "Please enter your place (city & pincode)",
		},
		{
			name:    "empty cart",
			mutate:  func(f *Form) {},
			lines:   nil,
			field:   "cart",
			message: "Your cart is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := Validate(form, tt.lines)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.message, ve.Message)
		})
	}
}

func TestValidateAcceptsFormattedPhone(t *testing.T) {
	form := validForm()
	form.Phone = "98765 43210"

	assert.NoError(t, Validate(form, oneLine()))
}

func TestSubmitSuccessClearsCartAndRotatesID(t *testing.T) {
	var received OrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/order", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"message":"Order created successfully","data":{"order":{"id":7}}}`))
	}))
	defer server.Close()

	store := cart.NewStore(cart.NewMemoryStorage())
	store.Add(1, "HP Pavilion 15", 52999, "/img/pavilion.jpg", 2)
	store.Add(3, "Seagate 1TB HDD", 3899, "/img/seagate.jpg", 1)
	originalCartID := store.CartID()

	submitter := NewSubmitter(store, NewClient(server.URL))
	orderID, err := submitter.Submit(context.Background(), validForm())

	require.NoError(t, err)
	assert.Equal(t, int64(7), orderID)

	assert.Equal(t, originalCartID, received.CartID)
	assert.Equal(t, "Bharath Kumar", received.FullName)
	assert.Equal(t, "9876543210", received.Phone)
	require.Len(t, received.Items, 2)
	assert.Equal(t, OrderItem{ProductID: 1, Quantity: 2}, received.Items[0])
	assert.Equal(t, OrderItem{ProductID: 3, Quantity: 1}, received.Items[1])

	assert.Empty(t, store.Lines())
	assert.NotEqual(t, originalCartID, store.CartID())
}

func TestSubmitValidationSkipsNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server")
	}))
	defer server.Close()

	store := cart.NewStore(cart.NewMemoryStorage())
	store.Add(1, "HP Pavilion 15", 52999, "/img/pavilion.jpg", 1)

	form := validForm()
	form.Phone = "12345"

	submitter := NewSubmitter(store, NewClient(server.URL))
	_, err := submitter.Submit(context.Background(), form)

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "Mobile number must be exactly 10 digits")
	assert.Len(t, store.Lines(), 1)
}

func TestSubmitServerRejectionKeepsCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"One or more products not found","code":"PRODUCTS_NOT_FOUND"}`))
	}))
	defer server.Close()

	store := cart.NewStore(cart.NewMemoryStorage())
	store.Add(99, "Discontinued SSD", 4999, "/img/ssd.jpg", 1)
	originalCartID := store.CartID()

	submitter := NewSubmitter(store, NewClient(server.URL))
	_, err := submitter.Submit(context.Background(), validForm())

	require.Error(t, err)
	assert.False(t, IsValidation(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "PRODUCTS_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "One or more products not found", apiErr.Message)

	assert.Len(t, store.Lines(), 1)
	assert.Equal(t, originalCartID, store.CartID())
}

func TestSubmitDuplicateCartSurfacesConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"message":"An order for this cart already exists","code":"DUPLICATE_CART"}`))
	}))
	defer server.Close()

	store := cart.NewStore(cart.NewMemoryStorage())
	store.Add(1, "HP Pavilion 15", 52999, "/img/pavilion.jpg", 1)

	submitter := NewSubmitter(store, NewClient(server.URL))
	_, err := submitter.Submit(context.Background(), validForm())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "DUPLICATE_CART", apiErr.Code)
}
