package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bnc-store/models"
)

type fakePricer struct {
	pricing []models.ProductPricing
	err     error
	gotIDs  []int
}

func (f *fakePricer) PricingByIDs(_ context.Context, ids []int) ([]models.ProductPricing, error) {
	f.gotIDs = ids
	if f.err != nil {
		return nil, f.err
	}
	// Only ids present in the fixture are returned, like the real query.
	var out []models.ProductPricing
	for _, id := range ids {
		for _, p := range f.pricing {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

type fakeOrderStore struct {
	created   []*models.Order
	updated   []*models.Order
	byID      map[int]*models.Order
	createErr error
}

func (f *fakeOrderStore) Create(_ context.Context, order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = len(f.created) + 1
	order.IsActive = true
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderStore) FindAll(context.Context) ([]models.Order, error)    { return nil, nil }
func (f *fakeOrderStore) FindActive(context.Context) ([]models.Order, error) { return nil, nil }

func (f *fakeOrderStore) FindByID(_ context.Context, id int) (*models.Order, error) {
	order, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return order, nil
}

func (f *fakeOrderStore) Update(_ context.Context, order *models.Order) error {
	f.updated = append(f.updated, order)
	return nil
}

type fakeMailer struct {
	sent []*models.Order
	err  error
}

func (f *fakeMailer) SendOrderPlaced(order *models.Order) error {
	f.sent = append(f.sent, order)
	return f.err
}

func catalog() *fakePricer {
	return &fakePricer{pricing: []models.ProductPricing{
		{ID: 1, Name: "HP Pavilion 15", Price: 52999},
		{ID: 2, Name: "Logitech MX Keys", Price: 8495},
	}}
}

func createRequest() models.CreateOrderRequest {
	cartID := "b7e9c2d4-cart"
	return models.CreateOrderRequest{
		CartID:   &cartID,
		FullName: " Bharath Kumar ",
		Email:    "bharath@example.com",
		Phone:    "98765 43210",
		Place:    "Chennai 600001",
		Items: []models.OrderItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}
}

func TestCreateSnapshotsLivePricing(t *testing.T) {
	store := &fakeOrderStore{}
	mailer := &fakeMailer{}
	svc := NewOrderService(catalog(), store, mailer)

	result, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, "Order created successfully", result.Message)
	require.Len(t, store.created, 1)

	order := store.created[0]
	assert.Equal(t, "Bharath Kumar", order.FullName)
	assert.Equal(t, "9876543210", order.Phone)
	require.NotNil(t, order.CartID)
	assert.Equal(t, "b7e9c2d4-cart", *order.CartID)

	// Total comes from the catalog, not from anything the client sent.
	assert.InDelta(t, 52999*2+8495, order.TotalAmount, 0.001)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "HP Pavilion 15", order.Items[0].ProductName)
	assert.InDelta(t, 52999, order.Items[0].UnitPrice, 0.001)
	assert.Equal(t, 2, order.Items[0].Quantity)

	require.Len(t, mailer.sent, 1)
	assert.Same(t, order, mailer.sent[0])
}

func TestCreateRejectsUnknownProducts(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(catalog(), store, nil)

	req := createRequest()
	req.Items = append(req.Items, models.OrderItemInput{ProductID: 99, Quantity: 1})

	_, err := svc.Create(context.Background(), req)

	require.ErrorIs(t, err, models.ErrProductsNotFound)
	assert.Empty(t, store.created)
}

func TestCreateRejectsBadPhoneBeforePricing(t *testing.T) {
	pricer := catalog()
	svc := NewOrderService(pricer, &fakeOrderStore{}, nil)

	req := createRequest()
	req.Phone = "12345"

	_, err := svc.Create(context.Background(), req)

	require.Error(t, err)
	var ve models.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Nil(t, pricer.gotIDs)
}

func TestCreateDeduplicatesProductIDs(t *testing.T) {
	pricer := catalog()
	store := &fakeOrderStore{}
	svc := NewOrderService(pricer, store, nil)

	req := createRequest()
	req.Items = []models.OrderItemInput{
		{ProductID: 1, Quantity: 1},
		{ProductID: 1, Quantity: 2},
	}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, pricer.gotIDs)
	require.Len(t, store.created, 1)
	assert.InDelta(t, 52999*3, store.created[0].TotalAmount, 0.001)
}

func TestCreateBlankCartIDStoredAsNull(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(catalog(), store, nil)

	blank := "   "
	req := createRequest()
	req.CartID = &blank

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, store.created[0].CartID)
}

func TestCreateMailFailureDoesNotFailOrder(t *testing.T) {
	store := &fakeOrderStore{}
	mailer := &fakeMailer{err: errors.New("smtp: connection refused")}
	svc := NewOrderService(catalog(), store, mailer)

	result, err := svc.Create(context.Background(), createRequest())

	require.NoError(t, err)
	assert.Equal(t, "Order created successfully", result.Message)
	assert.Len(t, store.created, 1)
	assert.Len(t, mailer.sent, 1)
}

func TestCreateWithoutMailerSkipsNotification(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(catalog(), store, nil)

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	assert.Len(t, store.created, 1)
}

func TestCreateStoreFailureSkipsMail(t *testing.T) {
	store := &fakeOrderStore{createErr: errors.New("tx aborted")}
	mailer := &fakeMailer{}
	svc := NewOrderService(catalog(), store, mailer)

	_, err := svc.Create(context.Background(), createRequest())

	require.Error(t, err)
	assert.Empty(t, mailer.sent)
}

func TestCreateDuplicateCartSurfaced(t *testing.T) {
	store := &fakeOrderStore{createErr: models.ErrDuplicateCart}
	svc := NewOrderService(catalog(), store, nil)

	_, err := svc.Create(context.Background(), createRequest())
	assert.ErrorIs(t, err, models.ErrDuplicateCart)
}

func TestUpdatePatchesContactFieldsOnly(t *testing.T) {
	existing := &models.Order{
		ID:          4,
		FullName:    "Bharath Kumar",
		Email:       "bharath@example.com",
		Phone:       "9876543210",
		Place:       "Chennai 600001",
		TotalAmount: 52999,
		IsActive:    true,
		Items:       []models.OrderItem{{ProductID: 1, ProductName: "HP Pavilion 15", UnitPrice: 52999, Quantity: 1}},
	}
	store := &fakeOrderStore{byID: map[int]*models.Order{4: existing}}
	svc := NewOrderService(catalog(), store, nil)

	place := "Coimbatore 641001"
	phone := "90000 00001"
	result, err := svc.Update(context.Background(), 4, models.UpdateOrderRequest{
		Place: &place,
		Phone: &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, "Order updated successfully", result.Message)
	assert.Equal(t, "Coimbatore 641001", result.Order.Place)
	assert.Equal(t, "9000000001", result.Order.Phone)
	assert.Equal(t, "Bharath Kumar", result.Order.FullName)
	assert.InDelta(t, 52999, result.Order.TotalAmount, 0.001)
	require.Len(t, result.Order.Items, 1)
	require.Len(t, store.updated, 1)
}

func TestUpdateMissingOrder(t *testing.T) {
	store := &fakeOrderStore{byID: map[int]*models.Order{}}
	svc := NewOrderService(catalog(), store, nil)

	name := "Someone Else"
	_, err := svc.Update(context.Background(), 77, models.UpdateOrderRequest{FullName: &name})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRemoveIsIdempotent(t *testing.T) {
	existing := &models.Order{ID: 9, IsActive: true}
	store := &fakeOrderStore{byID: map[int]*models.Order{9: existing}}
	svc := NewOrderService(catalog(), store, nil)

	first, err := svc.Remove(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Order marked as inactive", first.Message)
	assert.False(t, first.Order.IsActive)
	assert.Len(t, store.updated, 1)

	second, err := svc.Remove(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Order already inactive", second.Message)
	assert.Len(t, store.updated, 1)
}
