package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bnc-store/models"
)

type fakeProductRepo struct {
	products    map[int]*models.Product
	created     []*models.Product
	updated     []*models.Product
	deactivated []int
	findAll     int
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	byID := make(map[int]*models.Product)
	for _, p := range products {
		byID[p.ID] = p
	}
	return &fakeProductRepo{products: byID}
}

func (f *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	product.ID = len(f.products) + 1
	f.products[product.ID] = product
	f.created = append(f.created, product)
	return nil
}

func (f *fakeProductRepo) FindAll(context.Context) ([]models.Product, error) {
	f.findAll++
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) FindActive(context.Context) ([]models.Product, error)    { return nil, nil }
func (f *fakeProductRepo) FindLatest(context.Context) ([]models.Product, error)    { return nil, nil }
func (f *fakeProductRepo) FindByCategory(context.Context, int) ([]models.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id int) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *models.Product) error {
	f.updated = append(f.updated, product)
	return nil
}

func (f *fakeProductRepo) Deactivate(_ context.Context, id int) error {
	f.deactivated = append(f.deactivated, id)
	return nil
}

func TestProductCreateDefaults(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	product, err := svc.Create(context.Background(), models.CreateProductRequest{
		Name:       "Seagate 1TB HDD",
		Price:      3899,
		CategoryID: 2,
		BrandID:    3,
	})
	require.NoError(t, err)

	assert.True(t, product.IsActive)
	assert.NotNil(t, product.ImageURL)
	assert.Empty(t, product.ImageURL)
	require.Len(t, repo.created, 1)
}

func TestProductUpdatePatchesOnlyProvidedFields(t *testing.T) {
	repo := newFakeProductRepo(&models.Product{
		ID:          1,
		Name:        "HP Pavilion 15",
		Description: "15.6 inch laptop",
		Price:       52999,
		CategoryID:  1,
		BrandID:     1,
		IsActive:    true,
	})
	svc := NewProductService(repo)

	price := 49999.0
	product, err := svc.Update(context.Background(), 1, models.UpdateProductRequest{Price: &price})
	require.NoError(t, err)

	assert.InDelta(t, 49999, product.Price, 0.001)
	assert.Equal(t, "HP Pavilion 15", product.Name)
	assert.Equal(t, "15.6 inch laptop", product.Description)
	require.Len(t, repo.updated, 1)
}

func TestProductRemoveIsIdempotent(t *testing.T) {
	repo := newFakeProductRepo(&models.Product{ID: 1, Name: "HP Pavilion 15", IsActive: true})
	svc := NewProductService(repo)

	product, message, err := svc.Remove(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Product marked as inactive", message)
	assert.False(t, product.IsActive)
	assert.Equal(t, []int{1}, repo.deactivated)

	_, message, err = svc.Remove(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Product already inactive", message)
	assert.Len(t, repo.deactivated, 1)
}

func TestProductFindOneMissing(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	_, err := svc.FindOne(context.Background(), 404)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
