package services

import (
	"bnc-store/models"
	"context"
	"fmt"
)

type ProductRepo interface {
	Create(ctx context.Context, product *models.Product) error
	FindAll(ctx context.Context) ([]models.Product, error)
	FindActive(ctx context.Context) ([]models.Product, error)
	FindLatest(ctx context.Context) ([]models.Product, error)
	FindByCategory(ctx context.Context, categoryID int) ([]models.Product, error)
	FindByID(ctx context.Context, id int) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Deactivate(ctx context.Context, id int) error
}

type ProductService struct {
	repo  ProductRepo
	cache *ProductCache
}

func NewProductService(repo ProductRepo) *ProductService {
	return &ProductService{
		repo:  repo,
		cache: NewProductCache(),
	}
}

func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	imageURL := req.ImageURL
	if imageURL == nil {
		imageURL = []string{}
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    imageURL,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		IsActive:    isActive,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return product, nil
}

func (s *ProductService) findCached(ctx context.Context, key string, fetch func() ([]models.Product, error)) ([]models.Product, error) {
	if products, ok := s.cache.Get(ctx, key); ok {
		return products, nil
	}

	products, err := fetch()
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, products)
	return products, nil
}

func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.findCached(ctx, "product_list_all", func() ([]models.Product, error) {
		return s.repo.FindAll(ctx)
	})
}

func (s *ProductService) FindActive(ctx context.Context) ([]models.Product, error) {
	return s.findCached(ctx, "product_list_active", func() ([]models.Product, error) {
		return s.repo.FindActive(ctx)
	})
}

func (s *ProductService) FindLatest(ctx context.Context) ([]models.Product, error) {
	return s.findCached(ctx, "product_list_latest", func() ([]models.Product, error) {
		return s.repo.FindLatest(ctx)
	})
}

func (s *ProductService) FindByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	key := fmt.Sprintf("product_list_cat_%d", categoryID)
	return s.findCached(ctx, key, func() ([]models.Product, error) {
		return s.repo.FindByCategory(ctx, categoryID)
	})
}

func (s *ProductService) FindOne(ctx context.Context, id int) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.BrandID != nil {
		product.BrandID = *req.BrandID
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return product, nil
}

// Remove soft-deletes; orders keep their own name/price snapshots, so a
// discontinued product stays viewable in order history.
func (s *ProductService) Remove(ctx context.Context, id int) (*models.Product, string, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if !product.IsActive {
		return product, "Product already inactive", nil
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return nil, "", err
	}

	product.IsActive = false
	s.cache.Invalidate(ctx)
	return product, "Product marked as inactive", nil
}
