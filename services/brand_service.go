package services

import (
	"bnc-store/models"
	"context"
)

type BrandRepo interface {
	Create(ctx context.Context, brand *models.Brand) error
	FindAll(ctx context.Context) ([]models.Brand, error)
	FindActive(ctx context.Context) ([]models.Brand, error)
	FindByID(ctx context.Context, id int) (*models.Brand, error)
	Update(ctx context.Context, brand *models.Brand) error
	Deactivate(ctx context.Context, id int) error
}

type BrandService struct {
	repo BrandRepo
}

func NewBrandService(repo BrandRepo) *BrandService {
	return &BrandService{repo: repo}
}

func (s *BrandService) Create(ctx context.Context, req models.CreateBrandRequest) (*models.Brand, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	brand := &models.Brand{
		Name:     req.Name,
		IsActive: isActive,
	}

	if err := s.repo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) FindAll(ctx context.Context) ([]models.Brand, error) {
	return s.repo.FindAll(ctx)
}

func (s *BrandService) FindActive(ctx context.Context) ([]models.Brand, error) {
	return s.repo.FindActive(ctx)
}

func (s *BrandService) FindOne(ctx context.Context, id int) (*models.Brand, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BrandService) Update(ctx context.Context, id int, req models.UpdateBrandRequest) (*models.Brand, error) {
	brand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		brand.Name = *req.Name
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) Remove(ctx context.Context, id int) (*models.Brand, string, error) {
	brand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if !brand.IsActive {
		return brand, "Brand already inactive", nil
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return nil, "", err
	}

	brand.IsActive = false
	return brand, "Brand marked as inactive", nil
}
