package services

import (
	"bnc-store/models"
	"context"
)

type CategoryRepo interface {
	Create(ctx context.Context, category *models.Category) error
	FindAll(ctx context.Context) ([]models.Category, error)
	FindActive(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id int) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Deactivate(ctx context.Context, id int) error
}

type CategoryService struct {
	repo CategoryRepo
}

func NewCategoryService(repo CategoryRepo) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := &models.Category{
		Name:     req.Name,
		IsActive: isActive,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) FindAll(ctx context.Context) ([]models.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) FindActive(ctx context.Context) ([]models.Category, error) {
	return s.repo.FindActive(ctx)
}

func (s *CategoryService) FindOne(ctx context.Context, id int) (*models.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id int, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Remove(ctx context.Context, id int) (*models.Category, string, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if !category.IsActive {
		return category, "Category already inactive", nil
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return nil, "", err
	}

	category.IsActive = false
	return category, "Category marked as inactive", nil
}
