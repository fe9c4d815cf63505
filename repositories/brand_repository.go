package repositories

import (
	"bnc-store/config"
	"bnc-store/models"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

type BrandRepository struct{}

func NewBrandRepository() *BrandRepository {
	return &BrandRepository{}
}

func (r *BrandRepository) Create(ctx context.Context, brand *models.Brand) error {
	query := `
		INSERT INTO brands (name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id, created_at, updated_at`

	return config.DB.QueryRow(ctx, query,
		brand.Name, brand.IsActive, time.Now(),
	).Scan(&brand.ID, &brand.CreatedAt, &brand.UpdatedAt)
}

func (r *BrandRepository) find(ctx context.Context, where string) ([]models.Brand, error) {
	query := "SELECT id, name, is_active, created_at, updated_at FROM brands" +
		where + " ORDER BY created_at DESC"

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := []models.Brand{}
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *BrandRepository) FindAll(ctx context.Context) ([]models.Brand, error) {
	return r.find(ctx, "")
}

func (r *BrandRepository) FindActive(ctx context.Context) ([]models.Brand, error) {
	return r.find(ctx, " WHERE is_active = true")
}

func (r *BrandRepository) FindByID(ctx context.Context, id int) (*models.Brand, error) {
	var b models.Brand
	err := config.DB.QueryRow(ctx,
		"SELECT id, name, is_active, created_at, updated_at FROM brands WHERE id = $1", id,
	).Scan(&b.ID, &b.Name, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BrandRepository) Update(ctx context.Context, brand *models.Brand) error {
	return config.DB.QueryRow(ctx,
		"UPDATE brands SET name = $1, is_active = $2, updated_at = $3 WHERE id = $4 RETURNING updated_at",
		brand.Name, brand.IsActive, time.Now(), brand.ID,
	).Scan(&brand.UpdatedAt)
}

func (r *BrandRepository) Deactivate(ctx context.Context, id int) error {
	_, err := config.DB.Exec(ctx,
		"UPDATE brands SET is_active = false, updated_at = $1 WHERE id = $2",
		time.Now(), id)
	return err
}
