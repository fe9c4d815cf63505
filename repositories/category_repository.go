package repositories

import (
	"bnc-store/config"
	"bnc-store/models"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id, created_at, updated_at`

	return config.DB.QueryRow(ctx, query,
		category.Name, category.IsActive, time.Now(),
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *CategoryRepository) find(ctx context.Context, where string) ([]models.Category, error) {
	query := "SELECT id, name, is_active, created_at, updated_at FROM categories" +
		where + " ORDER BY created_at DESC"

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	return r.find(ctx, "")
}

func (r *CategoryRepository) FindActive(ctx context.Context) ([]models.Category, error) {
	return r.find(ctx, " WHERE is_active = true")
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int) (*models.Category, error) {
	var c models.Category
	err := config.DB.QueryRow(ctx,
		"SELECT id, name, is_active, created_at, updated_at FROM categories WHERE id = $1", id,
	).Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	return config.DB.QueryRow(ctx,
		"UPDATE categories SET name = $1, is_active = $2, updated_at = $3 WHERE id = $4 RETURNING updated_at",
		category.Name, category.IsActive, time.Now(), category.ID,
	).Scan(&category.UpdatedAt)
}

func (r *CategoryRepository) Deactivate(ctx context.Context, id int) error {
	_, err := config.DB.Exec(ctx,
		"UPDATE categories SET is_active = false, updated_at = $1 WHERE id = $2",
		time.Now(), id)
	return err
}
