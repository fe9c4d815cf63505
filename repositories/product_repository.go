package repositories

import (
	"bnc-store/config"
	"bnc-store/models"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.image_url, p.category_id, p.brand_id,
	       p.is_active, p.created_at, p.updated_at,
	       c.id, c.name, c.is_active, c.created_at, c.updated_at,
	       b.id, b.name, b.is_active, b.created_at, b.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN brands b ON b.id = p.brand_id`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	var c models.Category
	var b models.Brand

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CategoryID, &p.BrandID,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		&b.ID, &b.Name, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Category = &c
	p.Brand = &b
	return &p, nil
}

func (r *ProductRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]models.Product, error) {
	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, description, price, image_url, category_id, brand_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id, created_at, updated_at`

	return config.DB.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.ImageURL,
		product.CategoryID, product.BrandID, product.IsActive, time.Now(),
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.queryProducts(ctx, productSelect+" ORDER BY p.created_at DESC")
}

func (r *ProductRepository) FindActive(ctx context.Context) ([]models.Product, error) {
	return r.queryProducts(ctx, productSelect+" WHERE p.is_active = true ORDER BY p.created_at DESC")
}

func (r *ProductRepository) FindLatest(ctx context.Context) ([]models.Product, error) {
	return r.queryProducts(ctx, productSelect+" WHERE p.is_active = true ORDER BY p.created_at DESC LIMIT 10")
}

func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	return r.queryProducts(ctx,
		productSelect+" WHERE p.category_id = $1 AND p.is_active = true ORDER BY p.created_at DESC",
		categoryID)
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	product, err := scanProduct(config.DB.QueryRow(ctx, productSelect+" WHERE p.id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	return product, err
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, image_url = $4, category_id = $5,
		    brand_id = $6, is_active = $7, updated_at = $8
		WHERE id = $9
		RETURNING updated_at`

	return config.DB.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.ImageURL,
		product.CategoryID, product.BrandID, product.IsActive, time.Now(), product.ID,
	).Scan(&product.UpdatedAt)
}

func (r *ProductRepository) Deactivate(ctx context.Context, id int) error {
	_, err := config.DB.Exec(ctx,
		"UPDATE products SET is_active = false, updated_at = $1 WHERE id = $2",
		time.Now(), id)
	return err
}

// PricingByIDs returns id, name and current price for the requested
// products. Callers compare result length against the request to detect
// unknown ids.
func (r *ProductRepository) PricingByIDs(ctx context.Context, ids []int) ([]models.ProductPricing, error) {
	rows, err := config.DB.Query(ctx,
		"SELECT id, name, price FROM products WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pricing := []models.ProductPricing{}
	for rows.Next() {
		var p models.ProductPricing
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		pricing = append(pricing, p)
	}
	return pricing, rows.Err()
}
