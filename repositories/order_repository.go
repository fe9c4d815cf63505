package repositories

import (
	"bnc-store/config"
	"bnc-store/models"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const uniqueViolation = "23505"

// Create persists the order and its line items in one transaction:
// either the order row and every item land, or nothing does.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (cart_id, full_name, email, phone, place, total_amount, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, true, $7, $7)
		RETURNING id, is_active, created_at, updated_at`,
		order.CartID, order.FullName, order.Email, order.Phone, order.Place, order.TotalAmount, now,
	).Scan(&order.ID, &order.IsActive, &order.CreatedAt, &order.UpdatedAt)

	if err != nil {
		return mapOrderError(err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			order.ID, item.ProductID, item.ProductName, item.UnitPrice, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func mapOrderError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return models.ErrDuplicateCart
	}
	return err
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.ID, &o.CartID, &o.FullName, &o.Email, &o.Phone, &o.Place,
		&o.TotalAmount, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

const orderSelect = `
	SELECT id, cart_id, full_name, email, phone, place, total_amount, is_active, created_at, updated_at
	FROM orders`

func (r *OrderRepository) findMany(ctx context.Context, where string) ([]models.Order, error) {
	rows, err := config.DB.Query(ctx, orderSelect+where+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	ids := []int{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemsByOrder, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
	}
	return orders, nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	return r.findMany(ctx, "")
}

func (r *OrderRepository) FindActive(ctx context.Context) ([]models.Order, error) {
	return r.findMany(ctx, " WHERE is_active = true")
}

func (r *OrderRepository) FindByID(ctx context.Context, id int) (*models.Order, error) {
	order, err := scanOrder(config.DB.QueryRow(ctx, orderSelect+" WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	itemsByOrder, err := r.loadItems(ctx, []int{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = itemsByOrder[order.ID]
	return order, nil
}

// loadItems fetches line items for a set of orders in one round trip,
// with the live product joined in for display.
func (r *OrderRepository) loadItems(ctx context.Context, orderIDs []int) (map[int][]models.OrderItem, error) {
	itemsByOrder := map[int][]models.OrderItem{}
	if len(orderIDs) == 0 {
		return itemsByOrder, nil
	}

	rows, err := config.DB.Query(ctx, `
		SELECT i.id, i.order_id, i.product_id, i.product_name, i.unit_price, i.quantity,
		       p.id, p.name, p.description, p.price, p.image_url, p.category_id, p.brand_id,
		       p.is_active, p.created_at, p.updated_at
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ANY($1)
		ORDER BY i.id`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		var p models.Product
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.UnitPrice, &item.Quantity,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CategoryID, &p.BrandID,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		item.Product = &p
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}
	return itemsByOrder, rows.Err()
}

// Update writes the patchable order fields. Items and total_amount are
// never touched here.
func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	err := config.DB.QueryRow(ctx, `
		UPDATE orders
		SET cart_id = $1, full_name = $2, email = $3, phone = $4, place = $5, is_active = $6, updated_at = $7
		WHERE id = $8
		RETURNING updated_at`,
		order.CartID, order.FullName, order.Email, order.Phone, order.Place,
		order.IsActive, time.Now(), order.ID,
	).Scan(&order.UpdatedAt)

	return mapOrderError(err)
}

func (r *OrderRepository) Deactivate(ctx context.Context, id int) error {
	_, err := config.DB.Exec(ctx,
		"UPDATE orders SET is_active = false, updated_at = $1 WHERE id = $2",
		time.Now(), id)
	return err
}
