package repositories

import (
	"bnc-store/config"
	"bnc-store/models"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

type ContactRepository struct{}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (name, phone, email, interested_in, message, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, true, $6)
		RETURNING id, is_active, created_at`

	return config.DB.QueryRow(ctx, query,
		contact.Name, contact.Phone, contact.Email, contact.InterestedIn, contact.Message, time.Now(),
	).Scan(&contact.ID, &contact.IsActive, &contact.CreatedAt)
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]models.Contact, error) {
	rows, err := config.DB.Query(ctx, `
		SELECT id, name, phone, email, interested_in, message, is_active, created_at
		FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var c models.Contact
		err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.InterestedIn, &c.Message, &c.IsActive, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *ContactRepository) FindByID(ctx context.Context, id int) (*models.Contact, error) {
	var c models.Contact
	err := config.DB.QueryRow(ctx, `
		SELECT id, name, phone, email, interested_in, message, is_active, created_at
		FROM contacts WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.InterestedIn, &c.Message, &c.IsActive, &c.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContactRepository) Deactivate(ctx context.Context, id int) error {
	_, err := config.DB.Exec(ctx, "UPDATE contacts SET is_active = false WHERE id = $1", id)
	return err
}
