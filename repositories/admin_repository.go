package repositories

import (
	"bnc-store/config"
	"bnc-store/models"
	"bnc-store/utils"
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
)

type AdminRepository struct{}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	err := config.DB.QueryRow(ctx,
		"SELECT id, email, password, is_active, created_at FROM admins WHERE email = $1 AND is_active = true",
		email,
	).Scan(&a.ID, &a.Email, &a.Password, &a.IsActive, &a.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// EnsureSeed creates the console admin from ADMIN_EMAIL/ADMIN_PASSWORD
// when the table is empty. The store runs with a single admin account.
func (r *AdminRepository) EnsureSeed(ctx context.Context) error {
	var count int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM admins").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if config.AppConfig.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hashed, err := utils.HashPassword(config.AppConfig.AdminPassword)
	if err != nil {
		return err
	}

	_, err = config.DB.Exec(ctx,
		"INSERT INTO admins (email, password) VALUES ($1, $2)",
		config.AppConfig.AdminEmail, hashed)
	if err != nil {
		return err
	}

	log.Printf("Seeded admin account %s", config.AppConfig.AdminEmail)
	return nil
}
