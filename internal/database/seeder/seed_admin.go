package seeder

import (
	"context"
	"fmt"
	"os"
	"strings"

	"talent-pulse/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// AdminSeeder creates the initial HR admin account. Credentials come
// from SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD; without them the seeder
// is a no-op so production setups can skip it.
type AdminSeeder struct{}

func (AdminSeeder) Name() string { return "admin_user" }

func (AdminSeeder) Run(ctx context.Context, db database.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (id, email, full_name, password_hash)
		 VALUES ($1, $2, 'HR Admin', $3)
		 ON CONFLICT (email) DO NOTHING`,
		adminUserID, email, string(hash))
	return err
}
