package repository

import (
	"context"
	"strings"

	"talent-pulse/internal/database"

	"github.com/google/uuid"
)

// User is an HR admin account.
type User struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, email, fullName, passwordHash string) (User, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, COALESCE(full_name, ''), password_hash FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, COALESCE(full_name, ''), password_hash FROM users WHERE lower(email) = lower($1)`,
		strings.TrimSpace(email))
	return scanUser(row)
}

func (r *PostgresUserRepository) Create(ctx context.Context, email, fullName, passwordHash string) (User, error) {
	u := User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: passwordHash,
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, full_name, password_hash) VALUES ($1, $2, NULLIF($3, ''), $4)`,
		u.ID, u.Email, u.FullName, u.PasswordHash)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func scanUser(row database.Row) (User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash); err != nil {
		if isNoRows(err) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}
