package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Admin represents an admin account for the REST API.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ErrAdminExists indicates the email is already registered.
type ErrAdminExists struct {
	Email string
}

func (e *ErrAdminExists) Error() string {
	return fmt.Sprintf("admin already registered: %s", e.Email)
}

// CreateAdmin inserts a new admin account with a pre-hashed password.
func (db *DB) CreateAdmin(ctx context.Context, name, email, passwordHash string) (*Admin, error) {
	var admin Admin
	err := db.pool.QueryRow(ctx,
		`INSERT INTO admins (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, email, password_hash, created_at`,
		name, email, passwordHash,
	).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &ErrAdminExists{Email: email}
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return &admin, nil
}

// GetAdminByEmail retrieves an admin by email. Returns nil without error
// when no admin matches.
func (db *DB) GetAdminByEmail(ctx context.Context, email string) (*Admin, error) {
	var admin Admin
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at FROM admins WHERE email = $1`,
		email,
	).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}
